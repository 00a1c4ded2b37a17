package config

import (
	"context"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// App holds the infrastructure the gateway is wired from. Redis, DB and
// Cloudinary are optional: without them the caches, the audit trail and
// image upload are disabled.
type App struct {
	Router     *gin.Engine
	Melody     *melody.Melody
	Cron       *cron.Cron
	Redis      *redis.Client
	DB         *gorm.DB
	Cloudinary *cloudinary.Cloudinary
	Endpoints  Endpoints
}

func InitApp(ctx context.Context) (*App, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Session-ID")
	configCors.AddExposeHeaders("X-Session-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	app := &App{
		Router:    router,
		Melody:    melody.New(),
		Cron:      cron.New(),
		Endpoints: LoadEndpoints(),
	}
	if err := app.initComponents(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *App) initComponents(ctx context.Context) error {
	if err := LoadEnv(); err != nil {
		return err
	}
	a.Endpoints = LoadEndpoints()

	var err error
	if a.Redis, err = ConnectRedis(ctx); err != nil {
		log.Printf("Warning: caches disabled: %v", err)
		a.Redis = nil
	}

	if a.DB, err = ConnectDB(); err != nil {
		log.Printf("Warning: featured audit disabled: %v", err)
		a.DB = nil
	}

	if a.Cloudinary, err = ConnectCloudinary(); err != nil {
		log.Printf("Warning: image upload disabled: %v", err)
		a.Cloudinary = nil
	}

	log.Println("All components initialized successfully")
	return nil
}
