package main

import (
	"context"
	"log"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/constants"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/controllers"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/jobs"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/routes"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/notification"
)

// @title        Gobnb booking gateway
// @version      1.0
// @BasePath     /api/v1
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	ctx := context.Background()

	app, err := config.InitApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	appLogger := logger.FromEnv("gateway")

	api := apiclient.New(apiclient.WithLogger(appLogger.With("component", "apiclient")))
	opts := services.ServiceOptions{
		API:       api,
		Endpoints: app.Endpoints,
		Logger:    appLogger,
	}
	if app.Redis != nil {
		opts.Redis = app.Redis
	}

	var audit services.AuditStore = services.NopAuditStore{}
	if app.DB != nil {
		store, err := services.NewGormAuditStore(app.DB)
		if err != nil {
			appLogger.Error("featured audit disabled: %v", err)
		} else {
			audit = store
		}
	}

	notifier := notification.NewMelodyService(app.Melody)

	users := services.NewUserService(opts)
	auth := services.NewAuthService(opts, users)
	accommodations := services.NewAccommodationService(opts)
	reservations := services.NewReservationService(opts)
	availability := services.NewAvailabilityService(opts)
	ratings := services.NewRatingService(opts)
	reports := services.NewReportService(opts)

	concurrency := config.GetEnvInt("FEASIBILITY_CONCURRENCY", constants.DefaultFeasibilityConcurrency)
	feasibility := services.NewFeasibilityChecker(reservations, appLogger, concurrency)
	search := services.NewSearchService(opts, accommodations, feasibility)
	featured := services.NewFeaturedService(opts, reservations, ratings, audit, notifier)
	booking := services.NewBookingFacade(opts, reservations, accommodations, ratings, feasibility, featured, notifier)

	if err := jobs.InitCronJobs(app.Cron, accommodations, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(app.Router, routes.Controllers{
		Auth:          controllers.NewAuthController(auth),
		User:          controllers.NewUserController(users),
		Accommodation: controllers.NewAccommodationController(accommodations, search, app.Cloudinary, appLogger),
		Reservation:   controllers.NewReservationController(booking, reservations, feasibility),
		Availability:  controllers.NewAvailabilityController(availability),
		Rating:        controllers.NewRatingController(ratings, booking),
		Report:        controllers.NewReportController(reports),
		Featured:      controllers.NewFeaturedController(featured),
		Notification:  controllers.NewNotificationController(app.Melody, appLogger),
	})

	port := config.GetEnvDefault("PORT", "8083")

	appLogger.Info("Server starting on port %s...", port)
	if err := app.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
