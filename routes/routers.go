package routes

import (
	"net/http"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/constants"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/controllers"
	_ "github.com/anna02272/Accommodation-Booking-Platform-Gobnb/docs"
	middlewares "github.com/anna02272/Accommodation-Booking-Platform-Gobnb/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers groups the handlers mounted by SetupRoutes
type Controllers struct {
	Auth          controllers.AuthController
	User          controllers.UserController
	Accommodation controllers.AccommodationController
	Reservation   controllers.ReservationController
	Availability  controllers.AvailabilityController
	Rating        controllers.RatingController
	Report        controllers.ReportController
	Featured      controllers.FeaturedController
	Notification  controllers.NotificationController
}

func SetupRoutes(router *gin.Engine, ctl Controllers) {
	host := middlewares.AuthMiddleware(constants.RoleHost)
	guest := middlewares.AuthMiddleware(constants.RoleGuest)
	anyUser := middlewares.AuthMiddleware()

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ws", ctl.Notification.Connect)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", ctl.Auth.Login)
	v1.POST("/auth/register", ctl.Auth.Register)
	v1.POST("/auth/password-strength", ctl.Auth.PasswordStrength)
	v1.GET("/auth/verify/:code", ctl.Auth.VerifyEmail)
	v1.GET("/auth/resend/:email", ctl.Auth.ResendVerification)
	v1.POST("/auth/forgot-password", ctl.Auth.ForgotPassword)
	v1.PATCH("/auth/reset-password/:token", ctl.Auth.ResetPassword)
	v1.DELETE("/auth/logout", anyUser, ctl.Auth.Logout)

	v1.GET("/users/me", anyUser, ctl.User.Me)
	v1.GET("/profile", anyUser, ctl.User.GetProfile)
	v1.PATCH("/profile", anyUser, ctl.User.UpdateProfile)
	v1.PATCH("/profile/password", anyUser, ctl.User.ChangePassword)
	v1.DELETE("/profile", anyUser, ctl.User.DeleteProfile)
	v1.GET("/notifications", host, ctl.User.Notifications)

	v1.GET("/accommodations", ctl.Accommodation.Search)
	v1.DELETE("/accommodations/filters", ctl.Accommodation.ClearSearch)
	v1.GET("/accommodations/:id", ctl.Accommodation.GetByID)
	v1.GET("/accommodations/host/:hostId", ctl.Accommodation.GetByHost)
	v1.POST("/accommodations", host, ctl.Accommodation.Create)
	v1.DELETE("/accommodations/:id", host, ctl.Accommodation.Delete)
	v1.GET("/recommendations", guest, ctl.Accommodation.Recommendations)
	v1.POST("/img/upload", host, ctl.Accommodation.UploadImage)

	v1.POST("/reservations", guest, ctl.Reservation.Create)
	v1.GET("/reservations", guest, ctl.Reservation.GetAll)
	v1.DELETE("/reservations/:id", guest, ctl.Reservation.Cancel)
	v1.POST("/reservations/availability/:accId", ctl.Reservation.CheckAvailability)
	v1.POST("/reservations/prices/:accId", ctl.Reservation.Prices)

	v1.POST("/availability/:accId", host, ctl.Availability.Create)
	v1.GET("/availability/:accId", ctl.Availability.Get)

	v1.GET("/ratings", ctl.Rating.GetAll)
	v1.POST("/ratings/host/:hostId", guest, ctl.Rating.RateHost)
	v1.POST("/ratings/accommodation/:accId", guest, ctl.Rating.RateAccommodation)
	v1.DELETE("/ratings/host/:hostId", guest, ctl.Rating.DeleteHostRating)
	v1.GET("/ratings/host/:hostId", anyUser, ctl.Rating.GetHostRating)

	v1.POST("/hosts/:hostId/featured/recompute", host, ctl.Featured.Recompute)
	v1.GET("/hosts/:hostId/featured/history", host, ctl.Featured.History)

	v1.POST("/reports/daily/:accId", host, ctl.Report.Daily)
	v1.POST("/reports/monthly/:accId", host, ctl.Report.Monthly)
}
