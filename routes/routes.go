package routes

import (
	"os"

	"salon-sync-backend/config"
	"salon-sync-backend/controllers"
	"salon-sync-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	frontendOrigin := os.Getenv("FRONTEND_BASE_URL")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin, "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	oauthConfig := services.NewOAuthConfig()
	tokenStore := services.NewTokenStore(config.DB)
	reservationStore := services.NewReservationStore(config.DB)
	googleAuth := services.NewGoogleAuthService(oauthConfig, tokenStore)
	calendarAPI := services.NewCalendarAPI(oauthConfig)
	reservationService := services.NewReservationService(reservationStore, tokenStore, googleAuth, calendarAPI)

	authController := controllers.AuthController{
		Auth:     googleAuth,
		Tokens:   tokenStore,
		Calendar: calendarAPI,
	}
	reservationController := controllers.ReservationController{Reservations: reservationService}
	stylistController := controllers.StylistController{Reservations: reservationService}

	api := r.Group("/api")
	{
		// Google OAuth routes (stylist)
		auth := api.Group("/auth/google")
		{
			auth.GET("", authController.GoogleLogin)
			auth.GET("/callback", authController.GoogleCallback)
			auth.GET("/status", authController.GoogleStatus)
			auth.GET("/calendars", authController.ListCalendars)
			auth.POST("/calendar-select", authController.SelectCalendar)
		}

		// Reservation routes (customer)
		reservations := api.Group("/reservations")
		{
			reservations.POST("", reservationController.CreateReservation)
			reservations.GET("/my", reservationController.MyReservations)
			reservations.GET("/next", reservationController.NextReservation)
		}

		// Request review routes (stylist)
		stylist := api.Group("/stylist/requests")
		{
			stylist.GET("", stylistController.ListRequests)
			stylist.GET("/:id", stylistController.GetRequest)
			stylist.POST("/:id/approve", stylistController.ApproveRequest)
			stylist.POST("/:id/reject", stylistController.RejectRequest)
		}
	}

	return r
}
