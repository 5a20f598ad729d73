package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	hostRepo "slotbook/database/repository/host"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/utils"
)

// HandlerBundle groups the handlers and shared dependencies the routes need.
type HandlerBundle struct {
	HostRepo hostRepo.HostRepository

	Host     *handlers.HostHandler
	Schedule *handlers.ScheduleHandler
	Booking  *handlers.BookingHandler
}

// RegisterHostRoutes registers host account endpoints.
func RegisterHostRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/hosts")
	{
		api.POST("/register", hb.Host.RegisterHostHandler)
		api.POST("/login", hb.Host.LoginHostHandler)
		api.GET("/nickname/:nickname", hb.Host.GetHostByNicknameHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthHostMiddleware(hb.HostRepo))
		api.PUT("/info", hb.Host.UpdateHostInfoHandler)
	}
}

// RegisterScheduleRoutes registers the host-facing schedule management endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthHostMiddleware(hb.HostRepo))
		api.GET("/availability", hb.Schedule.ListAvailabilityHandler)
		api.POST("/availability", hb.Schedule.AddAvailabilityHandler)
		api.PUT("/availability", hb.Schedule.SaveAvailabilityHandler)
		api.DELETE("/availability/:slotID", hb.Schedule.RemoveAvailabilityHandler)
		api.GET("/busy", hb.Schedule.ListBusyHandler)
		api.PUT("/busy", hb.Schedule.SaveBusyHandler)
		api.GET("/appointments", hb.Schedule.ListAppointmentsHandler)
	}
}

// RegisterBookingRoutes registers the public client-facing booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/:nickname/slots", hb.Booking.GetOpenSlotsHandler)
		api.POST("/:nickname", hb.Booking.SubmitBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm Slotbook",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHostRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
