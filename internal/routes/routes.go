package routes

import (
	"net/http"

	"inklink_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Artist      *handlers.ArtistHandler
	Parlor      *handlers.ParlorHandler
	Guestspot   *handlers.GuestspotHandler
	Review      *handlers.ReviewHandler
	Appointment *handlers.AppointmentHandler
}

func Setup(router *gin.Engine, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	h.Auth.RegisterRoutes(api)
	h.Artist.RegisterRoutes(api)
	h.Parlor.RegisterRoutes(api)
	h.Guestspot.RegisterRoutes(api)
	h.Review.RegisterRoutes(api)
	h.Appointment.RegisterRoutes(api)
}
