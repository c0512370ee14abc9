package handlers

import (
	"net/http"

	"inklink_backend/internal/middleware"
	"inklink_backend/internal/services"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
	artistService      *services.ArtistService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService, artistService *services.ArtistService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService, artistService: artistService}
}

func (h *AppointmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	appts := rg.Group("/appointments", middleware.AuthMiddleware())

	appts.POST("", h.Create)
	appts.GET("/mine", h.Mine)
	appts.GET("/artist/mine", h.ArtistMine)
	appts.GET("/artist/:artistId/schedule", h.ArtistSchedule)
	appts.GET("/parlor/:parlorId", h.ByParlor)
	appts.GET("/:id", h.Get)
	appts.PUT("/:id", h.Update)
	appts.DELETE("/:id", h.Delete)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appt, err := h.appointmentService.CreateAppointment(userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	appt, err := h.appointmentService.GetAppointment(c.Param("id"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Mine lists appointments the caller booked as a client.
func (h *AppointmentHandler) Mine(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	appts, err := h.appointmentService.GetClientAppointments(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ArtistMine lists appointments booked with the caller's artist profile.
func (h *AppointmentHandler) ArtistMine(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	artist, err := h.artistService.GetArtistByUser(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	appts, err := h.appointmentService.GetArtistAppointments(artist.ID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ArtistSchedule returns an artist's bookings inside the requested window.
func (h *AppointmentHandler) ArtistSchedule(c *gin.Context) {
	from, ok := timeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := timeQuery(c, "to")
	if !ok {
		return
	}
	if from == nil || to == nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("from and to are required"))
		return
	}

	appts, err := h.appointmentService.GetArtistSchedule(c.Param("artistId"), *from, *to)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ByParlor lists a parlor's bookings for its owner, optionally bounded by
// from/to.
func (h *AppointmentHandler) ByParlor(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	from, ok := timeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := timeQuery(c, "to")
	if !ok {
		return
	}

	appts, err := h.appointmentService.GetParlorAppointments(c.Param("parlorId"), userID, role, from, to)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appt, err := h.appointmentService.UpdateAppointment(c.Param("id"), userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Param("id"), userID, role); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
