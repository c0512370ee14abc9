package handlers

import (
	"net/http"
	"time"

	"inklink_backend/internal/middleware"
	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
	"inklink_backend/internal/services"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type GuestspotHandler struct {
	guestspotService *services.GuestspotService
}

func NewGuestspotHandler(guestspotService *services.GuestspotService) *GuestspotHandler {
	return &GuestspotHandler{guestspotService: guestspotService}
}

func (h *GuestspotHandler) RegisterRoutes(rg *gin.RouterGroup) {
	gs := rg.Group("/guestspots")

	gs.GET("", h.List)
	gs.GET("/upcoming", h.Upcoming)
	gs.GET("/open", h.Open)
	gs.GET("/:id", h.Get)
	gs.GET("/parlor/:parlorId", h.ByParlor)
	gs.GET("/artist/:artistId", h.ByArtist)

	authed := gs.Group("", middleware.AuthMiddleware())
	authed.POST("", middleware.RequireRoles(models.UserRoleParlorOwner), h.Create)
	authed.PUT("/:id", middleware.RequireRoles(models.UserRoleParlorOwner), h.Update)
	authed.DELETE("/:id", middleware.RequireRoles(models.UserRoleParlorOwner), h.Delete)

	authed.POST("/apply", middleware.RequireRoles(models.UserRoleArtist), h.Apply)
	authed.POST("/:id/approve/:artistId", middleware.RequireRoles(models.UserRoleParlorOwner), h.Approve)
	authed.POST("/:id/reject/:artistId", middleware.RequireRoles(models.UserRoleParlorOwner), h.Reject)
	authed.POST("/:id/cancel", h.Cancel)
	authed.POST("/:id/complete", middleware.RequireRoles(models.UserRoleParlorOwner), h.Complete)
}

func (h *GuestspotHandler) List(c *gin.Context) {
	var query dto.ListGuestspotsQuery
	if !bindQuery(c, &query) {
		return
	}

	filter, err := guestspotFilter(&query)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	spots, err := h.guestspotService.ListGuestspots(filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, spots)
}

func (h *GuestspotHandler) Upcoming(c *gin.Context) {
	spots, err := h.guestspotService.GetUpcoming(queryInt(c, "limit", 0))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, spots)
}

func (h *GuestspotHandler) Open(c *gin.Context) {
	spots, err := h.guestspotService.GetOpen(queryInt(c, "limit", 0))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, spots)
}

func (h *GuestspotHandler) Get(c *gin.Context) {
	gs, err := h.guestspotService.GetGuestspot(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

func (h *GuestspotHandler) ByParlor(c *gin.Context) {
	spots, err := h.guestspotService.GetParlorGuestspots(c.Param("parlorId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, spots)
}

func (h *GuestspotHandler) ByArtist(c *gin.Context) {
	spots, err := h.guestspotService.GetArtistGuestspots(c.Param("artistId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, spots)
}

func (h *GuestspotHandler) Create(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateGuestspotRequest
	if !bindJSON(c, &req) {
		return
	}

	gs, err := h.guestspotService.CreateGuestspot(userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gs)
}

func (h *GuestspotHandler) Update(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateGuestspotRequest
	if !bindJSON(c, &req) {
		return
	}

	gs, err := h.guestspotService.UpdateGuestspot(c.Param("id"), userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

func (h *GuestspotHandler) Delete(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.guestspotService.DeleteGuestspot(c.Param("id"), userID, role); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GuestspotHandler) Apply(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	gs, err := h.guestspotService.Apply(userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

func (h *GuestspotHandler) Approve(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	gs, err := h.guestspotService.Approve(c.Param("id"), c.Param("artistId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

func (h *GuestspotHandler) Reject(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	gs, err := h.guestspotService.Reject(c.Param("id"), c.Param("artistId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

func (h *GuestspotHandler) Cancel(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	gs, err := h.guestspotService.Cancel(c.Param("id"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

func (h *GuestspotHandler) Complete(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	gs, err := h.guestspotService.Complete(c.Param("id"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

func guestspotFilter(query *dto.ListGuestspotsQuery) (repositories.GuestspotFilter, error) {
	filter := repositories.GuestspotFilter{
		ParlorID: query.ParlorID,
		ArtistID: query.ArtistID,
	}

	if query.Status != "" {
		status := models.GuestspotStatus(query.Status)
		filter.Status = &status
	}
	if query.StartDate != "" {
		t, err := time.Parse(time.RFC3339, query.StartDate)
		if err != nil {
			return filter, apperrors.NewBadRequestError("startDate must be RFC 3339")
		}
		filter.StartFrom = &t
	}
	if query.EndDate != "" {
		t, err := time.Parse(time.RFC3339, query.EndDate)
		if err != nil {
			return filter, apperrors.NewBadRequestError("endDate must be RFC 3339")
		}
		filter.EndUntil = &t
	}
	return filter, nil
}
