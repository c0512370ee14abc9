package handlers

import (
	"net/http"

	"inklink_backend/internal/middleware"
	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
	"inklink_backend/internal/services"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	artistService *services.ArtistService
}

func NewArtistHandler(artistService *services.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

func (h *ArtistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	artists := rg.Group("/artists")

	artists.GET("", h.List)
	artists.GET("/featured", h.Featured)
	artists.GET("/sponsored", h.Sponsored)
	artists.GET("/traveling", h.Traveling)
	artists.GET("/search", h.Search)
	artists.GET("/:id", h.Get)

	authed := artists.Group("", middleware.AuthMiddleware())
	authed.GET("/me", h.Me)
	authed.POST("", middleware.RequireRoles(models.UserRoleArtist), h.Create)
	authed.PUT("/:id", h.Update)
	authed.DELETE("/:id", h.Delete)
}

func (h *ArtistHandler) List(c *gin.Context) {
	filter := repositories.ArtistFilter{
		City:     c.Query("city"),
		Country:  c.Query("country"),
		ParlorID: c.Query("parlorId"),
	}

	artists, err := h.artistService.ListArtists(filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Featured(c *gin.Context) {
	artists, err := h.artistService.GetFeatured(queryInt(c, "limit", 0))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Sponsored(c *gin.Context) {
	artists, err := h.artistService.GetSponsored(queryInt(c, "limit", 0))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Traveling(c *gin.Context) {
	artists, err := h.artistService.GetTraveling(queryInt(c, "limit", 0))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Query parameter q is required"))
		return
	}

	artists, err := h.artistService.Search(term, queryInt(c, "limit", 0))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Get(c *gin.Context) {
	artist, err := h.artistService.GetArtist(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) Me(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	artist, err := h.artistService.GetArtistByUser(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) Create(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateArtistRequest
	if !bindJSON(c, &req) {
		return
	}

	artist, err := h.artistService.CreateArtist(userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artist)
}

func (h *ArtistHandler) Update(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateArtistRequest
	if !bindJSON(c, &req) {
		return
	}

	artist, err := h.artistService.UpdateArtist(c.Param("id"), userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) Delete(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.artistService.DeleteArtist(c.Param("id"), userID, role); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
