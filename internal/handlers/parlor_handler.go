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

type ParlorHandler struct {
	parlorService *services.ParlorService
	artistService *services.ArtistService
}

func NewParlorHandler(parlorService *services.ParlorService, artistService *services.ArtistService) *ParlorHandler {
	return &ParlorHandler{parlorService: parlorService, artistService: artistService}
}

func (h *ParlorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	parlors := rg.Group("/parlors")

	parlors.GET("", h.List)
	parlors.GET("/featured", h.Featured)
	parlors.GET("/sponsored", h.Sponsored)
	parlors.GET("/search", h.Search)
	parlors.GET("/:id", h.Get)
	parlors.GET("/:id/artists", h.Artists)

	authed := parlors.Group("", middleware.AuthMiddleware())
	authed.GET("/mine", h.Mine)
	authed.POST("", middleware.RequireRoles(models.UserRoleParlorOwner), h.Create)
	authed.PUT("/:id", h.Update)
	authed.DELETE("/:id", h.Delete)
}

func (h *ParlorHandler) List(c *gin.Context) {
	filter := repositories.ParlorFilter{
		City:    c.Query("city"),
		State:   c.Query("state"),
		Country: c.Query("country"),
	}

	parlors, err := h.parlorService.ListParlors(filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, parlors)
}

func (h *ParlorHandler) Featured(c *gin.Context) {
	parlors, err := h.parlorService.GetFeatured(queryInt(c, "limit", 0))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, parlors)
}

func (h *ParlorHandler) Sponsored(c *gin.Context) {
	parlors, err := h.parlorService.GetSponsored(queryInt(c, "limit", 0))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, parlors)
}

func (h *ParlorHandler) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Query parameter q is required"))
		return
	}

	parlors, err := h.parlorService.Search(term, queryInt(c, "limit", 0))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, parlors)
}

func (h *ParlorHandler) Get(c *gin.Context) {
	parlor, err := h.parlorService.GetParlor(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, parlor)
}

// Artists lists the artists attached to the parlor.
func (h *ParlorHandler) Artists(c *gin.Context) {
	artists, err := h.artistService.ListArtists(repositories.ArtistFilter{ParlorID: c.Param("id")})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ParlorHandler) Mine(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	parlors, err := h.parlorService.GetOwnerParlors(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, parlors)
}

func (h *ParlorHandler) Create(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateParlorRequest
	if !bindJSON(c, &req) {
		return
	}

	parlor, err := h.parlorService.CreateParlor(userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, parlor)
}

func (h *ParlorHandler) Update(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateParlorRequest
	if !bindJSON(c, &req) {
		return
	}

	parlor, err := h.parlorService.UpdateParlor(c.Param("id"), userID, role, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, parlor)
}

func (h *ParlorHandler) Delete(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.parlorService.DeleteParlor(c.Param("id"), userID, role); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
