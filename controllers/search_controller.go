package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/services"
)

// SearchController maneja los endpoints de búsqueda
type SearchController struct {
	service services.SearchService
}

// NewSearchController crea una nueva instancia del controlador
func NewSearchController(service services.SearchService) *SearchController {
	return &SearchController{service: service}
}

// Search maneja GET /api/search
// Búsqueda pública de propiedades con caché
func (ctrl *SearchController) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := ctrl.service.Search(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "search_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// TrackSearch maneja POST /api/search/track
// Registra la búsqueda para estadísticas
func (ctrl *SearchController) TrackSearch(c *gin.Context) {
	var req dto.TrackSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := ctrl.service.TrackSearch(c.Request.Context(), currentUserID(c), req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "track_search_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, dto.SuccessResponse{
		Message: "Search tracked",
	})
}

// PopularSearches maneja GET /api/search/popular
// Query param opcional: limit (default 10, max 50)
func (ctrl *SearchController) PopularSearches(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	searches, err := ctrl.service.PopularSearches(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "popular_searches_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Popular searches retrieved successfully",
		Data:    searches,
	})
}
