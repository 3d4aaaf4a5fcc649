package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/services"
)

// ReviewController maneja los endpoints de reseñas
type ReviewController struct {
	service services.ReviewService
}

// NewReviewController crea una nueva instancia del controlador
func NewReviewController(service services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// CreateReview maneja POST /api/properties/:id/reviews
// Requiere una reserva con check-out completado
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	review, err := ctrl.service.CreateReview(currentUserID(c), propertyID, req)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "create_review_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "Review created successfully",
		Data:    review,
	})
}

// ListReviews maneja GET /api/properties/:id/reviews
// Listado público de reseñas de una propiedad
func (ctrl *ReviewController) ListReviews(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
		return
	}

	reviews, err := ctrl.service.ListByProperty(propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "list_reviews_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Reviews retrieved successfully",
		Data:    reviews,
	})
}

// GetReview maneja GET /api/reviews/:id
func (ctrl *ReviewController) GetReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
		return
	}

	review, err := ctrl.service.GetReview(id)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "review_not_found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, review)
}

// UpdateReview maneja PUT /api/reviews/:id
// Solo el autor de la reseña
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	review, err := ctrl.service.UpdateReview(currentUserID(c), id, req)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "update_review_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Review updated successfully",
		Data:    review,
	})
}

// DeleteReview maneja DELETE /api/reviews/:id
// El autor o el admin
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
		return
	}

	if err := ctrl.service.DeleteReview(currentUserID(c), id, isAdmin(c)); err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "delete_review_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Review deleted successfully",
	})
}

// RespondReview maneja POST /api/reviews/:id/respond
// Solo el dueño de la propiedad reseñada
func (ctrl *ReviewController) RespondReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
		return
	}

	var req dto.RespondReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	review, err := ctrl.service.RespondReview(currentUserID(c), id, req)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "respond_review_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Response added successfully",
		Data:    review,
	})
}

// MarkHelpful maneja POST /api/reviews/:id/helpful
func (ctrl *ReviewController) MarkHelpful(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
		return
	}

	if err := ctrl.service.MarkHelpful(currentUserID(c), id); err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "helpful_vote_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Vote registered successfully",
	})
}
