package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/services"
)

// ReservationController maneja los endpoints de reservas
type ReservationController struct {
	service services.ReservationService
}

// NewReservationController crea una nueva instancia del controlador
func NewReservationController(service services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// CreateReservation maneja POST /api/reservations
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	// 1. Leer el JSON del body
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	// 2. Llamar al servicio para crear la reserva
	// El servicio valida fechas, capacidad y solapamiento
	reservation, err := ctrl.service.CreateReservation(currentUserID(c), req)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "create_reservation_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "Reservation created successfully",
		Data:    reservation,
	})
}

// GetReservation maneja GET /api/reservations/:id
// Solo el huésped, el dueño de la propiedad o el admin pueden verla
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid reservation ID",
		})
		return
	}

	reservation, err := ctrl.service.GetReservation(currentUserID(c), id, isAdmin(c))
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "get_reservation_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// ListMyReservations maneja GET /api/reservations
// Lista las reservas del huésped autenticado
func (ctrl *ReservationController) ListMyReservations(c *gin.Context) {
	reservations, err := ctrl.service.ListMyReservations(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "list_reservations_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Reservations retrieved successfully",
		Data:    reservations,
	})
}

// ListOwnerReservations maneja GET /api/reservations/owner
// Lista las reservas sobre las propiedades del dueño
func (ctrl *ReservationController) ListOwnerReservations(c *gin.Context) {
	reservations, err := ctrl.service.ListOwnerReservations(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "list_reservations_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Reservations retrieved successfully",
		Data:    reservations,
	})
}

// CancelReservation maneja POST /api/reservations/:id/cancel
func (ctrl *ReservationController) CancelReservation(c *gin.Context) {
	ctrl.transition(c, ctrl.service.CancelReservation, "Reservation cancelled successfully", "cancel_reservation_error")
}

// ConfirmReservation maneja POST /api/reservations/:id/confirm
// Solo el dueño de la propiedad o el admin
func (ctrl *ReservationController) ConfirmReservation(c *gin.Context) {
	ctrl.transition(c, ctrl.service.ConfirmReservation, "Reservation confirmed successfully", "confirm_reservation_error")
}

// CheckInReservation maneja POST /api/reservations/:id/check-in
func (ctrl *ReservationController) CheckInReservation(c *gin.Context) {
	ctrl.transition(c, ctrl.service.CheckInReservation, "Reservation checked in successfully", "check_in_error")
}

// CheckOutReservation maneja POST /api/reservations/:id/check-out
func (ctrl *ReservationController) CheckOutReservation(c *gin.Context) {
	ctrl.transition(c, ctrl.service.CheckOutReservation, "Reservation checked out successfully", "check_out_error")
}

// CheckAvailability maneja GET /api/reservations/availability
// Query params: room_id, check_in, check_out
func (ctrl *ReservationController) CheckAvailability(c *gin.Context) {
	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := ctrl.service.CheckAvailability(req)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "availability_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// OwnerStats maneja GET /api/reservations/stats
// Resumen de reservas para el dueño autenticado
func (ctrl *ReservationController) OwnerStats(c *gin.Context) {
	stats, err := ctrl.service.OwnerStats(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "stats_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// transition es el handler común de los cambios de estado de reserva
func (ctrl *ReservationController) transition(
	c *gin.Context,
	fn func(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error),
	successMessage, errorCode string,
) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid reservation ID",
		})
		return
	}

	reservation, err := fn(currentUserID(c), id, isAdmin(c))
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: successMessage,
		Data:    reservation,
	})
}
