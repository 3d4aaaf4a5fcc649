package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/services"
)

// PropertyController maneja los endpoints de propiedades y habitaciones
type PropertyController struct {
	service services.PropertyService
}

// NewPropertyController crea una nueva instancia del controlador
func NewPropertyController(service services.PropertyService) *PropertyController {
	return &PropertyController{service: service}
}

// ListProperties maneja GET /api/properties
// Listado público con filtros y paginación
func (ctrl *PropertyController) ListProperties(c *gin.Context) {
	var req dto.PropertyListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := ctrl.service.ListProperties(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "list_properties_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetProperty maneja GET /api/properties/:id
func (ctrl *PropertyController) GetProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
		return
	}

	property, err := ctrl.service.GetProperty(id)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "property_not_found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, property)
}

// CreateProperty maneja POST /api/properties
// Solo los dueños pueden publicar propiedades
func (ctrl *PropertyController) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	property, err := ctrl.service.CreateProperty(currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "create_property_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "Property created successfully",
		Data:    property,
	})
}

// UpdateProperty maneja PUT /api/properties/:id
// Solo el dueño de la propiedad o el admin pueden actualizarla
func (ctrl *PropertyController) UpdateProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	property, err := ctrl.service.UpdateProperty(currentUserID(c), id, isAdmin(c), req)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "update_property_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Property updated successfully",
		Data:    property,
	})
}

// DeleteProperty maneja DELETE /api/properties/:id
func (ctrl *PropertyController) DeleteProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
		return
	}

	if err := ctrl.service.DeleteProperty(currentUserID(c), id, isAdmin(c)); err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "delete_property_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Property deleted successfully",
	})
}

// MyProperties maneja GET /api/properties/mine
// Lista las propiedades del dueño autenticado
func (ctrl *PropertyController) MyProperties(c *gin.Context) {
	properties, err := ctrl.service.MyProperties(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "my_properties_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Properties retrieved successfully",
		Data:    properties,
	})
}

// ListRooms maneja GET /api/properties/:id/rooms
func (ctrl *PropertyController) ListRooms(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
		return
	}

	rooms, err := ctrl.service.ListRooms(propertyID)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "list_rooms_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Rooms retrieved successfully",
		Data:    rooms,
	})
}

// CreateRoom maneja POST /api/properties/:id/rooms
func (ctrl *PropertyController) CreateRoom(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	room, err := ctrl.service.CreateRoom(currentUserID(c), propertyID, isAdmin(c), req)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "create_room_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "Room created successfully",
		Data:    room,
	})
}

// UpdateRoom maneja PUT /api/properties/rooms/:roomID
func (ctrl *PropertyController) UpdateRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid room ID",
		})
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	room, err := ctrl.service.UpdateRoom(currentUserID(c), roomID, isAdmin(c), req)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "update_room_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Room updated successfully",
		Data:    room,
	})
}

// DeleteRoom maneja DELETE /api/properties/rooms/:roomID
func (ctrl *PropertyController) DeleteRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid room ID",
		})
		return
	}

	if err := ctrl.service.DeleteRoom(currentUserID(c), roomID, isAdmin(c)); err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "delete_room_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Room deleted successfully",
	})
}

// GetAvailability maneja GET /api/properties/:id/availability
// Query params: check_in, check_out (YYYY-MM-DD)
func (ctrl *PropertyController) GetAvailability(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
		return
	}

	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "check_in must be a valid date (YYYY-MM-DD)",
		})
		return
	}

	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "check_out must be a valid date (YYYY-MM-DD)",
		})
		return
	}

	availability, err := ctrl.service.GetAvailability(propertyID, checkIn, checkOut)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "availability_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, availability)
}
