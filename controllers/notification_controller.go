package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/services"
)

// NotificationController maneja los endpoints de notificaciones in-app
type NotificationController struct {
	service services.NotificationService
}

// NewNotificationController crea una nueva instancia del controlador
func NewNotificationController(service services.NotificationService) *NotificationController {
	return &NotificationController{service: service}
}

// ListNotifications maneja GET /api/notifications
func (ctrl *NotificationController) ListNotifications(c *gin.Context) {
	notifications, err := ctrl.service.ListNotifications(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "list_notifications_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Notifications retrieved successfully",
		Data:    notifications,
	})
}

// MarkRead maneja POST /api/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid notification ID",
		})
		return
	}

	if err := ctrl.service.MarkRead(id, currentUserID(c)); err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "mark_read_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Notification marked as read",
	})
}

// MarkAllRead maneja POST /api/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	if err := ctrl.service.MarkAllRead(currentUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "mark_read_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "All notifications marked as read",
	})
}

// CountUnread maneja GET /api/notifications/unread-count
func (ctrl *NotificationController) CountUnread(c *gin.Context) {
	count, err := ctrl.service.CountUnread(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "unread_count_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}
