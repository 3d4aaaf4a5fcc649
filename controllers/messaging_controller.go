package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/services"
)

// MessagingController maneja los endpoints de mensajería
type MessagingController struct {
	service services.MessagingService
}

// NewMessagingController crea una nueva instancia del controlador
func NewMessagingController(service services.MessagingService) *MessagingController {
	return &MessagingController{service: service}
}

// StartConversation maneja POST /api/messaging/conversations
// Si ya existe una conversación con el destinatario, la reutiliza
func (ctrl *MessagingController) StartConversation(c *gin.Context) {
	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	conversation, err := ctrl.service.StartConversation(currentUserID(c), req)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "start_conversation_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "Conversation started successfully",
		Data:    conversation,
	})
}

// ListConversations maneja GET /api/messaging/conversations
// Excluye las conversaciones archivadas por el usuario
func (ctrl *MessagingController) ListConversations(c *gin.Context) {
	conversations, err := ctrl.service.ListConversations(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "list_conversations_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Conversations retrieved successfully",
		Data:    conversations,
	})
}

// GetConversation maneja GET /api/messaging/conversations/:id
func (ctrl *MessagingController) GetConversation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid conversation ID",
		})
		return
	}

	conversation, err := ctrl.service.GetConversation(currentUserID(c), id)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "get_conversation_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, conversation)
}

// ListMessages maneja GET /api/messaging/conversations/:id/messages
func (ctrl *MessagingController) ListMessages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid conversation ID",
		})
		return
	}

	messages, err := ctrl.service.ListMessages(currentUserID(c), id)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "list_messages_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Messages retrieved successfully",
		Data:    messages,
	})
}

// SendMessage maneja POST /api/messaging/conversations/:id/messages
func (ctrl *MessagingController) SendMessage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid conversation ID",
		})
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	message, err := ctrl.service.SendMessage(currentUserID(c), id, req.Content)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "send_message_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "Message sent successfully",
		Data:    message,
	})
}

// MarkRead maneja POST /api/messaging/conversations/:id/read
// Marca los mensajes recibidos como leídos
func (ctrl *MessagingController) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid conversation ID",
		})
		return
	}

	if err := ctrl.service.MarkRead(currentUserID(c), id); err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "mark_read_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Messages marked as read",
	})
}

// ArchiveConversation maneja POST /api/messaging/conversations/:id/archive
func (ctrl *MessagingController) ArchiveConversation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid conversation ID",
		})
		return
	}

	if err := ctrl.service.ArchiveConversation(currentUserID(c), id); err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "archive_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Conversation archived",
	})
}
