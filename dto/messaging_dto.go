package dto

import "github.com/devcarkson/reserve-with-ease-backend/domain"

// CreateConversationRequest inicia una conversación con otro usuario
type CreateConversationRequest struct {
	RecipientID    uint   `json:"recipient_id" binding:"required"`
	Subject        string `json:"subject"`
	InitialMessage string `json:"initial_message" binding:"required"`
}

// SendMessageRequest envía un mensaje dentro de una conversación
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// ConversationResponse es la vista de una conversación para el
// usuario autenticado (no-leídos y archivado desde su perspectiva)
type ConversationResponse struct {
	Conversation  domain.Conversation `json:"conversation"`
	OtherUserID   uint                `json:"other_user_id"`
	UnreadCount   int                 `json:"unread_count"`
	Archived      bool                `json:"archived"`
}
