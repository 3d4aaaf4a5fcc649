package services

import (
	"errors"
	"time"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/repositories"
)

// MessagingService define la lógica de conversaciones y mensajes
type MessagingService interface {
	StartConversation(userID uint, req dto.CreateConversationRequest) (*domain.Conversation, error)
	ListConversations(userID uint) ([]dto.ConversationResponse, error)
	GetConversation(userID, conversationID uint) (*dto.ConversationResponse, error)
	ListMessages(userID, conversationID uint) ([]domain.Message, error)
	SendMessage(userID, conversationID uint, content string) (*domain.Message, error)
	MarkRead(userID, conversationID uint) error
	ArchiveConversation(userID, conversationID uint) error
}

type messagingService struct {
	repo     repositories.MessageRepository
	userRepo repositories.UserRepository
}

// NewMessagingService crea una nueva instancia del servicio
func NewMessagingService(repo repositories.MessageRepository, userRepo repositories.UserRepository) MessagingService {
	return &messagingService{repo: repo, userRepo: userRepo}
}

// StartConversation inicia una conversación con otro usuario y envía
// el primer mensaje. Si ya existe una conversación entre ambos,
// se reutiliza.
func (s *messagingService) StartConversation(userID uint, req dto.CreateConversationRequest) (*domain.Conversation, error) {
	if req.RecipientID == userID {
		return nil, errors.New("cannot start a conversation with yourself")
	}

	// 1. Verificar que el destinatario existe
	if _, err := s.userRepo.GetByID(req.RecipientID); err != nil {
		return nil, errors.New("recipient not found")
	}

	// 2. Reutilizar la conversación existente si la hay
	conversation, err := s.repo.FindConversationBetween(userID, req.RecipientID)
	if err != nil {
		// Solo crear una nueva si realmente no existe
		if !errors.Is(err, repositories.ErrConversationNotFound) {
			return nil, err
		}
		conversation = &domain.Conversation{
			ParticipantAID: userID,
			ParticipantBID: req.RecipientID,
			Subject:        req.Subject,
		}
		if err := s.repo.CreateConversation(conversation); err != nil {
			return nil, err
		}
	}

	// 3. Enviar el mensaje inicial
	if _, err := s.SendMessage(userID, conversation.ID, req.InitialMessage); err != nil {
		return nil, err
	}

	return s.repo.GetConversationByID(conversation.ID)
}

// ListConversations devuelve las conversaciones del usuario,
// excluyendo las que archivó
func (s *messagingService) ListConversations(userID uint) ([]dto.ConversationResponse, error) {
	conversations, err := s.repo.ListConversationsByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		if c.ArchivedFor(userID) {
			continue
		}
		responses = append(responses, s.toResponse(&c, userID))
	}
	return responses, nil
}

func (s *messagingService) GetConversation(userID, conversationID uint) (*dto.ConversationResponse, error) {
	conversation, err := s.getParticipantConversation(userID, conversationID)
	if err != nil {
		return nil, err
	}
	response := s.toResponse(conversation, userID)
	return &response, nil
}

func (s *messagingService) ListMessages(userID, conversationID uint) ([]domain.Message, error) {
	if _, err := s.getParticipantConversation(userID, conversationID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(conversationID)
}

// SendMessage envía un mensaje e incrementa el contador de
// no-leídos del receptor
func (s *messagingService) SendMessage(userID, conversationID uint, content string) (*domain.Message, error) {
	conversation, err := s.getParticipantConversation(userID, conversationID)
	if err != nil {
		return nil, err
	}

	receiverID := conversation.OtherParticipant(userID)
	message := &domain.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		ReceiverID:     receiverID,
		Content:        content,
	}

	if err := s.repo.CreateMessage(message); err != nil {
		return nil, err
	}

	// Actualizar contadores y último mensaje de la conversación.
	// Enviar un mensaje des-archiva la conversación para ambos.
	now := time.Now()
	if conversation.ParticipantAID == receiverID {
		conversation.UnreadCountA++
	} else {
		conversation.UnreadCountB++
	}
	conversation.ArchivedByA = false
	conversation.ArchivedByB = false
	conversation.LastMessageAt = &now

	if err := s.repo.UpdateConversation(conversation); err != nil {
		return nil, err
	}

	return message, nil
}

// MarkRead marca como leídos los mensajes recibidos por el usuario
// y resetea su contador de no-leídos
func (s *messagingService) MarkRead(userID, conversationID uint) error {
	conversation, err := s.getParticipantConversation(userID, conversationID)
	if err != nil {
		return err
	}

	if err := s.repo.MarkMessagesRead(conversationID, userID, time.Now()); err != nil {
		return err
	}

	if conversation.ParticipantAID == userID {
		conversation.UnreadCountA = 0
	} else {
		conversation.UnreadCountB = 0
	}
	return s.repo.UpdateConversation(conversation)
}

// ArchiveConversation archiva la conversación para el usuario.
// El otro participante la sigue viendo.
func (s *messagingService) ArchiveConversation(userID, conversationID uint) error {
	conversation, err := s.getParticipantConversation(userID, conversationID)
	if err != nil {
		return err
	}

	if conversation.ParticipantAID == userID {
		conversation.ArchivedByA = true
	} else {
		conversation.ArchivedByB = true
	}
	return s.repo.UpdateConversation(conversation)
}

// getParticipantConversation busca la conversación y valida que el
// usuario sea participante
func (s *messagingService) getParticipantConversation(userID, conversationID uint) (*domain.Conversation, error) {
	conversation, err := s.repo.GetConversationByID(conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.New("access denied")
	}
	return conversation, nil
}

func (s *messagingService) toResponse(c *domain.Conversation, userID uint) dto.ConversationResponse {
	return dto.ConversationResponse{
		Conversation: *c,
		OtherUserID:  c.OtherParticipant(userID),
		UnreadCount:  c.UnreadFor(userID),
		Archived:     c.ArchivedFor(userID),
	}
}
