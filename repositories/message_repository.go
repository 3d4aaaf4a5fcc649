package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
)

// ErrConversationNotFound distingue una conversación inexistente
// de un error real de base de datos
var ErrConversationNotFound = errors.New("conversation not found")

// MessageRepository define las operaciones de conversaciones y mensajes
type MessageRepository interface {
	CreateConversation(conversation *domain.Conversation) error
	GetConversationByID(id uint) (*domain.Conversation, error)
	// FindConversationBetween busca una conversación existente entre
	// dos usuarios, en cualquier orden de participantes
	FindConversationBetween(userA, userB uint) (*domain.Conversation, error)
	ListConversationsByUser(userID uint) ([]domain.Conversation, error)
	UpdateConversation(conversation *domain.Conversation) error
	CreateMessage(message *domain.Message) error
	ListMessages(conversationID uint) ([]domain.Message, error)
	// MarkMessagesRead marca como leídos todos los mensajes recibidos
	// por el usuario en la conversación
	MarkMessagesRead(conversationID, receiverID uint, readAt time.Time) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository crea una nueva instancia del repositorio
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) CreateConversation(conversation *domain.Conversation) error {
	return r.db.Create(conversation).Error
}

func (r *messageRepository) GetConversationByID(id uint) (*domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.db.First(&conversation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *messageRepository) FindConversationBetween(userA, userB uint) (*domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.db.Where(
		"(participant_a_id = ? AND participant_b_id = ?) OR (participant_a_id = ? AND participant_b_id = ?)",
		userA, userB, userB, userA,
	).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *messageRepository) ListConversationsByUser(userID uint) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	err := r.db.Where("participant_a_id = ? OR participant_b_id = ?", userID, userID).
		Order("updated_at DESC").Find(&conversations).Error
	return conversations, err
}

func (r *messageRepository) UpdateConversation(conversation *domain.Conversation) error {
	return r.db.Save(conversation).Error
}

func (r *messageRepository) CreateMessage(message *domain.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) ListMessages(conversationID uint) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) MarkMessagesRead(conversationID, receiverID uint, readAt time.Time) error {
	return r.db.Model(&domain.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND read_at IS NULL", conversationID, receiverID).
		Update("read_at", readAt).Error
}
