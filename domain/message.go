package domain

import "time"

// Conversation representa una conversación entre dos usuarios
// (típicamente huésped y dueño). Los contadores de no-leídos y el
// estado de archivado se guardan por participante.
type Conversation struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	ParticipantAID   uint       `gorm:"index:idx_conv_participants;not null" json:"participant_a_id"`
	ParticipantBID   uint       `gorm:"index:idx_conv_participants;not null" json:"participant_b_id"`
	Subject          string     `json:"subject"`
	UnreadCountA     int        `gorm:"default:0" json:"unread_count_a"`
	UnreadCountB     int        `gorm:"default:0" json:"unread_count_b"`
	ArchivedByA      bool       `gorm:"default:false" json:"archived_by_a"`
	ArchivedByB      bool       `gorm:"default:false" json:"archived_by_b"`
	LastMessageAt    *time.Time `json:"last_message_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// HasParticipant indica si el usuario forma parte de la conversación
func (c *Conversation) HasParticipant(userID uint) bool {
	return c.ParticipantAID == userID || c.ParticipantBID == userID
}

// OtherParticipant devuelve el id del otro participante
func (c *Conversation) OtherParticipant(userID uint) uint {
	if c.ParticipantAID == userID {
		return c.ParticipantBID
	}
	return c.ParticipantAID
}

// UnreadFor devuelve los mensajes sin leer para un participante
func (c *Conversation) UnreadFor(userID uint) int {
	if c.ParticipantAID == userID {
		return c.UnreadCountA
	}
	return c.UnreadCountB
}

// ArchivedFor indica si el participante archivó la conversación
func (c *Conversation) ArchivedFor(userID uint) bool {
	if c.ParticipantAID == userID {
		return c.ArchivedByA
	}
	return c.ArchivedByB
}

// Message representa un mensaje dentro de una conversación
type Message struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ConversationID uint       `gorm:"index;not null" json:"conversation_id"`
	SenderID       uint       `gorm:"not null" json:"sender_id"`
	ReceiverID     uint       `gorm:"not null" json:"receiver_id"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// IsRead indica si el receptor ya leyó el mensaje
func (m *Message) IsRead() bool {
	return m.ReadAt != nil
}
