package domain

import "time"

// NotificationType define los tipos de notificación generados
// por los eventos de reservas
type NotificationType string

const (
	NotificationReservationCreated   NotificationType = "reservation_created"
	NotificationReservationConfirmed NotificationType = "reservation_confirmed"
	NotificationReservationCancelled NotificationType = "reservation_cancelled"
	NotificationCheckIn              NotificationType = "reservation_checked_in"
	NotificationCheckOut             NotificationType = "reservation_checked_out"
)

// Notification representa una notificación in-app para un usuario
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"index;not null" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title     string           `gorm:"not null" json:"title"`
	Body      string           `gorm:"type:text" json:"body"`
	Reference string           `json:"reference"` // referencia de la reserva asociada
	Read      bool             `gorm:"column:is_read;default:false" json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
