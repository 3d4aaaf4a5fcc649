package domain

import "time"

// Review representa la reseña de un huésped sobre una propiedad.
// Solo se puede crear con una reserva con check-out completado.
type Review struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    uint      `gorm:"index;not null" json:"property_id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	ReservationID uint      `gorm:"uniqueIndex;not null" json:"reservation_id"`
	Rating        int       `gorm:"not null" json:"rating"` // 1 a 5
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"type:text" json:"content"`
	Cleanliness   int       `json:"cleanliness"`
	Comfort       int       `json:"comfort"`
	Location      int       `json:"location"`
	Facilities    int       `json:"facilities"`
	Staff         int       `json:"staff"`
	ValueForMoney int       `json:"value_for_money"`
	HelpfulCount  int       `gorm:"default:0" json:"helpful_count"`
	ResponseContent string  `gorm:"type:text" json:"response_content,omitempty"`
	RespondedByID uint      `json:"responded_by_id,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewHelpful registra el voto de utilidad de un usuario sobre una reseña
type ReviewHelpful struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReviewID  uint      `gorm:"uniqueIndex:idx_helpful_review_user;not null" json:"review_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_helpful_review_user;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ReviewHelpful) TableName() string {
	return "review_helpful_votes"
}
