package domain

import "time"

// Room representa una habitación dentro de una propiedad
type Room struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    uint      `gorm:"index;not null" json:"property_id"`
	Name          string    `gorm:"not null" json:"name"`
	Type          string    `gorm:"type:varchar(50)" json:"type"`
	MaxGuests     int       `gorm:"not null" json:"max_guests"`
	BedType       string    `gorm:"type:varchar(50)" json:"bed_type"`
	Size          int       `json:"size"` // metros cuadrados
	PricePerNight float64   `gorm:"not null" json:"price_per_night"`
	Available     bool      `gorm:"default:true" json:"available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}
