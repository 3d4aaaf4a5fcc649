package domain

import "time"

// PropertyType define los tipos de propiedad soportados
type PropertyType string

const (
	PropertyTypeHotel     PropertyType = "hotel"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypeResort    PropertyType = "resort"
	PropertyTypeHostel    PropertyType = "hostel"
)

// PropertyStatus define el estado de publicación de una propiedad
type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusPending  PropertyStatus = "pending"
	PropertyStatusInactive PropertyStatus = "inactive"
)

// Property representa una propiedad de alquiler (hotel, departamento, etc.)
type Property struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	OwnerID       uint           `gorm:"index;not null" json:"owner_id"`
	Name          string         `gorm:"not null" json:"name"`
	Type          PropertyType   `gorm:"type:varchar(20);not null" json:"type"`
	City          string         `gorm:"index;not null" json:"city"`
	Country       string         `gorm:"not null" json:"country"`
	Address       string         `json:"address"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	PricePerNight float64        `gorm:"not null" json:"price_per_night"`
	Currency      string         `gorm:"type:varchar(3);default:'NGN'" json:"currency"`
	Description   string         `gorm:"type:text" json:"description"`
	Amenities     []string       `gorm:"serializer:json" json:"amenities"`
	Images        []string       `gorm:"serializer:json" json:"images"`
	Status        PropertyStatus `gorm:"type:varchar(10);default:'active'" json:"status"`
	Rating        float64        `gorm:"default:0" json:"rating"`
	ReviewCount   int            `gorm:"default:0" json:"review_count"`
	Featured      bool           `gorm:"default:false" json:"featured"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}
