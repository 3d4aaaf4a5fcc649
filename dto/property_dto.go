package dto

// CreatePropertyRequest representa el request para publicar una propiedad
type CreatePropertyRequest struct {
	Name          string   `json:"name" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=hotel apartment villa resort hostel"`
	City          string   `json:"city" binding:"required"`
	Country       string   `json:"country" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	PricePerNight float64  `json:"price_per_night" binding:"required,gt=0"`
	Currency      string   `json:"currency" binding:"omitempty,len=3"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

// UpdatePropertyRequest actualiza una propiedad existente.
// Todos los campos son opcionales.
type UpdatePropertyRequest struct {
	Name          string   `json:"name,omitempty"`
	Type          string   `json:"type,omitempty" binding:"omitempty,oneof=hotel apartment villa resort hostel"`
	City          string   `json:"city,omitempty"`
	Country       string   `json:"country,omitempty"`
	Address       string   `json:"address,omitempty"`
	PricePerNight float64  `json:"price_per_night,omitempty" binding:"omitempty,gt=0"`
	Description   string   `json:"description,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Images        []string `json:"images,omitempty"`
	Status        string   `json:"status,omitempty" binding:"omitempty,oneof=active pending inactive"`
}

// PropertyListRequest representa los filtros del listado público
type PropertyListRequest struct {
	City     string  `form:"city"`
	Country  string  `form:"country"`
	Type     string  `form:"type"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
}

// CreateRoomRequest agrega una habitación a una propiedad
type CreateRoomRequest struct {
	Name          string  `json:"name" binding:"required"`
	Type          string  `json:"type"`
	MaxGuests     int     `json:"max_guests" binding:"required,gt=0"`
	BedType       string  `json:"bed_type"`
	Size          int     `json:"size"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
}

// UpdateRoomRequest actualiza una habitación existente
type UpdateRoomRequest struct {
	Name          string   `json:"name,omitempty"`
	Type          string   `json:"type,omitempty"`
	MaxGuests     int      `json:"max_guests,omitempty" binding:"omitempty,gt=0"`
	BedType       string   `json:"bed_type,omitempty"`
	Size          int      `json:"size,omitempty"`
	PricePerNight float64  `json:"price_per_night,omitempty" binding:"omitempty,gt=0"`
	Available     *bool    `json:"available,omitempty"`
}

// RoomAvailability indica si una habitación está libre en un rango de fechas
type RoomAvailability struct {
	RoomID    uint    `json:"room_id"`
	RoomName  string  `json:"room_name"`
	MaxGuests int     `json:"max_guests"`
	Price     float64 `json:"price_per_night"`
	Available bool    `json:"available"`
}

// AvailabilityResponse es la respuesta del endpoint de disponibilidad
type AvailabilityResponse struct {
	PropertyID uint               `json:"property_id"`
	CheckIn    string             `json:"check_in"`
	CheckOut   string             `json:"check_out"`
	Rooms      []RoomAvailability `json:"rooms"`
}
