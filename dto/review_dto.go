package dto

// CreateReviewRequest crea una reseña sobre una propiedad.
// Requiere una reserva con check-out completado.
type CreateReviewRequest struct {
	ReservationID uint   `json:"reservation_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Title         string `json:"title" binding:"required,max=255"`
	Content       string `json:"content" binding:"required"`
	Cleanliness   int    `json:"cleanliness" binding:"omitempty,min=1,max=5"`
	Comfort       int    `json:"comfort" binding:"omitempty,min=1,max=5"`
	Location      int    `json:"location" binding:"omitempty,min=1,max=5"`
	Facilities    int    `json:"facilities" binding:"omitempty,min=1,max=5"`
	Staff         int    `json:"staff" binding:"omitempty,min=1,max=5"`
	ValueForMoney int    `json:"value_for_money" binding:"omitempty,min=1,max=5"`
}

// UpdateReviewRequest actualiza una reseña del propio usuario
type UpdateReviewRequest struct {
	Rating  int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Title   string `json:"title,omitempty" binding:"omitempty,max=255"`
	Content string `json:"content,omitempty"`
}

// RespondReviewRequest es la respuesta del dueño a una reseña
type RespondReviewRequest struct {
	Content string `json:"content" binding:"required"`
}
