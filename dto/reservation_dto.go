package dto

// CreateReservationRequest representa el request para crear una reserva.
// Las fechas van en formato YYYY-MM-DD.
type CreateReservationRequest struct {
	PropertyID      uint   `json:"property_id" binding:"required"`
	RoomID          uint   `json:"room_id" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Guests          int    `json:"guests" binding:"required,gt=0"`
	GuestFirstName  string `json:"guest_first_name" binding:"required"`
	GuestLastName   string `json:"guest_last_name" binding:"required"`
	GuestEmail      string `json:"guest_email" binding:"required,email"`
	GuestPhone      string `json:"guest_phone"`
	PaymentMethod   string `json:"payment_method" binding:"required,oneof=pay_now pay_on_arrival"`
	SpecialRequests string `json:"special_requests"`
}

// CheckAvailabilityRequest consulta si una habitación está libre
type CheckAvailabilityRequest struct {
	RoomID   uint   `form:"room_id" binding:"required"`
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}

// CheckAvailabilityResponse es la respuesta de disponibilidad
type CheckAvailabilityResponse struct {
	RoomID     uint    `json:"room_id"`
	Available  bool    `json:"available"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}

// ReservationStatsResponse resume las reservas de un dueño
type ReservationStatsResponse struct {
	TotalReservations      int     `json:"total_reservations"`
	PendingReservations    int     `json:"pending_reservations"`
	ConfirmedReservations  int     `json:"confirmed_reservations"`
	CheckedInReservations  int     `json:"checked_in_reservations"`
	CheckedOutReservations int     `json:"checked_out_reservations"`
	CancelledReservations  int     `json:"cancelled_reservations"`
	TotalRevenue           float64 `json:"total_revenue"`
	UpcomingCheckIns       int     `json:"upcoming_check_ins"`
}
