package domain

import "time"

// ReservationStatus define los estados posibles de una reserva
// Transiciones válidas: pending -> confirmed -> checked_in -> checked_out
// y pending/confirmed -> cancelled (antes del check-in)
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// PaymentMethod define cómo paga el huésped
type PaymentMethod string

const (
	PayNow       PaymentMethod = "pay_now"
	PayOnArrival PaymentMethod = "pay_on_arrival"
)

// PaymentStatus define el estado del pago de una reserva
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPaid          PaymentStatus = "paid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentFailed        PaymentStatus = "failed"
	PaymentRefunded      PaymentStatus = "refunded"
)

// Reservation representa una reserva de una habitación
type Reservation struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	Reference       string            `gorm:"unique;not null" json:"reference"`
	PropertyID      uint              `gorm:"index;not null" json:"property_id"`
	RoomID          uint              `gorm:"index;not null" json:"room_id"`
	UserID          uint              `gorm:"index;not null" json:"user_id"`
	CheckIn         time.Time         `gorm:"type:date;not null" json:"check_in"`
	CheckOut        time.Time         `gorm:"type:date;not null" json:"check_out"`
	Guests          int               `gorm:"not null" json:"guests"`
	TotalPrice      float64           `gorm:"not null" json:"total_price"`
	Status          ReservationStatus `gorm:"type:varchar(15);default:'pending'" json:"status"`
	GuestFirstName  string            `json:"guest_first_name"`
	GuestLastName   string            `json:"guest_last_name"`
	GuestEmail      string            `json:"guest_email"`
	GuestPhone      string            `json:"guest_phone"`
	PaymentMethod   PaymentMethod     `gorm:"type:varchar(15)" json:"payment_method"`
	PaymentStatus   PaymentStatus     `gorm:"type:varchar(15);default:'pending'" json:"payment_status"`
	AmountPaid      float64           `gorm:"default:0" json:"amount_paid"`
	SpecialRequests string            `gorm:"type:text" json:"special_requests"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// Nights devuelve la cantidad de noches de la reserva
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// IsActive indica si la reserva ocupa la habitación
// (las reservas pending también bloquean fechas)
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationPending || r.Status == ReservationConfirmed
}

// CanCancel indica si la reserva todavía puede cancelarse
func (r *Reservation) CanCancel(today time.Time) bool {
	return r.IsActive() && r.CheckIn.After(today)
}
