package services

import (
	"errors"
	"log"
	"time"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/events"
	"github.com/devcarkson/reserve-with-ease-backend/repositories"
	"github.com/devcarkson/reserve-with-ease-backend/utils"
)

// ReservationService define la lógica de negocio de reservas.
// Acá vive la máquina de estados y el control de solapamiento de fechas.
type ReservationService interface {
	CreateReservation(userID uint, req dto.CreateReservationRequest) (*domain.Reservation, error)
	GetReservation(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error)
	ListMyReservations(userID uint) ([]domain.Reservation, error)
	ListOwnerReservations(ownerID uint) ([]domain.Reservation, error)
	CancelReservation(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error)
	ConfirmReservation(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error)
	CheckInReservation(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error)
	CheckOutReservation(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error)
	CheckAvailability(req dto.CheckAvailabilityRequest) (*dto.CheckAvailabilityResponse, error)
	OwnerStats(ownerID uint) (*dto.ReservationStatsResponse, error)
}

type reservationService struct {
	repo         repositories.ReservationRepository
	roomRepo     repositories.RoomRepository
	propertyRepo repositories.PropertyRepository
	publisher    events.Publisher
}

// NewReservationService crea una nueva instancia del servicio.
// El publisher puede ser nil (los eventos se omiten).
func NewReservationService(
	repo repositories.ReservationRepository,
	roomRepo repositories.RoomRepository,
	propertyRepo repositories.PropertyRepository,
	publisher events.Publisher,
) ReservationService {
	return &reservationService{
		repo:         repo,
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
		publisher:    publisher,
	}
}

// parseDate parsea fechas en formato YYYY-MM-DD
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// today devuelve la fecha de hoy sin componente horario
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateReservation crea una reserva en estado pending.
// Valida fechas, capacidad y que la habitación no esté ocupada.
func (s *reservationService) CreateReservation(userID uint, req dto.CreateReservationRequest) (*domain.Reservation, error) {
	// 1. Parsear y validar las fechas
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return nil, errors.New("invalid check_in date")
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return nil, errors.New("invalid check_out date")
	}
	if !checkOut.After(checkIn) {
		return nil, errors.New("check_out must be after check_in")
	}
	if checkIn.Before(today()) {
		return nil, errors.New("check_in cannot be in the past")
	}

	// 2. Verificar que la habitación pertenece a la propiedad
	room, err := s.roomRepo.GetByID(req.RoomID)
	if err != nil {
		return nil, errors.New("room not found")
	}
	if room.PropertyID != req.PropertyID {
		return nil, errors.New("room does not belong to property")
	}
	if !room.Available {
		return nil, errors.New("room is not available")
	}

	property, err := s.propertyRepo.GetByID(req.PropertyID)
	if err != nil {
		return nil, errors.New("property not found")
	}

	// 3. Validar capacidad
	if req.Guests > room.MaxGuests {
		return nil, errors.New("too many guests for this room")
	}

	// 4. Control de solapamiento contra reservas activas
	overlapping, err := s.repo.CountActiveOverlapping(room.ID, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, errors.New("room is not available for the selected dates")
	}

	// 5. Calcular el precio total
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	totalPrice := float64(nights) * room.PricePerNight

	reservation := &domain.Reservation{
		Reference:       utils.GenerateReservationReference(),
		PropertyID:      property.ID,
		RoomID:          room.ID,
		UserID:          userID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		TotalPrice:      totalPrice,
		Status:          domain.ReservationPending,
		GuestFirstName:  req.GuestFirstName,
		GuestLastName:   req.GuestLastName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		PaymentStatus:   domain.PaymentPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.repo.Create(reservation); err != nil {
		return nil, err
	}

	s.publishEvent("created", reservation, property)
	return reservation, nil
}

// GetReservation devuelve una reserva.
// Solo el huésped, el dueño de la propiedad o un admin pueden verla.
func (s *reservationService) GetReservation(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(reservationID)
	if err != nil {
		return nil, errors.New("reservation not found")
	}

	if reservation.UserID == userID || isAdmin {
		return reservation, nil
	}

	property, err := s.propertyRepo.GetByID(reservation.PropertyID)
	if err == nil && property.OwnerID == userID {
		return reservation, nil
	}

	return nil, errors.New("access denied")
}

func (s *reservationService) ListMyReservations(userID uint) ([]domain.Reservation, error) {
	return s.repo.ListByUser(userID)
}

func (s *reservationService) ListOwnerReservations(ownerID uint) ([]domain.Reservation, error) {
	return s.repo.ListByOwner(ownerID)
}

// CancelReservation cancela una reserva pending/confirmed antes del check-in.
// Puede cancelar el huésped o el dueño de la propiedad.
func (s *reservationService) CancelReservation(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error) {
	reservation, property, err := s.getForTransition(userID, reservationID, isAdmin, true)
	if err != nil {
		return nil, err
	}

	if !reservation.CanCancel(today()) {
		return nil, errors.New("reservation cannot be cancelled")
	}

	reservation.Status = domain.ReservationCancelled
	if err := s.repo.Update(reservation); err != nil {
		return nil, err
	}

	s.publishEvent("cancelled", reservation, property)
	return reservation, nil
}

// ConfirmReservation pasa la reserva de pending a confirmed.
// Solo el dueño de la propiedad (o un admin). Se vuelve a chequear
// el solapamiento por si otra reserva se confirmó en el medio.
func (s *reservationService) ConfirmReservation(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error) {
	reservation, property, err := s.getForTransition(userID, reservationID, isAdmin, false)
	if err != nil {
		return nil, err
	}

	if reservation.Status != domain.ReservationPending {
		return nil, errors.New("reservation cannot be confirmed")
	}

	overlapping, err := s.repo.CountActiveOverlapping(reservation.RoomID, reservation.CheckIn, reservation.CheckOut, reservation.ID)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, errors.New("room is no longer available for the selected dates")
	}

	reservation.Status = domain.ReservationConfirmed
	if err := s.repo.Update(reservation); err != nil {
		return nil, err
	}

	s.publishEvent("confirmed", reservation, property)
	return reservation, nil
}

// CheckInReservation registra el check-in de una reserva confirmada
func (s *reservationService) CheckInReservation(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error) {
	reservation, property, err := s.getForTransition(userID, reservationID, isAdmin, false)
	if err != nil {
		return nil, err
	}

	if reservation.Status != domain.ReservationConfirmed {
		return nil, errors.New("reservation must be confirmed to check in")
	}

	reservation.Status = domain.ReservationCheckedIn
	if err := s.repo.Update(reservation); err != nil {
		return nil, err
	}

	s.publishEvent("checked_in", reservation, property)
	return reservation, nil
}

// CheckOutReservation registra el check-out.
// Solo es válido después del check-in.
func (s *reservationService) CheckOutReservation(userID, reservationID uint, isAdmin bool) (*domain.Reservation, error) {
	reservation, property, err := s.getForTransition(userID, reservationID, isAdmin, false)
	if err != nil {
		return nil, err
	}

	if reservation.Status != domain.ReservationCheckedIn {
		return nil, errors.New("reservation must be checked in to check out")
	}

	reservation.Status = domain.ReservationCheckedOut
	if err := s.repo.Update(reservation); err != nil {
		return nil, err
	}

	s.publishEvent("checked_out", reservation, property)
	return reservation, nil
}

// CheckAvailability consulta disponibilidad y precio sin crear la reserva
func (s *reservationService) CheckAvailability(req dto.CheckAvailabilityRequest) (*dto.CheckAvailabilityResponse, error) {
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return nil, errors.New("invalid check_in date")
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return nil, errors.New("invalid check_out date")
	}
	if !checkOut.After(checkIn) {
		return nil, errors.New("check_out must be after check_in")
	}

	room, err := s.roomRepo.GetByID(req.RoomID)
	if err != nil {
		return nil, errors.New("room not found")
	}

	available := room.Available
	if available {
		overlapping, err := s.repo.CountActiveOverlapping(room.ID, checkIn, checkOut, 0)
		if err != nil {
			return nil, err
		}
		available = overlapping == 0
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	return &dto.CheckAvailabilityResponse{
		RoomID:     room.ID,
		Available:  available,
		Nights:     nights,
		TotalPrice: float64(nights) * room.PricePerNight,
	}, nil
}

// OwnerStats resume las reservas de las propiedades del dueño
func (s *reservationService) OwnerStats(ownerID uint) (*dto.ReservationStatsResponse, error) {
	reservations, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	stats := &dto.ReservationStatsResponse{}
	todayDate := today()

	for _, r := range reservations {
		stats.TotalReservations++
		switch r.Status {
		case domain.ReservationPending:
			stats.PendingReservations++
		case domain.ReservationConfirmed:
			stats.ConfirmedReservations++
			if !r.CheckIn.Before(todayDate) {
				stats.UpcomingCheckIns++
			}
		case domain.ReservationCheckedIn:
			stats.CheckedInReservations++
		case domain.ReservationCheckedOut:
			stats.CheckedOutReservations++
		case domain.ReservationCancelled:
			stats.CancelledReservations++
		}
		if r.PaymentStatus == domain.PaymentPaid {
			stats.TotalRevenue += r.TotalPrice
		}
	}

	return stats, nil
}

// getForTransition busca la reserva y valida el acceso para una
// transición de estado. guestAllowed habilita también al huésped
// (se usa para cancelar).
func (s *reservationService) getForTransition(userID, reservationID uint, isAdmin, guestAllowed bool) (*domain.Reservation, *domain.Property, error) {
	reservation, err := s.repo.GetByID(reservationID)
	if err != nil {
		return nil, nil, errors.New("reservation not found")
	}

	property, err := s.propertyRepo.GetByID(reservation.PropertyID)
	if err != nil {
		return nil, nil, errors.New("property not found")
	}

	allowed := isAdmin || property.OwnerID == userID
	if guestAllowed && reservation.UserID == userID {
		allowed = true
	}
	if !allowed {
		return nil, nil, errors.New("access denied")
	}

	return reservation, property, nil
}

// publishEvent publica el evento de reserva.
// Un error acá no invalida la operación, solo se loguea.
func (s *reservationService) publishEvent(action string, reservation *domain.Reservation, property *domain.Property) {
	if s.publisher == nil {
		return
	}

	event := events.ReservationEvent{
		Action:       action,
		Reference:    reservation.Reference,
		GuestID:      reservation.UserID,
		OwnerID:      property.OwnerID,
		PropertyName: property.Name,
		CheckIn:      reservation.CheckIn.Format("2006-01-02"),
		CheckOut:     reservation.CheckOut.Format("2006-01-02"),
	}

	if err := s.publisher.PublishReservationEvent(event); err != nil {
		log.Printf("Error publishing reservation event (Action=%s, Reference=%s): %v", action, reservation.Reference, err)
	}
}
