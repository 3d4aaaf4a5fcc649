package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
)

// ReservationRepository define las operaciones de acceso a datos de reservas
type ReservationRepository interface {
	Create(reservation *domain.Reservation) error
	GetByID(id uint) (*domain.Reservation, error)
	Update(reservation *domain.Reservation) error
	ListByUser(userID uint) ([]domain.Reservation, error)
	ListByOwner(ownerID uint) ([]domain.Reservation, error)
	// CountActiveOverlapping cuenta las reservas pending/confirmed de la
	// habitación cuyo rango [check_in, check_out) se solapa con el dado.
	// excludeID permite ignorar la propia reserva al confirmar.
	CountActiveOverlapping(roomID uint, checkIn, checkOut time.Time, excludeID uint) (int, error)
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository crea una nueva instancia del repositorio
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(reservation *domain.Reservation) error {
	return r.db.Create(reservation).Error
}

func (r *reservationRepository) GetByID(id uint) (*domain.Reservation, error) {
	var reservation domain.Reservation
	err := r.db.First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("reservation not found")
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) Update(reservation *domain.Reservation) error {
	return r.db.Save(reservation).Error
}

func (r *reservationRepository) ListByUser(userID uint) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reservations).Error
	return reservations, err
}

// ListByOwner devuelve las reservas de todas las propiedades del dueño
func (r *reservationRepository) ListByOwner(ownerID uint) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	err := r.db.
		Joins("JOIN properties ON properties.id = reservations.property_id").
		Where("properties.owner_id = ?", ownerID).
		Order("reservations.created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) CountActiveOverlapping(roomID uint, checkIn, checkOut time.Time, excludeID uint) (int, error) {
	var count int64
	query := r.db.Model(&domain.Reservation{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []domain.ReservationStatus{domain.ReservationPending, domain.ReservationConfirmed}).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return int(count), err
}
