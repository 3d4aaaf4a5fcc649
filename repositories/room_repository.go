package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
)

// RoomRepository define las operaciones de acceso a datos de habitaciones
type RoomRepository interface {
	Create(room *domain.Room) error
	GetByID(id uint) (*domain.Room, error)
	Update(room *domain.Room) error
	Delete(id uint) error
	ListByProperty(propertyID uint) ([]domain.Room, error)
}

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository crea una nueva instancia del repositorio
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room *domain.Room) error {
	return r.db.Create(room).Error
}

func (r *roomRepository) GetByID(id uint) (*domain.Room, error) {
	var room domain.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room not found")
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Update(room *domain.Room) error {
	return r.db.Save(room).Error
}

func (r *roomRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Room{}, id).Error
}

func (r *roomRepository) ListByProperty(propertyID uint) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.Where("property_id = ?", propertyID).Order("price_per_night ASC").Find(&rooms).Error
	return rooms, err
}
