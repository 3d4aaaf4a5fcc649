package repositories

import (
	"gorm.io/gorm"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
)

// WishlistRepository maneja la lista de deseos de los usuarios
type WishlistRepository interface {
	Add(item *domain.WishlistItem) error
	Remove(userID, propertyID uint) error
	ListByUser(userID uint) ([]domain.WishlistItem, error)
	Exists(userID, propertyID uint) (bool, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository crea una nueva instancia del repositorio
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Add(item *domain.WishlistItem) error {
	return r.db.Create(item).Error
}

func (r *wishlistRepository) Remove(userID, propertyID uint) error {
	return r.db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&domain.WishlistItem{}).Error
}

func (r *wishlistRepository) ListByUser(userID uint) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *wishlistRepository) Exists(userID, propertyID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.WishlistItem{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error
	return count > 0, err
}
