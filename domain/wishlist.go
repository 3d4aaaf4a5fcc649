package domain

import "time"

// WishlistItem representa una propiedad guardada por un usuario
type WishlistItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex:idx_wishlist_user_property;not null" json:"user_id"`
	PropertyID uint      `gorm:"uniqueIndex:idx_wishlist_user_property;not null" json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
