package domain

import "time"

// Role define los roles de usuario que existen en la plataforma
type Role string

const (
	RoleUser  Role = "user"  // Huésped que reserva
	RoleOwner Role = "owner" // Dueño de propiedades
	RoleAdmin Role = "admin" // Administrador
)

// UserStatus define el estado de la cuenta
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// User representa un usuario en el sistema
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Username      string     `gorm:"unique;not null" json:"username"`
	Email         string     `gorm:"unique;not null" json:"email"`
	Password      string     `gorm:"not null" json:"-"` // El "-" oculta el password en JSON
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Phone         string     `json:"phone"`
	Role          Role       `gorm:"type:varchar(10);default:'user'" json:"role"`
	Status        UserStatus `gorm:"type:varchar(10);default:'active'" json:"status"`
	EmailVerified bool       `gorm:"default:false" json:"email_verified"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsOwner indica si el usuario puede administrar propiedades
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner || u.Role == RoleAdmin
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
