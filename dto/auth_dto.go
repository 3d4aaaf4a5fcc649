package dto

import "github.com/devcarkson/reserve-with-ease-backend/domain"

// RegisterRequest representa el request de registro de un usuario
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"omitempty,oneof=user owner"`
}

// LoginRequest representa el request de login
// El usuario puede loguearse con username O email
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// LoginResponse devuelve el token JWT y los datos del usuario
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// UpdateProfileRequest actualiza los datos del perfil.
// Todos los campos son opcionales.
type UpdateProfileRequest struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty" binding:"omitempty,email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ChangePasswordRequest cambia la contraseña del usuario autenticado
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// RequestPasswordResetRequest pide un token de recuperación por email
type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest establece la nueva contraseña usando el token
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// WishlistRequest agrega una propiedad a la lista de deseos
type WishlistRequest struct {
	PropertyID uint `json:"property_id" binding:"required"`
}
