package domain

import "time"

// EmailVerification guarda los tokens de verificación de email
type EmailVerification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"unique;not null" json:"token"`
	Used      bool      `gorm:"default:false" json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

func (EmailVerification) TableName() string {
	return "email_verifications"
}

// PasswordReset guarda los tokens de recuperación de contraseña
// El token expira a la hora de creado
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"unique;not null" json:"token"`
	Used      bool      `gorm:"default:false" json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}

// IsExpired indica si el token ya no es válido
func (p *PasswordReset) IsExpired() bool {
	return time.Since(p.CreatedAt) > time.Hour
}
