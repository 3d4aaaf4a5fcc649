package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
)

// TokenRepository maneja los tokens de verificación de email
// y de recuperación de contraseña
type TokenRepository interface {
	CreateEmailVerification(v *domain.EmailVerification) error
	GetEmailVerification(token string) (*domain.EmailVerification, error)
	MarkEmailVerificationUsed(v *domain.EmailVerification) error
	CreatePasswordReset(p *domain.PasswordReset) error
	GetPasswordReset(token string) (*domain.PasswordReset, error)
	MarkPasswordResetUsed(p *domain.PasswordReset) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository crea una nueva instancia del repositorio
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) CreateEmailVerification(v *domain.EmailVerification) error {
	return r.db.Create(v).Error
}

func (r *tokenRepository) GetEmailVerification(token string) (*domain.EmailVerification, error) {
	var v domain.EmailVerification
	err := r.db.Where("token = ?", token).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("token not found")
		}
		return nil, err
	}
	return &v, nil
}

func (r *tokenRepository) MarkEmailVerificationUsed(v *domain.EmailVerification) error {
	v.Used = true
	return r.db.Save(v).Error
}

func (r *tokenRepository) CreatePasswordReset(p *domain.PasswordReset) error {
	return r.db.Create(p).Error
}

func (r *tokenRepository) GetPasswordReset(token string) (*domain.PasswordReset, error) {
	var p domain.PasswordReset
	err := r.db.Where("token = ?", token).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("token not found")
		}
		return nil, err
	}
	return &p, nil
}

func (r *tokenRepository) MarkPasswordResetUsed(p *domain.PasswordReset) error {
	p.Used = true
	return r.db.Save(p).Error
}
