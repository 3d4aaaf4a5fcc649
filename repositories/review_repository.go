package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
)

// ReviewRepository define las operaciones de acceso a datos de reseñas
type ReviewRepository interface {
	Create(review *domain.Review) error
	GetByID(id uint) (*domain.Review, error)
	GetByReservation(reservationID uint) (*domain.Review, error)
	Update(review *domain.Review) error
	Delete(id uint) error
	ListByProperty(propertyID uint) ([]domain.Review, error)
	// AddHelpfulVote registra el voto e incrementa helpful_count
	// de forma atómica
	AddHelpfulVote(vote *domain.ReviewHelpful) error
	HasHelpfulVote(reviewID, userID uint) (bool, error)
	// RatingSummary devuelve el promedio y la cantidad de reseñas
	// de una propiedad
	RatingSummary(propertyID uint) (float64, int, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository crea una nueva instancia del repositorio
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *domain.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByID(id uint) (*domain.Review, error) {
	var review domain.Review
	err := r.db.First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("review not found")
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByReservation(reservationID uint) (*domain.Review, error) {
	var review domain.Review
	err := r.db.Where("reservation_id = ?", reservationID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("review not found")
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Update(review *domain.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Review{}, id).Error
}

func (r *reviewRepository) ListByProperty(propertyID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.Where("property_id = ?", propertyID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) AddHelpfulVote(vote *domain.ReviewHelpful) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vote).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Review{}).Where("id = ?", vote.ReviewID).
			UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1")).Error
	})
}

func (r *reviewRepository) HasHelpfulVote(reviewID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.ReviewHelpful{}).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) RatingSummary(propertyID uint) (float64, int, error) {
	type summary struct {
		Avg   float64
		Count int
	}
	var s summary
	err := r.db.Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("property_id = ?", propertyID).
		Scan(&s).Error
	return s.Avg, s.Count, err
}
