package services

import (
	"errors"
	"log"
	"time"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/repositories"
)

// ReviewService define la lógica de negocio de reseñas
type ReviewService interface {
	CreateReview(userID, propertyID uint, req dto.CreateReviewRequest) (*domain.Review, error)
	GetReview(id uint) (*domain.Review, error)
	ListByProperty(propertyID uint) ([]domain.Review, error)
	UpdateReview(userID, reviewID uint, req dto.UpdateReviewRequest) (*domain.Review, error)
	DeleteReview(userID, reviewID uint, isAdmin bool) error
	RespondReview(userID, reviewID uint, req dto.RespondReviewRequest) (*domain.Review, error)
	MarkHelpful(userID, reviewID uint) error
}

type reviewService struct {
	repo            repositories.ReviewRepository
	reservationRepo repositories.ReservationRepository
	propertyRepo    repositories.PropertyRepository
}

// NewReviewService crea una nueva instancia del servicio
func NewReviewService(
	repo repositories.ReviewRepository,
	reservationRepo repositories.ReservationRepository,
	propertyRepo repositories.PropertyRepository,
) ReviewService {
	return &reviewService{
		repo:            repo,
		reservationRepo: reservationRepo,
		propertyRepo:    propertyRepo,
	}
}

// CreateReview crea una reseña.
// Requiere una reserva del mismo usuario, sobre la misma propiedad,
// con check-out completado y sin reseña previa.
func (s *reviewService) CreateReview(userID, propertyID uint, req dto.CreateReviewRequest) (*domain.Review, error) {
	// 1. Verificar que la propiedad existe
	if _, err := s.propertyRepo.GetByID(propertyID); err != nil {
		return nil, errors.New("property not found")
	}

	// 2. Validar la reserva asociada
	reservation, err := s.reservationRepo.GetByID(req.ReservationID)
	if err != nil {
		return nil, errors.New("reservation not found")
	}
	if reservation.UserID != userID {
		return nil, errors.New("reservation does not belong to user")
	}
	if reservation.PropertyID != propertyID {
		return nil, errors.New("reservation is for a different property")
	}
	if reservation.Status != domain.ReservationCheckedOut {
		return nil, errors.New("review requires a completed stay")
	}

	// 3. Una reseña por reserva
	existing, _ := s.repo.GetByReservation(req.ReservationID)
	if existing != nil {
		return nil, errors.New("reservation already reviewed")
	}

	review := &domain.Review{
		PropertyID:    propertyID,
		UserID:        userID,
		ReservationID: req.ReservationID,
		Rating:        req.Rating,
		Title:         req.Title,
		Content:       req.Content,
		Cleanliness:   req.Cleanliness,
		Comfort:       req.Comfort,
		Location:      req.Location,
		Facilities:    req.Facilities,
		Staff:         req.Staff,
		ValueForMoney: req.ValueForMoney,
	}

	if err := s.repo.Create(review); err != nil {
		return nil, err
	}

	// 4. Actualizar el rating agregado de la propiedad
	s.refreshPropertyRating(propertyID)

	return review, nil
}

func (s *reviewService) GetReview(id uint) (*domain.Review, error) {
	return s.repo.GetByID(id)
}

func (s *reviewService) ListByProperty(propertyID uint) ([]domain.Review, error) {
	if _, err := s.propertyRepo.GetByID(propertyID); err != nil {
		return nil, errors.New("property not found")
	}
	return s.repo.ListByProperty(propertyID)
}

// UpdateReview actualiza una reseña. Solo el autor puede editarla.
func (s *reviewService) UpdateReview(userID, reviewID uint, req dto.UpdateReviewRequest) (*domain.Review, error) {
	review, err := s.repo.GetByID(reviewID)
	if err != nil {
		return nil, errors.New("review not found")
	}

	if review.UserID != userID {
		return nil, errors.New("not the review author")
	}

	if req.Rating > 0 {
		review.Rating = req.Rating
	}
	if req.Title != "" {
		review.Title = req.Title
	}
	if req.Content != "" {
		review.Content = req.Content
	}

	if err := s.repo.Update(review); err != nil {
		return nil, err
	}

	s.refreshPropertyRating(review.PropertyID)
	return review, nil
}

// DeleteReview elimina una reseña del autor (o un admin)
func (s *reviewService) DeleteReview(userID, reviewID uint, isAdmin bool) error {
	review, err := s.repo.GetByID(reviewID)
	if err != nil {
		return errors.New("review not found")
	}

	if review.UserID != userID && !isAdmin {
		return errors.New("not the review author")
	}

	if err := s.repo.Delete(reviewID); err != nil {
		return err
	}

	s.refreshPropertyRating(review.PropertyID)
	return nil
}

// RespondReview registra la respuesta del dueño de la propiedad
func (s *reviewService) RespondReview(userID, reviewID uint, req dto.RespondReviewRequest) (*domain.Review, error) {
	review, err := s.repo.GetByID(reviewID)
	if err != nil {
		return nil, errors.New("review not found")
	}

	property, err := s.propertyRepo.GetByID(review.PropertyID)
	if err != nil {
		return nil, errors.New("property not found")
	}
	if property.OwnerID != userID {
		return nil, errors.New("not the property owner")
	}

	now := time.Now()
	review.ResponseContent = req.Content
	review.RespondedByID = userID
	review.RespondedAt = &now

	if err := s.repo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// MarkHelpful registra el voto de utilidad de un usuario.
// Un usuario puede votar una reseña una sola vez.
func (s *reviewService) MarkHelpful(userID, reviewID uint) error {
	review, err := s.repo.GetByID(reviewID)
	if err != nil {
		return errors.New("review not found")
	}

	// El autor no puede votar su propia reseña
	if review.UserID == userID {
		return errors.New("cannot vote own review")
	}

	voted, err := s.repo.HasHelpfulVote(reviewID, userID)
	if err != nil {
		return err
	}
	if voted {
		return errors.New("already voted")
	}

	return s.repo.AddHelpfulVote(&domain.ReviewHelpful{
		ReviewID: reviewID,
		UserID:   userID,
	})
}

// refreshPropertyRating recalcula el rating agregado de la propiedad.
// Un error acá no invalida la operación, solo se loguea.
func (s *reviewService) refreshPropertyRating(propertyID uint) {
	avg, count, err := s.repo.RatingSummary(propertyID)
	if err != nil {
		log.Printf("Error computing rating summary for property %d: %v", propertyID, err)
		return
	}
	if err := s.propertyRepo.UpdateRating(propertyID, avg, count); err != nil {
		log.Printf("Error updating rating for property %d: %v", propertyID, err)
	}
}
