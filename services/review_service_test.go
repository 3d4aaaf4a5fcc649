package services

import (
	"testing"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
)

// setup común: una propiedad del usuario 10 y una reserva con
// check-out completado del usuario 5
func newReviewFixture() (ReviewService, *mockReviewRepository, *mockReservationRepository, *mockPropertyRepository) {
	reviewRepo := newMockReviewRepository()
	reservationRepo := newMockReservationRepository()
	propertyRepo := newMockPropertyRepository()

	propertyRepo.Create(&domain.Property{
		OwnerID: 10,
		Name:    "Victoria Island Hotel",
	})
	reservationRepo.Create(&domain.Reservation{
		PropertyID: 1,
		RoomID:     1,
		UserID:     5,
		Status:     domain.ReservationCheckedOut,
	})

	service := NewReviewService(reviewRepo, reservationRepo, propertyRepo)
	return service, reviewRepo, reservationRepo, propertyRepo
}

func validReviewRequest() dto.CreateReviewRequest {
	return dto.CreateReviewRequest{
		ReservationID: 1,
		Rating:        4,
		Title:         "Great stay",
		Content:       "Clean rooms and friendly staff",
	}
}

// Test: Crear reseña exitosamente
func TestCreateReview_Success(t *testing.T) {
	service, _, _, propertyRepo := newReviewFixture()

	review, err := service.CreateReview(5, 1, validReviewRequest())

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if review.Rating != 4 {
		t.Errorf("Expected rating 4, got %d", review.Rating)
	}

	// El rating agregado de la propiedad se actualiza
	property, _ := propertyRepo.GetByID(1)
	if property.Rating != 4 {
		t.Errorf("Expected property rating 4, got %f", property.Rating)
	}
	if property.ReviewCount != 1 {
		t.Errorf("Expected review count 1, got %d", property.ReviewCount)
	}
}

// Test: La reseña requiere check-out completado
func TestCreateReview_RequiresCompletedStay(t *testing.T) {
	service, _, reservationRepo, _ := newReviewFixture()

	for _, status := range []domain.ReservationStatus{
		domain.ReservationPending,
		domain.ReservationConfirmed,
		domain.ReservationCheckedIn,
		domain.ReservationCancelled,
	} {
		reservation, _ := reservationRepo.GetByID(1)
		reservation.Status = status
		reservationRepo.Update(reservation)

		_, err := service.CreateReview(5, 1, validReviewRequest())
		if err == nil || err.Error() != "review requires a completed stay" {
			t.Errorf("Status %s: expected 'review requires a completed stay' error, got %v", status, err)
		}
	}
}

// Test: Una sola reseña por reserva
func TestCreateReview_OnePerReservation(t *testing.T) {
	service, _, _, _ := newReviewFixture()

	if _, err := service.CreateReview(5, 1, validReviewRequest()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := service.CreateReview(5, 1, validReviewRequest())
	if err == nil || err.Error() != "reservation already reviewed" {
		t.Errorf("Expected 'reservation already reviewed' error, got %v", err)
	}
}

// Test: La reserva debe ser del usuario y de la propiedad
func TestCreateReview_WrongReservation(t *testing.T) {
	service, _, _, propertyRepo := newReviewFixture()

	// Reserva de otro usuario
	_, err := service.CreateReview(7, 1, validReviewRequest())
	if err == nil || err.Error() != "reservation does not belong to user" {
		t.Errorf("Expected 'reservation does not belong to user' error, got %v", err)
	}

	// Reserva de otra propiedad
	propertyRepo.Create(&domain.Property{OwnerID: 10, Name: "Other Hotel"})
	_, err = service.CreateReview(5, 2, validReviewRequest())
	if err == nil || err.Error() != "reservation is for a different property" {
		t.Errorf("Expected 'reservation is for a different property' error, got %v", err)
	}
}

// Test: Solo el autor puede editar su reseña
func TestUpdateReview_AuthorOnly(t *testing.T) {
	service, _, _, propertyRepo := newReviewFixture()

	review, _ := service.CreateReview(5, 1, validReviewRequest())

	if _, err := service.UpdateReview(7, review.ID, dto.UpdateReviewRequest{Rating: 1}); err == nil {
		t.Error("Expected error for non-author update, got nil")
	}

	updated, err := service.UpdateReview(5, review.ID, dto.UpdateReviewRequest{Rating: 2})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Rating != 2 {
		t.Errorf("Expected rating 2, got %d", updated.Rating)
	}

	// El rating agregado se recalcula
	property, _ := propertyRepo.GetByID(1)
	if property.Rating != 2 {
		t.Errorf("Expected property rating 2, got %f", property.Rating)
	}
}

// Test: Borrar reseña - autor o admin
func TestDeleteReview(t *testing.T) {
	service, _, _, propertyRepo := newReviewFixture()

	review, _ := service.CreateReview(5, 1, validReviewRequest())

	if err := service.DeleteReview(7, review.ID, false); err == nil {
		t.Error("Expected error for non-author delete, got nil")
	}

	// Un admin puede borrar
	if err := service.DeleteReview(99, review.ID, true); err != nil {
		t.Errorf("Expected no error for admin delete, got %v", err)
	}

	property, _ := propertyRepo.GetByID(1)
	if property.ReviewCount != 0 {
		t.Errorf("Expected review count 0 after delete, got %d", property.ReviewCount)
	}
}

// Test: Solo el dueño de la propiedad puede responder
func TestRespondReview_OwnerOnly(t *testing.T) {
	service, _, _, _ := newReviewFixture()

	review, _ := service.CreateReview(5, 1, validReviewRequest())

	if _, err := service.RespondReview(5, review.ID, dto.RespondReviewRequest{Content: "thanks"}); err == nil {
		t.Error("Expected error for non-owner response, got nil")
	}

	responded, err := service.RespondReview(10, review.ID, dto.RespondReviewRequest{Content: "Thanks for staying with us"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if responded.ResponseContent != "Thanks for staying with us" {
		t.Errorf("Expected response content, got %s", responded.ResponseContent)
	}
	if responded.RespondedAt == nil {
		t.Error("Expected responded_at to be set")
	}
}

// Test: Votos de utilidad
func TestMarkHelpful(t *testing.T) {
	service, reviewRepo, _, _ := newReviewFixture()

	review, _ := service.CreateReview(5, 1, validReviewRequest())

	// El autor no puede votar su propia reseña
	if err := service.MarkHelpful(5, review.ID); err == nil || err.Error() != "cannot vote own review" {
		t.Errorf("Expected 'cannot vote own review' error, got %v", err)
	}

	if err := service.MarkHelpful(7, review.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// No se puede votar dos veces
	if err := service.MarkHelpful(7, review.ID); err == nil || err.Error() != "already voted" {
		t.Errorf("Expected 'already voted' error, got %v", err)
	}

	stored, _ := reviewRepo.GetByID(review.ID)
	if stored.HelpfulCount != 1 {
		t.Errorf("Expected helpful count 1, got %d", stored.HelpfulCount)
	}
}

// Test: Promedio de varias reseñas
func TestPropertyRatingAverage(t *testing.T) {
	service, _, reservationRepo, propertyRepo := newReviewFixture()

	// Segunda reserva completada de otro usuario
	reservationRepo.Create(&domain.Reservation{
		PropertyID: 1,
		RoomID:     1,
		UserID:     7,
		Status:     domain.ReservationCheckedOut,
	})

	service.CreateReview(5, 1, validReviewRequest())

	req := validReviewRequest()
	req.ReservationID = 2
	req.Rating = 2
	service.CreateReview(7, 1, req)

	property, _ := propertyRepo.GetByID(1)
	if property.Rating != 3 {
		t.Errorf("Expected average rating 3, got %f", property.Rating)
	}
	if property.ReviewCount != 2 {
		t.Errorf("Expected review count 2, got %d", property.ReviewCount)
	}
}
