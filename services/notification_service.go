package services

import (
	"fmt"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/events"
	"github.com/devcarkson/reserve-with-ease-backend/repositories"
)

// NotificationService expone las notificaciones in-app y procesa
// los eventos de reservas que llegan por RabbitMQ
type NotificationService interface {
	ListNotifications(userID uint) ([]domain.Notification, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
	CountUnread(userID uint) (int, error)
	HandleReservationEvent(event events.ReservationEvent) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationService crea una nueva instancia del servicio
func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListNotifications(userID uint) ([]domain.Notification, error) {
	return s.notificationRepo.ListByUser(userID)
}

func (s *notificationService) MarkRead(id, userID uint) error {
	return s.notificationRepo.MarkRead(id, userID)
}

func (s *notificationService) MarkAllRead(userID uint) error {
	return s.notificationRepo.MarkAllRead(userID)
}

func (s *notificationService) CountUnread(userID uint) (int, error) {
	return s.notificationRepo.CountUnread(userID)
}

// HandleReservationEvent crea las notificaciones para el huésped
// y el dueño según la acción del evento
func (s *notificationService) HandleReservationEvent(event events.ReservationEvent) error {
	var notifications []domain.Notification

	switch event.Action {
	case "created":
		notifications = []domain.Notification{
			{
				UserID:    event.GuestID,
				Type:      domain.NotificationReservationCreated,
				Title:     "Reservation requested",
				Body:      fmt.Sprintf("Your reservation %s at %s (%s to %s) is pending confirmation", event.Reference, event.PropertyName, event.CheckIn, event.CheckOut),
				Reference: event.Reference,
			},
			{
				UserID:    event.OwnerID,
				Type:      domain.NotificationReservationCreated,
				Title:     "New reservation request",
				Body:      fmt.Sprintf("You have a new reservation %s at %s (%s to %s)", event.Reference, event.PropertyName, event.CheckIn, event.CheckOut),
				Reference: event.Reference,
			},
		}
	case "confirmed":
		notifications = []domain.Notification{
			{
				UserID:    event.GuestID,
				Type:      domain.NotificationReservationConfirmed,
				Title:     "Reservation confirmed",
				Body:      fmt.Sprintf("Your reservation %s at %s was confirmed", event.Reference, event.PropertyName),
				Reference: event.Reference,
			},
		}
	case "cancelled":
		notifications = []domain.Notification{
			{
				UserID:    event.GuestID,
				Type:      domain.NotificationReservationCancelled,
				Title:     "Reservation cancelled",
				Body:      fmt.Sprintf("Reservation %s at %s was cancelled", event.Reference, event.PropertyName),
				Reference: event.Reference,
			},
			{
				UserID:    event.OwnerID,
				Type:      domain.NotificationReservationCancelled,
				Title:     "Reservation cancelled",
				Body:      fmt.Sprintf("Reservation %s at %s was cancelled", event.Reference, event.PropertyName),
				Reference: event.Reference,
			},
		}
	case "checked_in":
		notifications = []domain.Notification{
			{
				UserID:    event.OwnerID,
				Type:      domain.NotificationCheckIn,
				Title:     "Guest checked in",
				Body:      fmt.Sprintf("The guest of reservation %s checked in at %s", event.Reference, event.PropertyName),
				Reference: event.Reference,
			},
		}
	case "checked_out":
		notifications = []domain.Notification{
			{
				UserID:    event.GuestID,
				Type:      domain.NotificationCheckOut,
				Title:     "Thanks for your stay",
				Body:      fmt.Sprintf("You checked out of %s. You can now leave a review", event.PropertyName),
				Reference: event.Reference,
			},
			{
				UserID:    event.OwnerID,
				Type:      domain.NotificationCheckOut,
				Title:     "Guest checked out",
				Body:      fmt.Sprintf("The guest of reservation %s checked out of %s", event.Reference, event.PropertyName),
				Reference: event.Reference,
			},
		}
	default:
		return fmt.Errorf("unknown reservation event action: %s", event.Action)
	}

	for _, notification := range notifications {
		n := notification
		if err := s.notificationRepo.Create(&n); err != nil {
			return fmt.Errorf("error creating notification for user %d: %w", n.UserID, err)
		}
	}

	return nil
}
