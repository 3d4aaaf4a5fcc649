package services

import (
	"testing"
	"time"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
)

func newPropertyFixture() (PropertyService, *mockPropertyRepository, *mockRoomRepository, *mockReservationRepository) {
	propertyRepo := newMockPropertyRepository()
	roomRepo := newMockRoomRepository()
	reservationRepo := newMockReservationRepository()
	service := NewPropertyService(propertyRepo, roomRepo, reservationRepo)
	return service, propertyRepo, roomRepo, reservationRepo
}

// Test: Crear propiedad con valores por defecto
func TestCreateProperty_Defaults(t *testing.T) {
	service, _, _, _ := newPropertyFixture()

	property, err := service.CreateProperty(10, dto.CreatePropertyRequest{
		Name:          "Ikoyi Apartment",
		Type:          "apartment",
		City:          "Lagos",
		Country:       "Nigeria",
		Address:       "12 Bourdillon Road",
		PricePerNight: 150,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if property.OwnerID != 10 {
		t.Errorf("Expected owner 10, got %d", property.OwnerID)
	}
	if property.Currency != "NGN" {
		t.Errorf("Expected default currency NGN, got %s", property.Currency)
	}
	if property.Status != domain.PropertyStatusActive {
		t.Errorf("Expected status active, got %s", property.Status)
	}
}

// Test: Solo el dueño (o admin) puede modificar la propiedad
func TestUpdateProperty_Ownership(t *testing.T) {
	service, _, _, _ := newPropertyFixture()

	property, _ := service.CreateProperty(10, dto.CreatePropertyRequest{
		Name:          "Ikoyi Apartment",
		Type:          "apartment",
		City:          "Lagos",
		Country:       "Nigeria",
		Address:       "12 Bourdillon Road",
		PricePerNight: 150,
	})

	// Otro usuario no puede
	_, err := service.UpdateProperty(7, property.ID, false, dto.UpdatePropertyRequest{Name: "Hacked"})
	if err == nil || err.Error() != "not the property owner" {
		t.Errorf("Expected 'not the property owner' error, got %v", err)
	}

	// El dueño sí
	updated, err := service.UpdateProperty(10, property.ID, false, dto.UpdatePropertyRequest{PricePerNight: 200})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.PricePerNight != 200 {
		t.Errorf("Expected price 200, got %f", updated.PricePerNight)
	}

	// Un admin también
	if _, err := service.UpdateProperty(99, property.ID, true, dto.UpdatePropertyRequest{Status: "inactive"}); err != nil {
		t.Errorf("Expected no error for admin update, got %v", err)
	}
}

// Test: Borrar propiedad
func TestDeleteProperty(t *testing.T) {
	service, propertyRepo, _, _ := newPropertyFixture()

	property, _ := service.CreateProperty(10, dto.CreatePropertyRequest{
		Name:          "Ikoyi Apartment",
		Type:          "apartment",
		City:          "Lagos",
		Country:       "Nigeria",
		Address:       "12 Bourdillon Road",
		PricePerNight: 150,
	})

	if err := service.DeleteProperty(7, property.ID, false); err == nil {
		t.Error("Expected error for non-owner delete, got nil")
	}

	if err := service.DeleteProperty(10, property.ID, false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := propertyRepo.GetByID(property.ID); err == nil {
		t.Error("Expected property to be deleted")
	}
}

// Test: Paginación del listado público
func TestListProperties_Pagination(t *testing.T) {
	service, propertyRepo, _, _ := newPropertyFixture()

	for i := 0; i < 3; i++ {
		propertyRepo.Create(&domain.Property{OwnerID: 10, Name: "Property", City: "Lagos"})
	}

	response, err := service.ListProperties(dto.PropertyListRequest{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Defaults: page 1, page_size 10
	if response.Page != 1 || response.PageSize != 10 {
		t.Errorf("Expected default page 1/size 10, got %d/%d", response.Page, response.PageSize)
	}
	if response.TotalResults != 3 {
		t.Errorf("Expected 3 results, got %d", response.TotalResults)
	}
	if response.TotalPages != 1 {
		t.Errorf("Expected 1 total page, got %d", response.TotalPages)
	}

	// page_size fuera de rango
	if _, err := service.ListProperties(dto.PropertyListRequest{PageSize: 500}); err == nil {
		t.Error("Expected error for page_size > 100, got nil")
	}
}

// Test: Habitaciones - alta y autorización vía propiedad
func TestRooms_Ownership(t *testing.T) {
	service, _, _, _ := newPropertyFixture()

	property, _ := service.CreateProperty(10, dto.CreatePropertyRequest{
		Name:          "Victoria Island Hotel",
		Type:          "hotel",
		City:          "Lagos",
		Country:       "Nigeria",
		Address:       "1 Adeola Odeku",
		PricePerNight: 100,
	})

	// Otro usuario no puede crear habitaciones
	_, err := service.CreateRoom(7, property.ID, false, dto.CreateRoomRequest{
		Name: "Standard", MaxGuests: 2, PricePerNight: 100,
	})
	if err == nil || err.Error() != "not the property owner" {
		t.Errorf("Expected 'not the property owner' error, got %v", err)
	}

	room, err := service.CreateRoom(10, property.ID, false, dto.CreateRoomRequest{
		Name: "Standard", MaxGuests: 2, PricePerNight: 100,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !room.Available {
		t.Error("Expected new room to be available")
	}

	// La autorización de update se resuelve por la propiedad
	if _, err := service.UpdateRoom(7, room.ID, false, dto.UpdateRoomRequest{PricePerNight: 50}); err == nil {
		t.Error("Expected error for non-owner room update, got nil")
	}

	available := false
	updated, err := service.UpdateRoom(10, room.ID, false, dto.UpdateRoomRequest{Available: &available})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Available {
		t.Error("Expected room to be unavailable after update")
	}

	if err := service.DeleteRoom(7, room.ID, false); err == nil {
		t.Error("Expected error for non-owner room delete, got nil")
	}
	if err := service.DeleteRoom(10, room.ID, false); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

// Test: Disponibilidad por habitación
func TestGetAvailability(t *testing.T) {
	service, _, roomRepo, reservationRepo := newPropertyFixture()

	property, _ := service.CreateProperty(10, dto.CreatePropertyRequest{
		Name:          "Victoria Island Hotel",
		Type:          "hotel",
		City:          "Lagos",
		Country:       "Nigeria",
		Address:       "1 Adeola Odeku",
		PricePerNight: 100,
	})

	roomRepo.Create(&domain.Room{PropertyID: property.ID, Name: "Room A", MaxGuests: 2, PricePerNight: 100, Available: true})
	roomRepo.Create(&domain.Room{PropertyID: property.ID, Name: "Room B", MaxGuests: 4, PricePerNight: 180, Available: true})

	checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)
	checkOut := checkIn.AddDate(0, 0, 3)

	// Room A queda ocupada por una reserva confirmada
	reservationRepo.Create(&domain.Reservation{
		PropertyID: property.ID,
		RoomID:     1,
		UserID:     5,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     domain.ReservationConfirmed,
	})

	response, err := service.GetAvailability(property.ID, checkIn, checkOut)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(response.Rooms) != 2 {
		t.Fatalf("Expected 2 rooms, got %d", len(response.Rooms))
	}

	for _, room := range response.Rooms {
		switch room.RoomName {
		case "Room A":
			if room.Available {
				t.Error("Expected Room A to be unavailable")
			}
		case "Room B":
			if !room.Available {
				t.Error("Expected Room B to be available")
			}
		}
	}

	// Rango inválido
	if _, err := service.GetAvailability(property.ID, checkOut, checkIn); err == nil {
		t.Error("Expected error for inverted date range, got nil")
	}
}
