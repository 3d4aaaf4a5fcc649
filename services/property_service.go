package services

import (
	"errors"
	"time"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/repositories"
)

// PropertyService define la lógica de negocio de propiedades y habitaciones
type PropertyService interface {
	CreateProperty(ownerID uint, req dto.CreatePropertyRequest) (*domain.Property, error)
	GetProperty(id uint) (*domain.Property, error)
	UpdateProperty(userID, propertyID uint, isAdmin bool, req dto.UpdatePropertyRequest) (*domain.Property, error)
	DeleteProperty(userID, propertyID uint, isAdmin bool) error
	ListProperties(req dto.PropertyListRequest) (*dto.SearchResponse, error)
	MyProperties(ownerID uint) ([]domain.Property, error)
	CreateRoom(userID, propertyID uint, isAdmin bool, req dto.CreateRoomRequest) (*domain.Room, error)
	GetRoom(id uint) (*domain.Room, error)
	UpdateRoom(userID, roomID uint, isAdmin bool, req dto.UpdateRoomRequest) (*domain.Room, error)
	DeleteRoom(userID, roomID uint, isAdmin bool) error
	ListRooms(propertyID uint) ([]domain.Room, error)
	GetAvailability(propertyID uint, checkIn, checkOut time.Time) (*dto.AvailabilityResponse, error)
}

type propertyService struct {
	repo            repositories.PropertyRepository
	roomRepo        repositories.RoomRepository
	reservationRepo repositories.ReservationRepository
}

// NewPropertyService crea una nueva instancia del servicio
func NewPropertyService(
	repo repositories.PropertyRepository,
	roomRepo repositories.RoomRepository,
	reservationRepo repositories.ReservationRepository,
) PropertyService {
	return &propertyService{
		repo:            repo,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
	}
}

func (s *propertyService) CreateProperty(ownerID uint, req dto.CreatePropertyRequest) (*domain.Property, error) {
	currency := req.Currency
	if currency == "" {
		currency = "NGN"
	}

	property := &domain.Property{
		OwnerID:       ownerID,
		Name:          req.Name,
		Type:          domain.PropertyType(req.Type),
		City:          req.City,
		Country:       req.Country,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		PricePerNight: req.PricePerNight,
		Currency:      currency,
		Description:   req.Description,
		Amenities:     req.Amenities,
		Images:        req.Images,
		Status:        domain.PropertyStatusActive,
	}

	if err := s.repo.Create(property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) GetProperty(id uint) (*domain.Property, error) {
	return s.repo.GetByID(id)
}

// UpdateProperty actualiza una propiedad.
// Solo el dueño (o un admin) puede modificarla.
func (s *propertyService) UpdateProperty(userID, propertyID uint, isAdmin bool, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.repo.GetByID(propertyID)
	if err != nil {
		return nil, errors.New("property not found")
	}

	if property.OwnerID != userID && !isAdmin {
		return nil, errors.New("not the property owner")
	}

	if req.Name != "" {
		property.Name = req.Name
	}
	if req.Type != "" {
		property.Type = domain.PropertyType(req.Type)
	}
	if req.City != "" {
		property.City = req.City
	}
	if req.Country != "" {
		property.Country = req.Country
	}
	if req.Address != "" {
		property.Address = req.Address
	}
	if req.PricePerNight > 0 {
		property.PricePerNight = req.PricePerNight
	}
	if req.Description != "" {
		property.Description = req.Description
	}
	if req.Amenities != nil {
		property.Amenities = req.Amenities
	}
	if req.Images != nil {
		property.Images = req.Images
	}
	if req.Status != "" {
		property.Status = domain.PropertyStatus(req.Status)
	}

	if err := s.repo.Update(property); err != nil {
		return nil, err
	}
	return property, nil
}

// DeleteProperty elimina una propiedad del dueño
func (s *propertyService) DeleteProperty(userID, propertyID uint, isAdmin bool) error {
	property, err := s.repo.GetByID(propertyID)
	if err != nil {
		return errors.New("property not found")
	}

	if property.OwnerID != userID && !isAdmin {
		return errors.New("not the property owner")
	}

	return s.repo.Delete(propertyID)
}

// ListProperties devuelve el listado público paginado
func (s *propertyService) ListProperties(req dto.PropertyListRequest) (*dto.SearchResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		return nil, errors.New("page_size must be <= 100")
	}

	properties, total, err := s.repo.List(req)
	if err != nil {
		return nil, err
	}

	totalPages := (total + req.PageSize - 1) / req.PageSize
	return &dto.SearchResponse{
		Results:      properties,
		TotalResults: total,
		Page:         req.Page,
		PageSize:     req.PageSize,
		TotalPages:   totalPages,
	}, nil
}

func (s *propertyService) MyProperties(ownerID uint) ([]domain.Property, error) {
	return s.repo.ListByOwner(ownerID)
}

// CreateRoom agrega una habitación a una propiedad del dueño
func (s *propertyService) CreateRoom(userID, propertyID uint, isAdmin bool, req dto.CreateRoomRequest) (*domain.Room, error) {
	property, err := s.repo.GetByID(propertyID)
	if err != nil {
		return nil, errors.New("property not found")
	}

	if property.OwnerID != userID && !isAdmin {
		return nil, errors.New("not the property owner")
	}

	room := &domain.Room{
		PropertyID:    propertyID,
		Name:          req.Name,
		Type:          req.Type,
		MaxGuests:     req.MaxGuests,
		BedType:       req.BedType,
		Size:          req.Size,
		PricePerNight: req.PricePerNight,
		Available:     true,
	}

	if err := s.roomRepo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *propertyService) GetRoom(id uint) (*domain.Room, error) {
	return s.roomRepo.GetByID(id)
}

func (s *propertyService) UpdateRoom(userID, roomID uint, isAdmin bool, req dto.UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return nil, errors.New("room not found")
	}

	// La autorización se resuelve por la propiedad dueña de la habitación
	property, err := s.repo.GetByID(room.PropertyID)
	if err != nil {
		return nil, errors.New("property not found")
	}
	if property.OwnerID != userID && !isAdmin {
		return nil, errors.New("not the property owner")
	}

	if req.Name != "" {
		room.Name = req.Name
	}
	if req.Type != "" {
		room.Type = req.Type
	}
	if req.MaxGuests > 0 {
		room.MaxGuests = req.MaxGuests
	}
	if req.BedType != "" {
		room.BedType = req.BedType
	}
	if req.Size > 0 {
		room.Size = req.Size
	}
	if req.PricePerNight > 0 {
		room.PricePerNight = req.PricePerNight
	}
	if req.Available != nil {
		room.Available = *req.Available
	}

	if err := s.roomRepo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *propertyService) DeleteRoom(userID, roomID uint, isAdmin bool) error {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return errors.New("room not found")
	}

	property, err := s.repo.GetByID(room.PropertyID)
	if err != nil {
		return errors.New("property not found")
	}
	if property.OwnerID != userID && !isAdmin {
		return errors.New("not the property owner")
	}

	return s.roomRepo.Delete(roomID)
}

func (s *propertyService) ListRooms(propertyID uint) ([]domain.Room, error) {
	if _, err := s.repo.GetByID(propertyID); err != nil {
		return nil, errors.New("property not found")
	}
	return s.roomRepo.ListByProperty(propertyID)
}

// GetAvailability consulta qué habitaciones están libres en el rango dado.
// Una habitación está libre si no tiene reservas pending/confirmed solapadas.
func (s *propertyService) GetAvailability(propertyID uint, checkIn, checkOut time.Time) (*dto.AvailabilityResponse, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.New("check_out must be after check_in")
	}

	property, err := s.repo.GetByID(propertyID)
	if err != nil {
		return nil, errors.New("property not found")
	}

	rooms, err := s.roomRepo.ListByProperty(property.ID)
	if err != nil {
		return nil, err
	}

	response := &dto.AvailabilityResponse{
		PropertyID: property.ID,
		CheckIn:    checkIn.Format("2006-01-02"),
		CheckOut:   checkOut.Format("2006-01-02"),
		Rooms:      make([]dto.RoomAvailability, 0, len(rooms)),
	}

	for _, room := range rooms {
		available := room.Available
		if available {
			overlapping, err := s.reservationRepo.CountActiveOverlapping(room.ID, checkIn, checkOut, 0)
			if err != nil {
				return nil, err
			}
			available = overlapping == 0
		}

		response.Rooms = append(response.Rooms, dto.RoomAvailability{
			RoomID:    room.ID,
			RoomName:  room.Name,
			MaxGuests: room.MaxGuests,
			Price:     room.PricePerNight,
			Available: available,
		})
	}

	return response, nil
}
