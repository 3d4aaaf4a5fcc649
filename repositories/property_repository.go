package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
)

// PropertyRepository define las operaciones de acceso a datos de propiedades
type PropertyRepository interface {
	Create(property *domain.Property) error
	GetByID(id uint) (*domain.Property, error)
	Update(property *domain.Property) error
	Delete(id uint) error
	ListByOwner(ownerID uint) ([]domain.Property, error)
	List(req dto.PropertyListRequest) ([]domain.Property, int, error)
	Search(req dto.SearchRequest) ([]domain.Property, int, error)
	UpdateRating(propertyID uint, rating float64, reviewCount int) error
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository crea una nueva instancia del repositorio
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(property *domain.Property) error {
	return r.db.Create(property).Error
}

func (r *propertyRepository) GetByID(id uint) (*domain.Property, error) {
	var property domain.Property
	err := r.db.First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("property not found")
		}
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) Update(property *domain.Property) error {
	return r.db.Save(property).Error
}

func (r *propertyRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Property{}, id).Error
}

func (r *propertyRepository) ListByOwner(ownerID uint) ([]domain.Property, error) {
	var properties []domain.Property
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&properties).Error
	return properties, err
}

// List devuelve el listado público con filtros opcionales y paginación.
// Solo muestra propiedades activas.
func (r *propertyRepository) List(req dto.PropertyListRequest) ([]domain.Property, int, error) {
	query := r.db.Model(&domain.Property{}).Where("status = ?", domain.PropertyStatusActive)

	if req.City != "" {
		query = query.Where("city = ?", req.City)
	}
	if req.Country != "" {
		query = query.Where("country = ?", req.Country)
	}
	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}
	if req.MinPrice > 0 {
		query = query.Where("price_per_night >= ?", req.MinPrice)
	}
	if req.MaxPrice > 0 {
		query = query.Where("price_per_night <= ?", req.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []domain.Property
	offset := (req.Page - 1) * req.PageSize
	err := query.Order("featured DESC, created_at DESC").
		Offset(offset).Limit(req.PageSize).Find(&properties).Error
	return properties, int(total), err
}

// Search implementa la búsqueda de texto con filtros y ordenamiento.
// El texto matchea nombre, ciudad y país.
func (r *propertyRepository) Search(req dto.SearchRequest) ([]domain.Property, int, error) {
	query := r.db.Model(&domain.Property{}).Where("status = ?", domain.PropertyStatusActive)

	if req.Query != "" {
		like := "%" + strings.TrimSpace(req.Query) + "%"
		query = query.Where("name LIKE ? OR city LIKE ? OR country LIKE ?", like, like, like)
	}
	if req.City != "" {
		query = query.Where("city = ?", req.City)
	}
	if req.Country != "" {
		query = query.Where("country = ?", req.Country)
	}
	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}
	if req.MinPrice > 0 {
		query = query.Where("price_per_night >= ?", req.MinPrice)
	}
	if req.MaxPrice > 0 {
		query = query.Where("price_per_night <= ?", req.MaxPrice)
	}
	if req.MinGuests > 0 {
		// Solo propiedades con al menos una habitación con esa capacidad
		query = query.Where("id IN (SELECT property_id FROM rooms WHERE max_guests >= ?)", req.MinGuests)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Ordenamiento con whitelist de columnas
	sortBy := req.SortBy
	switch sortBy {
	case "price_per_night", "rating", "created_at":
	default:
		sortBy = "price_per_night"
	}
	sortOrder := req.SortOrder
	if sortOrder != "desc" {
		sortOrder = "asc"
	}

	var properties []domain.Property
	offset := (req.Page - 1) * req.PageSize
	err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).
		Offset(offset).Limit(req.PageSize).Find(&properties).Error
	return properties, int(total), err
}

// UpdateRating actualiza el rating agregado de la propiedad
// (se llama al crear o actualizar reseñas)
func (r *propertyRepository) UpdateRating(propertyID uint, rating float64, reviewCount int) error {
	return r.db.Model(&domain.Property{}).Where("id = ?", propertyID).
		Updates(map[string]interface{}{
			"rating":       rating,
			"review_count": reviewCount,
		}).Error
}
