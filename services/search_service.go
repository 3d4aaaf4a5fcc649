package services

import (
	"context"
	"crypto/md5"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/repositories"
)

// SearchService define la búsqueda de propiedades con caché
// de dos niveles y el tracking de búsquedas para analytics
type SearchService interface {
	Search(ctx context.Context, request dto.SearchRequest) (*dto.SearchResponse, error)
	TrackSearch(ctx context.Context, userID uint, req dto.TrackSearchRequest) error
	PopularSearches(ctx context.Context, limit int) ([]domain.PopularSearch, error)
}

type searchService struct {
	propertyRepo  repositories.PropertyRepository
	cacheRepo     repositories.CacheRepository
	analyticsRepo repositories.SearchAnalyticsRepository
}

// NewSearchService crea una nueva instancia del servicio.
// analyticsRepo puede ser nil (el tracking se omite).
func NewSearchService(
	propertyRepo repositories.PropertyRepository,
	cacheRepo repositories.CacheRepository,
	analyticsRepo repositories.SearchAnalyticsRepository,
) SearchService {
	return &searchService{
		propertyRepo:  propertyRepo,
		cacheRepo:     cacheRepo,
		analyticsRepo: analyticsRepo,
	}
}

// generateCacheKey genera una clave de caché basada en los
// parámetros normalizados del request
func (s *searchService) generateCacheKey(request dto.SearchRequest) string {
	keyParts := []string{
		fmt.Sprintf("query:%s", request.Query),
		fmt.Sprintf("city:%s", request.City),
		fmt.Sprintf("country:%s", request.Country),
		fmt.Sprintf("type:%s", request.Type),
		fmt.Sprintf("min_price:%.2f", request.MinPrice),
		fmt.Sprintf("max_price:%.2f", request.MaxPrice),
		fmt.Sprintf("min_guests:%d", request.MinGuests),
		fmt.Sprintf("page:%d", request.Page),
		fmt.Sprintf("page_size:%d", request.PageSize),
		fmt.Sprintf("sort_by:%s", request.SortBy),
		fmt.Sprintf("sort_order:%s", request.SortOrder),
	}

	keyString := strings.Join(keyParts, "|")
	hash := md5.Sum([]byte(keyString))
	return fmt.Sprintf("search:%x", hash)
}

// Search implementa la búsqueda con caché
func (s *searchService) Search(ctx context.Context, request dto.SearchRequest) (*dto.SearchResponse, error) {
	// 1. Validar y aplicar valores por defecto
	if err := s.validateSearchRequest(&request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	// 2. Consultar caché primero
	cacheKey := s.generateCacheKey(request)
	properties, total, found := s.cacheRepo.Get(cacheKey)
	if found {
		return s.buildResponse(properties, total, request), nil
	}

	// 3. Si no hay hit, consultar la base de datos
	properties, total, err := s.propertyRepo.Search(request)
	if err != nil {
		return nil, fmt.Errorf("error searching properties: %w", err)
	}

	// 4. Guardar resultado en caché
	s.cacheRepo.Set(cacheKey, properties, total, 10*time.Minute)

	return s.buildResponse(properties, total, request), nil
}

// TrackSearch registra la búsqueda en MongoDB para estadísticas
func (s *searchService) TrackSearch(ctx context.Context, userID uint, req dto.TrackSearchRequest) error {
	if s.analyticsRepo == nil {
		return nil
	}

	query := domain.SearchQuery{
		Query:       strings.ToLower(strings.TrimSpace(req.Query)),
		City:        req.City,
		Country:     req.Country,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		ResultCount: req.ResultCount,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}

	if err := s.analyticsRepo.InsertQuery(ctx, query); err != nil {
		log.Printf("Error tracking search query %q: %v", query.Query, err)
		return err
	}
	return nil
}

// PopularSearches devuelve las búsquedas más frecuentes
// de los últimos 30 días
func (s *searchService) PopularSearches(ctx context.Context, limit int) ([]domain.PopularSearch, error) {
	if s.analyticsRepo == nil {
		return []domain.PopularSearch{}, nil
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	since := time.Now().AddDate(0, 0, -30)
	return s.analyticsRepo.PopularSearches(ctx, since, limit)
}

func (s *searchService) buildResponse(properties []domain.Property, total int, request dto.SearchRequest) *dto.SearchResponse {
	totalPages := (total + request.PageSize - 1) / request.PageSize
	return &dto.SearchResponse{
		Results:      properties,
		TotalResults: total,
		Page:         request.Page,
		PageSize:     request.PageSize,
		TotalPages:   totalPages,
	}
}

// validateSearchRequest valida los parámetros de búsqueda
// y aplica valores por defecto
func (s *searchService) validateSearchRequest(request *dto.SearchRequest) error {
	if request.Page < 1 {
		request.Page = 1
	}
	if request.PageSize < 1 {
		request.PageSize = 10
	}
	if request.PageSize > 100 {
		return fmt.Errorf("page_size must be <= 100")
	}
	if request.SortBy == "" {
		request.SortBy = "price_per_night"
	}
	if request.SortOrder == "" {
		request.SortOrder = "asc"
	}

	if request.SortOrder != "asc" && request.SortOrder != "desc" {
		return fmt.Errorf("invalid sort_order: must be 'asc' or 'desc'")
	}
	if request.MinPrice < 0 {
		return fmt.Errorf("min_price cannot be negative")
	}
	if request.MaxPrice < 0 {
		return fmt.Errorf("max_price cannot be negative")
	}
	if request.MinPrice > 0 && request.MaxPrice > 0 && request.MinPrice > request.MaxPrice {
		return fmt.Errorf("min_price cannot be greater than max_price")
	}
	if request.MinGuests < 0 {
		return fmt.Errorf("min_guests cannot be negative")
	}

	return nil
}
