package dto

import "github.com/devcarkson/reserve-with-ease-backend/domain"

// SearchRequest representa los parámetros de búsqueda de propiedades
type SearchRequest struct {
	Query     string  `json:"query" form:"query"`
	City      string  `json:"city" form:"city"`
	Country   string  `json:"country" form:"country"`
	Type      string  `json:"type" form:"type"`
	MinPrice  float64 `json:"min_price" form:"min_price"`
	MaxPrice  float64 `json:"max_price" form:"max_price"`
	MinGuests int     `json:"min_guests" form:"min_guests"`
	Page      int     `json:"page" form:"page"`
	PageSize  int     `json:"page_size" form:"page_size"`
	SortBy    string  `json:"sort_by" form:"sort_by"`
	SortOrder string  `json:"sort_order" form:"sort_order"`
}

// SearchResponse representa la respuesta de una búsqueda de propiedades
type SearchResponse struct {
	Results      []domain.Property `json:"results"`
	TotalResults int               `json:"total_results"`
	Page         int               `json:"page"`
	PageSize     int               `json:"page_size"`
	TotalPages   int               `json:"total_pages"`
}

// TrackSearchRequest registra una búsqueda para analytics
type TrackSearchRequest struct {
	Query       string  `json:"query" binding:"required"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	ResultCount int     `json:"result_count"`
}
