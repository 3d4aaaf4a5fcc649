package domain

import "time"

// SearchQuery representa una búsqueda registrada para analytics.
// Se guarda en MongoDB, no en MySQL.
type SearchQuery struct {
	Query       string    `bson:"query" json:"query"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	Country     string    `bson:"country,omitempty" json:"country,omitempty"`
	MinPrice    float64   `bson:"min_price,omitempty" json:"min_price,omitempty"`
	MaxPrice    float64   `bson:"max_price,omitempty" json:"max_price,omitempty"`
	ResultCount int       `bson:"result_count" json:"result_count"`
	UserID      uint      `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// PopularSearch es una búsqueda agregada por frecuencia
type PopularSearch struct {
	Query string `bson:"_id" json:"query"`
	Count int    `bson:"count" json:"count"`
}
