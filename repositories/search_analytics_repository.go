package repositories

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
)

// SearchAnalyticsRepository guarda las búsquedas en MongoDB
// para estadísticas de búsquedas populares
type SearchAnalyticsRepository interface {
	InsertQuery(ctx context.Context, query domain.SearchQuery) error
	// PopularSearches agrega las búsquedas de los últimos días
	// por frecuencia, en orden descendente
	PopularSearches(ctx context.Context, since time.Time, limit int) ([]domain.PopularSearch, error)
}

type searchAnalyticsRepository struct {
	collection *mongo.Collection
}

// NewSearchAnalyticsRepository crea una nueva instancia del repositorio
func NewSearchAnalyticsRepository(client *mongo.Client, database string) SearchAnalyticsRepository {
	collection := client.Database(database).Collection("search_queries")
	log.Printf("Search analytics repository initialized with database %s", database)
	return &searchAnalyticsRepository{collection: collection}
}

func (r *searchAnalyticsRepository) InsertQuery(ctx context.Context, query domain.SearchQuery) error {
	_, err := r.collection.InsertOne(ctx, query)
	return err
}

func (r *searchAnalyticsRepository) PopularSearches(ctx context.Context, since time.Time, limit int) ([]domain.PopularSearch, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "created_at", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$query"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []domain.PopularSearch
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
