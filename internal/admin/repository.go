// AngelaMos | 2026
// repository.go

package admin

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type Repository interface {
	Counts(ctx context.Context) (Counts, error)
	Profit(ctx context.Context) (float64, error)
}

type repository struct {
	db *mongo.Database
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Counts(ctx context.Context) (Counts, error) {
	var c Counts

	targets := []struct {
		name string
		dst  *int64
	}{
		{core.CollectionUsers, &c.Users},
		{core.CollectionBiodatas, &c.Biodatas},
		{core.CollectionPremium, &c.Premium},
		{core.CollectionFavourite, &c.Favourite},
		{core.CollectionInvoice, &c.Invoice},
	}

	for _, t := range targets {
		n, err := r.db.Collection(t.name).EstimatedDocumentCount(ctx)
		if err != nil {
			return Counts{}, core.StoreError("count "+t.name, err)
		}
		*t.dst = n
	}

	return c, nil
}

// Profit sums invoice prices on the server. An empty collection yields 0.
func (r *repository) Profit(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}

	cursor, err := r.db.Collection(core.CollectionInvoice).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, core.StoreError("sum invoice prices", err)
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, core.StoreError("sum invoice prices", err)
	}

	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
