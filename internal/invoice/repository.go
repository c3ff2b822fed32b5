// AngelaMos | 2026
// repository.go

package invoice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]core.Document, error)
	Create(ctx context.Context, doc core.Document) (core.InsertResult, error)
	FirstByEmail(ctx context.Context, email string) (core.Document, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

func (r *repository) List(ctx context.Context) ([]core.Document, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, core.StoreError("list invoices", err)
	}

	out := make([]core.Document, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, core.StoreError("list invoices", err)
	}

	return out, nil
}

func (r *repository) Create(
	ctx context.Context,
	doc core.Document,
) (core.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return core.InsertResult{}, core.StoreError("create invoice", err)
	}

	return core.NewInsertResult(res), nil
}

// FirstByEmail returns the first invoice in natural order for email.
func (r *repository) FirstByEmail(
	ctx context.Context,
	email string,
) (core.Document, error) {
	var inv core.Document
	err := r.coll.FindOne(ctx, bson.D{{Key: fieldEmail, Value: email}}).Decode(&inv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, core.StoreError("find invoice by email", err)
	}

	return inv, nil
}
