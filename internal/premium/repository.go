// AngelaMos | 2026
// repository.go

package premium

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]core.Document, error)
	Create(ctx context.Context, doc core.Document) (core.InsertResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (core.UpdateResult, error)
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
		return nil, core.StoreError("list premium requests", err)
	}

	out := make([]core.Document, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, core.StoreError("list premium requests", err)
	}

	return out, nil
}

func (r *repository) Create(
	ctx context.Context,
	doc core.Document,
) (core.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return core.InsertResult{}, core.StoreError("create premium request", err)
	}

	return core.NewInsertResult(res), nil
}

func (r *repository) SetStatus(
	ctx context.Context,
	id primitive.ObjectID,
	status string,
) (core.UpdateResult, error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: fieldStatus, Value: status}}}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return core.UpdateResult{}, core.StoreError("set premium status", err)
	}

	return core.NewUpdateResult(res), nil
}
