// AngelaMos | 2026
// repository.go

package favourite

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
	Delete(ctx context.Context, id primitive.ObjectID) (core.DeleteResult, error)
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
		return nil, core.StoreError("list favourites", err)
	}

	out := make([]core.Document, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, core.StoreError("list favourites", err)
	}

	return out, nil
}

func (r *repository) Create(
	ctx context.Context,
	doc core.Document,
) (core.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return core.InsertResult{}, core.StoreError("create favourite", err)
	}

	return core.NewInsertResult(res), nil
}

func (r *repository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) (core.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return core.DeleteResult{}, core.StoreError("delete favourite", err)
	}

	return core.NewDeleteResult(res), nil
}
