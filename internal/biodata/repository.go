// AngelaMos | 2026
// repository.go

package biodata

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]core.Document, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (core.Document, error)
	Create(ctx context.Context, doc core.Document) (core.InsertResult, error)
	SetFavourite(ctx context.Context, id primitive.ObjectID) (core.UpdateResult, error)
	Replace(ctx context.Context, id primitive.ObjectID, doc core.Document) (core.UpdateResult, error)
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
		return nil, core.StoreError("list biodatas", err)
	}

	out := make([]core.Document, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, core.StoreError("list biodatas", err)
	}

	return out, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (core.Document, error) {
	var doc core.Document
	err := r.coll.FindOne(ctx, byID(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, core.StoreError("get biodata", err)
	}

	return doc, nil
}

func (r *repository) Create(
	ctx context.Context,
	doc core.Document,
) (core.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return core.InsertResult{}, core.StoreError("create biodata", err)
	}

	return core.NewInsertResult(res), nil
}

func (r *repository) SetFavourite(
	ctx context.Context,
	id primitive.ObjectID,
) (core.UpdateResult, error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: fieldFavourite, Value: true}}}}

	res, err := r.coll.UpdateOne(ctx, byID(id), update)
	if err != nil {
		return core.UpdateResult{}, core.StoreError("set biodata favourite", err)
	}

	return core.NewUpdateResult(res), nil
}

func (r *repository) Replace(
	ctx context.Context,
	id primitive.ObjectID,
	doc core.Document,
) (core.UpdateResult, error) {
	update := bson.D{{Key: "$set", Value: profileUpdate(doc)}}

	res, err := r.coll.UpdateOne(
		ctx,
		byID(id),
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return core.UpdateResult{}, core.StoreError("replace biodata", err)
	}

	return core.NewUpdateResult(res), nil
}

func (r *repository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) (core.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return core.DeleteResult{}, core.StoreError("delete biodata", err)
	}

	return core.NewDeleteResult(res), nil
}

// profileUpdate projects doc onto the profile allow-list. Keys the caller
// left out are written as null.
func profileUpdate(doc core.Document) bson.D {
	return core.Pick(doc, profileKeys)
}

func byID(id primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}
