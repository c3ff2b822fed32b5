// AngelaMos | 2026
// repository.go

package user

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
	List(ctx context.Context) ([]User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) (core.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (core.DeleteResult, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (core.UpdateResult, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

// EnsureIndexes creates the unique email index that backs the sign-up
// existence check.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return core.StoreError("create users email index", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, core.StoreError("list users", err)
	}

	users := make([]User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, core.StoreError("list users", err)
	}

	return users, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	var user User
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, core.StoreError("get user by email", err)
	}

	return &user, nil
}

func (r *repository) Create(
	ctx context.Context,
	user *User,
) (core.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return core.InsertResult{}, core.StoreError("create user", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return core.NewInsertResult(res), nil
}

func (r *repository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) (core.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return core.DeleteResult{}, core.StoreError("delete user", err)
	}

	return core.NewDeleteResult(res), nil
}

func (r *repository) SetRole(
	ctx context.Context,
	id primitive.ObjectID,
	role string,
) (core.UpdateResult, error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return core.UpdateResult{}, core.StoreError("set user role", err)
	}

	return core.NewUpdateResult(res), nil
}
