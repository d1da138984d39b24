package repository

import (
	"context"
	"errors"

	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository handles the users collection
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// FindByEmail finds a user by email, returning (nil, nil) when no user exists
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and returns the store-assigned id.
// Callers check email uniqueness first; check-then-insert is not atomic,
// so concurrent duplicate registrations rely on the store's unique index.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (string, error) {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}
