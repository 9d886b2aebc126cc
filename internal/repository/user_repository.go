package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"craftquiz/internal/model"
)

// ErrDuplicateEmail is returned by Create when the email unique index rejects
// the insert.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository builds a Mongo-backed repository.
func NewUserRepository(database *mongo.Database) UserRepository {
	return &userRepository{users: database.Collection("users")}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	_, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail looks up a user by exact email match. Absence is not an error:
// a missing user is reported as (nil, nil).
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}
