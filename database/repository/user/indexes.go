package userRepo

import (
	"errors"
	"time"

	"servlink/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned when an insert collides with the unique email index.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

// EnsureIndexes creates the unique indexes the users collection relies on.
func EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	coll := database.Collection("users")
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
