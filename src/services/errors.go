package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors let controllers map service failures onto the right
// HTTP status without string matching.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountBlocked     = errors.New("account blocked")
	ErrNotFound           = errors.New("not found")
)

// ensureExists maps a missing document onto ErrNotFound. Used by the
// partial-update paths when the request carried no fields to set.
func ensureExists(ctx context.Context, coll *mongo.Collection, id string) error {
	err := coll.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}
