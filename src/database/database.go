package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the service.
const (
	ColUsers         = "users"
	ColDomains       = "domains"
	ColSubDomains    = "subdomains"
	ColControls      = "controls"
	ColMetrics       = "metrics"
	ColQuestions     = "questions"
	ColAssessments   = "user_assessments"
	ColResponses     = "user_responses"
	ColLoginAttempts = "login_attempts"
)

// Mongo owns the MongoDB client for the lifetime of the process. It is
// constructed once in main and handed to every service that needs data
// access, instead of being kept as package state.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB using MONGO_URI / DB_NAME and verifies the
// connection with a ping against the primary.
func Connect(ctx context.Context) (*Mongo, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI environment variable not set")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "secassess"
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(pingCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// NewWithDatabase wraps an already-connected database handle. Lets
// tests run services and middleware against mock deployments.
func NewWithDatabase(db *mongo.Database) *Mongo {
	return &Mongo{client: db.Client(), db: db}
}

// Collection returns a handle for the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Database exposes the underlying database handle.
func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// Disconnect releases the client. Called once at shutdown.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
