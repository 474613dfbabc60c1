// Package docstore isolates the application from the document database. It
// stores schema-flexible documents in named collections.
package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Alijeyrad/portfolio_backend/config"
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Store wraps a single client and database handle. It is safe for concurrent use.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// NewFromCentral opens a store from central config
func NewFromCentral(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	return New(ctx, FromCentralConfig(cfg))
}

// New connects to the database. The driver dials lazily, so an unreachable
// server surfaces on the first operation rather than here.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.ConnectTimeout()).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout())
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("docstore connect: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Name), now: time.Now}, nil
}

// NewFromDatabase wraps an existing database handle.
func NewFromDatabase(db *mongo.Database) *Store {
	return &Store{client: db.Client(), db: db, now: time.Now}
}

// Name returns the database name.
func (s *Store) Name() string {
	return s.db.Name()
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// ListCollectionNames enumerates the collections of the database.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

// CreateDocument inserts payload into collection, stamping created_at and
// updated_at, and returns the store-assigned id.
func (s *Store) CreateDocument(ctx context.Context, collection string, payload any) (string, error) {
	if collection == "" {
		return "", ErrEmptyName
	}

	doc, err := toDocument(payload)
	if err != nil {
		return "", fmt.Errorf("docstore encode %s: %w", collection, err)
	}

	now := s.now().UTC()
	doc[FieldCreatedAt] = now
	doc[FieldUpdatedAt] = now

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("docstore insert %s: %w", collection, err)
	}

	return idString(res.InsertedID), nil
}

// GetDocuments returns documents from collection matching filter. A nil
// filter matches everything and limit <= 0 means no limit.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter any, limit int64) ([]bson.M, error) {
	if collection == "" {
		return nil, ErrEmptyName
	}
	if filter == nil {
		filter = bson.D{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("docstore find %s: %w", collection, err)
	}

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("docstore decode %s: %w", collection, err)
	}
	return docs, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func toDocument(payload any) (bson.M, error) {
	if m, ok := payload.(bson.M); ok {
		out := make(bson.M, len(m)+2)
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}

	raw, err := bson.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
