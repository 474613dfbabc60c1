// Package testkit holds in-memory fakes shared by package tests.
package testkit

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore is an in-memory document store. It supports nil filters and
// filters on "_id" only.
type MemStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M

	// Err, when set, is returned by every operation.
	Err error
	// ListErr fails ListCollectionNames only, leaving Ping healthy.
	ListErr error
	// Creates and Pings count calls for assertions.
	Creates int
	Pings   int

	DBName string
}

func NewMemStore() *MemStore {
	return &MemStore{collections: map[string][]bson.M{}, DBName: "portfolio_test"}
}

func (s *MemStore) CreateDocument(_ context.Context, collection string, payload any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Creates++
	if s.Err != nil {
		return "", s.Err
	}

	raw, err := bson.Marshal(payload)
	if err != nil {
		return "", err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	now := primitive.NewDateTimeFromTime(time.Now().UTC())
	doc["_id"] = id
	doc["created_at"] = now
	doc["updated_at"] = now

	s.collections[collection] = append(s.collections[collection], doc)
	return id.Hex(), nil
}

func (s *MemStore) GetDocuments(_ context.Context, collection string, filter any, limit int64) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	var wantID any
	if f, ok := filter.(bson.M); ok {
		wantID = f["_id"]
	}

	out := []bson.M{}
	for _, doc := range s.collections[collection] {
		if wantID != nil && doc["_id"] != wantID {
			continue
		}
		out = append(out, doc)
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (s *MemStore) Name() string { return s.DBName }

func (s *MemStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Pings++
	return s.Err
}

func (s *MemStore) ListCollectionNames(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

// Count returns how many documents collection holds.
func (s *MemStore) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}
