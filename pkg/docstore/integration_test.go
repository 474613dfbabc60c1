package docstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestStore_RoundTrip needs a live server, e.g.
// PORTFOLIO_TEST_MONGO_URL=mongodb://localhost:27017 go test ./pkg/docstore/
func TestStore_RoundTrip(t *testing.T) {
	url := os.Getenv("PORTFOLIO_TEST_MONGO_URL")
	if url == "" {
		t.Skip("PORTFOLIO_TEST_MONGO_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	name := "portfolio_test_" + primitive.NewObjectID().Hex()
	store, err := New(ctx, Config{URL: url, Name: name})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.db.Drop(context.Background())
		_ = store.Close(context.Background())
	})

	require.NoError(t, store.Ping(ctx))

	id, err := store.CreateDocument(ctx, "message", bson.M{"name": "A", "email": "a@example.com", "content": "hi"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	docs, err := store.GetDocuments(ctx, "message", bson.M{"_id": oid}, 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a@example.com", docs[0]["email"])
	assert.Contains(t, docs[0], FieldCreatedAt)

	names, err := store.ListCollectionNames(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "message")
}
