package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	assert.True(t, IsDuplicateKey(dup))

	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("connection reset")))
	assert.False(t, IsDuplicateKey(mongo.ErrNoDocuments))
}

// TestEnsureIndexes_Idempotent needs a live store; set TEST_MONGO_URI
// to run it. Declaring the same indexes again must be a no-op, which
// is what makes EnsureIndexes safe to run on every startup.
func TestEnsureIndexes_Idempotent(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	m, err := Connect(ctx, &Config{
		URI:            uri,
		Database:       fmt.Sprintf("qrfood_test_%d", time.Now().UnixNano()),
		ConnectTimeout: 10 * time.Second,
		PingTimeout:    2 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = m.Database().Drop(ctx)
		_ = m.Close(ctx)
	})

	// Connect already declared the indexes once; a second and third
	// declaration must succeed without error.
	require.NoError(t, m.EnsureIndexes(ctx))
	require.NoError(t, m.EnsureIndexes(ctx))

	cur, err := m.Collection(UsersCollection).Indexes().List(ctx)
	require.NoError(t, err)

	var specs []map[string]interface{}
	require.NoError(t, cur.All(ctx, &specs))

	// _id plus exactly one email index, not one per declaration
	emailIndexes := 0
	for _, spec := range specs {
		if spec["name"] == "email_1" {
			emailIndexes++
		}
	}
	assert.Equal(t, 1, emailIndexes)
}
