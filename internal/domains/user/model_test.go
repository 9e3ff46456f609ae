package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFromDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{
		"_id":        oid,
		"name":       "John Doe",
		"email":      "john@example.com",
		"created_at": "2025-01-01T00:00:00Z",
	}

	u := FromDocument(doc)
	require.NotNil(t, u)

	assert.Equal(t, oid.Hex(), u.ID)
	assert.Len(t, u.ID, 24)
	assert.Equal(t, "John Doe", u.Name)
	assert.Equal(t, "john@example.com", u.Email)
	assert.Equal(t, "2025-01-01T00:00:00Z", u.CreatedAt)
}

func TestFromDocument_Nil(t *testing.T) {
	assert.Nil(t, FromDocument(nil))
}

func TestFromDocument_MissingFields(t *testing.T) {
	u := FromDocument(bson.M{"_id": primitive.NewObjectID()})
	require.NotNil(t, u)
	assert.Empty(t, u.Name)
	assert.Empty(t, u.Email)
}

func TestDocument_RoundTrip(t *testing.T) {
	in := &User{
		Name:      "Jane Smith",
		Email:     "jane@example.com",
		CreatedAt: "2025-01-02T00:00:00Z",
	}

	doc := in.Document()
	// _id is assigned by the store, never by the entity.
	_, hasID := doc["_id"]
	assert.False(t, hasID)

	doc["_id"] = primitive.NewObjectID()
	out := FromDocument(doc)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Email, out.Email)
	assert.Equal(t, in.CreatedAt, out.CreatedAt)
	assert.NotEmpty(t, out.ID)
}
