package user

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the canonical public shape of a user record.
//
// ID is the store-assigned identifier rendered as a 24-character hex
// string; it is generated on insert and never reused. CreatedAt is an
// RFC 3339 UTC timestamp stamped by the service at creation. Records
// are immutable after creation.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// FromDocument translates a raw store document into the public shape,
// converting the internal ObjectID into its hex form.
func FromDocument(doc bson.M) *User {
	if doc == nil {
		return nil
	}

	u := &User{}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		u.ID = oid.Hex()
	}
	if v, ok := doc["name"].(string); ok {
		u.Name = v
	}
	if v, ok := doc["email"].(string); ok {
		u.Email = v
	}
	if v, ok := doc["created_at"].(string); ok {
		u.CreatedAt = v
	}
	return u
}

// Document builds the store representation of a user about to be
// inserted. The _id is assigned by the store.
func (u *User) Document() bson.M {
	return bson.M{
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}
}
