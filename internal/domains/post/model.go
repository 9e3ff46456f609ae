package post

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the canonical public shape of a post record.
//
// AuthorID carries the external id of the authoring user as a plain
// string; there is no foreign key at the storage layer, the reference
// is checked by the service at creation time.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

// FromDocument translates a raw store document into the public shape.
func FromDocument(doc bson.M) *Post {
	if doc == nil {
		return nil
	}

	p := &Post{}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	if v, ok := doc["title"].(string); ok {
		p.Title = v
	}
	if v, ok := doc["content"].(string); ok {
		p.Content = v
	}
	if v, ok := doc["author_id"].(string); ok {
		p.AuthorID = v
	}
	if v, ok := doc["created_at"].(string); ok {
		p.CreatedAt = v
	}
	return p
}

// Document builds the store representation of a post about to be
// inserted. The _id is assigned by the store.
func (p *Post) Document() bson.M {
	return bson.M{
		"title":      p.Title,
		"content":    p.Content,
		"author_id":  p.AuthorID,
		"created_at": p.CreatedAt,
	}
}
