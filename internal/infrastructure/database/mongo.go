package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"qrfood-backend/pkg/logger"
)

// Collection names used by this service.
const (
	UsersCollection = "users"
	PostsCollection = "posts"
)

// Config holds everything needed to reach the document store.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	PingTimeout    time.Duration
}

// Mongo wraps the MongoDB client and the named database handle.
// It is the only component that touches raw documents; everything
// above it works with entities.
//
// The underlying driver maintains its own connection pool and is
// safe for concurrent use, so no extra locking happens here.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	config *Config
}

// Connect establishes the connection, verifies liveness with a ping
// and declares the indexes the service relies on. It is called once
// at process start; the returned handle is shared for the process
// lifetime.
func Connect(ctx context.Context, cfg *Config) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach mongodb at %s: %w", cfg.URI, err)
	}

	m := &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
		config: cfg,
	}

	if err := m.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("Connected to MongoDB", map[string]interface{}{
		"database": cfg.Database,
	})

	return m, nil
}

// EnsureIndexes declares the required indexes: a unique index on
// users.email and a non-unique index on posts.author_id. Re-declaring
// an existing index is a no-op on the server side, so this is safe to
// call on every startup.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique index on %s.email: %w", UsersCollection, err)
	}

	_, err = m.db.Collection(PostsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "author_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create index on %s.author_id: %w", PostsCollection, err)
	}

	return nil
}

// FindAll returns every document in the collection, in store order.
func (m *Mongo) FindAll(ctx context.Context, collection string) ([]bson.M, error) {
	cur, err := m.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read %s cursor: %w", collection, err)
	}

	return docs, nil
}

// FindByID looks a document up by its external hex id. A malformed id
// and a well-formed but absent id are observably identical: both
// return (nil, nil). Callers treat nil as "not found".
func (m *Mongo) FindByID(ctx context.Context, collection, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc bson.M
	err = m.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by id: %w", collection, err)
	}

	return doc, nil
}

// InsertOne writes the document and returns it merged with the
// store-assigned _id. The error is returned unwrapped so callers can
// inspect it with IsDuplicateKey.
func (m *Mongo) InsertOne(ctx context.Context, collection string, doc bson.M) (bson.M, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	out["_id"] = res.InsertedID

	return out, nil
}

// Exists reports whether at least one document matches the filter.
func (m *Mongo) Exists(ctx context.Context, collection string, filter bson.M) (bool, error) {
	n, err := m.db.Collection(collection).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check existence in %s: %w", collection, err)
	}
	return n > 0, nil
}

// Count returns the number of documents in the collection.
func (m *Mongo) Count(ctx context.Context, collection string) (int64, error) {
	n, err := m.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return n, nil
}

// HealthCheck verifies the store is still reachable.
func (m *Mongo) HealthCheck(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, m.config.PingTimeout)
	defer cancel()
	return m.client.Ping(pingCtx, readpref.Primary())
}

// Collection exposes a raw collection handle for maintenance tooling
// (the seeder's reset). Request-path code goes through the typed
// operations above.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Database exposes the database handle for diagnostics.
func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// Close releases the client and its pooled connections.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// IsDuplicateKey reports whether err is a storage-level unique-index
// rejection. The unique index on users.email is the authority for
// email uniqueness; the service-level pre-check only produces a
// friendlier error for the common case.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
