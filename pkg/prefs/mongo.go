package prefs

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gridboard/gridboard/pkg/retry"
)

// MongoStore is a MongoDB-backed layout store for the hosted platform.
// Each layout document lives in one collection, keyed by session key.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures a MongoDB store.
type MongoConfig struct {
	URI        string
	Database   string // defaults to "gridboard"
	Collection string // defaults to "layouts"
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "gridboard"
	}
	if cfg.Collection == "" {
		cfg.Collection = "layouts"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, key string) (*LayoutDocument, error) {
	var doc LayoutDocument
	err := s.coll.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &retry.TransientError{Err: fmt.Errorf("mongo find: %w", err)}
	}
	return &doc, nil
}

func (s *MongoStore) Update(ctx context.Context, key string, patch Patch) (*LayoutDocument, error) {
	doc, err := s.Get(ctx, key)
	if err == ErrNotFound {
		doc = &LayoutDocument{Key: key}
	} else if err != nil {
		return nil, err
	}

	patch.Apply(doc, time.Now().UTC())

	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"key": key}, doc, opts); err != nil {
		return nil, &retry.TransientError{Err: fmt.Errorf("mongo replace: %w", err)}
	}
	return doc, nil
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"key": key}); err != nil {
		return &retry.TransientError{Err: fmt.Errorf("mongo delete: %w", err)}
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
