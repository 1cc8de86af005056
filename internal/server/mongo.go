package server

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xinfuwcx/tieback/pkg/errors"
)

const layoutCollection = "layouts"

// MongoStore persists layouts in MongoDB for multi-replica deployments.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and prepares the layout collection with
// an index on creation time for listing.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongodb")
	}

	coll := client.Database(database).Collection(layoutCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create index")
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Insert stores a layout.
func (s *MongoStore) Insert(ctx context.Context, layout *StoredLayout) error {
	if _, err := s.coll.InsertOne(ctx, layout); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "insert layout")
	}
	return nil
}

// Get returns a stored layout by id.
func (s *MongoStore) Get(ctx context.Context, id string) (*StoredLayout, error) {
	var layout StoredLayout
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&layout)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeLayoutNotFound, "layout not found: %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "find layout")
	}
	return &layout, nil
}

// List returns summaries of the most recent layouts, newest first.
func (s *MongoStore) List(ctx context.Context, limit int) ([]LayoutSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list layouts")
	}
	defer cursor.Close(ctx)

	var summaries []LayoutSummary
	for cursor.Next(ctx) {
		var layout StoredLayout
		if err := cursor.Decode(&layout); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode layout")
		}
		summaries = append(summaries, summarize(&layout))
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "iterate layouts")
	}
	return summaries, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements LayoutStore.
var _ LayoutStore = (*MongoStore)(nil)
