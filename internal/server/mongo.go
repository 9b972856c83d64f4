package server

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	apperrors "github.com/jgrunert/amaze/pkg/errors"
	"github.com/jgrunert/amaze/pkg/mazefile"
)

// mongoCollection is the collection holding maze documents.
const mongoCollection = "mazes"

// MongoStore persists maze documents in MongoDB.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and pings it to fail fast on bad
// configuration.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "ping mongodb")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(mongoCollection),
	}, nil
}

// Insert stores a document.
func (s *MongoStore) Insert(ctx context.Context, doc mazefile.Document) error {
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "insert maze %q", doc.ID)
	}
	return nil
}

// Get retrieves a document by id.
func (s *MongoStore) Get(ctx context.Context, id string) (mazefile.Document, error) {
	var doc mazefile.Document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return mazefile.Document{}, apperrors.New(apperrors.ErrCodeMazeNotFound, "maze %q not found", id)
	}
	if err != nil {
		return mazefile.Document{}, apperrors.Wrap(apperrors.ErrCodeInternal, err, "find maze %q", id)
	}
	return doc, nil
}

// Delete removes a document.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "delete maze %q", id)
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
