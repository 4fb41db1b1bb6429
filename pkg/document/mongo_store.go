package document

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCollection is used when no collection name is configured.
const DefaultCollection = "documents"

// record is the stored shape of a document.
type record struct {
	Name      string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps one record per document, keyed by name.
type MongoStore struct {
	coll *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// Save replaces the record or inserts it.
func (s *MongoStore) Save(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return ErrEmptyName
	}

	doc := record{
		Name:      name,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": name}, doc, opts); err != nil {
		return errors.Wrap(err, "failed to upsert document")
	}
	return nil
}

func (s *MongoStore) Load(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	var doc record
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(ErrNotFound, name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find document")
	}
	return doc.Data, nil
}

func (s *MongoStore) Remove(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return errors.Wrap(err, "failed to delete document")
	}
	if res.DeletedCount == 0 {
		return errors.Wrap(ErrNotFound, name)
	}
	return nil
}

func (s *MongoStore) Exists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, ErrEmptyName
	}

	n, err := s.coll.CountDocuments(ctx, bson.M{"_id": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "failed to count documents")
	}
	return n > 0, nil
}

// CreateDir is a no-op, collections are created on first write.
func (s *MongoStore) CreateDir(context.Context, string, bool) error {
	return nil
}
