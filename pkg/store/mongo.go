package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

// mongoDocID is the fixed _id of the single collection document.
const mongoDocID = "stakemap-collection"

// mongoDoc wraps the collection for native bson storage. The model types
// carry bson tags so the document stays readable with normal Mongo tooling.
type mongoDoc struct {
	ID      string         `bson:"_id"`
	Maps    []stakemap.Map `bson:"maps"`
	Updated time.Time      `bson:"updated"`
}

// MongoBackend persists the collection as one document in a MongoDB
// collection, upserted whole on every save.
type MongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoBackend connects to uri and uses database/collection for the
// collection document.
func NewMongoBackend(ctx context.Context, uri, database, collection string) (*MongoBackend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", uri, err)
	}
	return &MongoBackend{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

func (b *MongoBackend) Load(ctx context.Context) ([]stakemap.Map, bool, error) {
	var doc mongoDoc
	err := b.coll.FindOne(ctx, bson.M{"_id": mongoDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("find %s: %w", mongoDocID, err)
	}
	return doc.Maps, true, nil
}

func (b *MongoBackend) Save(ctx context.Context, maps []stakemap.Map) error {
	doc := mongoDoc{ID: mongoDocID, Maps: maps, Updated: time.Now().UTC()}
	_, err := b.coll.ReplaceOne(ctx, bson.M{"_id": mongoDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", mongoDocID, err)
	}
	return nil
}

func (b *MongoBackend) Clear(ctx context.Context) error {
	if _, err := b.coll.DeleteOne(ctx, bson.M{"_id": mongoDocID}); err != nil {
		return fmt.Errorf("delete %s: %w", mongoDocID, err)
	}
	return nil
}

func (b *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return b.client.Disconnect(ctx)
}

var _ Backend = (*MongoBackend)(nil)
