package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWalletStore keeps the blob as a single document keyed by wallet
// name. Insert-only writes give the same exclusive-create semantics as the
// file store: the unique _id index makes a racing second create fail.
type MongoWalletStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	name   string
}

func NewMongoWalletStore(ctx context.Context, uri, dbName, collName, walletName string) (*MongoWalletStore, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is empty")
	}
	if walletName == "" {
		return nil, errors.New("empty wallet name")
	}
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	// Verify connection quickly
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cli.Ping(pctx, nil); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, err
	}

	coll := cli.Database(dbName).Collection(collName)
	return &MongoWalletStore{client: cli, coll: coll, name: walletName}, nil
}

func (m *MongoWalletStore) Create(ctx context.Context, blob []byte) error {
	_, err := m.coll.InsertOne(ctx, bson.M{
		"_id":       m.name,
		"blob":      blob,
		"createdAt": time.Now(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return ErrWalletExists
	}
	return err
}

func (m *MongoWalletStore) Load(ctx context.Context) ([]byte, error) {
	var doc struct {
		Blob []byte `bson:"blob"`
	}
	err := m.coll.FindOne(ctx, bson.M{"_id": m.name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrWalletNotFound
	}
	return doc.Blob, err
}

func (m *MongoWalletStore) Exists(ctx context.Context) (bool, error) {
	n, err := m.coll.CountDocuments(ctx, bson.M{"_id": m.name}, options.Count().SetLimit(1))
	return n > 0, err
}

func (m *MongoWalletStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
