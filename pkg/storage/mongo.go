package storage

import (
	"context"

	"anonfeed/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoKV keeps one document per key: {_id: <key>, value: <json string>}.
type MongoKV struct {
	collection common.CollectionHelper
}

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

func NewMongoKV(client *mongo.Client, db, collection string) *MongoKV {
	return &MongoKV{collection: &common.MongoCollection{Collection: client.Database(db).Collection(collection)}}
}

func (kv *MongoKV) Get(ctx context.Context, key string) (string, error) {
	res := kv.collection.FindOne(ctx, bson.M{"_id": key})

	doc := &kvDocument{}
	err := res.Decode(doc)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return doc.Value, nil
}

func (kv *MongoKV) Set(ctx context.Context, key, value string) error {
	_, err := kv.collection.UpdateOne(ctx, bson.M{"_id": key},
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "value", Value: value}}},
		},
		options.Update().SetUpsert(true))

	return err
}

func (kv *MongoKV) Remove(ctx context.Context, key string) error {
	_, err := kv.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
