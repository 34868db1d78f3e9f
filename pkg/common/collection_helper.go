package common

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionHelper wraps the subset of mongo collection operations the
// key-value layer needs, so storage code can be tested against gomock.
type CollectionHelper interface {
	FindOne(ctx context.Context, filter interface{},
		opts ...*options.FindOneOptions) SingleResultHelper
	UpdateOne(ctx context.Context, filter interface{}, update interface{},
		opts ...*options.UpdateOptions) (UpdateResultHelper, error)
	DeleteOne(ctx context.Context, filter interface{},
		opts ...*options.DeleteOptions) (DeleteResultHelper, error)
}

type SingleResultHelper interface {
	Decode(v interface{}) error
}

type UpdateResultHelper interface {
	GetModifiedCount() int64
}

type DeleteResultHelper interface {
	GetDeletedCount() int64
}

type MongoCollection struct {
	Collection *mongo.Collection
}

func (mc *MongoCollection) FindOne(ctx context.Context, filter interface{},
	opts ...*options.FindOneOptions) SingleResultHelper {
	return &MongoSingleResult{sr: mc.Collection.FindOne(ctx, filter, opts...)}
}

type MongoSingleResult struct {
	sr *mongo.SingleResult
}

func (msr *MongoSingleResult) Decode(v interface{}) error {
	return msr.sr.Decode(v)
}

func (mc *MongoCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{},
	opts ...*options.UpdateOptions) (UpdateResultHelper, error) {
	res, err := mc.Collection.UpdateOne(ctx, filter, update, opts...)
	return &MongoUpdateResult{res: res}, err
}

type MongoUpdateResult struct {
	res *mongo.UpdateResult
}

func (r *MongoUpdateResult) GetModifiedCount() int64 {
	return r.res.ModifiedCount
}

func (mc *MongoCollection) DeleteOne(ctx context.Context, filter interface{},
	opts ...*options.DeleteOptions) (DeleteResultHelper, error) {
	res, err := mc.Collection.DeleteOne(ctx, filter, opts...)
	return &MongoDeleteResult{res: res}, err
}

type MongoDeleteResult struct {
	res *mongo.DeleteResult
}

func (r *MongoDeleteResult) GetDeletedCount() int64 {
	return r.res.DeletedCount
}
