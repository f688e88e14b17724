package persistence

import (
	"context"
	"errors"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoGateway struct {
	Collection *mongo.Collection
	prefix     string
	Log        *zap.Logger
}

func NewMongoGateway(db *mongo.Database, prefix string, logger *zap.Logger) contracts.PersistenceGateway {
	return &mongoGateway{
		Collection: db.Collection(constvars.MongoCollectionBlobs),
		prefix:     prefix,
		Log:        logger,
	}
}

func (g *mongoGateway) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var blob models.Blob
	filter := bson.M{"_id": g.prefix + key}
	err := g.Collection.FindOne(ctx, filter).Decode(&blob)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		g.Log.Error("mongoGateway.Load error finding document",
			zap.String(constvars.LoggingPersistenceKey, key),
			zap.Error(err),
		)
		return nil, false, exceptions.ErrMongoDBFindDocument(err)
	}
	return blob.Payload, true, nil
}

func (g *mongoGateway) Save(ctx context.Context, key string, payload []byte) error {
	blob := models.NewBlob(g.prefix+key, payload)
	filter := bson.M{"_id": blob.Key}
	opts := options.Replace().SetUpsert(true)
	_, err := g.Collection.ReplaceOne(ctx, filter, blob, opts)
	if err != nil {
		g.Log.Error("mongoGateway.Save error upserting document",
			zap.String(constvars.LoggingPersistenceKey, key),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}
