package persistence

import (
	"context"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type redisGateway struct {
	redisRepo contracts.RedisRepository
	prefix    string
	Log       *zap.Logger
}

// NewRedisGateway keeps every collection under prefix+key without expiry.
func NewRedisGateway(repo contracts.RedisRepository, prefix string, logger *zap.Logger) contracts.PersistenceGateway {
	return &redisGateway{
		redisRepo: repo,
		prefix:    prefix,
		Log:       logger,
	}
}

func (g *redisGateway) Load(ctx context.Context, key string) ([]byte, bool, error) {
	redisKey := g.prefix + key
	payload, found, err := g.redisRepo.GetBytes(ctx, redisKey)
	if err != nil {
		g.Log.Error("redisGateway.Load error calling redisRepo.GetBytes",
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return nil, false, err
	}
	return payload, found, nil
}

func (g *redisGateway) Save(ctx context.Context, key string, blob []byte) error {
	redisKey := g.prefix + key
	err := g.redisRepo.SetBytes(ctx, redisKey, blob, 0)
	if err != nil {
		g.Log.Error("redisGateway.Save error calling redisRepo.SetBytes",
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return err
	}
	return nil
}
