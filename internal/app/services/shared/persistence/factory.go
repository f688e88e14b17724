package persistence

import (
	"database/sql"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Backends carries the clients a gateway may be built on. Only the one
// matching the selected driver has to be set.
type Backends struct {
	RedisRepository contracts.RedisRepository
	MongoDB         *mongo.Database
	PostgresDB      *sql.DB
}

func NewPersistenceGateway(driver, prefix string, backends Backends, logger *zap.Logger) (contracts.PersistenceGateway, error) {
	logger.Info("persistence gateway selected",
		zap.String(constvars.LoggingPersistenceDriverKey, driver),
	)

	switch driver {
	case constvars.PersistenceDriverRedis:
		if backends.RedisRepository == nil {
			break
		}
		return NewRedisGateway(backends.RedisRepository, prefix, logger), nil
	case constvars.PersistenceDriverMongo:
		if backends.MongoDB == nil {
			break
		}
		return NewMongoGateway(backends.MongoDB, prefix, logger), nil
	case constvars.PersistenceDriverPostgres:
		if backends.PostgresDB == nil {
			break
		}
		return NewPostgresGateway(backends.PostgresDB, prefix, logger), nil
	case constvars.PersistenceDriverMemory:
		return NewMemoryGateway(), nil
	}
	return nil, exceptions.ErrPersistenceUnknownDriver(driver)
}
