package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/exceptions"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type postgresGateway struct {
	DB          *sql.DB
	prefix      string
	selectQuery string
	upsertQuery string
	Log         *zap.Logger
}

func NewPostgresGateway(db *sql.DB, prefix string, logger *zap.Logger) contracts.PersistenceGateway {
	table := pq.QuoteIdentifier(constvars.PostgresTableBlobs)
	return &postgresGateway{
		DB:          db,
		prefix:      prefix,
		selectQuery: fmt.Sprintf("SELECT payload FROM %s WHERE key = $1", table),
		upsertQuery: fmt.Sprintf(
			"INSERT INTO %s (key, payload, updated_at) VALUES ($1, $2, $3) "+
				"ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at",
			table,
		),
		Log: logger,
	}
}

func (g *postgresGateway) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := g.DB.QueryRowContext(ctx, g.selectQuery, g.prefix+key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		g.Log.Error("postgresGateway.Load error querying blob",
			zap.String(constvars.LoggingPersistenceKey, key),
			zap.Error(err),
		)
		return nil, false, exceptions.ErrPostgresDBFindData(err)
	}
	return payload, true, nil
}

func (g *postgresGateway) Save(ctx context.Context, key string, payload []byte) error {
	_, err := g.DB.ExecContext(ctx, g.upsertQuery, g.prefix+key, payload, time.Now())
	if err != nil {
		g.Log.Error("postgresGateway.Save error upserting blob",
			zap.String(constvars.LoggingPersistenceKey, key),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpsertData(err)
	}
	return nil
}
