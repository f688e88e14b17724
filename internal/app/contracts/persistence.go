package contracts

import "context"

// PersistenceGateway stores one opaque blob per collection key.
type PersistenceGateway interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, blob []byte) error
}
