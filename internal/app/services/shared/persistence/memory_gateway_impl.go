package persistence

import (
	"context"
	"schoolbell-service/internal/app/contracts"
	"sync"
)

type memoryGateway struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryGateway keeps blobs in process memory only.
func NewMemoryGateway() contracts.PersistenceGateway {
	return &memoryGateway{blobs: make(map[string][]byte)}
}

func (g *memoryGateway) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	blob, ok := g.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), blob...), true, nil
}

func (g *memoryGateway) Save(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.blobs[key] = append([]byte(nil), blob...)
	return nil
}
