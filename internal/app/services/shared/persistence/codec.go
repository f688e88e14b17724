package persistence

import (
	"context"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// SaveJSON encodes value and stores it under key.
func SaveJSON(ctx context.Context, gateway contracts.PersistenceGateway, key string, value interface{}) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrPersistenceSave(err, key)
	}
	err = gateway.Save(ctx, key, blob)
	if err != nil {
		return exceptions.ErrPersistenceSave(err, key)
	}
	return nil
}

// LoadJSON decodes the blob under key into dest. A missing key is not an
// error; dest is left untouched and found is false.
func LoadJSON(ctx context.Context, gateway contracts.PersistenceGateway, key string, dest interface{}) (bool, error) {
	blob, found, err := gateway.Load(ctx, key)
	if err != nil {
		return false, exceptions.ErrPersistenceLoad(err, key)
	}
	if !found || len(blob) == 0 {
		return false, nil
	}
	err = json.Unmarshal(blob, dest)
	if err != nil {
		return false, exceptions.ErrPersistenceLoad(err, key)
	}
	return true, nil
}
