package contracts

import (
	"context"
	"schoolbell-service/internal/app/models"
)

type BellNotifier interface {
	Notify(ctx context.Context, event models.BellEvent) error
}
