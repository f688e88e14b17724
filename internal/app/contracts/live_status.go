package contracts

import (
	"context"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/pkg/dto/responses"
)

type LiveStatusUsecase interface {
	CurrentStatus(ctx context.Context) (models.Status, error)
	GetStatus(ctx context.Context) (*responses.Status, error)
	GetOverview(ctx context.Context) (*responses.Overview, error)
	FindHomeworkDue(ctx context.Context) ([]responses.HomeworkDue, error)
}
