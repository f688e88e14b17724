package contracts

import (
	"context"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/dto/responses"
)

type TimeSchemeUsecase interface {
	Load(ctx context.Context) error
	Current() models.TimeScheme
	Get(ctx context.Context) (*responses.TimeScheme, error)
	Update(ctx context.Context, request *requests.UpdateTimeScheme) (*responses.TimeScheme, error)
	Replace(ctx context.Context, scheme models.TimeScheme) error
	Reset(ctx context.Context) (*responses.TimeScheme, error)
	AddBreak(ctx context.Context, length int) (*responses.TimeScheme, error)
	UpdateBreak(ctx context.Context, index, length int) (*responses.TimeScheme, error)
	RemoveBreak(ctx context.Context, index int) (*responses.TimeScheme, error)
	FindPeriod(ctx context.Context, lessonNumber int) (*responses.Period, error)
	FindDayGrid(ctx context.Context, day models.Weekday) (*responses.DayGrid, error)
}
