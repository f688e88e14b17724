package contracts

import (
	"context"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/dto/responses"
)

type ShareUsecase interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, payload []byte) (*responses.ImportResult, error)
	ImportFile(ctx context.Context, fileName string, payload []byte) (*responses.ImportResult, error)
	ExportArchive(ctx context.Context, request *requests.ExportArchive) (*responses.ExportArchive, error)
}
