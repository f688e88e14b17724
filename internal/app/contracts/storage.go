package contracts

import (
	"context"
	"time"
)

type ExportStorage interface {
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, payload []byte) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
