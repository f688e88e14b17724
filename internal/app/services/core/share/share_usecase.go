package share

import (
	"context"
	"path"
	"schoolbell-service/internal/app/config"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/dto/responses"
	"schoolbell-service/internal/pkg/exceptions"
	"schoolbell-service/internal/pkg/utils"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type shareUsecase struct {
	Schedule       contracts.ScheduleUsecase
	Reader         contracts.ScheduleReader
	TimeScheme     contracts.TimeSchemeUsecase
	Locker         contracts.LockerService
	Storage        contracts.ExportStorage
	InternalConfig *config.InternalConfig
	BucketName     string
	Clock          func() time.Time
	Log            *zap.Logger
}

// NewShareUsecase wires export and import. locker and storage may be nil;
// without a locker imports are not guarded across instances and without
// storage the export archive is unavailable.
func NewShareUsecase(
	schedule contracts.ScheduleUsecase,
	reader contracts.ScheduleReader,
	timeScheme contracts.TimeSchemeUsecase,
	locker contracts.LockerService,
	storage contracts.ExportStorage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.ShareUsecase {
	return &shareUsecase{
		Schedule:       schedule,
		Reader:         reader,
		TimeScheme:     timeScheme,
		Locker:         locker,
		Storage:        storage,
		InternalConfig: internalConfig,
		BucketName:     driverConfig.Minio.BucketName,
		Clock:          time.Now,
		Log:            logger,
	}
}

func (uc *shareUsecase) Export(ctx context.Context) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shareUsecase.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	lessons := uc.Reader.Lessons()
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].ID < lessons[j].ID })
	entries := uc.Reader.SpecificLessons()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	document := BuildDocument(lessons, entries, uc.TimeScheme.Current())
	payload, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		uc.Log.Error("shareUsecase.Export error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	uc.Log.Info("shareUsecase.Export succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPayloadSizeKey, len(payload)),
	)
	return payload, nil
}

// Import replaces lessons, timetable entries and the time scheme with the
// document's content. The payload is checked in full before anything is
// replaced. The replacement itself is not atomic: a failed flush leaves the
// collections replaced so far in place.
func (uc *shareUsecase) Import(ctx context.Context, payload []byte) (*responses.ImportResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shareUsecase.Import called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPayloadSizeKey, len(payload)),
	)

	document, err := ParseDocument(payload)
	if err != nil {
		uc.Log.Error("shareUsecase.Import rejected document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	release, err := uc.acquireImportLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	lessons := make([]models.Lesson, 0, len(document.Lessons))
	for _, record := range document.Lessons {
		lessons = append(lessons, record.IntoLesson())
	}

	err = uc.Schedule.ReplaceLessons(ctx, lessons)
	if err != nil {
		return nil, err
	}
	err = uc.Schedule.ReplaceSpecificLessons(ctx, document.SpecificLessons)
	if err != nil {
		return nil, err
	}
	err = uc.TimeScheme.Replace(ctx, document.TimeScheme)
	if err != nil {
		return nil, err
	}
	removed, err := uc.Schedule.CleanInvalid(ctx)
	if err != nil {
		return nil, err
	}

	result := &responses.ImportResult{
		Lessons:         len(lessons),
		SpecificLessons: len(document.SpecificLessons) - removed,
		RemovedInvalid:  removed,
	}
	uc.Log.Info("shareUsecase.Import succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonCountKey, result.Lessons),
		zap.Int(constvars.LoggingSpecificLessonCount, result.SpecificLessons),
		zap.Int(constvars.LoggingRemovedCountKey, removed),
	)
	return result, nil
}

func (uc *shareUsecase) ImportFile(ctx context.Context, fileName string, payload []byte) (*responses.ImportResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shareUsecase.ImportFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)

	if !utils.HasShareFileExtension(fileName) {
		uc.Log.Error("shareUsecase.ImportFile invalid file extension",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileNameKey, fileName),
		)
		return nil, exceptions.ErrInvalidShareFile(fileName)
	}
	return uc.Import(ctx, payload)
}

// ExportArchive uploads the export document to object storage and returns a
// pre-signed download link.
func (uc *shareUsecase) ExportArchive(ctx context.Context, request *requests.ExportArchive) (*responses.ExportArchive, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shareUsecase.ExportArchive called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if uc.Storage == nil || !uc.InternalConfig.Minio.ExportStorageEnabled {
		return nil, exceptions.ErrExportStorageDisabled()
	}

	payload, err := uc.Export(ctx)
	if err != nil {
		return nil, err
	}

	fileName := utils.GenerateExportFileName(archiveBaseName(request.Name))
	objectName := path.Join(constvars.ShareExportObjectDir, fileName)

	_, err = uc.Storage.UploadObject(ctx, uc.BucketName, objectName, constvars.MIMEOctetStream, payload)
	if err != nil {
		uc.Log.Error("shareUsecase.ExportArchive error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, uc.BucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInHour) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.BucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("shareUsecase.ExportArchive error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("shareUsecase.ExportArchive succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.ExportArchive{
		FileName:   fileName,
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  uc.Clock().Add(expiry),
	}, nil
}

func (uc *shareUsecase) acquireImportLock(ctx context.Context) (func(), error) {
	if uc.Locker == nil {
		return func() {}, nil
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ttl := time.Duration(uc.InternalConfig.Persistence.ImportLockTTLInSecond) * time.Second
	acquired, token, err := uc.Locker.TryLock(ctx, constvars.RedisKeyImportLock, ttl)
	if err != nil {
		uc.Log.Error("shareUsecase.Import error acquiring import lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("shareUsecase.Import lock held elsewhere",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyImportLock),
		)
		return nil, exceptions.ErrImportInProgress(constvars.RedisKeyImportLock)
	}

	return func() {
		err := uc.Locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyImportLock, token)
		if err != nil {
			uc.Log.Warn("shareUsecase.Import error releasing import lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}, nil
}

// archiveBaseName keeps only the last element of a client supplied name so
// the object always lands under the export directory.
func archiveBaseName(name string) string {
	base := path.Base(strings.TrimSpace(name))
	if base == "." || base == "/" {
		return ""
	}
	return base
}
