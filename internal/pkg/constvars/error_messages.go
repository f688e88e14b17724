package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"dive":     "is invalid",
	"weekday":  "must be a day of the week, e.g. MONDAY",
	"clock":    "must be a time of day formatted as HH:MM or HH:MM:SS",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientLessonNotFound                = "lesson not found"
	ErrClientSpecificLessonNotFound        = "timetable entry not found"
	ErrClientDuplicateSlot                 = "a lesson with this number already exists on this day"
	ErrClientInvalidLessonNumber           = "lesson number must be between 1 and 50"
	ErrClientInvalidDay                    = "day must be a day of the week"
	ErrClientNonPositiveDuration           = "durations must be greater than zero"
	ErrClientUnknownLesson                 = "choose an existing lesson"
	ErrClientBreakIndexOutOfRange          = "break does not exist"
	ErrClientInvalidShareFile              = "invalid file format"
	ErrClientImportFormat                  = "the imported file is malformed"
	ErrClientImportInProgress              = "another import is running, try again later"
	ErrClientExportStorageDisabled         = "export archive is not available"
	ErrClientChooseFile                    = "choose a file to import"
	ErrClientRequestTooLarge               = "the request is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed = "url param '%s' validation failed"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevCannotReadRequestBody      = "cannot read request body"
	ErrDevMissingFormFile            = "form file '%s' is missing"
	ErrDevRequestTooLarge            = "request body of %d bytes exceeds the limit of %d bytes"
	ErrDevInvalidAPIKey              = "invalid API key"
	ErrDevAPIKeyRequired             = "API key is required"

	ErrDevLessonNotFound           = "lesson with id %d not found"
	ErrDevSpecificLessonNotFound   = "specific lesson with id %d not found"
	ErrDevDuplicateSlot            = "slot %s #%d already taken by specific lesson %d"
	ErrDevInvalidLessonNumber      = "lesson number %d must be between 1 and %d"
	ErrDevInvalidDay               = "unknown day '%s'"
	ErrDevNonPositiveDuration      = "%s must be > 0, got %d"
	ErrDevNegativeDuration         = "%s must be >= 0, got %d"
	ErrDevUnknownLesson            = "lesson id %d does not reference an existing lesson"
	ErrDevBreakIndexOutOfRange     = "break index %d out of range [0,%d)"
	ErrDevInvalidShareFile         = "file '%s' does not have the %s extension"
	ErrDevImportFormat             = "import document invalid at '%s'"
	ErrDevImportInProgress         = "import lock %s held by another client"
	ErrDevExportStorageDisabled    = "export storage is disabled by configuration"
	ErrDevPersistenceLoad          = "failed to load collection '%s'"
	ErrDevPersistenceSave          = "failed to save collection '%s'"
	ErrDevPersistenceUnknownDriver = "unknown persistence driver '%s'"

	ErrDevRedisGetNoData        = "no data found in redis for key %s"
	ErrDevRedisGetData          = "failed to get data from redis"
	ErrDevRedisSetData          = "failed to set data to redis"
	ErrDevRedisDeleteData       = "failed to delete data from redis"
	ErrDevRedisUnlock           = "failed to release redis lock"
	ErrDevRedisRefreshLock      = "failed to refresh redis lock"
	ErrDevMongoDBFindDocument   = "failed to find document"
	ErrDevMongoDBUpsertDocument = "failed to upsert document"
	ErrDevPostgresDBFindData    = "failed to find data"
	ErrDevPostgresDBUpsertData  = "failed to upsert data"
	ErrDevMinioCreateObject     = "failed to create object in bucket %s"
	ErrDevMinioPresignedURL     = "failed to create presigned url in bucket %s"
	ErrDevRabbitMQPublish       = "failed to publish message to queue %s"
)
