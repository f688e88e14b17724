package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingResponseLengthKey = "response_length"
)

const (
	LoggingLessonIDKey          = "lesson_id"
	LoggingLessonCountKey       = "lesson_count"
	LoggingSpecificLessonIDKey  = "specific_lesson_id"
	LoggingSpecificLessonCount  = "specific_lesson_count"
	LoggingLessonNumberKey      = "lesson_number"
	LoggingDayKey               = "day"
	LoggingRemovedCountKey      = "removed_count"
	LoggingTimeSchemeKey        = "time_scheme"
	LoggingStatusKindKey        = "status_kind"
	LoggingPreviousKindKey      = "previous_kind"
	LoggingCountdownKey         = "countdown"
	LoggingHomeworkDueCountKey  = "homework_due_count"
	LoggingPersistenceKey       = "persistence_key"
	LoggingPersistenceDriverKey = "persistence_driver"
	LoggingPayloadSizeKey       = "payload_size"
	LoggingImportPathKey        = "import_path"
	LoggingFileNameKey          = "file_name"
	LoggingBucketNameKey        = "bucket_name"
	LoggingObjectNameKey        = "object_name"
	LoggingQueueNameKey         = "queue_name"
	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingLockExpectedValueKey = "lock_expected_value"
	LoggingCronSpecKey          = "cron_spec"
)
