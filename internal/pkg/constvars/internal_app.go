package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	ResourceLessons         = "lessons"
	ResourceSpecificLessons = "specific-lessons"
	ResourceTimeScheme      = "time-scheme"
	ResourceStatus          = "status"
	ResourceHomework        = "homework"
	ResourceShare           = "share"
)

// Logical collection names handed to the persistence gateway.
const (
	PersistenceKeyLessons         = "lessons"
	PersistenceKeySpecificLessons = "specific_lessons"
	PersistenceKeyTimeScheme      = "time_scheme"
)

const (
	PersistenceDriverRedis    = "redis"
	PersistenceDriverMongo    = "mongo"
	PersistenceDriverPostgres = "postgres"
	PersistenceDriverMemory   = "memory"
)

const (
	MongoCollectionBlobs = "blobs"
	PostgresTableBlobs   = "schoolbell_blobs"
)

const (
	RedisKeyImportLock = "schoolbell:import"
	RedisKeyBellLeader = "schoolbell:bell:leader"
)

const (
	ShareFileExtension   = ".schoe"
	ShareExportObjectDir = "exports"
)

const (
	BellWorkerDefaultSpec = "@every 1s"
)

// MaxLessonNumber bounds period numbers; no school day has more periods.
const MaxLessonNumber = 50

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
