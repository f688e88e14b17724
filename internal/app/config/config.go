package config

import (
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "schoolbell"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		PostgresDB: PostgresDB{
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "schoolbell"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "schoolbell"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Local"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			APIKey:                     utils.GetEnvString("APP_API_KEY", ""),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 60),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt64("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Persistence: AppPersistence{
			Driver:                utils.GetEnvString("PERSISTENCE_DRIVER", constvars.PersistenceDriverRedis),
			KeyPrefix:             utils.GetEnvString("APP_PERSISTENCE_KEY_PREFIX", "schoolbell:"),
			TimeoutInSeconds:      utils.GetEnvInt("APP_PERSISTENCE_TIMEOUT_IN_SECONDS", 5),
			ImportLockTTLInSecond: utils.GetEnvInt("APP_IMPORT_LOCK_TTL_IN_SECONDS", 30),
		},
		Minio: AppMinio{
			ExportStorageEnabled:         utils.GetEnvBool("APP_EXPORT_STORAGE_ENABLED", false),
			PreSignedUrlExpiryTimeInHour: utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			BellNotifierEnabled: utils.GetEnvBool("APP_BELL_NOTIFIER_ENABLED", false),
			BellQueue:           utils.GetEnvString("APP_RABBITMQ_BELL_QUEUE", "schoolbell.bell"),
		},
		Bell: AppBell{
			WorkerEnabled:  utils.GetEnvBool("APP_BELL_WORKER_ENABLED", true),
			WorkerCronSpec: utils.GetEnvString("APP_BELL_WORKER_CRON_SPEC", constvars.BellWorkerDefaultSpec),
			LeaderLockTTL:  utils.GetEnvInt("APP_BELL_LEADER_LOCK_TTL_IN_SECONDS", 5),
		},
	}
}
