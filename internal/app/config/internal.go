package config

type InternalConfig struct {
	App         App            `mapstructure:"app"`
	Persistence AppPersistence `mapstructure:"persistence"`
	Minio       AppMinio       `mapstructure:"minio"`
	RabbitMQ    AppRabbitMQ    `mapstructure:"rabbitmq"`
	Bell        AppBell        `mapstructure:"bell"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	APIKey                     string `mapstructure:"api_key"`
	AllowedOrigins             string `mapstructure:"allowed_origins"`
	MaxRequests                int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int64  `mapstructure:"request_body_limit_in_megabyte"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
}

type AppPersistence struct {
	Driver                string `mapstructure:"driver"`
	KeyPrefix             string `mapstructure:"key_prefix"`
	TimeoutInSeconds      int    `mapstructure:"timeout_in_seconds"`
	ImportLockTTLInSecond int    `mapstructure:"import_lock_ttl_in_second"`
}

type AppMinio struct {
	ExportStorageEnabled         bool `mapstructure:"export_storage_enabled"`
	PreSignedUrlExpiryTimeInHour int  `mapstructure:"pre_signed_url_expiry_time_in_hour"`
}

type AppRabbitMQ struct {
	BellNotifierEnabled bool   `mapstructure:"bell_notifier_enabled"`
	BellQueue           string `mapstructure:"bell_queue"`
}

type AppBell struct {
	WorkerEnabled  bool   `mapstructure:"worker_enabled"`
	WorkerCronSpec string `mapstructure:"worker_cron_spec"`
	LeaderLockTTL  int    `mapstructure:"leader_lock_ttl"`
}
