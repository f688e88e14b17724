package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"schoolbell-service/internal/app/config"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/app/delivery/http/controllers"
	"schoolbell-service/internal/app/delivery/http/middlewares"
	"schoolbell-service/internal/app/delivery/http/routers"
	"schoolbell-service/internal/app/drivers/database"
	"schoolbell-service/internal/app/drivers/logger"
	"schoolbell-service/internal/app/drivers/messaging"
	"schoolbell-service/internal/app/drivers/storage"
	"schoolbell-service/internal/app/services/core/livestatus"
	"schoolbell-service/internal/app/services/core/schedule"
	"schoolbell-service/internal/app/services/core/share"
	"schoolbell-service/internal/app/services/core/timescheme"
	"schoolbell-service/internal/app/services/shared/bell"
	"schoolbell-service/internal/app/services/shared/locker"
	"schoolbell-service/internal/app/services/shared/persistence"
	"schoolbell-service/internal/app/services/shared/redis"
	exportStorage "schoolbell-service/internal/app/services/shared/storage"
	"schoolbell-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	zapLogger.Info("Starting schoolbell service",
		zap.String("version", Version),
		zap.String("tag", Tag),
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	switch internalConfig.Persistence.Driver {
	case constvars.PersistenceDriverMongo:
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	case constvars.PersistenceDriverPostgres:
		bootstrap.PostgresDB = database.NewPostgresDB(driverConfig)
	}
	if internalConfig.Minio.ExportStorageEnabled {
		bootstrap.Minio = storage.NewMinio(driverConfig)
	}
	if internalConfig.RabbitMQ.BellNotifierEnabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", internalConfig.App.Address+internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Persistence
	backends := persistence.Backends{
		RedisRepository: redisRepository,
		PostgresDB:      bootstrap.PostgresDB,
	}
	if bootstrap.MongoDB != nil {
		backends.MongoDB = bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)
	}
	gateway, err := persistence.NewPersistenceGateway(
		bootstrap.InternalConfig.Persistence.Driver,
		bootstrap.InternalConfig.Persistence.KeyPrefix,
		backends,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Schedule
	store := schedule.NewStore()
	scheduleUsecase := schedule.NewScheduleUsecase(store, gateway, bootstrap.Logger)
	timeSchemeUsecase := timescheme.NewTimeSchemeUsecase(gateway, store, bootstrap.Logger)

	loadCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(bootstrap.InternalConfig.Persistence.TimeoutInSeconds),
	)
	defer cancel()
	err = scheduleUsecase.Load(loadCtx)
	if err != nil {
		bootstrap.Logger.Warn("schedule loaded with errors, continuing with what could be read", zap.Error(err))
	}
	err = timeSchemeUsecase.Load(loadCtx)
	if err != nil {
		bootstrap.Logger.Warn("time scheme load failed, continuing with the default scheme", zap.Error(err))
	}

	// Live status
	liveStatusUsecase := livestatus.NewLiveStatusUsecase(store, timeSchemeUsecase, bootstrap.Logger)

	// Share
	var archiveStorage contracts.ExportStorage
	if bootstrap.Minio != nil {
		archiveStorage = exportStorage.NewMinioStorage(bootstrap.Minio)
	}
	shareUsecase := share.NewShareUsecase(
		scheduleUsecase,
		store,
		timeSchemeUsecase,
		lockerService,
		archiveStorage,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)

	// Bell worker
	if bootstrap.InternalConfig.Bell.WorkerEnabled {
		notifier := bell.NewLogNotifier(bootstrap.Logger)
		if bootstrap.RabbitMQ != nil {
			notifier, err = bell.NewRabbitMQNotifier(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.BellQueue, bootstrap.Logger)
			if err != nil {
				return err
			}
		}
		worker := livestatus.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, liveStatusUsecase, store, notifier)
		worker.Start(context.Background())
		bootstrap.BellWorkerStop = worker.Stop
	}

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Controllers
	lessonController := controllers.NewLessonController(bootstrap.Logger, scheduleUsecase)
	specificLessonController := controllers.NewSpecificLessonController(bootstrap.Logger, scheduleUsecase)
	timeSchemeController := controllers.NewTimeSchemeController(bootstrap.Logger, timeSchemeUsecase)
	liveStatusController := controllers.NewLiveStatusController(bootstrap.Logger, liveStatusUsecase)
	shareController := controllers.NewShareController(bootstrap.Logger, shareUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		lessonController,
		specificLessonController,
		timeSchemeController,
		liveStatusController,
		shareController,
	)
	return nil
}
