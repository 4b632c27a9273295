package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/somchaidev/activity-calendar/internal/compressor"
	"github.com/somchaidev/activity-calendar/internal/config"
	"github.com/somchaidev/activity-calendar/internal/db"
	"github.com/somchaidev/activity-calendar/internal/repository"
	"github.com/somchaidev/activity-calendar/internal/service"
	"github.com/somchaidev/activity-calendar/internal/storage"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	LocalStore      *storage.LocalStore
	AuthService     *service.AuthService
	CalendarService *service.CalendarService
	ImportService   *service.ImportService
	UploadService   *service.UploadService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	dayRepository := repository.NewDayRepository(database)
	yearRepository := repository.NewYearRepository(database)
	monthRepository := repository.NewMonthRepository(database)
	userRepository := repository.NewUserRepository(database)
	settingsRepository := repository.NewSettingsRepository(database)

	// Storage
	comp := compressor.Resolve(cfg.CompressImages, cfg.UploadTargetSize)
	localStore := storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL, comp)
	remoteConfig := storage.RemoteConfig{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
	}
	// The remote store is probed per batch, never held open.
	remoteFactory := func(ctx context.Context) (storage.Store, error) {
		return storage.NewRemoteStore(ctx, remoteConfig, comp)
	}

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsDevelopment(),
	)
	calendarService := service.NewCalendarService(
		dayRepository,
		yearRepository,
		monthRepository,
		userRepository,
		settingsRepository,
	)
	importService := service.NewImportService(dayRepository, monthRepository)
	uploadService := service.NewUploadService(localStore, remoteFactory, comp, cfg.UploadMaxBytes)

	return &App{
		Cfg:             cfg,
		DB:              database,
		LocalStore:      localStore,
		AuthService:     authService,
		CalendarService: calendarService,
		ImportService:   importService,
		UploadService:   uploadService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
