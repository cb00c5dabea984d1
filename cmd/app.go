package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/m04kA/studio-booking/internal/catalog"
	"github.com/m04kA/studio-booking/internal/config"
	"github.com/m04kA/studio-booking/internal/domain"
	bookingRepo "github.com/m04kA/studio-booking/internal/infra/storage/booking"
	"github.com/m04kA/studio-booking/internal/infra/storage/migrations"
	"github.com/m04kA/studio-booking/internal/integrations/mailer"
	"github.com/m04kA/studio-booking/internal/meeting"
	"github.com/m04kA/studio-booking/internal/notify"
	"github.com/m04kA/studio-booking/pkg/logger"
	"github.com/m04kA/studio-booking/pkg/metrics"
	"github.com/m04kA/studio-booking/pkg/mq"
	"github.com/m04kA/studio-booking/pkg/txmanager"
	"github.com/m04kA/studio-booking/pkg/types"
)

// bookingStore общий контракт файлового хранилища и PostgreSQL репозитория
type bookingStore interface {
	BookedTimes(ctx context.Context, date string) ([]types.TimeString, error)
	IsSlotBooked(ctx context.Context, date string, t types.TimeString) (bool, error)
	Create(ctx context.Context, draft *domain.BookingDraft) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, bool, error)
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type storage struct {
	bookings  bookingStore
	txManager txManager
	db        *sql.DB // nil для файлового хранилища
}

func (s *storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// loadConfig читает .env (если есть), затем config.toml и переменные окружения
func loadConfig(path string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return config.Load(path)
}

func openDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// openStorage открывает хранилище бронирований выбранного драйвера
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics, migrate bool) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := openDB(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		txMgr := txmanager.NewTransactionManager(db)

		if migrate {
			applied, err := migrations.Up(ctx, db, txMgr, log)
			if err != nil {
				_ = db.Close()
				return nil, err
			}
			log.Info("Migrations applied: %d", len(applied))
		}

		if err := m.RegisterDBStats(db, cfg.Database.DBName); err != nil {
			log.Warn("Failed to register database metrics: %v", err)
		}

		return &storage{
			bookings:  bookingRepo.NewRepository(db),
			txManager: txMgr,
			db:        db,
		}, nil

	default:
		store, err := bookingRepo.OpenFileStore(cfg.Storage.FilePath)
		if err != nil {
			return nil, err
		}
		log.Info("Using file storage at %s", store.Path())

		return &storage{
			bookings:  store,
			txManager: txmanager.NewLocker(),
		}, nil
	}
}

func newCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog timezone %q: %w", cfg.Timezone, err)
	}
	return catalog.New(cfg.OfferedTimes, cfg.HorizonDays, loc)
}

func newMeetingGenerator(cfg config.MeetingConfig) *meeting.Generator {
	return meeting.NewGenerator(cfg.BaseURL, cfg.RoomPrefix, cfg.Subject, cfg.StudioName)
}

// newTransport выбирает способ доставки уведомлений; close освобождает соединения транспорта
func newTransport(cfg *config.Config, log *logger.Logger) (notify.Transport, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Notify.Transport {
	case config.TransportEmail:
		client := mailer.NewClient(
			cfg.Mailer.BaseURL,
			cfg.Mailer.APIKey,
			time.Duration(cfg.Mailer.Timeout)*time.Second,
			log,
		)
		log.Info("Notifications: email via %s", cfg.Mailer.BaseURL)
		return notify.NewEmailTransport(client), noop, nil

	case config.TransportAMQP:
		publisher, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Notifications: amqp exchange %s", cfg.AMQP.Exchange)
		return notify.NewAMQPTransport(publisher), publisher.Close, nil

	default:
		log.Info("Notifications: email provider not configured, logging messages instead")
		return notify.NewLogTransport(log), noop, nil
	}
}

// newDispatcher собирает фоновую отправку уведомлений
func newDispatcher(cfg *config.Config, transport notify.Transport, links notify.StudioLinker, m *metrics.Metrics, log *logger.Logger) *notify.Dispatcher {
	composer := notify.NewComposer(
		cfg.Notify.From,
		cfg.Notify.StudioEmail,
		cfg.Notify.SiteURL,
		cfg.Meeting.StudioName,
		links,
	)
	return notify.NewDispatcher(
		composer,
		transport,
		cfg.Notify.Workers,
		cfg.Notify.QueueSize,
		time.Duration(cfg.Notify.SendTimeout)*time.Second,
		m,
		log,
	)
}

// newCLILogger логгер для разовых команд: только предупреждения и ошибки в консоль
func newCLILogger(cfg *config.Config) (*logger.Logger, error) {
	level := cfg.Logs.Level
	if level == "info" || level == "debug" {
		level = "warn"
	}
	return logger.New(cfg.Logs.File, level)
}
