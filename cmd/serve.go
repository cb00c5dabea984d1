package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/m04kA/studio-booking/internal/api"
	cancelBookingHandler "github.com/m04kA/studio-booking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/studio-booking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/studio-booking/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/m04kA/studio-booking/internal/api/handlers/get_booked_slots"
	getCatalogHandler "github.com/m04kA/studio-booking/internal/api/handlers/get_catalog"
	getBookingHandler "github.com/m04kA/studio-booking/internal/api/handlers/get_booking"
	bookingsService "github.com/m04kA/studio-booking/internal/service/bookings"
	createBookingUC "github.com/m04kA/studio-booking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/studio-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/studio-booking/pkg/logger"
	"github.com/m04kA/studio-booking/pkg/metrics"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the booking HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath, migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply database migrations on startup (postgres driver only)")
	return cmd
}

func runServe(configPath string, migrate bool) error {
	// Загружаем конфигурацию
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting studio-booking...")
	log.Info("Configuration loaded from %s", configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище бронирований
	store, err := openStorage(ctx, cfg, log, metricsCollector, migrate)
	if err != nil {
		return err
	}
	defer store.Close()

	slotCatalog, err := newCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	log.Info("Catalog: %d offered times, horizon %d days, timezone %s",
		len(slotCatalog.OfferedTimes()), slotCatalog.HorizonDays(), slotCatalog.Location())

	meetings := newMeetingGenerator(cfg.Meeting)

	// Уведомления
	transport, closeTransport, err := newTransport(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeTransport(); err != nil {
			log.Warn("Failed to close notification transport: %v", err)
		}
	}()
	dispatcher := newDispatcher(cfg, transport, meetings, metricsCollector, log)

	// Инициализируем сервисы и use cases
	bookingSvc := bookingsService.NewService(store.bookings, dispatcher, metricsCollector, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		store.bookings,
		slotCatalog,
		meetings,
		dispatcher,
		metricsCollector,
		store.txManager,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(store.bookings, slotCatalog, log)

	// Инициализируем handlers и роутер
	opts := api.Options{}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = promhttp.Handler()
	}

	router := api.NewRouter(api.Handlers{
		Catalog:       getCatalogHandler.NewHandler(slotCatalog, log),
		BookedSlots:   getBookedSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		Availability:  getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		CreateBooking: createBookingHandler.NewHandler(createBookingUseCase, log),
		GetBooking:    getBookingHandler.NewHandler(bookingSvc, log),
		CancelBooking: cancelBookingHandler.NewHandler(bookingSvc, log),
	}, opts, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Ожидаем сигнал завершения
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			log.Error("Server failed: %v", err)
			return err
		}
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки уже поставленных в очередь уведомлений
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Warn("Notification queue not drained: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
