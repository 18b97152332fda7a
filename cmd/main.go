package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	batchUpdateHandler "github.com/dtroshin/CWM-BookingService/internal/api/handlers/batch_update_availability"
	createBookingHandler "github.com/dtroshin/CWM-BookingService/internal/api/handlers/create_booking"
	getAvailableTimesHandler "github.com/dtroshin/CWM-BookingService/internal/api/handlers/get_available_times"
	getBookingHandler "github.com/dtroshin/CWM-BookingService/internal/api/handlers/get_booking"
	getBusinessBookingsHandler "github.com/dtroshin/CWM-BookingService/internal/api/handlers/get_business_bookings"
	getUserBookingsHandler "github.com/dtroshin/CWM-BookingService/internal/api/handlers/get_user_bookings"
	manageAvailabilityHandler "github.com/dtroshin/CWM-BookingService/internal/api/handlers/manage_availability"
	updateBookingStatusHandler "github.com/dtroshin/CWM-BookingService/internal/api/handlers/update_booking_status"
	"github.com/dtroshin/CWM-BookingService/internal/api/middleware"
	"github.com/dtroshin/CWM-BookingService/internal/config"
	bookingRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/schedule"
	notifyServiceClient "github.com/dtroshin/CWM-BookingService/internal/integrations/notifyservice"
	payServiceClient "github.com/dtroshin/CWM-BookingService/internal/integrations/payservice"
	availabilityService "github.com/dtroshin/CWM-BookingService/internal/service/availability"
	bookingsService "github.com/dtroshin/CWM-BookingService/internal/service/bookings"
	batchUpdateUC "github.com/dtroshin/CWM-BookingService/internal/usecase/batch_update_schedule"
	createBookingUC "github.com/dtroshin/CWM-BookingService/internal/usecase/create_booking"
	getAvailableTimesUC "github.com/dtroshin/CWM-BookingService/internal/usecase/get_available_times"
	transitionBookingUC "github.com/dtroshin/CWM-BookingService/internal/usecase/transition_booking"
	"github.com/dtroshin/CWM-BookingService/pkg/dbmetrics"
	"github.com/dtroshin/CWM-BookingService/pkg/logger"
	"github.com/dtroshin/CWM-BookingService/pkg/metrics"
	"github.com/dtroshin/CWM-BookingService/pkg/simpletxmanager"
	"github.com/dtroshin/CWM-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting CWM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	payClient := payServiceClient.NewClient(
		cfg.PayService.URL,
		time.Duration(cfg.PayService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PayService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.PayService.URL, cfg.PayService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		catalogRepository  *catalogRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		scheduleRepository,
		catalogRepository,
		txMgr,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	batchUpdateUseCase := batchUpdateUC.NewUseCase(
		scheduleRepository,
		catalogRepository,
		txMgr,
		log,
	)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		catalogRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		catalogRepository,
		payClient,
		txMgr,
		log,
	)
	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		notifyClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	batchUpdate := batchUpdateHandler.NewHandler(batchUpdateUseCase, log)
	manageAvailability := manageAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(transitionBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBusinessBookings := getBusinessBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты для бронирования
	api.HandleFunc("/booking/available-times", getAvailableTimes.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление бизнесом (требуют X-Business-ID header) ---
	protected.HandleFunc("/availability/batch", batchUpdate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/availability/manage", manageAvailability.Handle).
		Methods(http.MethodGet, http.MethodPost)
	protected.HandleFunc("/booking/update-status", updateBookingStatus.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/bookings", getBusinessBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
