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

	getAvailableSlotsHandler "github.com/m04kA/SMC-ChargingService/internal/api/handlers/get_available_slots"
	getStationReservationsHandler "github.com/m04kA/SMC-ChargingService/internal/api/handlers/get_station_reservations"
	"github.com/m04kA/SMC-ChargingService/internal/api/handlers/health"
	"github.com/m04kA/SMC-ChargingService/internal/api/middleware"
	"github.com/m04kA/SMC-ChargingService/internal/config"
	"github.com/m04kA/SMC-ChargingService/internal/infra/cache/snapshot"
	reservationRepo "github.com/m04kA/SMC-ChargingService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-ChargingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ChargingService/internal/integrations/stationapi"
	"github.com/m04kA/SMC-ChargingService/internal/service/availability"
	reservationsService "github.com/m04kA/SMC-ChargingService/internal/service/reservations"
	getAvailableSlotsUC "github.com/m04kA/SMC-ChargingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ChargingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ChargingService/pkg/logger"
	"github.com/m04kA/SMC-ChargingService/pkg/metrics"
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

	log.Info("Starting SMC-ChargingService...")
	log.Info("Configuration loaded from config.toml (source=%s)", cfg.Source.Kind)

	loc, err := cfg.Availability.Location()
	if err != nil {
		log.Fatal("Failed to load time zone %q: %v", cfg.Availability.TimeZone, err)
	}

	// Инициализируем метрики (если включены)
	// Интерфейсы остаются nil при выключенных метриках
	var (
		metricsCollector *metrics.Metrics
		skipObserver     availability.SkipObserver
		useCaseMetrics   getAvailableSlotsUC.Metrics
		cacheMetrics     snapshot.Metrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		skipObserver = metricsCollector
		useCaseMetrics = metricsCollector
		cacheMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем источники слотов и бронирований
	var (
		slotSource        getAvailableSlotsUC.SlotRepository
		reservationSource getAvailableSlotsUC.ReservationRepository
	)

	switch cfg.Source.Kind {
	case config.SourcePostgres:
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

		var executor dbmetrics.DBExecutor = db
		if cfg.Metrics.Enabled {
			executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
		}

		slotSource = slotRepo.NewRepository(executor)
		reservationSource = reservationRepo.NewRepository(executor)

	case config.SourceREST:
		base := stationapi.NewBaseClient(
			cfg.StationAPI.URL,
			stationapi.NewDefaultHTTPClient(time.Duration(cfg.StationAPI.Timeout)*time.Second),
			loc,
			log,
		)
		slotSource = stationapi.NewSlotsClient(base)
		reservationSource = stationapi.NewReservationsClient(base)
		log.Info("Station API client initialized (url=%s, timeout=%ds)", cfg.StationAPI.URL, cfg.StationAPI.Timeout)
	}

	// Кэш снапшотов станции (если включен)
	if cfg.Cache.Enabled {
		redisClient, err := snapshot.NewRedisClient(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		store := snapshot.NewRedisStore(redisClient, time.Duration(cfg.Cache.TTL)*time.Second)
		slotSource = snapshot.NewSlotCache(slotSource, store, cacheMetrics, log)
		reservationSource = snapshot.NewReservationCache(reservationSource, store, cacheMetrics, log)
		log.Info("Snapshot cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Инициализируем use cases
	resolver := availability.NewResolver(log, skipObserver)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotSource,
		reservationSource,
		resolver,
		useCaseMetrics,
		loc,
		log,
	)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationSource, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getStationReservations := getStationReservationsHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Свободные слоты станции для выбранного окна
	api.HandleFunc("/stations/{stationId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирования станции (только чтение)
	api.HandleFunc("/stations/{stationId}/reservations",
		getStationReservations.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
