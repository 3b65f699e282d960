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
	"github.com/rs/cors"

	adminLoginHandler "github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers/admin_login"
	cancelBookingHandler "github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers/create_booking"
	editBookingHandler "github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers/edit_booking"
	getAvailabilityHandler "github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers/get_availability"
	getBookingsHandler "github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers/get_bookings"
	getHistoryHandler "github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers/get_history"
	getRoomsHandler "github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers/get_rooms"
	getUpcomingHandler "github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers/get_upcoming"
	healthHandler "github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers/health"
	"github.com/GabrielEscala/Proyecto-Salas/internal/api/middleware"
	"github.com/GabrielEscala/Proyecto-Salas/internal/config"
	bookingRepo "github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/booking"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/failover"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/memstore"
	roomsRepo "github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/rooms"
	"github.com/GabrielEscala/Proyecto-Salas/internal/integrations/mailer"
	bookingsService "github.com/GabrielEscala/Proyecto-Salas/internal/service/bookings"
	roomsService "github.com/GabrielEscala/Proyecto-Salas/internal/service/rooms"
	"github.com/GabrielEscala/Proyecto-Salas/internal/timeslots"
	cancelBookingUC "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/cancel_booking"
	createBookingUC "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/create_booking"
	editBookingUC "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/edit_booking"
	getAvailabilityUC "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/get_availability"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/dbmetrics"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/logger"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/metrics"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
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

	log.Info("Starting Proyecto-Salas...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сетка слотов рабочего дня
	grid := timeslots.GridConfig{
		StartTime:       types.TimeString(cfg.Slots.StartTime),
		EndTime:         types.TimeString(cfg.Slots.EndTime),
		IntervalMinutes: cfg.Slots.IntervalMinutes,
	}
	if err := grid.Validate(); err != nil {
		log.Fatal("Invalid slot grid configuration: %v", err)
	}
	log.Info("Slot grid: %s - %s every %d minutes",
		cfg.Slots.StartTime, cfg.Slots.EndTime, cfg.Slots.IntervalMinutes)

	// Управляющие часовые пояса
	defaultZone := loadZone(cfg.TimeZones.Default, log)
	eventZone := loadZone(cfg.TimeZones.Event, log)

	// Подключаемся к базе данных. Недоступная или несконфигурированная
	// база не останавливает сервис: брони принимает хранилище в памяти.
	var wrappedDB *dbmetrics.DB

	if cfg.Database.Configured() {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to open database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Warn("Database unreachable at startup, serving from memory until it recovers: %v", err)
		} else {
			log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
				cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		}

		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	} else {
		log.Warn("Database not configured, running in memory-only mode")
	}

	// Хранилища: PostgreSQL (если есть) с деградацией в память
	memBookings := memstore.NewBookingStore()

	var primaryBookings failover.BookingStorage
	if wrappedDB != nil {
		primaryBookings = bookingRepo.NewRepository(wrappedDB)
	}
	bookingStore := failover.New(primaryBookings, memBookings, log)

	var roomStore roomsService.RoomStorage
	if wrappedDB != nil {
		roomStore = roomsRepo.NewRepository(wrappedDB)
	} else {
		roomStore = memstore.NewRoomStore()
	}

	// Почтовый шлюз подтверждений
	mailClient := mailer.NewClient(
		cfg.Mail.APIURL,
		cfg.Mail.APIKey,
		cfg.Mail.From,
		time.Duration(cfg.Mail.Timeout)*time.Second,
		log,
	)
	if mailClient.Configured() {
		log.Info("Mail gateway configured (from=%s)", cfg.Mail.From)
	} else {
		log.Warn("Mail gateway not configured, confirmations will be skipped")
	}

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(roomStore, cfg.App.EventRoomsEnabled, defaultZone, eventZone, log)
	if err := roomSvc.EnsureCatalog(context.Background()); err != nil {
		log.Warn("Room catalog seeding failed, will retry on demand: %v", err)
	}

	bookingSvc := bookingsService.NewService(bookingStore, cfg.Slots.IntervalMinutes, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingStore,
		roomSvc,
		mailClient,
		grid,
		cfg.App.BaseURL,
		log,
	)
	editBookingUseCase := editBookingUC.NewUseCase(bookingStore, roomSvc, grid, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingStore, roomSvc, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingStore, roomSvc, grid, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	editBooking := editBookingHandler.NewHandler(editBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getRooms := getRoomsHandler.NewHandler(roomSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getUpcoming := getUpcomingHandler.NewHandler(bookingSvc, log)
	getHistory := getHistoryHandler.NewHandler(bookingSvc, log)
	adminLogin := adminLoginHandler.NewHandler(cfg.App.AdminCode, log)

	var pinger healthHandler.Pinger
	if wrappedDB != nil {
		pinger = wrappedDB
	}
	health := healthHandler.NewHandler(pinger)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Лимит частоты для операций записи
	rl := middleware.NewRateLimiter(cfg.App.RateLimitPerMinute)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Каталог залов
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// Сетка доступности зала на дату
	api.HandleFunc("/rooms/{roomId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Брони на дату или по коду отмены
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Предстоящие брони
	api.HandleFunc("/bookings/upcoming", getUpcoming.Handle).Methods(http.MethodGet)

	// Создание группы бронирования
	api.Handle("/bookings", rl.Limit(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// Перенос группы бронирования
	api.Handle("/bookings/edit", rl.Limit(http.HandlerFunc(editBooking.Handle))).Methods(http.MethodPost)

	// Отмена группы бронирования
	api.Handle("/bookings/cancel", rl.Limit(http.HandlerFunc(cancelBooking.Handle))).Methods(http.MethodPost)

	// Вход администратора
	api.Handle("/admin/login", rl.Limit(http.HandlerFunc(adminLogin.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют административной сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminGate(cfg.App.AdminCode))

	// История бронирований
	protected.HandleFunc("/bookings/history", getHistory.Handle).Methods(http.MethodGet)

	// CORS для фронтенда
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.App.BaseURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

// loadZone загружает часовой пояс, при ошибке возвращает UTC
func loadZone(name string, log *logger.Logger) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error("Failed to load timezone %q, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}
