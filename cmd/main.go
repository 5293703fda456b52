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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-HotelBooking/internal/api"
	confirmBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/confirm_booking"
	editGuestHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/edit_guest"
	editStayHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/edit_stay"
	getConfirmationHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_confirmation"
	getSessionHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_session"
	goBackHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/go_back"
	searchRoomsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/search_rooms"
	selectRoomHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/select_room"
	startSessionHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/start_session"
	submitDatesHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/submit_dates"
	submitGuestHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/submit_guest"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/config"
	confirmationRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/confirmation"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-HotelBooking/internal/service/sessions"
	confirmBookingUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/confirm_booking"
	getConfirmationUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_confirmation"
	searchRoomsUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
	"github.com/m04kA/SMC-HotelBooking/internal/wizard"
	"github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/delay"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
)

// confirmationStore хранилище подтверждений: запись при выпуске и чтение для печати
type confirmationStore interface {
	confirmBookingUC.ConfirmationRepository
	getConfirmationUC.ConfirmationRepository
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-HotelBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики мастера и поиска собираются всегда, наружу отдаются только при metrics.enabled
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Подключаемся к базе данных, только если она нужна каталогу или хранилищу подтверждений
	var db *dbmetrics.DB
	if cfg.NeedsDatabase() {
		sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}

		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		db = dbmetrics.New(sqlDB, cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		defer db.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Каталог номеров
	var catalog searchRoomsUC.RoomRepository
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		catalog = roomRepo.NewRepository(db)
		log.Info("Room catalog: postgres")
	default:
		fileCatalog, err := roomRepo.NewFileRepository(cfg.Catalog.File)
		if err != nil {
			log.Fatal("Failed to load room catalog: %v", err)
		}
		catalog = fileCatalog
		log.Info("Room catalog: file %s", cfg.Catalog.File)
	}

	// Хранилище подтверждений
	var confirmations confirmationStore
	switch cfg.Storage.Confirmations {
	case config.StoragePostgres:
		confirmations = confirmationRepo.NewRepository(db)
	default:
		confirmations = confirmationRepo.NewMemoryRepository()
	}
	log.Info("Confirmation storage: %s", cfg.Storage.Confirmations)

	// Отправка писем с подтверждением
	var notifier confirmBookingUC.Notifier
	if cfg.Mailer.Enabled {
		notifier = mailer.NewClient(mailer.Config{
			Host:      cfg.Mailer.Host,
			Port:      cfg.Mailer.Port,
			User:      cfg.Mailer.User,
			Password:  cfg.Mailer.Password,
			FromName:  cfg.Mailer.FromName,
			FromEmail: cfg.Mailer.FromEmail,
			Timeout:   time.Duration(cfg.Mailer.Timeout) * time.Second,
		}, log)
		log.Info("Mailer enabled (host=%s, port=%d)", cfg.Mailer.Host, cfg.Mailer.Port)
	} else {
		notifier = mailer.NewDisabled(log)
	}

	// Инициализируем use cases
	searchRoomsUseCase := searchRoomsUC.NewUseCase(
		catalog,
		delay.New(cfg.Simulation.SearchDelay()),
		metricsCollector,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		confirmations,
		notifier,
		delay.New(cfg.Simulation.ConfirmDelay()),
		metricsCollector,
		confirmBookingUC.NewNumberGenerator(cfg.Booking.ConfirmationPrefix),
		log,
	)
	getConfirmationUseCase := getConfirmationUC.NewUseCase(confirmations, log)

	// Мастер бронирования и реестр сессий
	wizardFactory := wizard.NewFactory(
		searchRoomsUseCase,
		confirmBookingUseCase,
		delay.New(cfg.Simulation.SubmitDelay()),
		metricsCollector,
		log,
	)
	sessionSvc := sessions.NewService(wizardFactory, time.Duration(cfg.Sessions.TTL)*time.Second, log)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	go sessionSvc.Run(janitorCtx, time.Duration(cfg.Sessions.CleanupInterval)*time.Second)
	log.Info("Session janitor started (ttl=%ds, interval=%ds)", cfg.Sessions.TTL, cfg.Sessions.CleanupInterval)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api.Register(r, api.Handlers{
		StartSession:    startSessionHandler.NewHandler(sessionSvc, log),
		GetSession:      getSessionHandler.NewHandler(sessionSvc, log),
		EditStay:        editStayHandler.NewHandler(sessionSvc, log),
		SubmitDates:     submitDatesHandler.NewHandler(sessionSvc, log),
		SelectRoom:      selectRoomHandler.NewHandler(sessionSvc, log),
		EditGuest:       editGuestHandler.NewHandler(sessionSvc, log),
		SubmitGuest:     submitGuestHandler.NewHandler(sessionSvc, log),
		ConfirmBooking:  confirmBookingHandler.NewHandler(sessionSvc, log),
		GoBack:          goBackHandler.NewHandler(sessionSvc, log),
		SearchRooms:     searchRoomsHandler.NewHandler(searchRoomsUseCase, &wizard.RealTimeProvider{}, log),
		GetConfirmation: getConfirmationHandler.NewHandler(getConfirmationUseCase, log),
	})

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

	stopJanitor()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (active sessions: %d)", sessionSvc.Count())
}
