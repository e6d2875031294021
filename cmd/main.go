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

	advanceStepHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/advance_step"
	applyOfferHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/apply_offer"
	checkAvailabilityHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/check_availability"
	createAddressHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/create_address"
	deleteAddressHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/delete_address"
	getFlowHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/get_flow"
	goBackHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/go_back"
	listAddressesHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/list_addresses"
	removeOfferHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/remove_offer"
	selectAddressHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/select_address"
	selectServiceHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/select_service"
	setPaymentMethodHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/set_payment_method"
	setScheduleHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/set_schedule"
	startFlowHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/start_flow"
	submitBookingHandler "github.com/m04kA/HSM-BookingFlowService/internal/api/handlers/submit_booking"
	"github.com/m04kA/HSM-BookingFlowService/internal/api/middleware"
	"github.com/m04kA/HSM-BookingFlowService/internal/config"
	"github.com/m04kA/HSM-BookingFlowService/internal/domain"
	"github.com/m04kA/HSM-BookingFlowService/internal/infra/fixtures"
	flowRepo "github.com/m04kA/HSM-BookingFlowService/internal/infra/storage/flow"
	bookingServiceClient "github.com/m04kA/HSM-BookingFlowService/internal/integrations/bookingservice"
	profileServiceClient "github.com/m04kA/HSM-BookingFlowService/internal/integrations/profileservice"
	userServiceClient "github.com/m04kA/HSM-BookingFlowService/internal/integrations/userservice"
	addressesService "github.com/m04kA/HSM-BookingFlowService/internal/service/addresses"
	flowsService "github.com/m04kA/HSM-BookingFlowService/internal/service/flows"
	advanceStepUC "github.com/m04kA/HSM-BookingFlowService/internal/usecase/advance_step"
	checkAvailabilityUC "github.com/m04kA/HSM-BookingFlowService/internal/usecase/check_availability"
	startFlowUC "github.com/m04kA/HSM-BookingFlowService/internal/usecase/start_flow"
	submitBookingUC "github.com/m04kA/HSM-BookingFlowService/internal/usecase/submit_booking"
	"github.com/m04kA/HSM-BookingFlowService/pkg/dbmetrics"
	"github.com/m04kA/HSM-BookingFlowService/pkg/logger"
	"github.com/m04kA/HSM-BookingFlowService/pkg/metrics"
	"github.com/m04kA/HSM-BookingFlowService/pkg/simpletxmanager"
	"github.com/m04kA/HSM-BookingFlowService/pkg/txmanager"
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

	log.Info("Starting HSM-BookingFlowService...")
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
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ProfileService=%s, UserService=%s, BookingService=%s)",
		cfg.ProfileService.URL, cfg.UserService.URL, cfg.BookingService.URL)

	// Источники офферов и сетки слотов: ProfileService или локальные фикстуры
	var (
		offerProvider flowsService.OfferProvider
		slotProvider  flowsService.TimeSlotProvider
	)
	if cfg.Catalog.UseFixtures {
		catalog := fixtures.NewCatalog()
		offerProvider = catalog
		slotProvider = catalog
		log.Info("Catalog fixtures enabled: offers and time slots are served locally")
	} else {
		offerProvider = profileClient
		slotProvider = profileClient
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var (
		flowRepository *flowRepo.Repository
		txMgr          TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		flowRepository = flowRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		flowRepository = flowRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	flowSvc := flowsService.NewService(
		flowRepository,
		profileClient,
		offerProvider,
		slotProvider,
		log,
	)
	addressSvc := addressesService.NewService(
		flowRepository,
		userClient,
		log,
	)

	// Инициализируем use cases
	startFlowUseCase := startFlowUC.NewUseCase(flowRepository, profileClient, log)
	advanceStepUseCase := advanceStepUC.NewUseCase(flowRepository, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(flowRepository, profileClient, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(flowRepository, bookingClient, txMgr, log)

	// Инициализируем handlers
	startFlow := startFlowHandler.NewHandler(startFlowUseCase, log)
	getFlow := getFlowHandler.NewHandler(flowSvc, log)
	selectService := selectServiceHandler.NewHandler(flowSvc, log)
	setSchedule := setScheduleHandler.NewHandler(flowSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	applyOffer := applyOfferHandler.NewHandler(flowSvc, log)
	removeOffer := removeOfferHandler.NewHandler(flowSvc, log)
	setPaymentMethod := setPaymentMethodHandler.NewHandler(flowSvc, log)
	advanceStep := advanceStepHandler.NewHandler(advanceStepUseCase, log)
	goBack := goBackHandler.NewHandler(flowSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	listAddresses := listAddressesHandler.NewHandler(addressSvc, log)
	createAddress := createAddressHandler.NewHandler(addressSvc, log)
	selectAddress := selectAddressHandler.NewHandler(addressSvc, log)
	deleteAddress := deleteAddressHandler.NewHandler(addressSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все маршруты требуют Bearer token
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(userClient, log))

	// --- Сессии бронирования ---
	// Старт сессии от профессионала
	api.HandleFunc("/flows", startFlow.Handle).Methods(http.MethodPost)

	// Состояние сессии со стоимостью
	api.HandleFunc("/flows/{flowId}", getFlow.Handle).Methods(http.MethodGet)

	// Шаг 1: выбор услуги
	api.HandleFunc("/flows/{flowId}/service", selectService.Handle).Methods(http.MethodPut)

	// Шаг 2: расписание и проверка доступности
	api.HandleFunc("/flows/{flowId}/schedule", setSchedule.Handle).Methods(http.MethodPut)
	api.HandleFunc("/flows/{flowId}/availability", checkAvailability.Handle).Methods(http.MethodPost)

	// Шаг 2: адресная книга в рамках сессии
	api.HandleFunc("/flows/{flowId}/addresses", listAddresses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/flows/{flowId}/addresses", createAddress.Handle).Methods(http.MethodPost)
	api.HandleFunc("/flows/{flowId}/address", selectAddress.Handle).Methods(http.MethodPut)
	api.HandleFunc("/flows/{flowId}/addresses/{addressId}", deleteAddress.Handle).Methods(http.MethodDelete)

	// Шаг 3: офферы
	api.HandleFunc("/flows/{flowId}/offer", applyOffer.Handle).Methods(http.MethodPut)
	api.HandleFunc("/flows/{flowId}/offer", removeOffer.Handle).Methods(http.MethodDelete)

	// Шаг 4: способ оплаты
	api.HandleFunc("/flows/{flowId}/payment-method", setPaymentMethod.Handle).Methods(http.MethodPut)

	// Навигация по шагам
	api.HandleFunc("/flows/{flowId}/next", advanceStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/flows/{flowId}/prev", goBack.Handle).Methods(http.MethodPost)

	// Отправка бронирования
	api.HandleFunc("/flows/{flowId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	log.Info("Routes registered: booking flow wizard with %d payment methods", len(domain.PaymentMethods))

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
