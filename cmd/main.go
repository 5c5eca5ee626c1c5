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
	"github.com/redis/go-redis/v9"

	getDraftHandler "github.com/m04kA/SMC-ProposalService/internal/api/handlers/get_draft"
	getQuoteHandler "github.com/m04kA/SMC-ProposalService/internal/api/handlers/get_quote"
	importAccommodationsHandler "github.com/m04kA/SMC-ProposalService/internal/api/handlers/import_accommodations"
	saveDraftHandler "github.com/m04kA/SMC-ProposalService/internal/api/handlers/save_draft"
	"github.com/m04kA/SMC-ProposalService/internal/api/middleware"
	"github.com/m04kA/SMC-ProposalService/internal/config"
	cacheDraft "github.com/m04kA/SMC-ProposalService/internal/infra/cache/draft"
	draftRepo "github.com/m04kA/SMC-ProposalService/internal/infra/storage/draft"
	draftsService "github.com/m04kA/SMC-ProposalService/internal/service/drafts"
	importAccommodationsUC "github.com/m04kA/SMC-ProposalService/internal/usecase/import_accommodations"
	loadDraftUC "github.com/m04kA/SMC-ProposalService/internal/usecase/load_draft"
	saveDraftUC "github.com/m04kA/SMC-ProposalService/internal/usecase/save_draft"
	"github.com/m04kA/SMC-ProposalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ProposalService/pkg/logger"
	"github.com/m04kA/SMC-ProposalService/pkg/metrics"
	"github.com/m04kA/SMC-ProposalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ProposalService/pkg/txmanager"
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

	log.Info("Starting SMC-ProposalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к удаленному хранилищу черновиков
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

	// Подключаемся к офлайн-кэшу. Кэш best-effort, поэтому недоступный
	// Redis при старте не валит сервис
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn("Redis unavailable at startup, offline cache degraded: %v", err)
	} else {
		log.Info("Successfully connected to Redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}

	cacheAdapter := cacheDraft.NewAdapter(
		cacheDraft.NewRedisKV(rdb),
		time.Duration(cfg.Cache.TTLHours)*time.Hour,
	)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var draftRepository *draftRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		draftRepository = draftRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		draftRepository = draftRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем координатор черновиков
	draftsSvc := draftsService.NewService(
		cacheAdapter,
		draftRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	importAccommodationsUseCase := importAccommodationsUC.NewUseCase(
		cacheAdapter,
		draftsSvc,
		log,
	)
	loadDraftUseCase := loadDraftUC.NewUseCase(
		draftsSvc,
		importAccommodationsUseCase,
		log,
	)
	saveDraftUseCase := saveDraftUC.NewUseCase(
		draftsSvc,
		log,
	)

	// Инициализируем handlers
	getDraft := getDraftHandler.NewHandler(loadDraftUseCase, log)
	saveDraft := saveDraftHandler.NewHandler(saveDraftUseCase, log)
	importAccommodations := importAccommodationsHandler.NewHandler(importAccommodationsUseCase, log)
	getQuote := getQuoteHandler.NewHandler(loadDraftUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу присваиваем request ID для трассировки по логам
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Загрузка черновика (remote -> cache -> defaults)
	api.HandleFunc("/queries/{queryId}/drafts/{draftType}",
		getDraft.Handle).Methods(http.MethodGet)

	// Расчет стоимости по текущей версии черновика
	api.HandleFunc("/queries/{queryId}/drafts/{draftType}/quote",
		getQuote.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Сохранение частичного обновления черновика
	protected.HandleFunc("/queries/{queryId}/drafts/{draftType}",
		saveDraft.Handle).Methods(http.MethodPut)

	// Импорт размещений из legacy-данных
	protected.HandleFunc("/queries/{queryId}/drafts/{draftType}/import-accommodations",
		importAccommodations.Handle).Methods(http.MethodPost)

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
