package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthpulse/internal/common/identity/tools/token"
	"healthpulse/internal/repositories/storage"
	"healthpulse/internal/server/account"
	"healthpulse/internal/server/config"
	"healthpulse/internal/server/connection/middlewares/metrics"
	"healthpulse/internal/server/connection/middlewares/recovery"
	"healthpulse/internal/server/connection/reply"
	"healthpulse/internal/server/handlers"
	"healthpulse/internal/server/identity/auth"
	"healthpulse/internal/server/identity/credentials"
	"healthpulse/internal/server/logger"
	"healthpulse/internal/server/records"
	"healthpulse/internal/server/storage/inmemory"
	"healthpulse/internal/server/storage/pg"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const shutdownWaitPeriod = 20 * time.Second // для установки в контекст для реализации graceful shutdown

func main() {
	cfg, err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	// Инициализация логера
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}

	ctx := context.Background()
	stor, closeStor, err := newStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create storage: %v\n", err)
	}
	defer closeStor()

	run(ctx, cfg, stor)
}

// newStorage - создает хранилище в памяти или в PostgreSQL в зависимости от конфигурации.
func newStorage(ctx context.Context, cfg config.Configs) (storage.IStorage, func(), error) {
	if cfg.InMemory() {
		logger.ServerLog.Warn("using in-memory storage, data will be lost on restart")
		return inmemory.NewStorage(), func() {}, nil
	}

	pool, err := pg.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database, %w", err)
	}
	return pg.NewStore(pool), pool.Close, nil
}

// функция run будет необходима для инициализации зависимостей сервера перед запуском
func run(ctx context.Context, cfg config.Configs, stor storage.IStorage) {
	logger.ServerLog.Info("Running healthpulse", zap.String("address", cfg.Address), zap.String("env", cfg.Env))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// запускаю сам сервис с проверкой отмены контекста для реализации graceful shutdown--------------
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           Router(cfg, stor, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Горутина для запуска сервера
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	// Блокирование до тех пор, пока не поступит сигнал о прерывании
	<-quit
	logger.ServerLog.Info("Shutting down server...", zap.String("address", cfg.Address))

	ctx, cancel := context.WithTimeout(ctx, shutdownWaitPeriod)
	defer cancel()

	// останавливаю сервер, чтобы он перестал принимать новые запросы
	if err := srv.Shutdown(ctx); err != nil {
		logger.ServerLog.Error("Stopping server error", zap.String("error", err.Error()))
		return
	}

	logger.ServerLog.Info("Shutdown the server gracefully", zap.String("address", cfg.Address))
}

// Router - дирижирует обработку http запросов к серверу.
func Router(cfg config.Configs, stor storage.IStorage, reg *prometheus.Registry) chi.Router {
	creds := credentials.NewStore(stor)
	tokens := token.NewService(cfg.SecretKey, cfg.TokenTTL())
	ident := account.NewService(creds, tokens)
	recs := records.NewService(stor)
	errs := reply.Mapper{Development: cfg.Development()}

	protect := auth.Middleware(tokens, creds, errs)
	collector := metrics.NewCollector(reg)

	r := chi.NewRouter()
	r.Use(recovery.Middleware(errs))
	r.Use(collector.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", logger.RequestLogger(handlers.HealthHandler()))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register/patient", logger.RequestLogger(handlers.RegisterPatientHandler(ident, errs)))
			r.Post("/register/provider", logger.RequestLogger(handlers.RegisterProviderHandler(ident, errs)))
			r.Post("/login", logger.RequestLogger(handlers.LoginHandler(ident, errs)))
			r.Get("/me", logger.RequestLogger(protect(handlers.MeHandler())))
		})

		r.Route("/patients", func(r chi.Router) {
			r.Get("/", logger.RequestLogger(protect(handlers.ListPatientsHandler(recs, errs))))
			r.Get("/{id}", logger.RequestLogger(protect(handlers.GetPatientHandler(recs, errs))))
			r.Put("/{id}", logger.RequestLogger(protect(handlers.UpdatePatientHandler(recs, errs))))
			r.Put("/{id}/vitals", logger.RequestLogger(protect(handlers.UpdateVitalsHandler(recs, errs))))
			r.Post("/{id}/medical-history", logger.RequestLogger(protect(handlers.AddMedicalHistoryHandler(recs, errs))))
		})

		r.Route("/providers", func(r chi.Router) {
			r.Get("/{id}", logger.RequestLogger(protect(handlers.GetProviderHandler(recs, errs))))
			r.Put("/{id}/profile", logger.RequestLogger(protect(handlers.UpdateProviderHandler(recs, errs))))
			r.Get("/{id}/patients", logger.RequestLogger(protect(handlers.AssignedPatientsHandler(recs, errs))))
			r.Post("/{id}/patients/{patientId}", logger.RequestLogger(protect(handlers.AssignPatientHandler(recs, errs))))
		})
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))

	// Определяем маршрут по умолчанию для некорректных запросов
	r.NotFound(logger.RequestLogger(http.HandlerFunc(handlers.NotFound)))
	r.MethodNotAllowed(logger.RequestLogger(http.HandlerFunc(handlers.NotFound)))

	return r
}
