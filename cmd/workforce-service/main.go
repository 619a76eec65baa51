package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/events"
	"github.com/fixpoint/fixpoint-backend/internal/workforce/handler"
	"github.com/fixpoint/fixpoint-backend/internal/workforce/repository"
	"github.com/fixpoint/fixpoint-backend/internal/workforce/service"
	"github.com/fixpoint/fixpoint-backend/pkg/config"
	"github.com/fixpoint/fixpoint-backend/pkg/database"
	"github.com/fixpoint/fixpoint-backend/pkg/httputil"
	"github.com/fixpoint/fixpoint-backend/pkg/logger"
	"github.com/fixpoint/fixpoint-backend/pkg/messaging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("workforce-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("workforce-service", cfg.Server.Environment)
	log.Info().Msg("starting Workforce Service")

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Connect to RabbitMQ
	rmq, err := messaging.New(&cfg.RabbitMQ, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rmq.Close()

	// Initialize event publisher
	publisher, err := events.NewWorkforceEventPublisher(rmq, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create event publisher")
	}

	// Initialize repositories
	punchRepo := repository.NewPunchRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	keyValueRepo := repository.NewKeyValueRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Initialize services
	punchService := service.NewPunchService(
		punchRepo,
		employeeRepo,
		[]service.AuditSink{auditRepo, keyValueRepo},
		publisher,
		&cfg.Workforce,
		log,
	)
	paymentService := service.NewPaymentService(paymentRepo, publisher, log)

	// Start the active session monitor
	monitor := service.NewActiveSessionMonitor(punchRepo, &cfg.Workforce, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor.Start(ctx)
	defer monitor.Stop()

	// Initialize handlers
	punchHandler := handler.NewPunchHandler(punchService, monitor, log)
	paymentHandler := handler.NewPaymentHandler(paymentService, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"status":   "healthy",
			"service":  "workforce-service",
			"database": db.Health(r.Context()),
			"rabbitmq": rmq.Health(),
		})
	})

	// API routes
	r.Route("/api/v1/workforce", func(r chi.Router) {
		r.Use(httputil.Auth(&cfg.JWT))

		r.Route("/punches", func(r chi.Router) {
			r.Get("/", punchHandler.List)
			r.Get("/weekly-summary", punchHandler.WeeklySummary)
			r.Get("/payroll", punchHandler.Payroll)
			r.Get("/active", punchHandler.ActiveSessions)
			r.Post("/clock-in", punchHandler.ClockIn)
			r.Patch("/{id}", punchHandler.Correct)
		})

		r.Post("/employees/{id}/clock-out", punchHandler.ClockOut)
		r.Post("/payments", paymentHandler.Create)
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Stop the monitor
	cancel()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
