package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/segyhp/accrual-engine/internal/config"
	"github.com/segyhp/accrual-engine/internal/database"
	"github.com/segyhp/accrual-engine/internal/handler"
	"github.com/segyhp/accrual-engine/internal/logging"
	"github.com/segyhp/accrual-engine/internal/repository"
	"github.com/segyhp/accrual-engine/internal/scheduler"
	"github.com/segyhp/accrual-engine/internal/service"
	"github.com/segyhp/accrual-engine/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Setup(cfg.Logging); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	// Initialize database
	db, err := database.Connect(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	investmentRepo := repository.NewInvestmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	planRepo := repository.NewPlanRepository(db)

	// Initialize services
	clock := scheduler.SystemClock{}
	profitService := service.NewProfitService(investmentRepo, userRepo, ledgerRepo, clock)
	investmentService := service.NewInvestmentService(investmentRepo, userRepo, planRepo, clock)
	sweepService := service.NewSweepService(investmentRepo, ledgerRepo, clock, cfg)

	sweepGate := scheduler.NewGate(cfg, redisClient, "minute", cfg.Scheduler.SweepInterval)
	sweepRunner := scheduler.NewRunner("minute", sweepService, sweepGate, clock)

	// Initialize handlers
	profitHandler := handler.NewProfitHandler(profitService)
	investmentHandler := handler.NewInvestmentHandler(investmentService)
	sweepHandler := handler.NewSweepHandler(sweepRunner)
	healthHandler := handler.NewHealthHandler(db, redisClient, cfg.Health.Timeout)

	// Setup routes
	router := setupRoutes(profitHandler, investmentHandler, sweepHandler, healthHandler)

	// Start server
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.WithFields(log.Fields{
			"addr": server.Addr,
			"env":  cfg.Server.Env,
		}).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	profitHandler *handler.ProfitHandler,
	investmentHandler *handler.InvestmentHandler,
	sweepHandler *handler.SweepHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	middleware := []mux.MiddlewareFunc{
		response.RecoveryMiddleware,
		response.LoggingMiddleware,
		response.CORSMiddleware,
		response.JSONMiddleware,
	}

	router := mux.NewRouter()
	router.Use(middleware...)

	// mux skips router middleware for unmatched routes
	var notFound http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	for i := len(middleware) - 1; i >= 0; i-- {
		notFound = middleware[i](notFound)
	}
	router.NotFoundHandler = notFound

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/plans", investmentHandler.ListPlans).Methods("GET")
	api.HandleFunc("/users/{userId}/profits", profitHandler.GetProfits).Methods("GET")
	api.HandleFunc("/users/{userId}/dashboard", profitHandler.GetDashboard).Methods("GET")
	api.HandleFunc("/users/{userId}/transactions", profitHandler.ListTransactions).Methods("GET")
	api.HandleFunc("/users/{userId}/investments", investmentHandler.CreateInvestment).Methods("POST")
	api.HandleFunc("/profits/sweep", sweepHandler.Sweep).Methods("POST")

	return router
}
