package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/segyhp/accrual-engine/internal/config"
	"github.com/segyhp/accrual-engine/internal/database"
	"github.com/segyhp/accrual-engine/internal/logging"
	"github.com/segyhp/accrual-engine/internal/repository"
	"github.com/segyhp/accrual-engine/internal/scheduler"
	"github.com/segyhp/accrual-engine/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Setup(cfg.Logging); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	log.Info("Starting profit sweep scheduler...")

	db, err := database.Connect(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	clock := scheduler.SystemClock{}
	sweepService := service.NewSweepService(
		repository.NewInvestmentRepository(db),
		repository.NewLedgerRepository(db),
		clock,
		cfg,
	)

	// The minute job shares its gate key with the HTTP sweep endpoint
	minute := scheduler.NewRunner("minute", sweepService,
		scheduler.NewGate(cfg, redisClient, "minute", cfg.Scheduler.SweepInterval), clock)
	daily := scheduler.NewRunner("daily", sweepService,
		scheduler.NewGate(cfg, redisClient, "daily", cfg.Scheduler.DailyInterval), clock)

	c := scheduler.New()
	err = scheduler.Register(c,
		scheduler.Job{Spec: cfg.Scheduler.SweepCron, Runner: minute, Timeout: cfg.Scheduler.SweepInterval},
		scheduler.Job{Spec: cfg.Scheduler.DailyCron, Runner: daily},
	)
	if err != nil {
		log.Fatalf("Failed to schedule jobs: %v", err)
	}

	c.Start()
	log.Info("Scheduler started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down scheduler...")
	<-c.Stop().Done()
	log.Info("Scheduler stopped")
}
