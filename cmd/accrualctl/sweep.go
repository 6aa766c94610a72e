package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v2"

	"github.com/segyhp/accrual-engine/internal/config"
	"github.com/segyhp/accrual-engine/internal/database"
	"github.com/segyhp/accrual-engine/internal/logging"
	"github.com/segyhp/accrual-engine/internal/repository"
	"github.com/segyhp/accrual-engine/internal/scheduler"
	"github.com/segyhp/accrual-engine/internal/service"
)

const fAt = "at"

var atFlag = &cli.TimestampFlag{
	Name:   fAt,
	Usage:  "evaluate at this instant instead of now",
	Layout: time.RFC3339,
}

func sweepCommand() *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "run one profit sweep immediately, bypassing the rate-limit gate",
		Flags: []cli.Flag{atFlag},
		Action: func(c *cli.Context) error {
			// Future instants would credit days that have not elapsed yet
			if at := c.Timestamp(fAt); at != nil && at.After(time.Now()) {
				return fmt.Errorf("--at %s is in the future; sweep only accepts past instants", at.Format(time.RFC3339))
			}

			cfg, db, err := connect(c)
			if err != nil {
				return err
			}
			defer db.Close()

			sweepService := service.NewSweepService(
				repository.NewInvestmentRepository(db),
				repository.NewLedgerRepository(db),
				clockFrom(c),
				cfg,
			)

			result, err := sweepService.Sweep(c.Context)
			if err != nil {
				return err
			}
			return printJSON(c, result)
		},
	}
}

func connect(c *cli.Context) (*config.Config, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logging.Setup(cfg.Logging); err != nil {
		return nil, nil, err
	}

	db, err := database.Connect(c.Context, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func clockFrom(c *cli.Context) service.Clock {
	if at := c.Timestamp(fAt); at != nil {
		return scheduler.NewFixedClock(*at)
	}
	return scheduler.SystemClock{}
}

func printJSON(c *cli.Context, v interface{}) error {
	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
