package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/segyhp/accrual-engine/internal/domain"
	"github.com/segyhp/accrual-engine/internal/repository"
	"github.com/segyhp/accrual-engine/internal/service"
)

const fUser = "user"

func profitsCommand() *cli.Command {
	return &cli.Command{
		Name:  "profits",
		Usage: "print a user's total profit and daily earnings",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: fUser, Aliases: []string{"u"}, Required: true},
			atFlag,
		},
		Action: func(c *cli.Context) error {
			userID, err := uuid.Parse(c.String(fUser))
			if err != nil {
				return fmt.Errorf("invalid --%s: %w", fUser, err)
			}

			_, db, err := connect(c)
			if err != nil {
				return err
			}
			defer db.Close()

			profitService := service.NewProfitService(
				repository.NewInvestmentRepository(db),
				repository.NewUserRepository(db),
				repository.NewLedgerRepository(db),
				clockFrom(c),
			)

			summary, err := profitService.ComputeProfits(c.Context, userID)
			if err != nil {
				return err
			}
			return printJSON(c, &domain.ProfitsResponse{
				UserID:        userID,
				TotalProfit:   summary.TotalProfit,
				DailyEarnings: summary.DailyEarnings,
			})
		},
	}
}
