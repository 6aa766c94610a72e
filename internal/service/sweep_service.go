package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/segyhp/accrual-engine/internal/accrual"
	"github.com/segyhp/accrual-engine/internal/config"
	"github.com/segyhp/accrual-engine/internal/domain"
	"github.com/segyhp/accrual-engine/internal/repository"
	customError "github.com/segyhp/accrual-engine/pkg/errors"
	"github.com/segyhp/accrual-engine/pkg/utils"
)

// SweepService recomputes every investment and materializes profit into the ledger.
type SweepService struct {
	InvestmentRepo repository.InvestmentRepository
	LedgerRepo     repository.LedgerRepository
	clock          Clock
	epsilon        decimal.Decimal
	location       *time.Location
}

func NewSweepService(
	investmentRepo repository.InvestmentRepository,
	ledgerRepo repository.LedgerRepository,
	clock Clock,
	config *config.Config,
) *SweepService {
	return &SweepService{
		InvestmentRepo: investmentRepo,
		LedgerRepo:     ledgerRepo,
		clock:          clock,
		epsilon:        config.GetCreditEpsilon(),
		location:       config.GetLocation(),
	}
}

type sweepOutcome struct {
	matured bool
	created int
}

// Sweep processes all investments at the clock's current instant. A failure on one investment is
// logged and counted; it never stops the others.
func (s *SweepService) Sweep(ctx context.Context) (*domain.SweepResult, error) {
	now := s.clock.Now()

	investments, err := s.InvestmentRepo.ListAll(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	result := &domain.SweepResult{RanAt: now}
	dayTag := utils.DayTag(now, s.location)

	for _, inv := range investments {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if inv == nil || !inv.IsWellFormed() {
			result.Skipped++
			if inv != nil {
				log.WithField("investment_id", inv.ID).Warn("Skipping malformed investment")
			}
			continue
		}

		outcome, err := s.sweepOne(ctx, inv, now, dayTag)
		if err != nil {
			result.Failed++
			log.WithFields(log.Fields{
				"investment_id": inv.ID,
				"user_id":       inv.UserID,
				"error":         err,
			}).Error("Failed to sweep investment")
			continue
		}

		result.Processed++
		result.TransactionsCreated += outcome.created
		if outcome.matured {
			result.Matured++
		}
	}

	log.WithFields(log.Fields{
		"processed":            result.Processed,
		"matured":              result.Matured,
		"transactions_created": result.TransactionsCreated,
		"skipped":              result.Skipped,
		"failed":               result.Failed,
	}).Info("Profit sweep completed")

	return result, nil
}

func (s *SweepService) sweepOne(ctx context.Context, inv *domain.Investment, now time.Time, dayTag string) (sweepOutcome, error) {
	var outcome sweepOutcome

	a := accrual.Accrue(inv, now)
	profit := utils.RoundCurrency(a.Profit)
	previous := inv.AccruedProfit
	wasMatured := previous.GreaterThanOrEqual(utils.RoundCurrency(a.FullTermProfit))

	switch {
	case !wasMatured && a.Matured && profit.IsPositive():
		created, err := s.materializeMaturity(ctx, inv, profit, now)
		if err != nil {
			return outcome, err
		}
		if created {
			outcome.matured = true
			outcome.created++
		}

	case !a.Matured && a.ElapsedDays > 0 && profit.Sub(previous).GreaterThan(s.epsilon):
		created, err := s.materializeDaily(ctx, inv, a.DailyEarning, dayTag, now)
		if err != nil {
			return outcome, err
		}
		if created {
			outcome.created++
		}
	}

	if err := s.InvestmentRepo.UpdateProfit(ctx, inv.ID, profit); err != nil {
		return outcome, fmt.Errorf("update profit snapshot: %w", err)
	}
	inv.AccruedProfit = profit

	return outcome, nil
}

// materializeMaturity records the single maturity entry carrying whatever profit the daily credits
// did not already cover. The entry is written even when nothing remains so the transition happens once.
func (s *SweepService) materializeMaturity(ctx context.Context, inv *domain.Investment, profit decimal.Decimal, now time.Time) (bool, error) {
	exists, err := s.LedgerRepo.Exists(ctx, inv.ID, domain.LedgerKindMaturityProfit, domain.MaturityTag)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	dailyTotal, err := s.LedgerRepo.SumByKind(ctx, inv.ID, domain.LedgerKindDailyProfit)
	if err != nil {
		return false, err
	}

	remaining := profit.Sub(dailyTotal)
	amount := decimal.Zero
	if remaining.GreaterThan(s.epsilon) {
		amount = remaining
	}

	created, err := s.LedgerRepo.Credit(ctx, domain.NewMaturityProfitEntry(inv, amount, now))
	if err != nil {
		return false, err
	}
	if created {
		log.WithFields(log.Fields{
			"investment_id": inv.ID,
			"user_id":       inv.UserID,
			"amount":        amount.StringFixed(2),
		}).Info("Investment matured")
	}

	return created, nil
}

func (s *SweepService) materializeDaily(ctx context.Context, inv *domain.Investment, daily decimal.Decimal, dayTag string, now time.Time) (bool, error) {
	if !daily.GreaterThan(s.epsilon) {
		return false, nil
	}

	exists, err := s.LedgerRepo.Exists(ctx, inv.ID, domain.LedgerKindDailyProfit, dayTag)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	return s.LedgerRepo.Credit(ctx, domain.NewDailyProfitEntry(inv, daily, dayTag, now))
}
