package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/segyhp/accrual-engine/internal/accrual"
	"github.com/segyhp/accrual-engine/internal/domain"
	"github.com/segyhp/accrual-engine/internal/repository"
	customError "github.com/segyhp/accrual-engine/pkg/errors"
)

type ProfitService struct {
	InvestmentRepo repository.InvestmentRepository
	UserRepo       repository.UserRepository
	LedgerRepo     repository.LedgerRepository
	clock          Clock
}

func NewProfitService(
	investmentRepo repository.InvestmentRepository,
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	clock Clock,
) *ProfitService {
	return &ProfitService{
		InvestmentRepo: investmentRepo,
		UserRepo:       userRepo,
		LedgerRepo:     ledgerRepo,
		clock:          clock,
	}
}

// ComputeProfits recomputes a user's total profit and daily earnings from their investments.
func (s *ProfitService) ComputeProfits(ctx context.Context, userID uuid.UUID) (*domain.ProfitSummary, error) {
	investments, err := s.InvestmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, customError.WrapComputationUnavailable(err)
	}

	summary := accrual.ComputeProfits(investments, s.clock.Now())
	return &summary, nil
}

// GetDashboard loads the user and their investments concurrently and derives every balance figure.
func (s *ProfitService) GetDashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error) {
	var (
		user        *domain.User
		investments []*domain.Investment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.UserRepo.GetByID(gctx, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return customError.WrapUserNotFound(userID.String())
			}
			return customError.WrapDatabaseError(err)
		}
		user = u
		return nil
	})
	g.Go(func() error {
		invs, err := s.InvestmentRepo.ListByUser(gctx, userID)
		if err != nil {
			return customError.WrapComputationUnavailable(err)
		}
		investments = invs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	summary := accrual.ComputeProfits(investments, now)

	views := make([]*domain.InvestmentView, 0, len(investments))
	for _, inv := range investments {
		if inv == nil {
			continue
		}
		views = append(views, accrual.View(inv, now))
	}

	return &domain.DashboardResponse{
		UserID:           user.ID,
		Email:            user.Email,
		Name:             user.Name,
		AdminApproved:    user.AdminApproved,
		Balance:          user.Balance,
		Bonus:            user.Bonus,
		TotalInvestment:  user.TotalInvestment,
		TotalProfit:      summary.TotalProfit,
		DailyEarnings:    summary.DailyEarnings,
		TotalBalance:     user.TotalBalance(summary.TotalProfit),
		AvailableBalance: user.AvailableBalance(summary.TotalProfit),
		Investments:      views,
	}, nil
}

// ListTransactions returns the user's profit ledger, newest first.
func (s *ProfitService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*domain.LedgerEntry, error) {
	if _, err := s.UserRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapUserNotFound(userID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	entries, err := s.LedgerRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if entries == nil {
		entries = []*domain.LedgerEntry{}
	}

	return entries, nil
}
