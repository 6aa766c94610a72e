package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/segyhp/accrual-engine/internal/accrual"
	"github.com/segyhp/accrual-engine/internal/domain"
	"github.com/segyhp/accrual-engine/internal/repository"
	customError "github.com/segyhp/accrual-engine/pkg/errors"
	"github.com/segyhp/accrual-engine/pkg/utils"
)

type InvestmentService struct {
	InvestmentRepo repository.InvestmentRepository
	UserRepo       repository.UserRepository
	PlanRepo       repository.PlanRepository
	clock          Clock
}

func NewInvestmentService(
	investmentRepo repository.InvestmentRepository,
	userRepo repository.UserRepository,
	planRepo repository.PlanRepository,
	clock Clock,
) *InvestmentService {
	return &InvestmentService{
		InvestmentRepo: investmentRepo,
		UserRepo:       userRepo,
		PlanRepo:       planRepo,
		clock:          clock,
	}
}

// ListPlans returns the active plan catalogue ordered by minimum amount
func (s *InvestmentService) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	plans, err := s.PlanRepo.ListActive(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if plans == nil {
		plans = []*domain.Plan{}
	}
	return plans, nil
}

// CreateInvestment commits amount from the user's available balance to a plan
func (s *InvestmentService) CreateInvestment(ctx context.Context, userID uuid.UUID, request *domain.CreateInvestmentRequest) (*domain.Investment, error) {
	// Principal is stored with cent precision; sub-cent amounts would be silently rounded
	if !request.Amount.IsPositive() || !request.Amount.Equal(utils.RoundCurrency(request.Amount)) {
		return nil, customError.WrapInvalidAmount(request.Amount.String())
	}

	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapUserNotFound(userID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	if !user.AdminApproved {
		return nil, customError.WrapAccountNotApproved(userID.String())
	}

	plan, err := s.PlanRepo.GetByName(ctx, request.Plan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapPlanNotFound(request.Plan)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	if !plan.IsActive {
		return nil, customError.WrapPlanInactive(plan.Name)
	}

	if !plan.Accepts(request.Amount) {
		maxAmount := ""
		if plan.MaxAmount.Valid {
			maxAmount = plan.MaxAmount.Decimal.StringFixed(2)
		}
		return nil, customError.WrapAmountOutOfRange(plan.Name, plan.MinAmount.StringFixed(2), maxAmount)
	}

	// Available balance counts profit accrued so far, recomputed rather than read from snapshots
	existing, err := s.InvestmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, customError.WrapComputationUnavailable(err)
	}

	now := s.clock.Now()
	summary := accrual.ComputeProfits(existing, now)
	available := user.AvailableBalance(summary.TotalProfit)
	if available.LessThan(request.Amount) {
		return nil, customError.WrapInsufficientBalance(available.StringFixed(2))
	}

	investment := &domain.Investment{
		ID:            uuid.New(),
		UserID:        userID,
		PlanName:      plan.Name,
		Amount:        decimal.NewNullDecimal(request.Amount),
		DailyPercent:  decimal.NewNullDecimal(plan.DailyPercent),
		DurationDays:  plan.Term(),
		StartedAt:     now,
		AccruedProfit: decimal.Zero,
		CreatedAt:     now,
	}

	if err := s.InvestmentRepo.Create(ctx, investment); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	log.WithFields(log.Fields{
		"investment_id": investment.ID,
		"user_id":       userID,
		"plan":          plan.Name,
		"amount":        request.Amount.StringFixed(2),
	}).Info("Investment created")

	return investment, nil
}
