package handler

import (
	"context"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/segyhp/accrual-engine/internal/domain"
)

// ProfitService is the read side used by ProfitHandler.
type ProfitService interface {
	ComputeProfits(ctx context.Context, userID uuid.UUID) (*domain.ProfitSummary, error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]*domain.LedgerEntry, error)
}

type InvestmentService interface {
	ListPlans(ctx context.Context) ([]*domain.Plan, error)
	CreateInvestment(ctx context.Context, userID uuid.UUID, request *domain.CreateInvestmentRequest) (*domain.Investment, error)
}

type SweepRunner interface {
	RunIfDue(ctx context.Context) (*domain.SweepResult, bool, error)
}

// newValidator teaches the validator to compare decimal fields numerically.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["userId"])
}
