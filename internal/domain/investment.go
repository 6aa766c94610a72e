package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultDurationDays is the contractual accrual window used when a row carries no usable duration.
const DefaultDurationDays = 7

const (
	InvestmentStatusActive  = "active"
	InvestmentStatusMatured = "matured"
)

// Investment represents principal committed to a plan. Amount and DailyPercent are nullable so a
// corrupt row can still be loaded and skipped by the calculator instead of failing the whole read.
type Investment struct {
	ID            uuid.UUID           `json:"id" db:"id"`
	UserID        uuid.UUID           `json:"user_id" db:"user_id"`
	PlanName      string              `json:"plan" db:"plan_name"`
	Amount        decimal.NullDecimal `json:"amount" db:"amount"`
	DailyPercent  decimal.NullDecimal `json:"daily_percent" db:"daily_percent"`
	DurationDays  int                 `json:"duration_days" db:"duration_days"`
	StartedAt     time.Time           `json:"started_at" db:"started_at"`
	AccruedProfit decimal.Decimal     `json:"profit" db:"profit"`
	CreatedAt     time.Time           `json:"created_at" db:"created_at"`
}

// Term returns the accrual window in days, falling back to DefaultDurationDays.
func (i *Investment) Term() int {
	if i.DurationDays <= 0 {
		return DefaultDurationDays
	}
	return i.DurationDays
}

// IsWellFormed reports whether the principal is positive and the rate lies in (0, 1].
func (i *Investment) IsWellFormed() bool {
	if !i.Amount.Valid || !i.DailyPercent.Valid {
		return false
	}
	if !i.Amount.Decimal.IsPositive() {
		return false
	}
	rate := i.DailyPercent.Decimal
	return rate.IsPositive() && rate.LessThanOrEqual(decimal.NewFromInt(1))
}

// ProfitSummary is the per-user output of the accrual calculator.
type ProfitSummary struct {
	TotalProfit   decimal.Decimal `json:"total_profit"`
	DailyEarnings decimal.Decimal `json:"daily_earnings"`
}

// DTOs for requests and responses

type CreateInvestmentRequest struct {
	Plan   string          `json:"plan" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

type CreateInvestmentResponse struct {
	Investment *Investment `json:"investment"`
	Message    string      `json:"message"`
}

type ProfitsResponse struct {
	UserID        uuid.UUID       `json:"user_id"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	DailyEarnings decimal.Decimal `json:"daily_earnings"`
}

// InvestmentView is an investment with its profit recomputed at request time.
type InvestmentView struct {
	ID            uuid.UUID       `json:"id"`
	Plan          string          `json:"plan"`
	Amount        decimal.Decimal `json:"amount"`
	DailyPercent  decimal.Decimal `json:"daily_percent"`
	DurationDays  int             `json:"duration_days"`
	StartedAt     time.Time       `json:"started_at"`
	ElapsedDays   int             `json:"elapsed_days"`
	Profit        decimal.Decimal `json:"profit"`
	DailyEarnings decimal.Decimal `json:"daily_earnings"`
	Status        string          `json:"status"`
}
