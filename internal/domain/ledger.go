package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerKind distinguishes the two profit credits the sweep can make.
type LedgerKind string

const (
	LedgerKindDailyProfit    LedgerKind = "daily_profit"
	LedgerKindMaturityProfit LedgerKind = "maturity_profit"
)

// MaturityTag is the idempotency tag of the single maturity entry per investment.
const MaturityTag = "matured"

const (
	TransactionTypeProfit      = "profit"
	TransactionStatusCompleted = "completed"
	DefaultCurrency            = "USD"
)

// LedgerEntry is an append-only balance-affecting record. (InvestmentID, Kind, Tag) is unique.
type LedgerEntry struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	UserID       uuid.UUID       `json:"user_id" db:"user_id"`
	InvestmentID uuid.UUID       `json:"investment_id" db:"investment_id"`
	Type         string          `json:"type" db:"type"`
	Kind         LedgerKind      `json:"kind" db:"kind"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Currency     string          `json:"currency" db:"currency"`
	Status       string          `json:"status" db:"status"`
	Description  string          `json:"description" db:"description"`
	Tag          string          `json:"tag" db:"tag"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

func newProfitEntry(inv *Investment, kind LedgerKind, amount decimal.Decimal, tag, description string, now time.Time) *LedgerEntry {
	return &LedgerEntry{
		ID:           uuid.New(),
		UserID:       inv.UserID,
		InvestmentID: inv.ID,
		Type:         TransactionTypeProfit,
		Kind:         kind,
		Amount:       amount.Round(2),
		Currency:     DefaultCurrency,
		Status:       TransactionStatusCompleted,
		Description:  description,
		Tag:          tag,
		CreatedAt:    now,
	}
}

// NewDailyProfitEntry builds the once-per-calendar-day credit for an active investment.
func NewDailyProfitEntry(inv *Investment, amount decimal.Decimal, dayTag string, now time.Time) *LedgerEntry {
	return newProfitEntry(inv, LedgerKindDailyProfit, amount, dayTag,
		fmt.Sprintf("Daily Profit - %s", inv.PlanName), now)
}

// NewMaturityProfitEntry builds the maturity entry carrying whatever profit daily credits did not cover.
func NewMaturityProfitEntry(inv *Investment, amount decimal.Decimal, now time.Time) *LedgerEntry {
	return newProfitEntry(inv, LedgerKindMaturityProfit, amount, MaturityTag,
		fmt.Sprintf("Investment Profit - %s (%d days)", inv.PlanName, inv.Term()), now)
}

// SweepResult summarises one sweepAndMaterialize pass. It is informational only.
type SweepResult struct {
	Processed           int       `json:"processed"`
	Matured             int       `json:"matured"`
	TransactionsCreated int       `json:"transactions_created"`
	Skipped             int       `json:"skipped"`
	Failed              int       `json:"failed"`
	RanAt               time.Time `json:"ran_at"`
}

type SweepResponse struct {
	Skipped bool         `json:"skipped"`
	Message string       `json:"message"`
	Result  *SweepResult `json:"result,omitempty"`
}
