package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/segyhp/accrual-engine/internal/domain"
)

// InvestmentRepository defines the interface for investment data operations
type InvestmentRepository interface {
	// Create inserts the investment and adds its amount to the owner's total_investment in one transaction
	Create(ctx context.Context, investment *domain.Investment) error

	// GetByID retrieves an investment by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Investment, error)

	// ListByUser retrieves every investment owned by a user, oldest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Investment, error)

	// ListAll retrieves every investment in the system
	ListAll(ctx context.Context) ([]*domain.Investment, error)

	// UpdateProfit overwrites the accrued profit snapshot
	UpdateProfit(ctx context.Context, id uuid.UUID, profit decimal.Decimal) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// LedgerRepository defines the interface for the append-only transactions ledger
type LedgerRepository interface {
	// Exists reports whether an entry with the idempotency key is already recorded
	Exists(ctx context.Context, investmentID uuid.UUID, kind domain.LedgerKind, tag string) (bool, error)

	// SumByKind totals every entry of a kind for an investment
	SumByKind(ctx context.Context, investmentID uuid.UUID, kind domain.LedgerKind) (decimal.Decimal, error)

	// Credit appends the entry and increments the owner's balance by its amount in one transaction.
	// It returns false without touching the balance when the idempotency key already exists.
	Credit(ctx context.Context, entry *domain.LedgerEntry) (bool, error)

	// ListByUser retrieves a user's ledger, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LedgerEntry, error)
}

// PlanRepository defines the interface for the investment plan catalogue
type PlanRepository interface {
	// ListActive retrieves active plans ordered by minimum amount
	ListActive(ctx context.Context) ([]*domain.Plan, error)

	// GetByName retrieves a plan by its name
	GetByName(ctx context.Context, name string) (*domain.Plan, error)
}
