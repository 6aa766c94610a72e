package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is an entry of the investment catalogue. A NULL MaxAmount means no upper bound.
type Plan struct {
	ID           int64               `json:"id" db:"id"`
	Name         string              `json:"name" db:"name"`
	MinAmount    decimal.Decimal     `json:"min_amount" db:"min_amount"`
	MaxAmount    decimal.NullDecimal `json:"max_amount" db:"max_amount"`
	DailyPercent decimal.Decimal     `json:"daily_percent" db:"daily_percent"`
	DurationDays int                 `json:"duration_days" db:"duration_days"`
	IsActive     bool                `json:"is_active" db:"is_active"`
	CreatedAt    time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at" db:"updated_at"`
}

// Accepts reports whether amount falls inside the plan's [min, max] range.
func (p *Plan) Accepts(amount decimal.Decimal) bool {
	if amount.LessThan(p.MinAmount) {
		return false
	}
	if p.MaxAmount.Valid && amount.GreaterThan(p.MaxAmount.Decimal) {
		return false
	}
	return true
}

// Term returns the plan duration, defaulting to DefaultDurationDays.
func (p *Plan) Term() int {
	if p.DurationDays <= 0 {
		return DefaultDurationDays
	}
	return p.DurationDays
}
