// Package accrual computes investment profit from principal, daily rate and elapsed whole days.
// Everything here is pure: callers supply the reference instant and persist whatever they need.
package accrual

import (
	"time"

	"github.com/segyhp/accrual-engine/internal/domain"
	"github.com/segyhp/accrual-engine/pkg/utils"

	"github.com/shopspring/decimal"
)

// Accrual is the state of a single investment at a reference instant. Money values are unrounded.
type Accrual struct {
	Valid          bool
	ElapsedDays    int
	EffectiveDays  int
	Profit         decimal.Decimal
	DailyEarning   decimal.Decimal
	FullTermProfit decimal.Decimal
	Matured        bool
}

// Status returns the investment state for display.
func (a Accrual) Status() string {
	if a.Matured {
		return domain.InvestmentStatusMatured
	}
	return domain.InvestmentStatusActive
}

// ElapsedDays returns whole days between start and now, never negative. A zero start counts as
// "just started" so a row with a missing timestamp earns nothing rather than erroring.
func ElapsedDays(start, now time.Time) int {
	if start.IsZero() {
		return 0
	}
	days := utils.DaysBetween(start, now)
	if days < 0 {
		return 0
	}
	return days
}

// EffectiveDays caps elapsed days at the contractual term.
func EffectiveDays(elapsed, term int) int {
	if elapsed < 0 {
		return 0
	}
	if elapsed > term {
		return term
	}
	return elapsed
}

// Accrue computes the accrual for one investment. Malformed investments come back with Valid
// false and zero money values.
func Accrue(inv *domain.Investment, now time.Time) Accrual {
	if inv == nil {
		return Accrual{Profit: decimal.Zero, DailyEarning: decimal.Zero, FullTermProfit: decimal.Zero}
	}

	term := inv.Term()
	elapsed := ElapsedDays(inv.StartedAt, now)
	a := Accrual{
		ElapsedDays:    elapsed,
		EffectiveDays:  EffectiveDays(elapsed, term),
		Matured:        elapsed >= term,
		Profit:         decimal.Zero,
		DailyEarning:   decimal.Zero,
		FullTermProfit: decimal.Zero,
	}

	if !inv.IsWellFormed() {
		return a
	}

	a.Valid = true
	a.DailyEarning = utils.CalculateDailyEarning(inv.Amount.Decimal, inv.DailyPercent.Decimal)
	a.Profit = utils.CalculateTermProfit(inv.Amount.Decimal, inv.DailyPercent.Decimal, a.EffectiveDays)
	a.FullTermProfit = utils.CalculateTermProfit(inv.Amount.Decimal, inv.DailyPercent.Decimal, term)

	return a
}

// ComputeProfits returns realized profit to date and the daily earnings rate of still-active
// investments, both rounded to currency precision. Order of investments does not matter.
func ComputeProfits(investments []*domain.Investment, now time.Time) domain.ProfitSummary {
	totalProfit := decimal.Zero
	dailyEarnings := decimal.Zero

	for _, inv := range investments {
		a := Accrue(inv, now)
		if !a.Valid {
			continue
		}

		totalProfit = totalProfit.Add(a.Profit)
		if !a.Matured {
			dailyEarnings = dailyEarnings.Add(a.DailyEarning)
		}
	}

	return domain.ProfitSummary{
		TotalProfit:   utils.RoundCurrency(totalProfit),
		DailyEarnings: utils.RoundCurrency(dailyEarnings),
	}
}

// View renders an investment with its profit recomputed at now. A nil investment yields nil.
func View(inv *domain.Investment, now time.Time) *domain.InvestmentView {
	if inv == nil {
		return nil
	}
	a := Accrue(inv, now)

	view := &domain.InvestmentView{
		ID:            inv.ID,
		Plan:          inv.PlanName,
		Amount:        inv.Amount.Decimal,
		DailyPercent:  inv.DailyPercent.Decimal,
		DurationDays:  inv.Term(),
		StartedAt:     inv.StartedAt,
		ElapsedDays:   a.ElapsedDays,
		Profit:        utils.RoundCurrency(a.Profit),
		DailyEarnings: decimal.Zero,
		Status:        a.Status(),
	}
	if a.Valid && !a.Matured {
		view.DailyEarnings = utils.RoundCurrency(a.DailyEarning)
	}

	return view
}
