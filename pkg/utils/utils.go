package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// Day is the accrual unit: a fixed 24 hours, independent of calendar or DST shifts.
const Day = 24 * time.Hour

// DayTagLayout formats the calendar day stamped on daily ledger entries.
const DayTagLayout = "2006-01-02"

// DaysBetween returns floor((end - start) / 24h). The result is negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / Day)
	if d < 0 && d%Day != 0 {
		days--
	}
	return days
}

// DayTag returns the calendar day of t in loc (UTC when loc is nil).
func DayTag(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayTagLayout)
}

// RoundCurrency rounds to 2 decimal places, half away from zero.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CalculateDailyEarning returns the per-day profit for a principal at a daily rate.
// Formula: Principal * DailyRate
func CalculateDailyEarning(principal decimal.Decimal, dailyRate decimal.Decimal) decimal.Decimal {
	return principal.Mul(dailyRate)
}

// CalculateTermProfit returns the profit for a principal after the given number of days.
func CalculateTermProfit(principal decimal.Decimal, dailyRate decimal.Decimal, days int) decimal.Decimal {
	return CalculateDailyEarning(principal, dailyRate).Mul(decimal.NewFromInt(int64(days)))
}
