package fintrack

import (
	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// Derived metrics are pure functions of their arguments, the current date is
// always an explicit argument. A zero denominator yields 0, never a NaN.

var hundred = decimal.NewFromInt(100)

// ProgressPercent returns current/target as a percentage, or 0 when target is not positive.
func ProgressPercent(current, target Amount) Percent {
	if !target.IsPositive() {
		return 0
	}
	return Percent(current.value.Div(target.value).Mul(hundred).InexactFloat64())
}

// Remaining returns what is left of target once current is deduced. It is
// negative when current exceeds target (an overspent envelope).
func Remaining(target, current Amount) Amount { return target.Sub(current) }

// DailyRequiredAmount returns the amount to save every day to reach target in
// days, or 0 when days is not positive.
func DailyRequiredAmount(target Amount, days int) Amount {
	if days <= 0 {
		return Amount{}
	}
	return Amount{value: target.value.Div(decimal.NewFromInt(int64(days)))}
}

// DaysElapsed returns the number of whole days from start to today.
func DaysElapsed(start, today date.Date) int { return today.Sub(start) }

// DaysRemaining returns the days left in a duration that began on start, never negative.
func DaysRemaining(start date.Date, days int, today date.Date) int {
	return max(days-DaysElapsed(start, today), 0)
}

// ExpectedCompletionDate returns the day a duration of days that began on start ends.
func ExpectedCompletionDate(start date.Date, days int) date.Date { return start.Add(days) }

// DaysUntil returns the number of days from today to target, negative once target is past.
func DaysUntil(target, today date.Date) int { return target.Sub(today) }

// MonthsCovered returns how many months of expenses current covers, or 0 when
// monthly expenses are not positive.
func MonthsCovered(current, monthlyExpenses Amount) float64 {
	if !monthlyExpenses.IsPositive() {
		return 0
	}
	return current.value.Div(monthlyExpenses.value).InexactFloat64()
}

// Progress is the pair of derived values every tracker card displays.
type Progress struct {
	Percent   Percent
	Remaining Amount
}

// Tracker is a record that has a progress toward a target.
type Tracker interface {
	Progress() Progress
}

// ComputeProgress returns the progress of a tracked record.
func ComputeProgress(t Tracker) Progress { return t.Progress() }
