package fintrack

import (
	"fmt"

	"github.com/etnz/fintrack/date"
)

// Goal is a saving goal: reach TargetAmount in Days days from StartDate.
type Goal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  Amount    `json:"targetAmount"`
	CurrentAmount Amount    `json:"currentAmount"`
	Days          int       `json:"days"`
	StartDate     date.Date `json:"startDate"`
	DailyAmount   Amount    `json:"dailyAmount"` // computed once, at creation
}

func (g Goal) identity() string { return g.ID }

// NewGoal creates a goal starting today.
func NewGoal(name string, target Amount, days int, today date.Date) Goal {
	return Goal{
		ID:           NewID(),
		Name:         name,
		TargetAmount: target,
		Days:         days,
		StartDate:    today,
		DailyAmount:  DailyRequiredAmount(target, days),
	}
}

// Contribute adds amount to the goal. The current amount never exceeds the target.
func (g Goal) Contribute(amount Amount) (Goal, error) {
	if !amount.IsPositive() {
		return g, fmt.Errorf("%w: contribution must be positive, got %v", ErrInvalidAmount, amount)
	}
	g.CurrentAmount = g.CurrentAmount.Add(amount).Min(g.TargetAmount)
	return g, nil
}

// Progress implements Tracker.
func (g Goal) Progress() Progress {
	return Progress{
		Percent:   ProgressPercent(g.CurrentAmount, g.TargetAmount),
		Remaining: Remaining(g.TargetAmount, g.CurrentAmount),
	}
}

// DaysRemaining returns the days left before the expected completion date.
func (g Goal) DaysRemaining(today date.Date) int { return DaysRemaining(g.StartDate, g.Days, today) }

// ExpectedCompletionDate returns the day the goal should be reached.
func (g Goal) ExpectedCompletionDate() date.Date { return ExpectedCompletionDate(g.StartDate, g.Days) }

// Reached reports whether the target has been saved.
func (g Goal) Reached() bool { return !g.CurrentAmount.LessThan(g.TargetAmount) }
