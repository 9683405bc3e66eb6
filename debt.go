package fintrack

import (
	"fmt"

	"github.com/etnz/fintrack/date"
)

// Debt is a debt being paid off toward TargetDate.
type Debt struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TotalDebt  Amount    `json:"totalDebt"`
	PaidAmount Amount    `json:"paidAmount"`
	TargetDate date.Date `json:"targetDate"`
	Color      Color     `json:"color"`
}

func (d Debt) identity() string { return d.ID }

// NewDebt returns a new debt, the n-th of its list.
func NewDebt(name string, total Amount, target date.Date, n int) Debt {
	return Debt{
		ID:         NewID(),
		Name:       name,
		TotalDebt:  total,
		TargetDate: target,
		Color:      DebtPalette.Next(n),
	}
}

// SetPaid records the total paid so far, clamped to [0, TotalDebt].
func (d Debt) SetPaid(paid Amount) Debt {
	d.PaidAmount = paid.Min(d.TotalDebt).Max(Amount{})
	return d
}

// Pay adds a payment. The paid amount never exceeds the total debt.
func (d Debt) Pay(amount Amount) (Debt, error) {
	if !amount.IsPositive() {
		return d, fmt.Errorf("%w: payment must be positive, got %v", ErrInvalidAmount, amount)
	}
	return d.SetPaid(d.PaidAmount.Add(amount)), nil
}

// Progress implements Tracker.
func (d Debt) Progress() Progress {
	return Progress{
		Percent:   ProgressPercent(d.PaidAmount, d.TotalDebt),
		Remaining: Remaining(d.TotalDebt, d.PaidAmount),
	}
}

// DaysUntilTarget returns the days left before the target date, negative when overdue.
func (d Debt) DaysUntilTarget(today date.Date) int { return DaysUntil(d.TargetDate, today) }

// PaidOff reports whether nothing remains to be paid.
func (d Debt) PaidOff() bool { return !d.PaidAmount.LessThan(d.TotalDebt) }

// DebtTotals returns the sum of all debts and of all payments.
func DebtTotals(debts []Debt) (total, paid Amount) {
	for _, d := range debts {
		total = total.Add(d.TotalDebt)
		paid = paid.Add(d.PaidAmount)
	}
	return total, paid
}
