package fintrack

import (
	"fmt"

	"github.com/etnz/fintrack/date"
)

// HistoryCapacity is the number of contributions a piggybank remembers.
const HistoryCapacity = 30

// PiggybankTarget is the amount a piggybank is shown "full" at.
var PiggybankTarget = A(10000)

// Deposit is one contribution to a piggybank.
type Deposit struct {
	Date   date.Date `json:"date"`
	Amount Amount    `json:"amount"`
}

// Piggybank is a daily savings ledger.
//
// Streak counts the consecutive calendar days with at least one contribution,
// History holds the most recent contributions, newest first.
type Piggybank struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Total        Amount    `json:"total"`
	Streak       int       `json:"streak"`
	LastSaveDate date.Date `json:"lastSaveDate"` // zero until the first contribution
	History      []Deposit `json:"history"`
	Color        Color     `json:"color"`
	Icon         Icon      `json:"icon"`
}

func (p Piggybank) identity() string { return p.ID }

func defaultPiggybanks() []Piggybank {
	return []Piggybank{{
		ID:      "1",
		Name:    "Daily Savings",
		History: []Deposit{},
		Color:   ColorPinkRose,
		Icon:    IconPiggyBank,
	}}
}

// NewPiggybank returns an empty piggybank, the n-th of its list.
func NewPiggybank(name string, icon Icon, n int) Piggybank {
	return Piggybank{
		ID:      NewID(),
		Name:    name,
		History: []Deposit{},
		Color:   PiggybankPalette.Next(n),
		Icon:    PiggybankIcons.Resolve(icon),
	}
}

// RecordContribution returns p after saving amount on today.
//
// A second contribution on the same day keeps the streak. The first
// contribution of a day extends the streak when the previous one was
// yesterday, and restarts it at 1 otherwise. Every contribution is logged in
// the history, which keeps the HistoryCapacity most recent ones.
//
// A non-positive amount is rejected and p is returned unchanged.
func (p Piggybank) RecordContribution(amount Amount, today date.Date) (Piggybank, error) {
	if !amount.IsPositive() {
		return p, fmt.Errorf("%w: contribution must be positive, got %v", ErrInvalidAmount, amount)
	}

	if p.LastSaveDate != today {
		if p.LastSaveDate == today.Add(-1) {
			p.Streak++
		} else {
			p.Streak = 1
		}
		p.LastSaveDate = today
	}

	p.Total = p.Total.Add(amount)

	n := min(len(p.History), HistoryCapacity-1)
	history := make([]Deposit, 0, n+1)
	history = append(history, Deposit{Date: today, Amount: amount})
	p.History = append(history, p.History[:n]...)
	return p, nil
}

// Progress implements Tracker, toward PiggybankTarget.
func (p Piggybank) Progress() Progress {
	return Progress{
		Percent:   ProgressPercent(p.Total, PiggybankTarget).Cap(),
		Remaining: Remaining(PiggybankTarget, p.Total),
	}
}

// SavedIn returns the sum of the remembered contributions made within r.
func (p Piggybank) SavedIn(r date.Range) Amount {
	var sum Amount
	for _, d := range p.History {
		if r.Contains(d.Date) {
			sum = sum.Add(d.Amount)
		}
	}
	return sum
}

// StreakStatus is the badge earned by a streak.
type StreakStatus int

const (
	StreakStarting StreakStatus = iota
	StreakOneWeek
	StreakTwoWeeks
	StreakMaster
)

// Status returns the badge of the current streak.
func (p Piggybank) Status() StreakStatus {
	switch {
	case p.Streak >= 30:
		return StreakMaster
	case p.Streak >= 14:
		return StreakTwoWeeks
	case p.Streak >= 7:
		return StreakOneWeek
	default:
		return StreakStarting
	}
}

func (s StreakStatus) String() string {
	switch s {
	case StreakMaster:
		return "Master"
	case StreakTwoWeeks:
		return "2 Weeks"
	case StreakOneWeek:
		return "1 Week"
	default:
		return "Starting"
	}
}

// legacyPiggybank is the single piggybank record stored before multiple
// piggybanks were supported.
type legacyPiggybank struct {
	Total        Amount    `json:"total"`
	Streak       int       `json:"streak"`
	LastSaveDate date.Date `json:"lastSaveDate"`
	History      []Deposit `json:"history"`
}

// upgrade wraps the legacy record into the current list shape.
func (l legacyPiggybank) upgrade() []Piggybank {
	p := defaultPiggybanks()[0]
	p.Total = l.Total
	p.Streak = l.Streak
	p.LastSaveDate = l.LastSaveDate
	if l.History != nil {
		p.History = l.History
	}
	if len(p.History) > HistoryCapacity {
		p.History = p.History[:HistoryCapacity]
	}
	return []Piggybank{p}
}
