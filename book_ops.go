package fintrack

import (
	"time"

	"github.com/etnz/fintrack/date"
)

// This file contains the operations the tracker pages perform: each one loads
// a list, changes one record and writes the list back.

// update applies fn to the record with id and saves the list.
func update[T identified](load func() ([]T, error), save func([]T) error, id string, fn func(T) (T, error)) (T, error) {
	var zero T
	list, err := load()
	if err != nil {
		return zero, err
	}
	r, err := Find(list, id)
	if err != nil {
		return zero, err
	}
	if r, err = fn(r); err != nil {
		return zero, err
	}
	if list, err = Replace(list, r); err != nil {
		return zero, err
	}
	return r, save(list)
}

// remove deletes the record with id and saves the list.
func remove[T identified](load func() ([]T, error), save func([]T) error, id string) error {
	list, err := load()
	if err != nil {
		return err
	}
	if list, err = Remove(list, id); err != nil {
		return err
	}
	return save(list)
}

// add appends the record built by create from the list length.
func add[T any](load func() ([]T, error), save func([]T) error, create func(n int) T) (T, error) {
	var zero T
	list, err := load()
	if err != nil {
		return zero, err
	}
	r := create(len(list))
	return r, save(append(list, r))
}

// Accounts

func (b *Book) AddAccount(name string, balance Amount, icon Icon) (Account, error) {
	return add(b.Accounts, b.SaveAccounts, func(n int) Account { return NewAccount(name, balance, icon, n) })
}

func (b *Book) EditAccount(id, name string, balance Amount, icon Icon) (Account, error) {
	return update(b.Accounts, b.SaveAccounts, id, func(a Account) (Account, error) {
		a.Name, a.Balance, a.Icon = name, balance, AccountIcons.Resolve(icon)
		return a, nil
	})
}

func (b *Book) RemoveAccount(id string) error { return remove(b.Accounts, b.SaveAccounts, id) }

// Goals

func (b *Book) CreateGoal(name string, target Amount, days int, today date.Date) (Goal, error) {
	return add(b.Goals, b.SaveGoals, func(int) Goal { return NewGoal(name, target, days, today) })
}

func (b *Book) ContributeToGoal(id string, amount Amount) (Goal, error) {
	return update(b.Goals, b.SaveGoals, id, func(g Goal) (Goal, error) { return g.Contribute(amount) })
}

func (b *Book) RemoveGoal(id string) error { return remove(b.Goals, b.SaveGoals, id) }

// Debts

func (b *Book) AddDebt(name string, total Amount, target date.Date) (Debt, error) {
	return add(b.Debts, b.SaveDebts, func(n int) Debt { return NewDebt(name, total, target, n) })
}

func (b *Book) PayDebt(id string, amount Amount) (Debt, error) {
	return update(b.Debts, b.SaveDebts, id, func(d Debt) (Debt, error) { return d.Pay(amount) })
}

func (b *Book) SetDebtPaid(id string, paid Amount) (Debt, error) {
	return update(b.Debts, b.SaveDebts, id, func(d Debt) (Debt, error) { return d.SetPaid(paid), nil })
}

func (b *Book) RemoveDebt(id string) error { return remove(b.Debts, b.SaveDebts, id) }

// Envelopes

func (b *Book) AddEnvelope(name string, allocated Amount, icon Icon) (Envelope, error) {
	return add(b.Envelopes, b.SaveEnvelopes, func(n int) Envelope { return NewEnvelope(name, allocated, icon, n) })
}

func (b *Book) EditEnvelope(id, name string, allocated, spent Amount, icon Icon) (Envelope, error) {
	return update(b.Envelopes, b.SaveEnvelopes, id, func(e Envelope) (Envelope, error) {
		e.Name, e.Allocated, e.Spent, e.Icon = name, allocated, spent, EnvelopeIcons.Resolve(icon)
		return e, nil
	})
}

func (b *Book) SpendFromEnvelope(id string, amount Amount) (Envelope, error) {
	return update(b.Envelopes, b.SaveEnvelopes, id, func(e Envelope) (Envelope, error) { return e.Spend(amount) })
}

func (b *Book) RemoveEnvelope(id string) error { return remove(b.Envelopes, b.SaveEnvelopes, id) }

// Piggybanks

func (b *Book) AddPiggybank(name string, icon Icon) (Piggybank, error) {
	return add(b.Piggybanks, b.SavePiggybanks, func(n int) Piggybank { return NewPiggybank(name, icon, n) })
}

func (b *Book) EditPiggybank(id, name string, icon Icon) (Piggybank, error) {
	return update(b.Piggybanks, b.SavePiggybanks, id, func(p Piggybank) (Piggybank, error) {
		p.Name, p.Icon = name, PiggybankIcons.Resolve(icon)
		return p, nil
	})
}

// SaveToPiggybank records a contribution made on today.
func (b *Book) SaveToPiggybank(id string, amount Amount, today date.Date) (Piggybank, error) {
	return update(b.Piggybanks, b.SavePiggybanks, id, func(p Piggybank) (Piggybank, error) {
		return p.RecordContribution(amount, today)
	})
}

func (b *Book) RemovePiggybank(id string) error { return remove(b.Piggybanks, b.SavePiggybanks, id) }

// Notes

// AddNote records a note, newest notes come first.
func (b *Book) AddNote(title, content string, category Category, linkedTo string, now time.Time) (Note, error) {
	notes, err := b.Notes()
	if err != nil {
		return Note{}, err
	}
	n := NewNote(title, content, category, linkedTo, now)
	return n, b.SaveNotes(append([]Note{n}, notes...))
}

func (b *Book) RemoveNote(id string) error { return remove(b.Notes, b.SaveNotes, id) }
