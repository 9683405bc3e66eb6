package fintrack

import "fmt"

// Envelope is a budget category. Spending may exceed the allocation, an
// overspent envelope has a negative remaining amount.
type Envelope struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Allocated Amount `json:"allocated"`
	Spent     Amount `json:"spent"`
	Icon      Icon   `json:"icon"`
	Color     Color  `json:"color"`
}

func (e Envelope) identity() string { return e.ID }

func defaultEnvelopes() []Envelope {
	return []Envelope{
		{ID: "1", Name: "Groceries", Icon: IconShoppingCart, Color: ColorGreenEmerald},
		{ID: "2", Name: "Transportation", Icon: IconCar, Color: ColorBlueCyan},
		{ID: "3", Name: "Dining Out", Icon: IconCoffee, Color: ColorOrangeAmber},
		{ID: "4", Name: "Entertainment", Icon: IconFilm, Color: ColorPurpleViolet},
	}
}

// NewEnvelope returns a new envelope, the n-th of its list.
func NewEnvelope(name string, allocated Amount, icon Icon, n int) Envelope {
	return Envelope{
		ID:        NewID(),
		Name:      name,
		Allocated: allocated,
		Icon:      EnvelopeIcons.Resolve(icon),
		Color:     EnvelopePalette.Next(n),
	}
}

// Spend records an expense. It is not limited by the allocation.
func (e Envelope) Spend(amount Amount) (Envelope, error) {
	if !amount.IsPositive() {
		return e, fmt.Errorf("%w: expense must be positive, got %v", ErrInvalidAmount, amount)
	}
	e.Spent = e.Spent.Add(amount)
	return e, nil
}

// Progress implements Tracker. Percent is the share of the allocation spent.
func (e Envelope) Progress() Progress {
	return Progress{
		Percent:   ProgressPercent(e.Spent, e.Allocated),
		Remaining: Remaining(e.Allocated, e.Spent),
	}
}

// Overspent reports whether more than the allocation was spent.
func (e Envelope) Overspent() bool { return e.Spent.GreaterThan(e.Allocated) }

// EnvelopeTotals returns the sum of all allocations and of all expenses.
func EnvelopeTotals(envelopes []Envelope) (allocated, spent Amount) {
	for _, e := range envelopes {
		allocated = allocated.Add(e.Allocated)
		spent = spent.Add(e.Spent)
	}
	return allocated, spent
}
