package fintrack

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Cap returns p limited to 100%, as progress bars show it.
func (p Percent) Cap() Percent {
	if p > 100 {
		return 100
	}
	return p
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}
