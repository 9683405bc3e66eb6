package date

import (
	"fmt"
	"strings"
)

// Period is a calendar period used to sum savings.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
)

var periodNouns = [...]string{Daily: "day", Weekly: "week", Monthly: "month", Yearly: "year"}

// Noun returns the period as a noun: "day", "week", "month" or "year".
func (p Period) Noun() string {
	if p < 0 || int(p) >= len(periodNouns) {
		panic(fmt.Sprintf("unknown period %d", p))
	}
	return periodNouns[p]
}

// String returns the adjective form, like "weekly".
func (p Period) String() string {
	if p == Daily {
		return "daily"
	}
	return p.Noun() + "ly"
}

// ParsePeriod reads a period from its noun or adjective form, in any case.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p := range periodNouns {
		if s == periodNouns[p] || s == Period(p).String() {
			return Period(p), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q, want day, week, month or year", s)
}

// ParsePeriods reads a comma separated list of periods.
func ParsePeriods(s string) ([]Period, error) {
	var periods []Period
	for _, field := range strings.Split(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		p, err := ParsePeriod(field)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, nil
}
