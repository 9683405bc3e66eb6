package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type fundCmd struct{}

func (*fundCmd) Name() string     { return "fund" }
func (*fundCmd) Synopsis() string { return "show the emergency fund" }
func (*fundCmd) Usage() string {
	return `ft fund

  Shows the emergency fund progress and how many months of expenses it covers.
`
}

func (c *fundCmd) SetFlags(f *flag.FlagSet) {}

func (c *fundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	fund, err := s.book.EmergencyFund()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.FundMarkdown(s.page(), fund))
	return subcommands.ExitSuccess
}

type fundSetCmd struct {
	target   string
	current  string
	expenses string
}

func (*fundSetCmd) Name() string     { return "fund-set" }
func (*fundSetCmd) Synopsis() string { return "update the emergency fund" }
func (*fundSetCmd) Usage() string {
	return `ft fund-set [-target <amount>] [-current <amount>] [-expenses <amount>]

  Updates the emergency fund. Omitted flags keep their value.
`
}

func (c *fundSetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "target", "", "Target amount")
	f.StringVar(&c.current, "current", "", "Amount saved so far")
	f.StringVar(&c.expenses, "expenses", "", "Monthly expenses")
}

func (c *fundSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var u fintrack.FundUpdate
	for _, v := range []struct {
		name  string
		value string
		dest  **fintrack.Amount
	}{
		{"target", c.target, &u.TargetAmount},
		{"current", c.current, &u.CurrentAmount},
		{"expenses", c.expenses, &u.MonthlyExpenses},
	} {
		if v.value == "" {
			continue
		}
		a, ok := amountFlag(v.name, v.value, true, fintrack.Amount{})
		if !ok {
			return subcommands.ExitUsageError
		}
		*v.dest = &a
	}
	if u == (fintrack.FundUpdate{}) {
		fmt.Fprintln(os.Stderr, "Error: nothing to update, use -target, -current or -expenses")
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	fund, err := s.book.UpdateEmergencyFund(u)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "Emergency fund: %s / %s, %.1f months covered\n", s.money(fund.CurrentAmount), s.money(fund.TargetAmount), fund.MonthsCovered())
	return subcommands.ExitSuccess
}
