package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type debtsCmd struct{}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "show debts and the payoff progress" }
func (*debtsCmd) Usage() string {
	return `ft debts

  Shows the total debt, total paid and remaining amount, then every debt with
  its progress and the days left before its target date.
`
}

func (c *debtsCmd) SetFlags(f *flag.FlagSet) {}

func (c *debtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	debts, err := s.book.Debts()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DebtsMarkdown(s.page(), debts))
	return subcommands.ExitSuccess
}

type debtAddCmd struct {
	name   string
	total  string
	target string
}

func (*debtAddCmd) Name() string     { return "debt-add" }
func (*debtAddCmd) Synopsis() string { return "add a debt to pay off" }
func (*debtAddCmd) Usage() string {
	return `ft debt-add -name <name> -total <amount> -target <date>

  Adds a debt to pay off by the target date. Dates are YYYY-MM-DD, or relative
  to today like 6m or 90d.
`
}

func (c *debtAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Debt name (required)")
	f.StringVar(&c.total, "total", "", "Total amount owed (required)")
	f.StringVar(&c.target, "target", "", "Date the debt should be paid off (required)")
}

func (c *debtAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !requireName("name", c.name) {
		return subcommands.ExitUsageError
	}
	total, ok := positiveAmountFlag("total", c.total)
	if !ok {
		return subcommands.ExitUsageError
	}
	if c.target == "" {
		fmt.Fprintln(os.Stderr, "Error: -target is required")
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	restore := date.Freeze(s.today)
	target, err := date.Parse(c.target)
	restore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -target: %v\n", err)
		return subcommands.ExitUsageError
	}

	d, err := s.book.AddDebt(c.name, total, target)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "Added debt %q of %s due %s (id %s)\n", d.Name, s.money(d.TotalDebt), d.TargetDate, d.ID)
	return subcommands.ExitSuccess
}

type debtPayCmd struct {
	amount string
	set    bool
}

func (*debtPayCmd) Name() string     { return "debt-pay" }
func (*debtPayCmd) Synopsis() string { return "record a payment on a debt" }
func (*debtPayCmd) Usage() string {
	return `ft debt-pay -amount <amount> [-set] <id>

  Adds a payment to a debt. With -set, the amount is the total paid so far
  instead. The paid amount always stays between zero and the total debt.
`
}

func (c *debtPayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Payment amount (required)")
	f.BoolVar(&c.set, "set", false, "Set the total paid instead of adding a payment")
}

func (c *debtPayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := idArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	var amount fintrack.Amount
	if c.set {
		amount, ok = amountFlag("amount", c.amount, true, fintrack.Amount{})
	} else {
		amount, ok = positiveAmountFlag("amount", c.amount)
	}
	if !ok {
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	var d fintrack.Debt
	var err error
	if c.set {
		d, err = s.book.SetDebtPaid(id, amount)
	} else {
		d, err = s.book.PayDebt(id, amount)
	}
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "%s: paid %s of %s, %s remaining\n", d.Name, s.money(d.PaidAmount), s.money(d.TotalDebt), s.money(d.Progress().Remaining))
	if d.PaidOff() {
		fmt.Fprintln(out, "Debt paid off 🎉")
	}
	return subcommands.ExitSuccess
}

type debtRmCmd struct{}

func (*debtRmCmd) Name() string     { return "debt-rm" }
func (*debtRmCmd) Synopsis() string { return "delete a debt" }
func (*debtRmCmd) Usage() string {
	return `ft debt-rm <id>

  Deletes a debt.
`
}

func (c *debtRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *debtRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return removeRecord(f, "debt", func(b *fintrack.Book, id string) error { return b.RemoveDebt(id) })
}
