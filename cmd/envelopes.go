package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type envelopesCmd struct{}

func (*envelopesCmd) Name() string     { return "envelopes" }
func (*envelopesCmd) Synopsis() string { return "show budget envelopes" }
func (*envelopesCmd) Usage() string {
	return `ft envelopes

  Shows the budget envelopes with the allocated, spent and remaining amounts.
  Overspent envelopes show how much they are over.
`
}

func (c *envelopesCmd) SetFlags(f *flag.FlagSet) {}

func (c *envelopesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	envelopes, err := s.book.Envelopes()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.EnvelopesMarkdown(s.page(), envelopes))
	return subcommands.ExitSuccess
}

type envelopeAddCmd struct {
	name      string
	allocated string
	icon      string
}

func (*envelopeAddCmd) Name() string     { return "envelope-add" }
func (*envelopeAddCmd) Synopsis() string { return "add a budget envelope" }
func (*envelopeAddCmd) Usage() string {
	return `ft envelope-add -name <name> -allocated <amount> [-icon <icon>]

  Adds a budget envelope.
`
}

func (c *envelopeAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Envelope name (required)")
	f.StringVar(&c.allocated, "allocated", "", "Budget of the envelope (required)")
	f.StringVar(&c.icon, "icon", "", "Icon name, defaults to Heart")
}

func (c *envelopeAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !requireName("name", c.name) {
		return subcommands.ExitUsageError
	}
	allocated, ok := amountFlag("allocated", c.allocated, true, fintrack.Amount{})
	if !ok {
		return subcommands.ExitUsageError
	}
	icon, ok := iconFlag(fintrack.EnvelopeIcons, c.icon, fintrack.IconHeart)
	if !ok {
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	e, err := s.book.AddEnvelope(c.name, allocated, icon)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "Added envelope %q with %s (id %s)\n", e.Name, s.money(e.Allocated), e.ID)
	return subcommands.ExitSuccess
}

type envelopeEditCmd struct {
	name      string
	allocated string
	spent     string
	icon      string
}

func (*envelopeEditCmd) Name() string     { return "envelope-edit" }
func (*envelopeEditCmd) Synopsis() string { return "edit a budget envelope" }
func (*envelopeEditCmd) Usage() string {
	return `ft envelope-edit [-name <name>] [-allocated <amount>] [-spent <amount>] [-icon <icon>] <id>

  Changes an envelope. Omitted flags keep their value. Use -spent 0 to start a
  new budget period.
`
}

func (c *envelopeEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New envelope name")
	f.StringVar(&c.allocated, "allocated", "", "New budget")
	f.StringVar(&c.spent, "spent", "", "New spent amount")
	f.StringVar(&c.icon, "icon", "", "New icon name")
}

func (c *envelopeEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := idArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	envelopes, err := s.book.Envelopes()
	if err != nil {
		return fail(err)
	}
	e, err := fintrack.Find(envelopes, id)
	if err != nil {
		return fail(err)
	}
	name := e.Name
	if c.name != "" {
		name = c.name
	}
	allocated, ok := amountFlag("allocated", c.allocated, false, e.Allocated)
	if !ok {
		return subcommands.ExitUsageError
	}
	spent, ok := amountFlag("spent", c.spent, false, e.Spent)
	if !ok {
		return subcommands.ExitUsageError
	}
	icon, ok := iconFlag(fintrack.EnvelopeIcons, c.icon, e.Icon)
	if !ok {
		return subcommands.ExitUsageError
	}

	if e, err = s.book.EditEnvelope(id, name, allocated, spent, icon); err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "Updated envelope %q: %s spent of %s\n", e.Name, s.money(e.Spent), s.money(e.Allocated))
	return subcommands.ExitSuccess
}

type envelopeSpendCmd struct {
	amount string
}

func (*envelopeSpendCmd) Name() string     { return "envelope-spend" }
func (*envelopeSpendCmd) Synopsis() string { return "record an expense in a budget envelope" }
func (*envelopeSpendCmd) Usage() string {
	return `ft envelope-spend -amount <amount> <id>

  Records an expense. Spending more than the budget is allowed, the envelope
  is then shown as overspent.
`
}

func (c *envelopeSpendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount spent (required)")
}

func (c *envelopeSpendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := idArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	amount, ok := positiveAmountFlag("amount", c.amount)
	if !ok {
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	e, err := s.book.SpendFromEnvelope(id, amount)
	if err != nil {
		return fail(err)
	}
	remaining := e.Progress().Remaining
	if e.Overspent() {
		fmt.Fprintf(out, "%s: %s over budget\n", e.Name, s.money(remaining.Abs()))
	} else {
		fmt.Fprintf(out, "%s: %s left\n", e.Name, s.money(remaining))
	}
	return subcommands.ExitSuccess
}

type envelopeRmCmd struct{}

func (*envelopeRmCmd) Name() string     { return "envelope-rm" }
func (*envelopeRmCmd) Synopsis() string { return "delete a budget envelope" }
func (*envelopeRmCmd) Usage() string {
	return `ft envelope-rm <id>

  Deletes a budget envelope.
`
}

func (c *envelopeRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *envelopeRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return removeRecord(f, "envelope", func(b *fintrack.Book, id string) error { return b.RemoveEnvelope(id) })
}
