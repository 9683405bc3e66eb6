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

type piggyCmd struct {
	history int
	totals  string
}

func (*piggyCmd) Name() string     { return "piggy" }
func (*piggyCmd) Synopsis() string { return "show piggybanks, streaks and recent savings" }
func (*piggyCmd) Usage() string {
	return `ft piggy [-history <n>] [-totals <periods>]

  Shows every piggybank with its total, saving streak, what was saved in the
  current periods and the most recent contributions.

Usage Examples:
$ ft piggy -totals day,week,month,year
`
}

func (c *piggyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.history, "history", 5, "Number of recent contributions to list")
	f.StringVar(&c.totals, "totals", "week,month", "Comma separated periods to sum savings over: day, week, month, year")
}

func (c *piggyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	periods, err := date.ParsePeriods(c.totals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -totals: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	piggybanks, err := s.book.Piggybanks()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PiggybanksMarkdown(s.page(), piggybanks, periods, max(c.history, 0)))
	return subcommands.ExitSuccess
}

type piggyAddCmd struct {
	name string
	icon string
}

func (*piggyAddCmd) Name() string     { return "piggy-add" }
func (*piggyAddCmd) Synopsis() string { return "add a piggybank" }
func (*piggyAddCmd) Usage() string {
	return `ft piggy-add -name <name> [-icon <icon>]

  Adds an empty piggybank.
`
}

func (c *piggyAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Piggybank name (required)")
	f.StringVar(&c.icon, "icon", "", "Icon name, defaults to PiggyBank")
}

func (c *piggyAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !requireName("name", c.name) {
		return subcommands.ExitUsageError
	}
	icon, ok := iconFlag(fintrack.PiggybankIcons, c.icon, fintrack.IconPiggyBank)
	if !ok {
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	p, err := s.book.AddPiggybank(c.name, icon)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "Added piggybank %q (id %s)\n", p.Name, p.ID)
	return subcommands.ExitSuccess
}

type piggySaveCmd struct {
	amount string
}

func (*piggySaveCmd) Name() string     { return "piggy-save" }
func (*piggySaveCmd) Synopsis() string { return "save money in a piggybank" }
func (*piggySaveCmd) Usage() string {
	return `ft piggy-save -amount <amount> <id>

  Records a contribution made today. Saving on consecutive days builds a
  streak, missing a day restarts it.

Usage Examples:
$ ft piggy-save -amount 50 1
`
}

func (c *piggySaveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount saved (required)")
}

func (c *piggySaveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	p, err := s.book.SaveToPiggybank(id, amount, s.today)
	if err != nil {
		return fail(err)
	}
	days := "days"
	if p.Streak == 1 {
		days = "day"
	}
	fmt.Fprintf(out, "Saved %s in %s, total %s, streak %d %s\n", s.money(amount), p.Name, s.money(p.Total), p.Streak, days)
	return subcommands.ExitSuccess
}

type piggyEditCmd struct {
	name string
	icon string
}

func (*piggyEditCmd) Name() string     { return "piggy-edit" }
func (*piggyEditCmd) Synopsis() string { return "rename a piggybank or change its icon" }
func (*piggyEditCmd) Usage() string {
	return `ft piggy-edit [-name <name>] [-icon <icon>] <id>

  Changes the name or icon of a piggybank. Its savings are kept.
`
}

func (c *piggyEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New piggybank name")
	f.StringVar(&c.icon, "icon", "", "New icon name")
}

func (c *piggyEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := idArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	piggybanks, err := s.book.Piggybanks()
	if err != nil {
		return fail(err)
	}
	p, err := fintrack.Find(piggybanks, id)
	if err != nil {
		return fail(err)
	}
	name := p.Name
	if c.name != "" {
		name = c.name
	}
	icon, ok := iconFlag(fintrack.PiggybankIcons, c.icon, p.Icon)
	if !ok {
		return subcommands.ExitUsageError
	}
	if p, err = s.book.EditPiggybank(id, name, icon); err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "Updated piggybank %q\n", p.Name)
	return subcommands.ExitSuccess
}

type piggyRmCmd struct{}

func (*piggyRmCmd) Name() string     { return "piggy-rm" }
func (*piggyRmCmd) Synopsis() string { return "delete a piggybank" }
func (*piggyRmCmd) Usage() string {
	return `ft piggy-rm <id>

  Deletes a piggybank and its history.
`
}

func (c *piggyRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *piggyRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return removeRecord(f, "piggybank", func(b *fintrack.Book, id string) error { return b.RemovePiggybank(id) })
}
