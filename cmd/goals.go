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

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show saving goals and their progress" }
func (*goalsCmd) Usage() string {
	return `ft goals

  Shows every saving goal: amount saved, progress, daily amount to save and
  days left before the expected completion date.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	goals, err := s.book.Goals()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.GoalsMarkdown(s.page(), goals))
	return subcommands.ExitSuccess
}

type goalCreateCmd struct {
	name   string
	target string
	days   int
}

func (*goalCreateCmd) Name() string     { return "goal-create" }
func (*goalCreateCmd) Synopsis() string { return "create a saving goal" }
func (*goalCreateCmd) Usage() string {
	return `ft goal-create -name <name> -target <amount> -days <n>

  Creates a goal starting today, and shows the amount to save every day to
  reach it in time.

Usage Examples:
$ ft goal-create -name Laptop -target 3000 -days 100
`
}

func (c *goalCreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name (required)")
	f.StringVar(&c.target, "target", "", "Amount to save (required)")
	f.IntVar(&c.days, "days", 0, "Number of days to reach the target (required)")
}

func (c *goalCreateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !requireName("name", c.name) {
		return subcommands.ExitUsageError
	}
	target, ok := positiveAmountFlag("target", c.target)
	if !ok {
		return subcommands.ExitUsageError
	}
	if c.days <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -days must be a positive number of days")
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	g, err := s.book.CreateGoal(c.name, target, c.days, s.today)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.GoalPlanMarkdown(s.page(), g))
	fmt.Fprintf(out, "Created goal %q (id %s)\n", g.Name, g.ID)
	return subcommands.ExitSuccess
}

type goalAddCmd struct {
	amount string
}

func (*goalAddCmd) Name() string     { return "goal-add" }
func (*goalAddCmd) Synopsis() string { return "add money to a saving goal" }
func (*goalAddCmd) Usage() string {
	return `ft goal-add -amount <amount> <id>

  Adds money to a goal. The saved amount never goes over the target.
`
}

func (c *goalAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount to add (required)")
}

func (c *goalAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	g, err := s.book.ContributeToGoal(id, amount)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "%s: %s / %s (%s)\n", g.Name, s.money(g.CurrentAmount), s.money(g.TargetAmount), g.Progress().Percent)
	if g.Reached() {
		fmt.Fprintln(out, "Goal reached 🎉")
	}
	return subcommands.ExitSuccess
}

type goalRmCmd struct{}

func (*goalRmCmd) Name() string     { return "goal-rm" }
func (*goalRmCmd) Synopsis() string { return "delete a saving goal" }
func (*goalRmCmd) Usage() string {
	return `ft goal-rm <id>

  Deletes a saving goal.
`
}

func (c *goalRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return removeRecord(f, "goal", func(b *fintrack.Book, id string) error { return b.RemoveGoal(id) })
}
