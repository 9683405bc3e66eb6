package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show bank accounts and the total balance" }
func (*dashboardCmd) Usage() string {
	return `ft dashboard

  Shows the bank accounts with their balance, and the total balance. The total
  is always shown in pesos, whatever the selected currency.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	accounts, err := s.book.Accounts()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DashboardMarkdown(s.page(), accounts))
	return subcommands.ExitSuccess
}

type accountAddCmd struct {
	name    string
	balance string
	icon    string
}

func (*accountAddCmd) Name() string     { return "account-add" }
func (*accountAddCmd) Synopsis() string { return "add a bank account" }
func (*accountAddCmd) Usage() string {
	return `ft account-add -name <name> -balance <amount> [-icon <icon>]

  Adds a bank account. Balances are in pesos and may be negative.

Usage Examples:
$ ft account-add -name "Credit Union" -balance 1,500.50 -icon Landmark
`
}

func (c *accountAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name (required)")
	f.StringVar(&c.balance, "balance", "", "Current balance (required)")
	f.StringVar(&c.icon, "icon", "", "Icon name, defaults to Wallet")
}

func (c *accountAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !requireName("name", c.name) {
		return subcommands.ExitUsageError
	}
	balance, ok := amountFlag("balance", c.balance, true, fintrack.Amount{})
	if !ok {
		return subcommands.ExitUsageError
	}
	icon, ok := iconFlag(fintrack.AccountIcons, c.icon, fintrack.IconWallet)
	if !ok {
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	a, err := s.book.AddAccount(c.name, balance, icon)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "Added account %q with %s (id %s)\n", a.Name, s.money(a.Balance), a.ID)
	return subcommands.ExitSuccess
}

type accountEditCmd struct {
	name    string
	balance string
	icon    string
}

func (*accountEditCmd) Name() string     { return "account-edit" }
func (*accountEditCmd) Synopsis() string { return "edit a bank account" }
func (*accountEditCmd) Usage() string {
	return `ft account-edit [-name <name>] [-balance <amount>] [-icon <icon>] <id>

  Changes the name, balance or icon of an account. Omitted flags keep their value.
`
}

func (c *accountEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New account name")
	f.StringVar(&c.balance, "balance", "", "New balance")
	f.StringVar(&c.icon, "icon", "", "New icon name")
}

func (c *accountEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := idArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	accounts, err := s.book.Accounts()
	if err != nil {
		return fail(err)
	}
	a, err := fintrack.Find(accounts, id)
	if err != nil {
		return fail(err)
	}
	name := a.Name
	if c.name != "" {
		name = c.name
	}
	balance, ok := amountFlag("balance", c.balance, false, a.Balance)
	if !ok {
		return subcommands.ExitUsageError
	}
	icon, ok := iconFlag(fintrack.AccountIcons, c.icon, a.Icon)
	if !ok {
		return subcommands.ExitUsageError
	}

	if a, err = s.book.EditAccount(id, name, balance, icon); err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "Updated account %q: %s\n", a.Name, s.money(a.Balance))
	return subcommands.ExitSuccess
}

type accountRmCmd struct{}

func (*accountRmCmd) Name() string     { return "account-rm" }
func (*accountRmCmd) Synopsis() string { return "delete a bank account" }
func (*accountRmCmd) Usage() string {
	return `ft account-rm <id>

  Deletes a bank account.
`
}

func (c *accountRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return removeRecord(f, "account", func(b *fintrack.Book, id string) error { return b.RemoveAccount(id) })
}

// removeRecord runs a delete command taking the record id as argument.
func removeRecord(f *flag.FlagSet, kind string, remove func(*fintrack.Book, string) error) subcommands.ExitStatus {
	id, ok := idArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	if err := remove(s.book, id); err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "Deleted %s %s\n", kind, id)
	return subcommands.ExitSuccess
}
