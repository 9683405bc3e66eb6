package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type settingsCmd struct {
	currency   string
	darkToggle bool
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the theme and display currency" }
func (*settingsCmd) Usage() string {
	return `ft settings [-currency <code>] [-dark-toggle]

  Without flags, shows the current settings. Amounts are kept in pesos and
  converted to the display currency with fixed rates.

Usage Examples:
$ ft settings -currency USD
$ ft settings -dark-toggle
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Display currency: "+strings.Join(fintrack.CurrencyCodes(), ", "))
	f.BoolVar(&c.darkToggle, "dark-toggle", false, "Switch between the light and dark theme")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	cancel := s.prefs.Subscribe(func(settings fintrack.Settings) {
		darkMode = settings.DarkMode
		log.Printf("settings changed: dark mode %v, currency %s", settings.DarkMode, settings.Currency)
	})
	defer cancel()

	if c.currency != "" {
		err := s.prefs.SetCurrency(c.currency)
		if errors.Is(err, fintrack.ErrUnknownCurrency) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err != nil {
			return fail(err)
		}
		fmt.Fprintf(out, "Currency set to %s\n", s.prefs.Settings().Currency.Code)
	}
	if c.darkToggle {
		if err := s.prefs.ToggleDarkMode(); err != nil {
			return fail(err)
		}
		theme := "light"
		if s.prefs.Settings().DarkMode {
			theme = "dark"
		}
		fmt.Fprintf(out, "Theme set to %s\n", theme)
	}
	if c.currency == "" && !c.darkToggle {
		printMarkdown(renderer.SettingsMarkdown(s.prefs.Settings()))
	}
	return subcommands.ExitSuccess
}
