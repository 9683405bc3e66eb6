// Package cmd implements the CLI application to track personal finances.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/renderer"
	"github.com/etnz/fintrack/store"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

// groups lists the subcommands, by page.
var groups = []struct {
	name     string
	commands []subcommands.Command
}{
	{"accounts", []subcommands.Command{&dashboardCmd{}, &accountAddCmd{}, &accountEditCmd{}, &accountRmCmd{}}},
	{"goals", []subcommands.Command{&goalsCmd{}, &goalCreateCmd{}, &goalAddCmd{}, &goalRmCmd{}}},
	{"debts", []subcommands.Command{&debtsCmd{}, &debtAddCmd{}, &debtPayCmd{}, &debtRmCmd{}}},
	{"envelopes", []subcommands.Command{&envelopesCmd{}, &envelopeAddCmd{}, &envelopeEditCmd{}, &envelopeSpendCmd{}, &envelopeRmCmd{}}},
	{"emergency fund", []subcommands.Command{&fundCmd{}, &fundSetCmd{}}},
	{"piggybanks", []subcommands.Command{&piggyCmd{}, &piggyAddCmd{}, &piggySaveCmd{}, &piggyEditCmd{}, &piggyRmCmd{}}},
	{"notes", []subcommands.Command{&notesCmd{}, &noteAddCmd{}, &noteRmCmd{}}},
	{"settings", []subcommands.Command{&settingsCmd{}, &getCmd{}, &topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// Environment variables providing the default value of the global flags.
const (
	EnvStore   = "FT_STORE"
	EnvVerbose = "FT_VERBOSE"
	EnvToday   = "FT_TODAY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeLocation = flag.String("store", ".fintrack", "Where records are kept: a folder, sqlite:<file> or memory:")
var Verbose = flag.Bool("v", false, "Log warnings and details to stderr")
var todayFlag = flag.String("today", "", "Override the current date (YYYY-MM-DD)")

// out is where pages and messages are printed.
var out io.Writer = os.Stdout

// darkMode selects the terminal style of printMarkdown, it is updated when the
// preferences are loaded.
var darkMode bool

// Configure completes the global flags from the environment, after the command
// line was parsed: flags set on the command line win. Variables can be
// declared in a .env file of the current folder.
func Configure() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: cannot read .env file: %v\n", err)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if v, ok := os.LookupEnv(EnvStore); ok && !set["store"] {
		*storeLocation = v
	}
	if v, ok := os.LookupEnv(EnvVerbose); ok && !set["v"] {
		*Verbose, _ = strconv.ParseBool(v)
	}
	if v, ok := os.LookupEnv(EnvToday); ok && !set["today"] {
		*todayFlag = v
	}

	log.SetOutput(io.Discard)
	if *Verbose {
		log.SetOutput(os.Stderr)
	}
}

// today returns the current date, or the one set by -today.
func today() (date.Date, error) {
	if *todayFlag == "" {
		return date.Today(), nil
	}
	d, err := date.Parse(*todayFlag)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid -today: %w", err)
	}
	return d, nil
}

// session is an open store with its loaded preferences.
type session struct {
	book  *fintrack.Book
	prefs *fintrack.Preferences
	today date.Date
}

// openSession opens the store and loads the preferences. It reports errors to
// stderr, and the caller returns the status when session is nil.
func openSession() (*session, subcommands.ExitStatus) {
	on, err := today()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	backend, err := store.Open(*storeLocation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storeLocation, err)
		return nil, subcommands.ExitFailure
	}
	g := store.NewGateway(backend)
	prefs, err := fintrack.Init(g)
	if err != nil {
		g.Close()
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	darkMode = prefs.Settings().DarkMode
	log.Printf("opened store %q on %s", *storeLocation, on)
	return &session{book: fintrack.NewBook(g), prefs: prefs, today: on}, subcommands.ExitSuccess
}

// Close closes the store.
func (s *session) Close() {
	if err := s.book.Gateway().Close(); err != nil {
		log.Printf("warning, closing store: %v", err)
	}
}

// page returns the rendering context of the session.
func (s *session) page() renderer.Page {
	return renderer.Page{Currency: s.prefs.Settings().Currency, Today: s.today}
}

// money formats an amount in the display currency loaded by openSession.
func (s *session) money(a fintrack.Amount) string { return fintrack.Format(a) }

// fail reports an error of the core and returns the matching status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown prints md styled for the terminal, or as is when the output
// is not a terminal.
func printMarkdown(md string) {
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(out, md)
		return
	}
	style := styles.LightStyle
	if darkMode {
		style = styles.DarkStyle
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(120))
	if err != nil {
		log.Printf("warning, cannot style markdown: %v", err)
		fmt.Fprint(out, md)
		return
	}
	styled, err := r.Render(md)
	if err != nil {
		log.Printf("warning, cannot style markdown: %v", err)
		fmt.Fprint(out, md)
		return
	}
	fmt.Fprint(out, styled)
}
