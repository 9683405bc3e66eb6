package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// run executes the ft command line args on the store at location, on 2025-01-15
// unless day is set, and returns what was printed.
func run(t *testing.T, location, day string, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	if day == "" {
		day = "2025-01-15"
	}
	*storeLocation = location
	*todayFlag = day

	var buf bytes.Buffer
	out = &buf
	defer func() { out = os.Stdout }()

	fs := flag.NewFlagSet("ft", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "ft")
	Register(commander)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%q) error = %v", args, err)
	}
	status := commander.Execute(context.Background())
	return buf.String(), status
}

// mustRun is run for commands expected to succeed.
func mustRun(t *testing.T, location, day string, args ...string) string {
	t.Helper()
	got, status := run(t, location, day, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("ft %s: status = %v, output:\n%s", strings.Join(args, " "), status, got)
	}
	return got
}

func TestPiggybankStreak(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		day  string
		want string
	}{
		{"2025-01-13", "Saved ₱50.00 in Daily Savings, total ₱50.00, streak 1 day\n"},
		{"2025-01-13", "Saved ₱50.00 in Daily Savings, total ₱100.00, streak 1 day\n"},
		{"2025-01-14", "Saved ₱50.00 in Daily Savings, total ₱150.00, streak 2 days\n"},
		{"2025-01-17", "Saved ₱50.00 in Daily Savings, total ₱200.00, streak 1 day\n"},
	}
	for _, tt := range tests {
		if got := mustRun(t, dir, tt.day, "piggy-save", "-amount", "50", "1"); got != tt.want {
			t.Errorf("piggy-save on %s = %q, want %q", tt.day, got, tt.want)
		}
	}

	if got := mustRun(t, dir, "", "get", "-path", "$[0].history[*].date", "piggybanks"); !strings.Contains(got, `"2025-01-17"`) {
		t.Errorf("get history dates = %s", got)
	}
	if got := mustRun(t, dir, "", "get", "-path", "$[0].streak", "piggybanks"); got != "1\n" {
		t.Errorf("get streak = %q, want 1", got)
	}
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()
	tests := [][]string{
		{"goal-create", "-target", "3000", "-days", "100"},
		{"goal-create", "-name", "Laptop", "-target", "abc", "-days", "100"},
		{"goal-create", "-name", "Laptop", "-target", "3000"},
		{"piggy-save", "-amount", "0", "1"},
		{"piggy-save", "-amount", "50"},
		{"piggy", "-totals", "week,fortnight"},
		{"account-add", "-name", "Cash", "-balance", ""},
		{"account-add", "-name", "Cash", "-balance", "10", "-icon", "Car"},
		{"settings", "-currency", "XYZ"},
		{"note-add", "-title", "t", "-content", "c", "-category", "wish"},
		{"fund-set"},
		{"debt-add", "-name", "Card", "-total", "100", "-target", "someday"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, status := run(t, dir, "", args...); status != subcommands.ExitUsageError {
				t.Errorf("status = %v, want usage error", status)
			}
		})
	}
}

func TestUnknownRecord(t *testing.T) {
	dir := t.TempDir()
	if _, status := run(t, dir, "", "goal-add", "-amount", "10", "nope"); status != subcommands.ExitFailure {
		t.Errorf("goal-add on unknown id: status = %v, want failure", status)
	}
}

func TestGoals(t *testing.T) {
	dir := t.TempDir()
	got := mustRun(t, dir, "2025-01-01", "goal-create", "-name", "Laptop", "-target", "3,000", "-days", "100")
	if !strings.Contains(got, "Save ₱30.00 per day for 100 days") || !strings.Contains(got, "2025-04-11") {
		t.Errorf("goal-create output:\n%s", got)
	}
	id := strings.TrimSuffix(got[strings.LastIndex(got, "(id ")+4:], ")\n")

	got = mustRun(t, dir, "", "goal-add", "-amount", "3500", id)
	if want := "Laptop: ₱3,000.00 / ₱3,000.00 (100.00%)\nGoal reached 🎉\n"; got != want {
		t.Errorf("goal-add = %q, want %q", got, want)
	}

	got = mustRun(t, dir, "", "goals")
	if !strings.Contains(got, "Laptop") || !strings.Contains(got, "## Reached") {
		t.Errorf("goals output:\n%s", got)
	}

	mustRun(t, dir, "", "goal-rm", id)
	if got := mustRun(t, dir, "", "get", "savingGoals"); got != "[]\n" {
		t.Errorf("savingGoals after delete = %q, want []", got)
	}
}

func TestDebtsAndEnvelopes(t *testing.T) {
	dir := t.TempDir()

	got := mustRun(t, dir, "", "debt-add", "-name", "Card", "-total", "1000", "-target", "1m")
	if !strings.Contains(got, "due 2025-02-15") {
		t.Errorf("debt-add output = %q, want a relative target date", got)
	}
	id := strings.TrimSuffix(got[strings.LastIndex(got, "(id ")+4:], ")\n")
	if got := mustRun(t, dir, "", "debt-pay", "-amount", "1200", id); !strings.Contains(got, "Debt paid off") {
		t.Errorf("debt-pay output = %q, want paid off", got)
	}
	if got := mustRun(t, dir, "", "debt-pay", "-set", "-amount", "250", id); !strings.Contains(got, "paid ₱250.00 of ₱1,000.00, ₱750.00 remaining") {
		t.Errorf("debt-pay -set output = %q", got)
	}

	if got := mustRun(t, dir, "", "envelope-spend", "-amount", "650", "1"); got != "Groceries: ₱650.00 over budget\n" {
		t.Errorf("envelope-spend = %q", got)
	}
	mustRun(t, dir, "", "envelope-edit", "-allocated", "1000", "-spent", "0", "1")
	if got := mustRun(t, dir, "", "envelope-spend", "-amount", "400", "1"); got != "Groceries: ₱600.00 left\n" {
		t.Errorf("envelope-spend = %q", got)
	}
}

func TestFund(t *testing.T) {
	dir := t.TempDir()
	got := mustRun(t, dir, "", "fund-set", "-current", "5000")
	if want := "Emergency fund: ₱5,000.00 / ₱10,000.00, 2.5 months covered\n"; got != want {
		t.Errorf("fund-set = %q, want %q", got, want)
	}
	if got := mustRun(t, dir, "", "fund"); !strings.Contains(got, "50%") {
		t.Errorf("fund output:\n%s", got)
	}
}

func TestGetKeepsDigits(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "", "fund-set", "-current", "333.3333333333333333")

	got := mustRun(t, dir, "", "get", "emergencyFund")
	if want := `"currentAmount": 333.3333333333333333,`; !strings.Contains(got, want) {
		t.Errorf("get emergencyFund does not contain %s:\n%s", want, got)
	}
}

func TestSettings(t *testing.T) {
	dir := t.TempDir()
	if got := mustRun(t, dir, "", "settings", "-currency", "usd", "-dark-toggle"); got != "Currency set to USD\nTheme set to dark\n" {
		t.Errorf("settings = %q", got)
	}
	if !darkMode {
		t.Error("darkMode not updated by the settings change")
	}
	if got := mustRun(t, dir, "", "piggy-save", "-amount", "50", "1"); !strings.Contains(got, "Saved $0.90") {
		t.Errorf("piggy-save in USD = %q", got)
	}
	// the dashboard total stays in pesos
	mustRun(t, dir, "", "account-edit", "-balance", "1000", "1")
	if got := mustRun(t, dir, "", "dashboard"); !strings.Contains(got, "₱1,000.00") || !strings.Contains(got, "$18.00") {
		t.Errorf("dashboard output:\n%s", got)
	}
	if got := mustRun(t, dir, "", "get", "currency"); got != "\"USD\"\n" {
		t.Errorf("get currency = %q", got)
	}
}

func TestNotes(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "", "note-add", "-title", "Start", "-content", "Day one")
	mustRun(t, dir, "", "note-add", "-title", "Halfway", "-content", "Keep going", "-category", "milestone", "-linked-to", "Laptop")
	got := mustRun(t, dir, "", "notes")
	if strings.Index(got, "Halfway") > strings.Index(got, "Start") {
		t.Errorf("notes are not newest first:\n%s", got)
	}
}

func TestSQLiteStore(t *testing.T) {
	location := "sqlite:" + filepath.Join(t.TempDir(), "fintrack.db")
	mustRun(t, location, "", "account-add", "-name", "Cash", "-balance", "250")
	got := mustRun(t, location, "", "get")
	if want := "bankAccounts\n"; got != want {
		t.Errorf("get = %q, want %q", got, want)
	}
	if got := mustRun(t, location, "", "get", "-path", "$[2].name", "bankAccounts"); got != "\"Cash\"\n" {
		t.Errorf("get name = %q", got)
	}
}

func TestTopic(t *testing.T) {
	tests := []struct {
		args    []string
		want    []string
		notWant string
	}{
		{[]string{"topic"}, []string{"# Topics", "`piggybanks`", "daily savings and streaks", "ft topic -all"}, "# Piggybanks"},
		{[]string{"topic", "piggybanks", "storage"}, []string{"# Piggybanks", "# Storage"}, "# Debts"},
		{[]string{"topic", "-all"}, []string{"# Bank accounts", "# Piggybanks", "# Storage"}, "# ft documentation"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got := mustRun(t, "memory:", "", tt.args...)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output does not contain %q:\n%s", want, got)
				}
			}
			if strings.Contains(got, tt.notWant) {
				t.Errorf("output contains %q:\n%s", tt.notWant, got)
			}
		})
	}

	if _, status := run(t, "memory:", "", "topic", "nope"); status != subcommands.ExitFailure {
		t.Errorf("topic nope: status = %v, want failure", status)
	}
	if _, status := run(t, "memory:", "", "topic", "-all", "goals"); status != subcommands.ExitUsageError {
		t.Errorf("topic -all goals: status = %v, want usage error", status)
	}
}

func TestCompletion(t *testing.T) {
	c := completion()
	for _, g := range groups {
		for _, cmd := range g.commands {
			if c.Sub[cmd.Name()] == nil {
				t.Errorf("no completion for %q", cmd.Name())
			}
		}
	}
	if c.Flags["store"] == nil {
		t.Error("no completion for the -store flag")
	}
	if c.Sub["piggy"].Flags["totals"] == nil {
		t.Error("no completion for piggy -totals")
	}
	if c.Sub["settings"].Flags["currency"] == nil {
		t.Error("no completion for settings -currency")
	}
	if c.Sub["get"].Args == nil || c.Sub["topic"].Args == nil {
		t.Error("no completion for get or topic arguments")
	}
}
