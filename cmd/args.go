package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fintrack"
)

// idArg returns the single record id argument of f.
func idArg(f *flag.FlagSet) (string, bool) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one record id argument")
		return "", false
	}
	return f.Arg(0), true
}

// requireName checks that a required name flag is not blank.
func requireName(flagName, value string) bool {
	if strings.TrimSpace(value) == "" {
		fmt.Fprintf(os.Stderr, "Error: -%s is required\n", flagName)
		return false
	}
	return true
}

// amountFlag parses the value of an amount flag. An empty value is allowed
// only when the flag is optional, it then returns the fallback.
func amountFlag(flagName, value string, required bool, fallback fintrack.Amount) (fintrack.Amount, bool) {
	if value == "" && !required {
		return fallback, true
	}
	a, err := fintrack.ParseAmount(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -%s: %v\n", flagName, err)
		return fintrack.Amount{}, false
	}
	return a, true
}

// positiveAmountFlag parses a required amount flag that must be positive.
func positiveAmountFlag(flagName, value string) (fintrack.Amount, bool) {
	a, ok := amountFlag(flagName, value, true, fintrack.Amount{})
	if ok && !a.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: -%s must be positive, got %s\n", flagName, value)
		return fintrack.Amount{}, false
	}
	return a, ok
}

// iconFlag parses an icon name among the icons of set. An empty value
// returns the fallback.
func iconFlag(set fintrack.IconSet, value string, fallback fintrack.Icon) (fintrack.Icon, bool) {
	if value == "" {
		return fallback, true
	}
	icon := fintrack.ParseIcon(value)
	if set.Resolve(icon) != icon {
		fmt.Fprintf(os.Stderr, "Error: unknown icon %q, want one of %s\n", value, strings.Join(set.Names(), ", "))
		return fintrack.IconNone, false
	}
	return icon, true
}
