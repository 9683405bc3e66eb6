package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type getCmd struct {
	path string
}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "print a stored record as JSON" }
func (*getCmd) Usage() string {
	return `ft get [-path <jsonpath>] [<key>]

  Prints the record stored under key, as JSON. Without key, lists the stored
  keys. With -path, prints only the value selected by the JSONPath expression.

Usage Examples:
$ ft get -path '$[0].streak' piggybanks
$ ft get -path '$[*].name' savingGoals
`
}

func (c *getCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "JSONPath expression selecting a value of the record")
}

func (c *getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting at most one key")
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()
	g := s.book.Gateway()

	if f.NArg() == 0 {
		keys, err := g.Keys()
		if err != nil {
			return fail(err)
		}
		for _, k := range keys {
			fmt.Fprintln(out, k)
		}
		return subcommands.ExitSuccess
	}

	key := f.Arg(0)
	if c.path == "" {
		raw, err := g.Raw(key)
		if err != nil {
			return fail(err)
		}
		// indented as stored, so that decimals keep every digit
		var buf bytes.Buffer
		if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
			// not JSON, printed as is
			fmt.Fprintln(out, string(raw))
			return subcommands.ExitSuccess
		}
		fmt.Fprintln(out, buf.String())
		return subcommands.ExitSuccess
	}

	value, err := g.Query(key, c.path)
	if err != nil {
		return fail(err)
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(out, string(data))
	return subcommands.ExitSuccess
}
