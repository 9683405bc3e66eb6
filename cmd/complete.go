package cmd

import (
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors are the value suggestions of flags sharing a name across commands.
var flagPredictors = map[string]complete.Predictor{
	"currency": predict.Set(fintrack.CurrencyCodes()),
	"category": predict.Set{"motivation", "goal", "milestone", "reminder"},
	"store":    predict.Files("*"),
	"totals":   predict.Set{"day", "week", "month", "year"},
}

// completion returns the completion tree of the ft command.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	addFlags(root, flag.CommandLine, nil)
	for _, g := range groups {
		for _, c := range g.commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
			addFlags(sub, fs, iconNames(c.Name()))
			root.Sub[c.Name()] = sub
		}
	}
	root.Sub["topic"].Args = predict.Set(topicNames())
	root.Sub["get"].Args = predict.Set(fintrack.Keys)
	return root
}

// addFlags declares the flags of fs in c.
func addFlags(c *complete.Command, fs *flag.FlagSet, icons []string) {
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "icon" && icons != nil:
			c.Flags[f.Name] = predict.Set(icons)
		case flagPredictors[f.Name] != nil:
			c.Flags[f.Name] = flagPredictors[f.Name]
		case isBool(f):
			c.Flags[f.Name] = predict.Nothing
		default:
			c.Flags[f.Name] = predict.Something
		}
	})
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func topicNames() []string {
	topics, _ := docs.GetAllTopics()
	return topics
}

// iconNames returns the icons offered by a command, from its page.
func iconNames(command string) []string {
	switch command {
	case "account-add", "account-edit":
		return fintrack.AccountIcons.Names()
	case "envelope-add", "envelope-edit":
		return fintrack.EnvelopeIcons.Names()
	case "piggy-add", "piggy-edit":
		return fintrack.PiggybankIcons.Names()
	}
	return nil
}

// Complete runs the shell completion when ft is invoked by the shell to
// complete a command line, and then exits. Otherwise it does nothing.
//
// Install it with: COMP_INSTALL=1 ft
func Complete() {
	completion().Complete("ft")
}
