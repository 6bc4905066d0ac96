package cmd

import (
	"flag"

	"github.com/etnz/expenses/store"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// fileFlags are the subcommand flags that take a file path.
var fileFlags = map[string]bool{"f": true, "o": true, "frontmatter": true}

// Completion returns the shell completion tree of the application, built
// from the global flags and the flags of every subcommand.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*"),
			"backend":     predict.Set(backendNames()),
			"currency":    predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
			"v":           predict.Nothing,
		},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Command.Name(), flag.ContinueOnError)
		c.Command.SetFlags(fs)

		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			switch {
			case isBoolFlag(f):
				sub.Flags[f.Name] = predict.Nothing
			case fileFlags[f.Name]:
				sub.Flags[f.Name] = predict.Files("*")
			default:
				sub.Flags[f.Name] = predict.Something
			}
		})
		root.Sub[c.Command.Name()] = sub
	}
	return root
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func backendNames() []string {
	names := make([]string, 0, len(store.Backends))
	for _, b := range store.Backends {
		names = append(names, string(b))
	}
	return names
}
