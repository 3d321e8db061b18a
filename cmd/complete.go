package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// Subcommands and their flags are read from Commands, so that completion
// never drifts from the actual command line.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"currency": predict.Set{"EUR", "USD", "GBP", "JPY", "CHF"},
			"v":        predict.Set{},
		},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f.Name)
		})
		root.Sub[c.Name()] = sub
	}
	root.Sub["topic"].Args = topicPredictor{}
	return root
}

func flagPredictor(name string) complete.Predictor {
	switch name {
	case "f":
		return predict.Files("*")
	default:
		return predict.Set{}
	}
}
