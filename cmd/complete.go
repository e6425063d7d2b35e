package cmd

import (
	"bytes"
	"flag"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors predicts flag values by flag name, whatever the command.
var flagPredictors = map[string]complete.Predictor{
	"config":   predict.Files("*.toml"),
	"cookbook": predict.Files("*.toml"),
	"seed":     predict.Files("*.jsonl"),
	"currency": predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
	"u":        predict.Set{pantry.Kilogram.String(), pantry.Liter.String(), pantry.Pieces.String()},
	"r":        predict.Set(builtinRecipes()),
	"d":        predict.Nothing,
}

// Completion returns the shell completion of the gro command line.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(Commands)),
		Flags: predictFlags(flag.CommandLine),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{Flags: predictFlags(f)}
		if c.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		flags[fl.Name] = predict.Nothing
	})
	return flags
}

func builtinRecipes() []string {
	book, err := pantry.DecodeCookbook(bytes.NewReader(defaultCookbook))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(book))
	for _, r := range book {
		names = append(names, r.Name)
	}
	return names
}
