package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/pantry/renderer"
	"github.com/google/subcommands"
)

type valueCmd struct {
	raw bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "print the value of the whole stock" }
func (*valueCmd) Usage() string {
	return `gro value [-raw]

  Prints the sum of the totals of every lot in stock.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print plain markdown")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return failure("loading pantry", err)
	}
	defer a.close()

	if err := printMarkdown(os.Stdout, renderer.Valuation("Total value", a.store.TotalValuation()), c.raw); err != nil {
		return failure("printing", err)
	}
	return subcommands.ExitSuccess
}
