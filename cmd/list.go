package cmd

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	raw bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all groceries sorted by name" }
func (*listCmd) Usage() string {
	return `gro list [-raw]

  Lists every lot in stock, sorted by name, followed by the value of the
  whole stock.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print plain markdown")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return failure("loading pantry", err)
	}
	defer a.close()

	list, err := a.store.Sorted()
	if err != nil && !errors.Is(err, pantry.ErrNotFound) {
		return failure("listing groceries", err)
	}

	var b strings.Builder
	b.WriteString(renderer.Groceries("Groceries", list))
	b.WriteString("\n")
	b.WriteString(renderer.Valuation("Total value", a.store.TotalValuation()))
	if err := printMarkdown(os.Stdout, b.String(), c.raw); err != nil {
		return failure("printing", err)
	}
	return subcommands.ExitSuccess
}
