package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pantry/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct {
	name string
	raw  bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find groceries by name, ignoring case" }
func (*searchCmd) Usage() string {
	return `gro search -n <name> [-raw]

  Lists every lot whose name matches, ignoring case.

Usage Examples:
$ gro -seed groceries.jsonl search -n milk
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "name of the grocery")
	f.BoolVar(&c.raw, "raw", false, "print plain markdown")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return failure("loading pantry", err)
	}
	defer a.close()

	list, err := a.store.Search(c.name)
	if err != nil {
		return failure("searching", err)
	}
	if err := printMarkdown(os.Stdout, renderer.Groceries(fmt.Sprintf("Search: %s", c.name), list), c.raw); err != nil {
		return failure("printing", err)
	}
	return subcommands.ExitSuccess
}
