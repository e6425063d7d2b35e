package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/pantry"
	"github.com/google/subcommands"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the stock as JSONL" }
func (*exportCmd) Usage() string {
	return `gro export

  Prints every lot as one JSON object per line, in the format read by -seed.

$ gro -seed old.jsonl export > new.jsonl
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return failure("loading pantry", err)
	}
	defer a.close()

	if err := pantry.EncodeGroceries(os.Stdout, a.store.All()); err != nil {
		return failure("exporting", err)
	}
	return subcommands.ExitSuccess
}
