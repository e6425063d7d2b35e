package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pantry"
	"github.com/google/subcommands"
)

type availableCmd struct {
	name     string
	quantity string
	unit     string
}

func (*availableCmd) Name() string     { return "available" }
func (*availableCmd) Synopsis() string { return "check that a single lot covers a need" }
func (*availableCmd) Usage() string {
	return `gro available -n <name> -q <quantity> -u <unit>

  Checks that one lot with exactly this name holds at least the quantity in
  the given unit. Exits with a failure status when it does not, so that it
  can be used in scripts:

$ gro available -n Milk -q 1 -u liter && echo "coffee time"
`
}

func (c *availableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "exact name of the grocery")
	f.StringVar(&c.quantity, "q", "1", "quantity needed")
	f.StringVar(&c.unit, "u", "pcs", "unit: kilogram, liter or pcs")
}

func (c *availableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, err := pantry.ParseQuantity(c.quantity)
	if err != nil {
		return failure("parsing quantity", err)
	}
	a, err := newApp()
	if err != nil {
		return failure("loading pantry", err)
	}
	defer a.close()

	if !a.store.IsAvailable(c.name, q, c.unit) {
		fmt.Printf("%s: not available (%s %s)\n", c.name, q, c.unit)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: available (%s %s)\n", c.name, q, c.unit)
	return subcommands.ExitSuccess
}
