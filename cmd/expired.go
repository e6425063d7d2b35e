package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/date"
	"github.com/etnz/pantry/renderer"
	"github.com/google/subcommands"
)

type expiredCmd struct {
	day string
	raw bool
}

func (*expiredCmd) Name() string     { return "expired" }
func (*expiredCmd) Synopsis() string { return "list groceries expired before a day, and their value" }
func (*expiredCmd) Usage() string {
	return `gro expired [-d YYYY-MM-DD] [-raw]

  Lists the lots whose expiry is strictly before the given day (today by
  default), then the value that is lost.
`
}

func (c *expiredCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", date.Today().String(), "day to compare expiries with")
	f.BoolVar(&c.raw, "raw", false, "print plain markdown")
}

func (c *expiredCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return failure("loading pantry", err)
	}
	defer a.close()

	md, err := expiredReport(a.store, c.day)
	if err != nil {
		return failure("listing expired groceries", err)
	}
	if err := printMarkdown(os.Stdout, md, c.raw); err != nil {
		return failure("printing", err)
	}
	return subcommands.ExitSuccess
}

// expiredReport renders the lots expired before day and their value.
func expiredReport(s pantry.Store, day string) (string, error) {
	list, err := s.ExpiredBefore(day)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(renderer.Groceries(fmt.Sprintf("Expired before %s", day), list))
	if len(list) > 0 {
		value, err := s.Valuation(list)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(renderer.Valuation("Expired value", value))
	}
	return b.String(), nil
}
