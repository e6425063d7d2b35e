package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/renderer"
	"github.com/google/subcommands"
)

type recipeCmd struct {
	recipe string
	raw    bool
}

func (*recipeCmd) Name() string     { return "recipe" }
func (*recipeCmd) Synopsis() string { return "check recipes against the stock" }
func (*recipeCmd) Usage() string {
	return `gro recipe [-r <recipe>] [-raw]

  Without -r, lists the recipes of the cookbook and marks those that can be
  prepared. With -r, details the stock of every ingredient of one recipe.

  See 'gro topic recipes' to write your own cookbook.
`
}

func (c *recipeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.recipe, "r", "", "recipe to check")
	f.BoolVar(&c.raw, "raw", false, "print plain markdown")
}

func (c *recipeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return failure("loading pantry", err)
	}
	defer a.close()

	var md string
	if c.recipe == "" {
		md, err = cookbookReport(a.book, a.store)
	} else {
		md, err = recipeReport(a.book, a.store, c.recipe)
	}
	if err != nil {
		return failure("checking recipes", err)
	}
	if err := printMarkdown(os.Stdout, md, c.raw); err != nil {
		return failure("printing", err)
	}
	return subcommands.ExitSuccess
}

func cookbookReport(book pantry.Cookbook, s pantry.Checker) (string, error) {
	ready, err := book.Ready(s)
	if err != nil {
		return "", err
	}
	return renderer.Cookbook(book, ready), nil
}

func recipeReport(book pantry.Cookbook, s pantry.Checker, name string) (string, error) {
	r, err := book.Find(name)
	if err != nil {
		return "", err
	}
	check, err := r.Check(s)
	if err != nil {
		return "", err
	}
	return renderer.RecipeCheck(check), nil
}
