// Command gro keeps track of the groceries in a pantry.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pantry/cmd"
	"github.com/google/subcommands"
)

func main() {
	// handles shell completion requests (COMP_LINE set), exits if it was one.
	cmd.Completion().Complete("gro")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
