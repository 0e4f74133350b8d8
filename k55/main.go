// Command k55 tracks and reports on a fixed equal-weight international
// stock portfolio.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/komorebi/invest55/cmd"
	"github.com/posener/complete/v2"
)

func main() {
	// API keys usually live in a local .env file; a missing file is
	// not an error.
	godotenv.Load()

	// Shell completion: exits by itself when invoked by the shell.
	completion := &complete.Command{Sub: map[string]*complete.Command{}}
	for _, c := range cmd.Commands {
		completion.Sub[c.Name()] = &complete.Command{}
	}
	completion.Complete("k55")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
