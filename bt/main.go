// Command bt tracks income and expenses and reports on the balance.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/budget/cmd"
	"github.com/etnz/budget/config"
	"github.com/etnz/budget/logging"
	"github.com/google/subcommands"
)

func main() {
	cfg, err := config.Load(config.DefaultPaths()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	log := logging.New(cfg, os.Stderr)
	app := cmd.NewApp(cfg, log)

	// Answers shell completion requests, it is a no-op otherwise.
	app.Completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	app.Register(commander)

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	// A second interrupt kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}
