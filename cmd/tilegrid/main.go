package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&locateCmd{}, "")
	subcommands.Register(&tileCmd{}, "")
	subcommands.Register(&listCmd{}, "")
	subcommands.Register(&exportCmd{}, "")

	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}
