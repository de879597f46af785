package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`

	Show    ShowCmd    `cmd:"" default:"1" aliases:"continue" help:"Show the scoreboard of the saved game"`
	New     NewCmd     `cmd:"" help:"Start a new game with five default players"`
	Players PlayersCmd `cmd:"" help:"Manage the roster"`
	Dealer  DealerCmd  `cmd:"" help:"Hand the deal to a player"`
	Hand    HandCmd    `cmd:"" help:"Settle a played hand"`
	Pass    PassCmd    `cmd:"" help:"Nobody picked: everyone pays into a new pot"`
	Kings   KingsCmd   `cmd:"" help:"Pay out a three kings bonus"`
	Undo    UndoCmd    `cmd:"" help:"Reverse the most recent settlement"`
	History HistoryCmd `cmd:"" help:"List settlements, newest first"`
	Mail    MailCmd    `cmd:"" help:"Compose a standings email"`
	Rules   RulesCmd   `cmd:"" help:"Show card points, trump order and payouts"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sheepshead"),
		kong.Description("Cash scorer for a five-handed Sheepshead table"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := NewApp(context.Background(), cli.Globals, os.Stdout, os.Stderr, quartz.NewReal())
	ctx.FatalIfErrorf(err)

	err = ctx.Run(app)
	app.Close()
	if err != nil {
		app.Fail(err)
		os.Exit(1)
	}
}
