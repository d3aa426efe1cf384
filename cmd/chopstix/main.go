package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config string `help:"Config file (default: $XDG_CONFIG_HOME/chopstix/config.hcl)" type:"path" env:"CHOPSTIX_CONFIG"`
	Debug  bool   `help:"Log at debug level" env:"CHOPSTIX_DEBUG"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play ChopStix against the computer"`
	Simulate SimulateCmd      `cmd:"" help:"Pit two computer players against each other"`
	Rules    RulesCmd         `cmd:"" help:"Print the rules of the game"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chopstix"),
		kong.Description("The finger game of ChopStix, played against the computer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
