package main

import (
	"os"

	"github.com/alecthomas/kong"
)

const VERSION = "0.1.0"

var logger = NewLogger(os.Stderr)

var CLI struct {
	Resolve ResolveCmd `cmd:"" default:"withargs" help:"Print the Hugging Face token that would be used."`
	Sources SourcesCmd `cmd:"" help:"List token sources in preference order."`
	Header  HeaderCmd  `cmd:"" help:"Print an HTTP Authorization header for the resolved token."`
	Version VersionCmd `cmd:"" help:"Print version information and exit."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hf-token"),
		kong.Description("Resolve a Hugging Face access token from flags and the environment."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
}
