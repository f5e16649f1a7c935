package main

import (
	"errors"
	"os"

	"github.com/sokinpui/guardpatch/cli"
	"github.com/sokinpui/guardpatch/guardpatch"
	"github.com/sokinpui/guardpatch/internal/ui"

	"github.com/spf13/pflag"
)

func main() {
	cfg, err := cli.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		// pflag already prints the error message.
		os.Exit(1)
	}

	app, err := guardpatch.New(cfg)
	if err != nil {
		ui.Error("Failed to initialize: %v", err)
		os.Exit(1)
	}

	result, err := app.Execute()
	if err != nil {
		ui.Error("Error: %v", err)
		var detailed *guardpatch.DetailedError
		if errors.As(err, &detailed) {
			os.Stderr.Write(detailed.Stack)
		}
		os.Exit(1)
	}
	os.Exit(result.Outcome.ExitCode())
}
