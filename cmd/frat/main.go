package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/frat/internal/cli"
	"github.com/alexanderramin/frat/internal/cli/formatter"
	"github.com/alexanderramin/frat/internal/config"
	"github.com/alexanderramin/frat/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	if cfg.NoColor {
		formatter.DisableColor()
	}

	// Use-case events go to stderr so they never mix with report output.
	var observers []service.UseCaseObserver
	if cfg.LogEvents {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Assessment: service.NewDefaultAssessment(cfg.Mode(), observers...),
	}

	// Detect interactive terminal so bare "frat" opens the checklist.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
