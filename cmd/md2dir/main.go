package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/littler00t/md2dir/cli"
	"github.com/littler00t/md2dir/internal/tui"
	"github.com/littler00t/md2dir/md2dir"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := md2dir.New(cfg)

	// List and preview modes print to stdout and should not run the TUI.
	if !cfg.Write || cfg.Plain {
		runPlain(app)
		return
	}

	p := tea.NewProgram(tui.New(app))
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	if m, ok := finalModel.(tui.Model); ok {
		if m.Err() != nil {
			os.Exit(1)
		}
		if len(m.Summary().Failed) > 0 {
			os.Exit(1)
		}
	}
}

func runPlain(app *md2dir.App) {
	summary, err := app.Execute()
	if err != nil {
		var detailed *md2dir.DetailedError
		if errors.As(err, &detailed) {
			fmt.Fprintf(os.Stderr, "--- Stack Trace ---\n%s\n", detailed.Stack)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if out := tui.RenderSummary(summary); out != "" {
		fmt.Print(out)
	}
	if len(summary.Failed) > 0 {
		os.Exit(1)
	}
}
