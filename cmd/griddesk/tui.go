package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/go-theft-auto/grid"
	gridterm "github.com/go-theft-auto/grid/backend/term"
)

var errNotTerminal = errors.New("tui requires an interactive terminal")

type tuiOptions struct {
	noClipboard bool
}

func newTUICmd(a *app) *cobra.Command {
	opts := &tuiOptions{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Show the grid in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}
			return a.runTUI(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noClipboard, "no-clipboard", false, "Disable copying rows to the system clipboard")

	return cmd
}

func (a *app) runTUI(opts *tuiOptions) error {
	s, err := a.settings()
	if err != nil {
		return err
	}
	m, err := a.model(s.Source)
	if err != nil {
		return err
	}

	gridOpts := a.gridOptions()
	if !opts.noClipboard {
		cb, err := gridterm.NewSystemClipboard(a.log.Slog())
		if err != nil {
			a.log.Warn("clipboard unavailable: " + err.Error())
		} else {
			gridOpts = append(gridOpts, grid.WithClipboard(cb))
		}
	}

	g, err := gridterm.NewGrid(m, s.Grid, gridOpts...)
	if err != nil {
		return err
	}
	return gridterm.Run(g, tea.WithOutput(os.Stdout))
}
