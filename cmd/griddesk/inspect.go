package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/grid"
	"github.com/go-theft-auto/grid/config"
)

type inspectOptions struct {
	settingsOnly bool
}

func newInspectCmd(a *app) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the effective settings and the resulting layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.settingsOnly, "settings-only", false, "Print the settings without loading the workbook")

	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, opts *inspectOptions) error {
	s, err := a.settings()
	if err != nil {
		return err
	}
	doc, err := config.Marshal(s)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(doc))
	if opts.settingsOnly {
		return nil
	}

	m, err := a.model(s.Source)
	if err != nil {
		return err
	}
	g, err := grid.New(m, s.Grid, a.gridOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "---")
	fmt.Fprintf(out, "# %s\n", g)
	widths := g.Widths()
	for i, col := range m.Columns() {
		fmt.Fprintf(out, "# %-*s %6.1f\n", longest(m.Columns()), col, widths[i])
	}
	return nil
}

func longest(names []string) int {
	n := 0
	for _, s := range names {
		n = max(n, len(strings.TrimSpace(s)))
	}
	return n
}
