package main

import (
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/grid"
	"github.com/go-theft-auto/grid/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
	file       string
	sheet      string
	theme      string
	pageSize   int
}

// app carries what the subcommands share once flags are parsed.
type app struct {
	flags rootFlags
	log   *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "griddesk",
		Short:         "Browse a workbook sheet in a paginated grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVarP(&a.flags.configPath, "config", "c", "", "YAML settings file")
	flags.StringVarP(&a.flags.file, "file", "f", "", "Workbook to open (.xlsx or .xlsm); a sample table is shown when empty")
	flags.StringVar(&a.flags.sheet, "sheet", "", "Sheet to show instead of the marked main sheet")
	flags.StringVar(&a.flags.theme, "theme", "", "Color theme: light or dark")
	flags.IntVar(&a.flags.pageSize, "page-size", 0, "Rows per page")

	cmd.AddCommand(newGLCmd(a))
	cmd.AddCommand(newTUICmd(a))
	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level := "info"
	if a.flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	a.log = log
	grid.SetVerbose(a.flags.verbose)
	return nil
}
