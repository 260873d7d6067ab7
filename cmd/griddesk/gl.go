package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/grid"
	"github.com/go-theft-auto/grid/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type glOptions struct {
	width     int
	height    int
	margin    float32
	fontScale float32
}

func newGLCmd(a *app) *cobra.Command {
	opts := &glOptions{}

	cmd := &cobra.Command{
		Use:   "gl",
		Short: "Show the grid in an OpenGL window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGL(opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 1024, "Window width")
	cmd.Flags().IntVar(&opts.height, "height", 400, "Window height")
	cmd.Flags().Float32Var(&opts.margin, "margin", 10, "Gap between the window edge and the grid")
	cmd.Flags().Float32Var(&opts.fontScale, "font-scale", 2, "Bitmap font scale")

	return cmd
}

func (a *app) runGL(opts *glOptions) error {
	s, err := a.settings()
	if err != nil {
		return err
	}
	m, err := a.model(s.Source)
	if err != nil {
		return err
	}

	font := grid.NewFixedFont(opts.fontScale)
	gridOpts := append(a.gridOptions(), grid.WithFonts(font, font))
	g, err := grid.New(m, s.Grid, gridOpts...)
	if err != nil {
		return err
	}

	a.log.Info("opening window")
	return opengl.Run(g, opengl.WindowOptions{
		Title:  "griddesk",
		Width:  opts.width,
		Height: opts.height,
		Margin: opts.margin,
		Logger: a.log.Slog(),
	})
}
