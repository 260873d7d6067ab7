// Package grid implements a paginated data grid with retained, per-row
// redraw.
//
// A Grid shows a Model (column labels plus rows of text) one page at a time.
// It draws onto three retained surfaces (header, body and footer) and
// tags every body drawable with the absolute row it belongs to, so that hover
// and selection changes repaint only the rows whose highlight changed.
//
// # Quick Start
//
//	model, err := grid.NewModel(
//		[]string{"Name", "Age"},
//		[][]string{{"Ann", "30"}, {"Bo", "41"}, {"Cy", "19"}},
//	)
//	if err != nil {
//		return err
//	}
//	g, err := grid.New(model, grid.DefaultConfig(),
//		grid.WithRowSelected(func(row int) { fmt.Println("selected", row) }),
//	)
//	if err != nil {
//		return err // *grid.LayoutError when a label cannot be measured
//	}
//
// # Hosting
//
// The host forwards events and paints the surfaces:
//
//	g.OnContainerResize(w, h)      // any number of times
//	g.Idle()                       // once the event queue drains
//	g.HandleInput(input, origin)   // frame-based hosts
//	g.RenderFrame(backend, origin) // flatten into a DrawList and draw
//
// Event-driven hosts call PointerMove, PointerLeave and Click with
// widget-local coordinates instead of HandleInput. backend/opengl draws
// frames with OpenGL and GLFW; backend/term rasterizes the same surfaces into
// a terminal through Bubble Tea.
//
// # Column Widths
//
// ComputeWidths derives one width per column from a FitCriterion: a fixed
// default, the header label, the widest cell, or the wider of the last two.
// Narrow content is widened evenly to the configured container width.
// Measurement failures are reported as *LayoutError and are never papered over.
//
// # Pagination
//
// Every page change clears hover and selection and repaints the body. A short
// last page is padded with a filler region so the body height is constant;
// pointer events over the filler are ignored.
//
// # Logging
//
// The package logs through log/slog. SetVerbose(true) enables debug output of
// the default logger; WithLogger routes a grid's logs elsewhere.
package grid
