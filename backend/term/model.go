package term

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/grid"
)

// NewGrid builds a grid measured in terminal cells. opts are applied after
// the cell fonts.
func NewGrid(model *grid.Model, base grid.Config, opts ...grid.Option) (*grid.Grid, error) {
	opts = append([]grid.Option{grid.WithFonts(CellFont{}, CellFont{})}, opts...)
	return grid.New(model, CellConfig(base), opts...)
}

// idleMsg runs the deferred resize pass once the resize event is handled.
type idleMsg struct{}

func idle() tea.Msg { return idleMsg{} }

// Model is the Bubble Tea model hosting one grid. The grid itself is shared
// between copies of the model.
type Model struct {
	grid   *grid.Grid
	canvas *Canvas
	keys   KeyMap
	help   help.Model

	width  int
	height int
}

// NewModel wraps g. Build g with NewGrid so that it is measured in cells.
func NewModel(g *grid.Grid) Model {
	return Model{
		grid:   g,
		canvas: NewCanvas(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Grid returns the hosted grid.
func (m Model) Grid() *grid.Grid { return m.grid }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, m.resize()

	case idleMsg:
		m.grid.Idle()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// resize hands the space left above the help footer to the grid. The
// scrollbar recomputation runs later, on idleMsg.
func (m Model) resize() tea.Cmd {
	if m.width == 0 && m.height == 0 {
		return nil
	}
	helpH := lipgloss.Height(m.help.View(m.keys))
	m.grid.OnContainerResize(float32(m.width), float32(max(0, m.height-helpH)))
	return idle
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	// Cell centers keep hit tests away from row boundaries.
	x, y := float32(msg.X)+0.5, float32(msg.Y)+0.5

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.grid.ScrollBy(0, -1)
		m.grid.PointerMove(x, y)
	case tea.MouseButtonWheelDown:
		m.grid.ScrollBy(0, 1)
		m.grid.PointerMove(x, y)
	case tea.MouseButtonWheelLeft:
		m.grid.ScrollBy(-1, 0)
		m.grid.PointerMove(x, y)
	case tea.MouseButtonWheelRight:
		m.grid.ScrollBy(1, 0)
		m.grid.PointerMove(x, y)
	case tea.MouseButtonLeft:
		switch msg.Action {
		case tea.MouseActionPress:
			m.grid.Click(x, y)
		case tea.MouseActionMotion:
			m.grid.DragScrollbar(x, y)
		}
	}

	switch msg.Action {
	case tea.MouseActionRelease:
		m.grid.ReleaseScrollbar()
	case tea.MouseActionMotion:
		m.grid.PointerMove(x, y)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextPage):
		m.grid.NextPage()
	case key.Matches(msg, m.keys.PrevPage):
		m.grid.PreviousPage()
	case key.Matches(msg, m.keys.FirstPage):
		m.grid.FirstPage()
	case key.Matches(msg, m.keys.LastPage):
		m.grid.LastPage()
	case key.Matches(msg, m.keys.ScrollUp):
		m.grid.ScrollBy(0, -1)
	case key.Matches(msg, m.keys.ScrollDn):
		m.grid.ScrollBy(0, 1)
	case key.Matches(msg, m.keys.Deselect):
		m.grid.ClearSelection()
	case key.Matches(msg, m.keys.Copy):
		m.grid.CopySelectedRow()
	case key.Matches(msg, m.keys.Theme):
		if m.grid.Theme() == grid.ThemeDark {
			m.grid.SwitchTheme(grid.ThemeLight)
		} else {
			m.grid.SwitchTheme(grid.ThemeDark)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, m.resize()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	m.canvas.Paint(m.grid)
	return lipgloss.JoinVertical(lipgloss.Left, m.canvas.String(), m.help.View(m.keys))
}

// Run hosts g full screen until the user quits.
func Run(g *grid.Grid, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}, opts...)
	_, err := tea.NewProgram(NewModel(g), opts...).Run()
	return err
}
