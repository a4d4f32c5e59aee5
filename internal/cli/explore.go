package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// =============================================================================
// exploreModel - Interactive mapping walkthrough
// =============================================================================

// exploreModel is the bubbletea model behind the explore command. It moves a
// cursor across the visible canvas and shows where each coordinate lands on
// the physical matrix.
type exploreModel struct {
	disp *display

	visibleW int
	visibleH int

	cursorX int
	cursorY int

	// Viewport over the visible canvas, in cells. One cell per pixel would
	// overflow any terminal for real displays, so the view windows around
	// the cursor.
	viewW int
	viewH int
	offX  int
	offY  int
}

// newExploreModel builds the model for a resolved display.
func newExploreModel(disp *display) (exploreModel, error) {
	w, h, err := disp.VisibleSize()
	if err != nil {
		return exploreModel{}, err
	}
	return exploreModel{
		disp:     disp,
		visibleW: w,
		visibleH: h,
		viewW:    64,
		viewH:    16,
	}, nil
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursorY > 0 {
				m.cursorY--
			}
		case "down", "j":
			if m.cursorY < m.visibleH-1 {
				m.cursorY++
			}
		case "left", "h":
			if m.cursorX > 0 {
				m.cursorX--
			}
		case "right", "l":
			if m.cursorX < m.visibleW-1 {
				m.cursorX++
			}
		case "home", "g":
			m.cursorX, m.cursorY = 0, 0
		case "end", "G":
			m.cursorX, m.cursorY = m.visibleW-1, m.visibleH-1
		}
		m.clampViewport()
	case tea.WindowSizeMsg:
		m.viewW = msg.Width - 4
		m.viewH = msg.Height - 8
		if m.viewW < 8 {
			m.viewW = 8
		}
		if m.viewH < 4 {
			m.viewH = 4
		}
		m.clampViewport()
	}
	return m, nil
}

// clampViewport keeps the cursor inside the visible window.
func (m *exploreModel) clampViewport() {
	if m.cursorX < m.offX {
		m.offX = m.cursorX
	}
	if m.cursorX >= m.offX+m.viewW {
		m.offX = m.cursorX - m.viewW + 1
	}
	if m.cursorY < m.offY {
		m.offY = m.cursorY
	}
	if m.cursorY >= m.offY+m.viewH {
		m.offY = m.cursorY - m.viewH + 1
	}
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("panelmap explore"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("arrows/hjkl: move  g/G: corners  q: quit"))
	b.WriteString("\n\n")

	endX := m.offX + m.viewW
	if endX > m.visibleW {
		endX = m.visibleW
	}
	endY := m.offY + m.viewH
	if endY > m.visibleH {
		endY = m.visibleH
	}

	panelW := m.disp.cfg.Matrix.Cols
	panelH := m.disp.cfg.Matrix.Rows

	for y := m.offY; y < endY; y++ {
		for x := m.offX; x < endX; x++ {
			mx, my := m.disp.Map(x, y)
			// Alternate glyphs per physical panel so the panel grid is
			// readable at a glance.
			panel := (my/panelH)*(m.disp.cfg.Matrix.Chain) + mx/panelW
			glyph := "·"
			if panel%2 == 1 {
				glyph = "▪"
			}
			if x == m.cursorX && y == m.cursorY {
				b.WriteString(styleHighlight.Render("█"))
			} else if panel%2 == 1 {
				b.WriteString(styleDim.Render(glyph))
			} else {
				b.WriteString(glyph)
			}
		}
		b.WriteString("\n")
	}

	mx, my := m.disp.Map(m.cursorX, m.cursorY)
	panel := (my/panelH)*(m.disp.cfg.Matrix.Chain) + mx/panelW

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		styleDim.Render("visible"),
		styleNumber.Render(fmt.Sprintf("%d,%d", m.cursorX, m.cursorY)),
		styleDim.Render("matrix"),
		styleNumber.Render(fmt.Sprintf("%d,%d", mx, my)),
		styleDim.Render("panel"),
		styleNumber.Render(fmt.Sprintf("%d", panel))))
	b.WriteString(styleDim.Render(fmt.Sprintf("canvas %dx%d  mapper %s",
		m.visibleW, m.visibleH, m.disp.MapperSpec())))

	return b.String()
}

// newExploreCmd starts the interactive mapping explorer.
func newExploreCmd() *cobra.Command {
	flags := &displayFlags{}

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Interactively explore a coordinate mapping",
		Long: `Interactively explore a coordinate mapping.

Moves a cursor across the visible canvas and shows, live, where each
coordinate lands on the physical matrix and on which panel. Useful for
sanity-checking a mapper sequence against real wiring.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			disp, err := newDisplay(cfg, loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			model, err := newExploreModel(disp)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
