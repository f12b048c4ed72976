package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sandfall/internal/config"
	"github.com/san-kum/sandfall/internal/geom"
	"github.com/san-kum/sandfall/internal/particle"
	"github.com/san-kum/sandfall/internal/sandbox"
)

var (
	sandStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	dim         = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	selected    = lipgloss.NewStyle().Reverse(true)
)

const (
	canvasWidth  = 60
	canvasHeight = 24
)

// model is the bubbletea adapter around a Sandbox. The keyboard cursor
// stands in for the mouse: terminals report no pointer hold state.
type model struct {
	box      *sandbox.Sandbox
	cursor   geom.Vec2
	stepX    float32
	stepY    float32
	paused   bool
	lastTick time.Time
}

// NewInteractive builds the terminal sandbox for the configured region.
func NewInteractive(cfg *config.Config) tea.Model {
	region := cfg.Rect()
	return model{
		box: sandbox.New(region),
		cursor: geom.Vec2{
			X: float32(region.X) + float32(region.Width)/2,
			Y: float32(region.Y) + float32(region.Height)/2,
		},
		stepX: float32(region.Width) / canvasWidth,
		stepY: float32(region.Height) / canvasHeight,
	}
}

// RunInteractive blocks until the user quits.
func RunInteractive(cfg *config.Config) error {
	_, err := tea.NewProgram(NewInteractive(cfg)).Run()
	return err
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if !m.paused {
			now := time.Time(msg)
			if !m.lastTick.IsZero() {
				m.box.Advance(float32(now.Sub(m.lastTick).Seconds()))
			}
			m.lastTick = now
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "p", " ":
		m.paused = !m.paused
		if !m.paused {
			// Drop the pause gap so the next tick's dt stays sane.
			m.lastTick = time.Time{}
		}

	case "tab":
		m.box.SetSelected(nextKind(m.box.Selected()))

	case "left", "h":
		m.moveCursor(-m.stepX, 0)
	case "right", "l":
		m.moveCursor(m.stepX, 0)
	case "up", "k":
		m.moveCursor(0, -m.stepY)
	case "down", "j":
		m.moveCursor(0, m.stepY)

	case "enter", "s":
		if !m.paused && m.box.Contains(m.cursor) {
			m.box.Spawn(m.cursor)
		}
	}
	return m, nil
}

func nextKind(k particle.Kind) particle.Kind {
	kinds := particle.Kinds()
	for i, candidate := range kinds {
		if candidate == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

func (m *model) moveCursor(dx, dy float32) {
	next := geom.Vec2{X: m.cursor.X + dx, Y: m.cursor.Y + dy}
	if m.box.Contains(next) {
		m.cursor = next
	}
}

func (m model) View() string {
	region := m.box.Region()

	type cell struct {
		glyph rune
		style lipgloss.Style
	}
	grid := make([][]cell, canvasHeight)
	for y := range grid {
		grid[y] = make([]cell, canvasWidth)
		for x := range grid[y] {
			grid[y][x] = cell{glyph: ' ', style: dim}
		}
	}

	place := func(pos geom.Vec2) (int, int, bool) {
		if region.Width == 0 || region.Height == 0 {
			return 0, 0, false
		}
		cx := int((pos.X - float32(region.X)) / float32(region.Width) * float32(canvasWidth-1))
		cy := int((pos.Y - float32(region.Y)) / float32(region.Height) * float32(canvasHeight-1))
		if cx < 0 || cx >= canvasWidth || cy < 0 || cy >= canvasHeight {
			return 0, 0, false
		}
		return cx, cy, true
	}

	for _, p := range m.box.Particles() {
		if cx, cy, ok := place(p.Pos); ok {
			style := sandStyle
			if p.Kind == particle.Wall {
				style = wallStyle
			}
			grid[cy][cx] = cell{glyph: glyph(p.Kind), style: style}
		}
	}
	if cx, cy, ok := place(m.cursor); ok {
		grid[cy][cx] = cell{glyph: '+', style: cursorStyle}
	}

	var b strings.Builder
	border := dim.Render("+" + strings.Repeat("-", canvasWidth) + "+")
	b.WriteString(border + "\n")
	for _, row := range grid {
		b.WriteString(dim.Render("|"))
		for _, c := range row {
			b.WriteString(c.style.Render(string(c.glyph)))
		}
		b.WriteString(dim.Render("|") + "\n")
	}
	b.WriteString(border + "\n")

	var kinds []string
	for _, k := range particle.Kinds() {
		name := k.String()
		if k == m.box.Selected() {
			name = selected.Render(name)
		}
		kinds = append(kinds, name)
	}
	b.WriteString(strings.Join(kinds, "  "))

	status := fmt.Sprintf("   %d particles", m.box.Len())
	if m.paused {
		status += "   paused"
	}
	b.WriteString(dim.Render(status) + "\n")
	b.WriteString(dim.Render("arrows/hjkl move · s spawn · tab kind · p pause · q quit") + "\n")

	return b.String()
}
