// Package sheetui renders a snapping bottom sheet in a bubbletea program. It
// wires terminal mouse input, window sizing, and frame ticks into the
// framework-agnostic engine in internal/sheet and composes the four sheet
// regions into the final view with lipgloss.
package sheetui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/snapsheet/internal/sheet"
)

// DefaultHandleHeight is the grab-handle height in terminal cells.
const DefaultHandleHeight = 3

// frameInterval paces snap animations at roughly 30 fps, plenty for cell
// granularity.
const frameInterval = 33 * time.Millisecond

// frameMsg drives an in-flight snap animation. Gen identifies the animation
// the tick was scheduled for; ticks from a canceled animation are dropped.
type frameMsg struct {
	gen uint64
}

func frameCmd(gen uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// ContentFunc renders region content at the given inner size in cells.
type ContentFunc func(width, height int) string

// Config configures a sheet model.
type Config struct {
	// Positions is the ordered snap position list. Nil means
	// sheet.DefaultPositions.
	Positions []*sheet.SnapPosition
	// Initial overrides the resting position at startup (default Positions[0]).
	Initial *sheet.SnapPosition
	// HandleHeight in cells; zero means DefaultHandleHeight.
	HandleHeight int
	// Margin applies to the remaining region only.
	Margin sheet.Insets
	// Controller optionally exposes programmatic snaps to the host.
	Controller *sheet.Controller
	Callbacks  sheet.Callbacks
}

// Model is the bubbletea front end for the sheet engine. Content for the four
// regions is pluggable; nil renderers fall back to blank regions (the handle
// gets a default grab bar).
type Model struct {
	engine       *sheet.Engine
	margin       sheet.Insets
	handleHeight int
	styles       Styles

	width  int
	height int

	dragging bool
	lastY    int

	Background ContentFunc
	Remaining  ContentFunc
	Handle     ContentFunc
	Sheet      ContentFunc
}

// New validates the configuration and creates a sheet model.
func New(cfg Config) (Model, error) {
	handleHeight := cfg.HandleHeight
	if handleHeight <= 0 {
		handleHeight = DefaultHandleHeight
	}
	engine, err := sheet.NewEngine(sheet.Options{
		SnapPositions:   cfg.Positions,
		InitialPosition: cfg.Initial,
		HandleHeight:    float64(handleHeight),
		Controller:      cfg.Controller,
		Callbacks:       cfg.Callbacks,
	})
	if err != nil {
		return Model{}, err
	}
	return Model{
		engine:       engine,
		margin:       cfg.Margin,
		handleHeight: handleHeight,
		styles:       DefaultStyles(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the model dimensions and feeds them to the engine; the
// first call seeds the sheet at its initial position.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.engine.SetBounds(sheet.Bounds{MaxWidth: float64(width), MaxHeight: float64(height)})
}

// SetStyles replaces the region styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// Update handles window sizing, mouse drags, and animation frames.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		if msg.gen != m.engine.Generation() {
			return m, nil
		}
		if m.engine.Tick() {
			return m, frameCmd(msg.gen)
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		if m.layout().Handle.Contains(float64(msg.X), float64(msg.Y)) {
			m.engine.DragStart()
			m.dragging = true
			m.lastY = msg.Y
		}

	case tea.MouseActionMotion:
		if m.dragging {
			dy := msg.Y - m.lastY
			m.lastY = msg.Y
			m.engine.DragUpdate(float64(dy))
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.engine.DragEnd()
			return m, frameCmd(m.engine.Generation())
		}
	}
	return m, nil
}

// Snap animates to the i-th configured position. Out-of-range indices are
// ignored.
func (m Model) Snap(i int) (Model, tea.Cmd) {
	positions := m.engine.Positions()
	if i < 0 || i >= len(positions) {
		return m, nil
	}
	return m.SnapTo(positions[i])
}

// SnapTo animates to the given position and schedules the frame ticks that
// drive the animation.
func (m Model) SnapTo(p *sheet.SnapPosition) (Model, tea.Cmd) {
	m.engine.SnapTo(p)
	if m.engine.State() == sheet.StateAnimating {
		return m, frameCmd(m.engine.Generation())
	}
	return m, nil
}

// Close cancels any in-flight animation and detaches the controller.
func (m Model) Close() {
	m.engine.Close()
}

// Offset returns the sheet's current raised height in cells.
func (m Model) Offset() float64 {
	return m.engine.Offset()
}

// State returns the engine state, for status displays.
func (m Model) State() sheet.State {
	return m.engine.State()
}

// Positions returns the configured snap positions.
func (m Model) Positions() []*sheet.SnapPosition {
	return m.engine.Positions()
}

// Current returns the position the sheet last settled at or began animating
// toward.
func (m Model) Current() *sheet.SnapPosition {
	return m.engine.LastSnapped()
}

func (m Model) layout() sheet.Layout {
	return sheet.ComposeLayout(m.engine.Offset(), m.engine.Bounds(), m.margin, float64(m.handleHeight))
}

// View renders the four regions back to front: background, remaining region,
// grab handle, sheet.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := m.layout()

	base := renderRegion(l.Background, m.styles.Background, m.Background)
	base = m.overlayRegion(base, l.Remaining, m.styles.Remaining, m.Remaining)
	handle := m.Handle
	if handle == nil {
		handle = defaultHandleContent
	}
	base = m.overlayRegion(base, l.Handle, m.styles.Handle, handle)
	base = m.overlayRegion(base, l.Sheet, m.styles.Sheet, m.Sheet)
	return base
}

func (m Model) overlayRegion(base string, r sheet.Rect, style lipgloss.Style, content ContentFunc) string {
	view := renderRegion(r, style, content)
	if view == "" {
		return base
	}
	return overlay(base, view, round(r.X), round(r.Y), m.width)
}

func renderRegion(r sheet.Rect, style lipgloss.Style, content ContentFunc) string {
	w := round(r.W)
	h := round(r.H)
	if w <= 0 || h <= 0 {
		return ""
	}
	body := ""
	if content != nil {
		body = content(w, h)
	}
	return style.Width(w).Height(h).MaxWidth(w).MaxHeight(h).Render(body)
}

func round(v float64) int {
	return int(math.Round(v))
}
