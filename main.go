package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/snapsheet/internal/config"
	"github.com/llehouerou/snapsheet/internal/sheet"
	"github.com/llehouerou/snapsheet/internal/sheetui"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("246"))
	footerAccent = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("111"))
	taskStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	itemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))
)

var tasks = []string{
	"Reply to the venue about load-in times",
	"Export the March mixes to the archive",
	"Label the field recordings from Sunday",
	"Renew the rehearsal room booking",
	"Back up the session files",
	"Send stems to the mastering engineer",
}

var cities = []string{
	"Amsterdam", "Athens", "Berlin", "Bristol", "Copenhagen", "Dublin",
	"Helsinki", "Lisbon", "Ljubljana", "Madrid", "Marseille", "Oslo",
	"Porto", "Prague", "Reykjavik", "Rotterdam", "Stockholm", "Vienna",
}

// snapStatus is written by the engine callbacks and read by the footer.
type snapStatus struct {
	offset     float64
	moves      int
	snapping   bool
	lastSnapAt time.Time
}

type model struct {
	sheet  sheetui.Model
	ctrl   *sheet.Controller
	filter textinput.Model
	status *snapStatus
	width  int
	height int
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	positions, err := cfg.Sheet.BuildPositions()
	if err != nil {
		return model{}, err
	}
	initial, err := cfg.Sheet.InitialPosition(positions)
	if err != nil {
		return model{}, err
	}

	ctrl := sheet.NewController()
	status := &snapStatus{}

	sheetModel, err := sheetui.New(sheetui.Config{
		Positions:    positions,
		Initial:      initial,
		HandleHeight: cfg.Sheet.HandleHeight,
		Margin:       cfg.Sheet.Margin.Insets(),
		Controller:   ctrl,
		Callbacks: sheet.Callbacks{
			OnMove: func(offset float64) {
				status.offset = offset
				status.moves++
			},
			OnSnapBegin: func() {
				status.snapping = true
			},
			OnSnapEnd: func() {
				status.snapping = false
				status.lastSnapAt = time.Now()
			},
		},
	})
	if err != nil {
		return model{}, err
	}

	filter := textinput.New()
	filter.Placeholder = "filter cities"
	filter.Prompt = "/ "
	filter.CharLimit = 32

	return model{
		sheet:  sheetModel,
		ctrl:   ctrl,
		filter: filter,
		status: status,
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve the bottom row for the status footer.
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Update(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 1})
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filter.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		m.sheet.Close()
		return m, tea.Quit
	case "/":
		return m, m.filter.Focus()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Snap(int(key[0] - '1'))
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.width <= 0 || m.height <= 1 {
		return ""
	}

	s := m.sheet
	s.Background = m.renderBackground
	s.Remaining = m.renderTasks
	s.Sheet = m.renderSheetContent

	return s.View() + "\n" + m.renderFooter()
}

// renderBackground paints a vertical gradient with the app title on top.
func (m model) renderBackground(w, h int) string {
	top, _ := colorful.Hex("#16161e")
	bottom, _ := colorful.Hex("#292e42")

	lines := make([]string, h)
	for y := range lines {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		bg := lipgloss.Color(top.BlendLuv(bottom, t).Hex())
		content := ""
		if y == 0 {
			content = " snapsheet"
		}
		lines[y] = lipgloss.NewStyle().Background(bg).Width(w).Render(content)
	}
	return strings.Join(lines, "\n")
}

func (m model) renderTasks(w, h int) string {
	lines := make([]string, 0, h)
	lines = append(lines, titleStyle.Render("Today"))
	for _, task := range tasks {
		if len(lines) >= h {
			break
		}
		lines = append(lines, taskStyle.MaxWidth(w).Render("  • "+task))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderSheetContent(w, h int) string {
	lines := make([]string, 0, h)
	lines = append(lines, " "+titleStyle.Render("Destinations"))
	lines = append(lines, " "+m.filter.View())

	query := strings.ToLower(m.filter.Value())
	for _, city := range cities {
		if len(lines) >= h {
			break
		}
		if query != "" && !strings.Contains(strings.ToLower(city), query) {
			continue
		}
		style := itemStyle
		if query != "" {
			style = matchStyle
		}
		lines = append(lines, style.MaxWidth(w).Render("   "+city))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderFooter() string {
	state := m.sheet.State().String()
	if m.status.snapping {
		state = "snapping"
	}

	parts := []string{
		footerAccent.Render(" "+state) + footerStyle.Render(fmt.Sprintf(" · offset %.0f · %d moves", m.status.offset, m.status.moves)),
	}
	if !m.status.lastSnapAt.IsZero() {
		parts = append(parts, footerStyle.Render("snapped "+humanize.Time(m.status.lastSnapAt)))
	}
	if m.ctrl.Current() != nil {
		for i, p := range m.ctrl.Positions() {
			if p == m.ctrl.Current() {
				parts = append(parts, footerStyle.Render(fmt.Sprintf("position %d/%d", i+1, len(m.ctrl.Positions()))))
			}
		}
	}
	parts = append(parts, footerStyle.Render("drag the handle · 1-9 snap · / filter · q quit "))

	left := strings.Join(parts, footerStyle.Render(" — "))
	padding := m.width - lipgloss.Width(left)
	if padding < 0 {
		padding = 0
	}
	return left + footerStyle.Render(strings.Repeat(" ", padding))
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
