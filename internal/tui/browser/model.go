// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     browser
// Description: Bubbletea model for browsing and picking shortcuts
// Author:      Mike Stoffels
// Created:     2025-12-10
// License:     MIT
// ============================================================================

package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mLaunch/internal/launcher"
)

// Source provides the shortcuts to browse
type Source interface {
	Shortcuts() []launcher.Shortcut
}

// Config holds browser configuration
type Config struct {
	Title string
	// Refresh re-reads the source periodically; zero disables it
	Refresh time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{Title: "mLaunch Shortcuts"}
}

// Model is the Bubbletea model of the shortcut browser
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	quitting bool

	// Components
	filter   textinput.Model
	viewport viewport.Model

	// Shortcut state
	all      []launcher.Shortcut
	filtered []launcher.Shortcut
	cursor   int
	selected *launcher.Shortcut

	source Source
	cfg    Config
}

// New creates a browser over the shortcuts of src
func New(src Source, cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "filter by name or command"
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		filter: ti,
		source: src,
		cfg:    cfg,
		all:    src.Shortcuts(),
	}
	m.applyFilter()
	return m
}

// Selected returns the shortcut picked with Enter, or nil
func (m Model) Selected() *launcher.Shortcut {
	return m.selected
}

// Visible returns the shortcuts matching the current filter
func (m Model) Visible() []launcher.Shortcut {
	return m.filtered
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.cfg.Refresh > 0 {
		cmds = append(cmds, m.tick())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) == 0 {
				return m, nil
			}
			picked := m.filtered[m.cursor]
			m.selected = &picked
			m.quitting = true
			return m, tea.Quit

		case tea.KeyUp:
			m.moveCursor(-1)
			return m, nil

		case tea.KeyDown:
			m.moveCursor(1)
			return m, nil

		case tea.KeyPgUp:
			m.moveCursor(-m.pageSize())
			return m, nil

		case tea.KeyPgDown:
			m.moveCursor(m.pageSize())
			return m, nil

		case tea.KeyCtrlR:
			return m, m.load
		}

		before := m.filter.Value()
		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() != before {
			m.applyFilter()
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // title + filter bar
		footerHeight := 3 // list border + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case shortcutsLoadedMsg:
		m.all = msg.entries
		m.applyFilter()

	case tickMsg:
		cmds = append(cmds, m.load, m.tick())
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading shortcuts..."
	}

	var b strings.Builder

	title := TitleStyle.Render(m.cfg.Title)
	count := StatusStyle.Render(fmt.Sprintf("[%d/%d]", len(m.filtered), len(m.all)))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", count))
	b.WriteString("\n")

	b.WriteString(FilterBarStyle.Width(m.width - 2).Render(m.filter.View()))
	b.WriteString("\n")

	b.WriteString(ListPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	hints := []string{
		RenderKeyHint("↑/↓", "Move"),
		RenderKeyHint("Enter", "Run"),
		RenderKeyHint("Ctrl+R", "Reload"),
		RenderKeyHint("Esc", "Quit"),
	}
	b.WriteString(strings.Join(hints, "  "))

	return b.String()
}

func (m Model) load() tea.Msg {
	return shortcutsLoadedMsg{entries: m.source.Shortcuts()}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) pageSize() int {
	if m.viewport.Height > 1 {
		return m.viewport.Height
	}
	return 1
}

// applyFilter keeps the shortcuts whose name or command contains the filter
// text, ignoring case, and keeps the cursor in range
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))

	filtered := make([]launcher.Shortcut, 0, len(m.all))
	for _, s := range m.all {
		if query == "" ||
			strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.Command), query) {
			filtered = append(filtered, s)
		}
	}
	m.filtered = filtered

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updateViewportContent()
}

func (m *Model) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	m.updateViewportContent()
}

// updateViewportContent renders the list and scrolls the cursor into view
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	if len(m.filtered) == 0 {
		m.viewport.SetContent(EmptyStyle.Render("no matching shortcuts"))
		return
	}

	nameWidth := 0
	for _, s := range m.filtered {
		if w := lipgloss.Width(s.Name); w > nameWidth {
			nameWidth = w
		}
	}

	lines := make([]string, len(m.filtered))
	for i, s := range m.filtered {
		name := s.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(s.Name))
		if i == m.cursor {
			lines[i] = SelectedStyle.Render(name + "  " + s.Command)
			continue
		}
		lines[i] = NameStyle.Render(name) + "  " + CommandStyle.Render(s.Command)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// Run shows the browser and returns the picked shortcut, or nil when the
// user quit without picking
func Run(src Source, cfg Config) (*launcher.Shortcut, error) {
	p := tea.NewProgram(New(src, cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(Model); ok {
		return m.Selected(), nil
	}
	return nil, nil
}
