// Package ui contains the terminal viewer for standards documents, built on
// Bubble Tea with glamour markdown rendering.
package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// contentRenderedMsg carries the glamour-rendered document body.
type contentRenderedMsg struct {
	rendered string
}

// renderErrorMsg reports a failed render; the viewer falls back to raw text.
type renderErrorMsg struct {
	err error
}

// DocViewer is a scrollable viewer for a single standards document.
type DocViewer struct {
	title    string // document key
	subtitle string // one-line description from frontmatter
	content  string // raw markdown body

	viewport viewport.Model
	logger   *logging.AppLogger

	width  int
	height int

	ready     bool
	showRaw   bool
	renderErr error
	glamStyle string
}

// NewDocViewer creates a viewer for one document. Rendering happens after
// the first WindowSizeMsg so glamour wraps to the real terminal width.
func NewDocViewer(title, subtitle, content string, logger *logging.AppLogger) DocViewer {
	return DocViewer{
		title:     title,
		subtitle:  subtitle,
		content:   content,
		logger:    logger,
		glamStyle: detectGlamourStyle(500 * time.Millisecond),
	}
}

// detectGlamourStyle attempts to detect terminal background using termenv,
// but will respect GLAMOUR_STYLE if set to a concrete value (not "auto").
// A timeout ensures we never hang on terminals that don't respond.
func detectGlamourStyle(timeout time.Duration) string {
	defaultStyle := "dark"

	style := os.Getenv("GLAMOUR_STYLE")
	if style != "" && style != "auto" {
		return style
	}

	ch := make(chan string, 1)
	go func() {
		out := termenv.NewOutput(os.Stdout)
		if out.HasDarkBackground() {
			ch <- "dark"
			return
		}
		ch <- "light"
	}()

	select {
	case s := <-ch:
		return s
	case <-time.After(timeout):
		return defaultStyle
	}
}

func (m DocViewer) Init() tea.Cmd {
	return nil
}

func (m DocViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.showRaw = !m.showRaw
			m.setViewportContent()
			return m, m.renderCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		vpHeight := m.height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.MouseWheelEnabled = true
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		return m, m.renderCmd()

	case contentRenderedMsg:
		m.renderErr = nil
		m.viewport.SetContent(msg.rendered)
		return m, nil

	case renderErrorMsg:
		m.logger.Error("Markdown render failed, showing raw text", "error", msg.err)
		m.renderErr = msg.err
		m.viewport.SetContent(m.content)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// renderCmd renders the markdown body off the update loop.
func (m DocViewer) renderCmd() tea.Cmd {
	if m.showRaw {
		return nil
	}
	content := m.content
	style := m.glamStyle
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	return func() tea.Msg {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return renderErrorMsg{err: err}
		}
		rendered, err := renderer.Render(content)
		if err != nil {
			return renderErrorMsg{err: err}
		}
		return contentRenderedMsg{rendered: rendered}
	}
}

func (m *DocViewer) setViewportContent() {
	if m.showRaw {
		m.viewport.SetContent(m.content)
	}
}

func (m DocViewer) View() string {
	if !m.ready {
		return "Loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m DocViewer) headerView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	if m.subtitle != "" {
		width := m.width
		if width <= 0 {
			width = 80
		}
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(wordwrap.String(m.subtitle, width)))
	}
	if m.renderErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Render error, showing raw markdown"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m DocViewer) footerView() string {
	mode := "rendered"
	if m.showRaw {
		mode = "raw"
	}
	info := fmt.Sprintf("%3.f%% • %s • ↑/↓ scroll • r toggle raw • q quit", m.viewport.ScrollPercent()*100, mode)
	return footerStyle.Render(info)
}
