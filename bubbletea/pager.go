// Package bubbletea implements radiogaga.Pager as a full-screen scrollable
// view built with Bubble Tea.
package bubbletea

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/radiogaga"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// Model displays text in a viewport sized to the terminal.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewModel returns a Model showing content under title.
func NewModel(title, content string) Model {
	return Model{title: title, content: content}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-lipgloss.Height(m.header())-lipgloss.Height(m.footer()), 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), m.viewport.View(), m.footer())
}

func (m Model) header() string {
	return titleStyle.Render(m.title)
}

func (m Model) footer() string {
	percent := 100.0
	if m.ready {
		percent = m.viewport.ScrollPercent() * 100
	}
	return footerStyle.Render(fmt.Sprintf("%3.f%%  q to quit", percent))
}

var _ radiogaga.Pager = (*Pager)(nil)

// Pager shows text in a Bubble Tea program on the alternate screen. When
// the output is not a terminal it writes the text as is.
type Pager struct {
	in          io.Reader
	out         io.Writer
	title       string
	interactive bool
}

// Option configures a Pager.
type Option func(*Pager)

// WithTitle sets the header line.
func WithTitle(title string) Option {
	return func(p *Pager) {
		p.title = title
	}
}

// WithInteractive chooses between the full-screen view and plain output.
func WithInteractive(interactive bool) Option {
	return func(p *Pager) {
		p.interactive = interactive
	}
}

// NewPager returns a Pager reading keys from in and drawing to out. It is
// interactive by default.
func NewPager(in io.Reader, out io.Writer, opts ...Option) *Pager {
	p := &Pager{in: in, out: out, title: "Stations", interactive: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Page blocks until the user leaves the view or ctx is done.
func (p *Pager) Page(ctx context.Context, text string) error {
	if !p.interactive {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		_, err := io.WriteString(p.out, text)
		return err
	}

	prog := tea.NewProgram(NewModel(p.title, text),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithAltScreen(),
	)
	_, err := prog.Run()
	return err
}
