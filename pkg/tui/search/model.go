// Package search implements the cross-reference combobox: a text input
// with a debounced query against the wiki and a keyboard-navigable
// result list. Confirming a choice asks the parent to insert the text
// as a [[link]] at the editor caret.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/daybook/pkg/app"
)

// debounceDelay is how long input must stay quiet before a query fires.
const debounceDelay = 500 * time.Millisecond

// maxVisible caps how many results render in the popover.
const maxVisible = 8

// InsertMsg asks the parent to place text at the editor caret,
// already wrapped as a wiki link.
type InsertMsg struct {
	Text string
}

// CloseMsg tells the parent the combobox dismissed itself.
type CloseMsg struct{}

type debounceMsg struct {
	seq int
}

type resultsMsg struct {
	seq    int
	titles []string
	err    error
}

// Model is the combobox state. The highlight index ranges over
// [-1, len(results)-1]; -1 means "no selection, use the raw input".
type Model struct {
	svc *app.Service
	ctx context.Context

	input   textinput.Model
	results []string
	index   int
	seq     int
	errText string
	width   int
}

func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Link to..."
	ti.CharLimit = 256
	ti.Prompt = "/ "
	return Model{
		svc:   svc,
		ctx:   context.Background(),
		input: ti,
		index: -1,
		width: 60,
	}
}

// Open resets the combobox and focuses its input.
func (m *Model) Open() tea.Cmd {
	m.reset()
	cmd := m.input.Focus()
	return tea.Batch(cmd, textinput.Blink)
}

func (m *Model) SetWidth(w int) {
	if w > 20 {
		m.width = w
	}
}

func (m *Model) reset() {
	m.input.Reset()
	m.results = nil
	m.index = -1
	m.errText = ""
	m.seq++ // orphan any in-flight query or pending debounce
}

// selection returns the text to insert: the highlighted result, or the
// raw input as a fallback.
func (m *Model) selection() string {
	if m.index >= 0 && m.index < len(m.results) {
		return m.results[m.index]
	}
	return strings.TrimSpace(m.input.Value())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debounceMsg:
		// Only the newest keystroke's timer dispatches a query.
		if msg.seq != m.seq {
			return m, nil
		}
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m, nil
		}
		return m, m.dispatch(query)

	case resultsMsg:
		// Drop replies from superseded queries so a slow earlier
		// search can never overwrite a newer one.
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.results = nil
			m.index = -1
			return m, nil
		}
		m.errText = ""
		m.results = msg.titles
		m.index = -1
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.reset()
			m.input.Blur()
			return m, func() tea.Msg { return CloseMsg{} }
		case "enter":
			text := m.selection()
			m.reset()
			m.input.Blur()
			if text == "" {
				return m, func() tea.Msg { return CloseMsg{} }
			}
			wrapped := "[[" + text + "]]"
			return m, func() tea.Msg { return InsertMsg{Text: wrapped} }
		case "down":
			if m.index < len(m.results)-1 {
				m.index++
			}
			return m, nil
		case "up":
			if m.index > -1 {
				m.index--
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return m, cmd
		}

		m.seq++
		if strings.TrimSpace(m.input.Value()) == "" {
			// Empty input clears immediately, no query.
			m.results = nil
			m.index = -1
			m.errText = ""
			return m, cmd
		}
		seq := m.seq
		return m, tea.Batch(cmd, tea.Tick(debounceDelay, func(time.Time) tea.Msg {
			return debounceMsg{seq: seq}
		}))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) dispatch(query string) tea.Cmd {
	seq := m.seq
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		titles, err := svc.Search(ctx, query)
		return resultsMsg{seq: seq, titles: titles, err: err}
	}
}

func (m Model) View() string {
	lines := []string{m.input.View()}

	switch {
	case m.errText != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("search failed: "+m.errText))
	case len(m.results) > 0:
		shown := m.results
		if len(shown) > maxVisible {
			shown = shown[:maxVisible]
		}
		for i, title := range shown {
			indicator := "  "
			if i == m.index {
				indicator = "→ "
			}
			line := truncate.StringWithTail(fmt.Sprintf("%s%s", indicator, title), uint(m.width-4), "…")
			lines = append(lines, line)
		}
		if len(m.results) > maxVisible {
			lines = append(lines, lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("  … %d more", len(m.results)-maxVisible)))
		}
	}

	panel := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(m.width)
	return panel.Render(strings.Join(lines, "\n"))
}
