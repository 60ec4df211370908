// Package journal is the full-screen diary: one day on screen at a
// time, edited in place and saved back to the wiki.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/document"
	"tableflip.dev/daybook/pkg/tui/search"
)

// statusClearDelay is how long the save confirmation stays visible.
const statusClearDelay = 3 * time.Second

type mode int

const (
	modeNormal mode = iota
	modeEdit
	modeGoto
	modeSearch
	modeError
)

// Model holds the session state: the current day, its document, and
// the editing surface. Loads and saves are tagged with sequences so
// only the most recently requested result applies.
type Model struct {
	svc *app.Service
	ctx context.Context

	mode       mode
	returnMode mode // where to go back to when the combobox closes

	date time.Time
	doc  *document.Document

	editor    textarea.Model
	gotoInput textinput.Model
	searchBox search.Model

	status      string
	statusIsErr bool

	loadSeq int
	saveSeq int

	fatalErr error

	termWidth  int
	termHeight int
}

// messages
type dayLoadedMsg struct {
	seq  int
	date time.Time
	doc  *document.Document
	err  error
}

type savedMsg struct {
	seq int
	doc *document.Document
	err error
}

type statusClearMsg struct {
	seq int
}

const normalHelp = "NORMAL: ←/→ day, t today, g goto, enter edit, / link, ctrl+s save, q quit"

func New(svc *app.Service) Model {
	ta := textarea.New()
	ta.Placeholder = "Write your diary entry here..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	gi := textinput.New()
	gi.Placeholder = "YYYY-MM-DD"
	gi.CharLimit = 10
	gi.Prompt = "Go to: "

	return Model{
		svc:       svc,
		ctx:       context.Background(),
		mode:      modeNormal,
		date:      svc.Today(),
		editor:    ta,
		gotoInput: gi,
		searchBox: search.New(svc),
		status:    normalHelp,
	}
}

// Init loads today's entry under the initial sequence.
func (m Model) Init() tea.Cmd {
	return m.fetchCmd(m.date, m.loadSeq)
}

func (m *Model) loadDay(date time.Time) tea.Cmd {
	m.loadSeq++
	return m.fetchCmd(date, m.loadSeq)
}

func (m Model) fetchCmd(date time.Time, seq int) tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		doc, err := svc.Day(ctx, date)
		return dayLoadedMsg{seq: seq, date: date, doc: doc, err: err}
	}
}

// navigate moves the current day by delta calendar days and loads it.
func (m *Model) navigate(delta int) tea.Cmd {
	m.date = m.date.AddDate(0, 0, delta)
	return m.loadDay(m.date)
}

func (m *Model) save() tea.Cmd {
	if m.doc == nil {
		return nil
	}
	m.saveSeq++
	seq := m.saveSeq
	svc := m.svc
	ctx := m.ctx
	doc := m.doc
	text := m.editor.Value()
	return func() tea.Msg {
		saved, err := svc.SaveDay(ctx, doc, text)
		return savedMsg{seq: seq, doc: saved, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		return m, nil

	case dayLoadedMsg:
		// A newer navigation supersedes this load.
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil {
			if m.doc == nil {
				// Nothing on screen yet: the whole view becomes an
				// error panel, terminal for this session.
				m.fatalErr = msg.err
				m.mode = modeError
				return m, nil
			}
			// Keep the previous day's document on screen.
			m.status = "ERR: " + msg.err.Error()
			m.statusIsErr = true
			return m, nil
		}
		m.doc = msg.doc
		m.date = msg.date
		// Rebuilding the editor from the fetched text discards any
		// unsaved edits; navigating away without saving loses them.
		m.editor.SetValue(msg.doc.Text)
		m.status = normalHelp
		m.statusIsErr = false
		return m, nil

	case savedMsg:
		if msg.seq != m.saveSeq {
			return m, nil
		}
		if msg.err != nil {
			m.status = "Save failed: " + msg.err.Error()
			m.statusIsErr = true
			return m, nil
		}
		m.status = "Saved successfully!"
		m.statusIsErr = false
		seq := msg.seq
		return m, tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
			return statusClearMsg{seq: seq}
		})

	case statusClearMsg:
		// The newest save owns the clear timer.
		if msg.seq == m.saveSeq && !m.statusIsErr {
			m.status = normalHelp
		}
		return m, nil

	case search.InsertMsg:
		m.editor.InsertString(msg.Text)
		m.mode = m.returnMode
		if m.mode == modeEdit {
			cmds = append(cmds, m.editor.Focus())
		}
		return m, tea.Batch(cmds...)

	case search.CloseMsg:
		m.mode = m.returnMode
		if m.mode == modeEdit {
			cmds = append(cmds, m.editor.Focus())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	// Non-key messages may still belong to the focused component:
	// cursor blinks, debounce ticks, search replies.
	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.searchBox, cmd = m.searchBox.Update(msg)
	case modeEdit:
		m.editor, cmd = m.editor.Update(msg)
	case modeGoto:
		m.gotoInput, cmd = m.gotoInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if key := msg.String(); key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeError:
		switch msg.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil

	case modeSearch:
		var cmd tea.Cmd
		m.searchBox, cmd = m.searchBox.Update(msg)
		return m, cmd

	case modeGoto:
		switch msg.String() {
		case "enter":
			date, err := document.ParseDate(m.gotoInput.Value())
			if err != nil {
				m.status = "ERR: " + err.Error()
				m.statusIsErr = true
				return m, nil
			}
			m.mode = modeNormal
			m.gotoInput.Reset()
			m.gotoInput.Blur()
			m.date = date
			cmd := m.loadDay(date)
			return m, cmd
		case "esc":
			m.mode = modeNormal
			m.gotoInput.Reset()
			m.gotoInput.Blur()
			m.status = normalHelp
			m.statusIsErr = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.gotoInput, cmd = m.gotoInput.Update(msg)
			return m, cmd
		}

	case modeEdit:
		switch msg.String() {
		case "esc":
			m.mode = modeNormal
			m.editor.Blur()
			m.status = normalHelp
			m.statusIsErr = false
			return m, nil
		case "ctrl+s":
			cmd := m.save()
			return m, cmd
		case "ctrl+l":
			return m.openSearch()
		default:
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, cmd
		}

	case modeNormal:
		switch msg.String() {
		case "left", "h":
			cmd := m.navigate(-1)
			return m, cmd
		case "right", "l":
			cmd := m.navigate(+1)
			return m, cmd
		case "t":
			m.date = m.svc.Today()
			cmd := m.loadDay(m.date)
			return m, cmd
		case "g":
			m.mode = modeGoto
			m.gotoInput.Reset()
			if cmd := m.gotoInput.Focus(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			cmds = append(cmds, textinput.Blink)
			m.status = "Jump to a date, enter to confirm, esc to cancel"
			m.statusIsErr = false
			return m, tea.Batch(cmds...)
		case "enter", "i":
			m.mode = modeEdit
			m.status = "EDIT: esc to stop editing, ctrl+s save, ctrl+l link"
			m.statusIsErr = false
			cmd := m.editor.Focus()
			return m, cmd
		case "/":
			return m.openSearch()
		case "ctrl+s":
			cmd := m.save()
			return m, cmd
		case "r":
			cmd := m.loadDay(m.date)
			return m, cmd
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

func (m Model) openSearch() (tea.Model, tea.Cmd) {
	m.returnMode = m.mode
	m.mode = modeSearch
	m.editor.Blur()
	cmd := m.searchBox.Open()
	return m, cmd
}

// View renders the title, the editor and a status line, or the error
// panel when the first load failed.
func (m Model) View() string {
	if m.mode == modeError {
		title := lipgloss.NewStyle().Bold(true).Render("Error loading diary")
		body := fmt.Sprintf("%s\n\n%v\n\nPlease check your settings and try again.", title, m.fatalErr)
		return lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2).Render(body) + "\n"
	}

	title := "Loading..."
	if m.doc != nil {
		title = m.doc.Title
	}
	header := lipgloss.NewStyle().Bold(true).Underline(true).Render(title)

	body := header + "\n\n" + m.editor.View()

	if m.mode == modeGoto {
		body += "\n\n" + m.gotoInput.View()
	}
	if m.mode == modeSearch {
		body += "\n\n" + m.searchBox.View()
	}

	status := m.status
	if m.termWidth > 0 {
		status = truncate.StringWithTail(status, uint(m.termWidth-1), "…")
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.statusIsErr {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}
	return body + "\n\n" + style.Render(status)
}

// applySizes fits the editor to the terminal, leaving room for the
// header and status lines.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	w := m.termWidth - 2
	if w < 20 {
		w = 20
	}
	h := m.termHeight - 6
	if h < 5 {
		h = 5
	}
	m.editor.SetWidth(w)
	m.editor.SetHeight(h)
	m.searchBox.SetWidth(w / 2)
}

// Run starts the program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
