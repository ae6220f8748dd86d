package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/devmem/errors"
)

type modelState int

const (
	stateBrowse modelState = iota
	stateEdit
)

type interactiveModel struct {
	err     error
	grid    grid
	owner   *gridOwner
	newGrid func(ctx context.Context, opts gridOptions) (grid, error)
	opts    gridOptions
	status  string
	input   textinput.Model
	row     int
	col     int
	state   modelState
}

// gridOwner holds the grid created by the load command. The command runs on
// its own goroutine and may finish after the program has quit, so release
// happens here rather than in Update.
type gridOwner struct {
	mu     sync.Mutex
	grid   grid
	closed bool
}

// adopt takes ownership of g. It returns false, having closed g, if the
// owner was already closed.
func (o *gridOwner) adopt(g grid) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		_ = g.Close(context.Background())
		return false
	}
	o.grid = g
	return true
}

func (o *gridOwner) close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	if o.grid != nil {
		_ = o.grid.Close(context.Background())
		o.grid = nil
	}
}

type loadedMsg struct {
	err  error
	grid grid
}

var errClosed = &errors.Error{
	Phase:  errors.PhaseCLI,
	Kind:   errors.KindCanceled,
	Detail: "closed before the grid was ready",
}

func newInteractiveModel(opts gridOptions) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "value: "
	ti.Placeholder = "int32"
	ti.CharLimit = 12
	ti.Width = 20
	return &interactiveModel{
		opts:    opts,
		owner:   &gridOwner{},
		newGrid: newGrid,
		input:   ti,
		state:   stateBrowse,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	g, err := m.newGrid(context.Background(), m.opts)
	if err != nil {
		return loadedMsg{err: err}
	}
	if !m.owner.adopt(g) {
		return loadedMsg{err: errClosed}
	}
	return loadedMsg{grid: g}
}

func (m *interactiveModel) close() {
	m.owner.close()
	m.grid = nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.grid = msg.grid
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.close()
			return m, tea.Quit
		}
		if m.state == stateEdit {
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.state == stateEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.grid == nil {
		if msg.String() == "q" {
			m.close()
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.close()
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < m.grid.Rows()-1 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < m.grid.Cols()-1 {
			m.col++
		}
	case "enter":
		m.state = stateEdit
		m.status = ""
		m.input.SetValue(strconv.Itoa(int(m.grid.At(m.row, m.col))))
		m.input.CursorEnd()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *interactiveModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		v, err := strconv.ParseInt(strings.TrimSpace(m.input.Value()), 10, 32)
		if err != nil {
			m.status = fmt.Sprintf("invalid value %q", m.input.Value())
			return m, nil
		}
		m.grid.Set(m.row, m.col, int32(v))
		m.status = fmt.Sprintf("set (%d,%d) = %d", m.row, m.col, v)
		m.state = stateBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.grid == nil {
		return "Allocating..."
	}

	r := renderer{styled: true}
	var b strings.Builder

	b.WriteString(r.header(m.grid))
	b.WriteString("\n\n")
	b.WriteString(r.matrix(m.grid, m.row, m.col))
	b.WriteString("\n")
	b.WriteString(r.slices(m.grid, m.row, m.col))
	b.WriteString("\n")

	switch m.state {
	case stateBrowse:
		if m.status != "" {
			b.WriteString(m.status)
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("←/↑/↓/→ move • enter edit • q quit"))
	case stateEdit:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(errorStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter set • esc cancel"))
	}

	return b.String()
}

func runInteractive(opts gridOptions) error {
	m := newInteractiveModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.close()
	return err
}
