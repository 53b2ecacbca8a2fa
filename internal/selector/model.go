package selector

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTitle is the instruction line shown above the filter
const DefaultTitle = "Type to filter, press Enter to select:"

// NoResultsText is rendered when the filtered view is empty
const NoResultsText = "No results found."

// Lines taken by the title, filter line and blank separators
const chromeLines = 6

// ErrInterrupted is returned by Run when the operator presses Ctrl+C.
// It aborts the enclosing flow rather than cancelling the selection.
var ErrInterrupted = errors.New("selection interrupted")

// Result is the outcome of a completed selector session.
type Result struct {
	ID       string // Identifier of the chosen option
	Selected bool   // False when the operator cancelled
}

// Model is the Bubble Tea model rendering a selector State.
type Model struct {
	state       *State
	title       string
	offset      int
	width       int
	height      int
	interrupted bool

	keys keyMap
	help help.Model
}

// NewModel creates a selector model over options.
// An empty title falls back to DefaultTitle.
func NewModel(options []Option, title string) Model {
	if title == "" {
		title = DefaultTitle
	}
	return Model{
		state: New(options),
		title: title,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

// State returns the underlying selector state
func (m Model) State() *State { return m.state }

// Interrupted reports whether the session was aborted with Ctrl+C
func (m Model) Interrupted() bool { return m.interrupted }

// Result returns the session result. Selected is false unless the
// operator confirmed an item.
func (m Model) Result() Result {
	out := m.state.outcome()
	return Result{ID: out.ID, Selected: out.Status == StatusSelected}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.offset = scrollOffset(m.offset, m.state.Cursor(), len(m.state.Filtered()), m.visibleRows())
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Interrupt) {
			m.interrupted = true
			return m, tea.Quit
		}

		for _, k := range m.keys.translate(msg) {
			out := m.state.Apply(k)
			if out.Status.Terminated() {
				return m, tea.Quit
			}
		}
		m.offset = scrollOffset(m.offset, m.state.Cursor(), len(m.state.Filtered()), m.visibleRows())
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.state.Status().Terminated() || m.interrupted {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(FilterLabelStyle.Render("Filter: "))
	b.WriteString(m.state.Search())
	b.WriteString("\n\n")

	filtered := m.state.Filtered()
	if len(filtered) == 0 {
		b.WriteString(EmptyStyle.Render(NoResultsText))
		b.WriteString("\n")
	} else {
		start, end := m.window()
		for i := start; i < end; i++ {
			if i == m.state.Cursor() {
				b.WriteString(CursorItemStyle.Render(filtered[i].Label))
			} else {
				b.WriteString(ItemStyle.Render(filtered[i].Label))
			}
			b.WriteString("\n")
		}
		if end-start < len(filtered) {
			b.WriteString(CounterStyle.Render(fmt.Sprintf("  %d of %d", m.state.Cursor()+1, len(filtered))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// window returns the half-open range of filtered rows to draw
func (m Model) window() (int, int) {
	total := len(m.state.Filtered())
	start := m.offset
	if start > total {
		start = 0
	}
	end := start + m.visibleRows()
	if end > total {
		end = total
	}
	return start, end
}

// visibleRows returns how many list rows fit on screen.
// Before the first WindowSizeMsg every row is drawn.
func (m Model) visibleRows() int {
	if m.height <= 0 {
		return len(m.state.Filtered())
	}
	rows := m.height - chromeLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

// scrollOffset returns the first visible row so the cursor stays on screen,
// moving the window as little as possible.
func scrollOffset(offset, cursor, total, rows int) int {
	if rows <= 0 || total <= rows {
		return 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+rows {
		offset = cursor - rows + 1
	}
	if offset > total-rows {
		offset = total - rows
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// RunOptions configures a selector session
type RunOptions struct {
	Title  string    // Instruction line (default: DefaultTitle)
	Input  io.Reader // Key input (default: stdin)
	Output io.Writer // Render target (default: stdout)
}

// Run shows the full-screen selector and blocks until the operator selects
// an option or cancels. Terminal failures are returned as errors.
func Run(options []Option, opts *RunOptions) (Result, error) {
	if opts == nil {
		opts = &RunOptions{}
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(NewModel(options, opts.Title), programOpts...)
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("selector failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("selector returned unexpected model %T", final)
	}
	if m.Interrupted() {
		return Result{}, ErrInterrupted
	}

	return m.Result(), nil
}
