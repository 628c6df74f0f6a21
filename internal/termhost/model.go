package termhost

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/mouse"
)

// dispatchMsg carries work from other goroutines onto the program loop.
type dispatchMsg struct{ fn func() }

// Dispatcher returns a function running fn on p's event loop. Pass it to
// gui.WithDispatch so timers never touch the tree concurrently with input.
func Dispatcher(p *tea.Program) func(fn func()) {
	return func(fn func()) { p.Send(dispatchMsg{fn: fn}) }
}

// Model is the bubbletea model showing one viewer of a Host at a time.
type Model struct {
	host   *Host
	active int

	width, height int

	mouse   *mouse.Handler
	editing *gui.Element
	input   textinput.Model
}

// NewModel creates a model over h's viewers.
func NewModel(h *Host) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = EditPrompt
	ti.CharLimit = 256
	return Model{host: h, mouse: mouse.NewHandler(), input: ti}
}

func (m Model) Init() tea.Cmd { return nil }

// Viewer returns the viewer currently on screen, nil when none is
// connected.
func (m Model) Viewer() *Viewer {
	vs := m.host.Viewers()
	if len(vs) == 0 {
		return nil
	}
	return vs[m.active%len(vs)]
}

// Editing returns the text field being edited, if any.
func (m Model) Editing() *gui.Element { return m.editing }

// canvasRows leaves the last line for the status bar.
func (m Model) canvasRows() int { return max(m.height-1, 0) }

func (m Model) paint() *Canvas {
	v := m.Viewer()
	if v == nil {
		return NewCanvas(m.width, m.canvasRows())
	}
	return Paint(v, m.width, m.canvasRows())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-4, 1)
		return m, nil

	case dispatchMsg:
		if msg.fn != nil {
			msg.fn()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing != nil {
		switch {
		case key.Matches(msg, keys.Submit):
			field := m.editing
			m.editing = nil
			m.input.Blur()
			if v := m.Viewer(); v != nil {
				m.host.TextEntry(v, field, m.input.Value())
			}
			return m, nil
		case key.Matches(msg, keys.Cancel):
			m.editing = nil
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.NextViewer):
		if n := len(m.host.Viewers()); n > 0 {
			m.active = (m.active + 1) % n
		}
	case key.Matches(msg, keys.PrevViewer):
		if n := len(m.host.Viewers()); n > 0 {
			m.active = (m.active + n - 1) % n
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	v := m.Viewer()
	if v == nil {
		return m, nil
	}
	m.mouse.HitMap = m.paint().HitMap()
	act := m.mouse.HandleMouse(msg)
	if act.Region == nil {
		return m, nil
	}
	e, _ := act.Region.Data.(*gui.Element)
	if e == nil {
		return m, nil
	}

	switch act.Type {
	case mouse.ActionClick:
		if e.Editable() {
			m.editing = e
			m.input.SetValue(e.Text())
			m.input.CursorEnd()
			cmd := m.input.Focus()
			if e.Clickable() {
				m.host.Click(v, e)
			}
			return m, cmd
		}
		if e.Clickable() {
			m.host.Click(v, e)
		}
	case mouse.ActionScrollUp:
		m.host.Scroll(v, e, true)
	case mouse.ActionScrollDown:
		m.host.Scroll(v, e, false)
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	body := m.paint().Render()
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
}

func (m Model) statusLine() string {
	if m.editing != nil {
		return lipgloss.NewStyle().Width(m.width).Render(m.input.View())
	}
	name := "no viewers"
	if v := m.Viewer(); v != nil {
		name = v.Name()
	}
	var hints []string
	for _, b := range keys.shortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	left := StatusViewer.Render(name)
	right := StatusHelp.Render(strings.Join(hints, " · "))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + StatusBar.Render(strings.Repeat(" ", gap)) + right
}
