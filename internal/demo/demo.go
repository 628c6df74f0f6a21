// Package demo builds the sample windows the terminal host shows each
// viewer: a main menu leading to a settings dialogue, the player list,
// a status panel and timed notices.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/2BitsCoin/RisingWorld-RWGui/internal/config"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/roster"
)

// Main menu item ids.
const (
	ItemSettings = iota + 1
	ItemPlayers
	ItemStatus
	ItemAbout
)

// Settings dialogue child ids.
const (
	FieldName   = 10
	CheckSound  = 11
	CheckMusic  = 12
	RadioAuto   = 13
	CheckLow    = 14
	CheckHigh   = 15
	colourFirst = 20
)

var colours = []string{"Red", "Green", "Blue", "Gold"}

const nameFieldWidth = 120

// Scene creates and tracks the windows of every attached viewer.
type Scene struct {
	ctx      context.Context
	host     gui.EventHost
	icons    *gui.IconSet
	cfg      *config.Config
	users    roster.Source
	dispatch func(fn func())

	mu     sync.Mutex
	states map[gui.Viewer]*State
}

// New returns a scene over host. dispatch may be nil, in which case
// message boxes expire on their timer goroutine.
func New(ctx context.Context, host gui.EventHost, icons *gui.IconSet, cfg *config.Config, users roster.Source, dispatch func(fn func())) *Scene {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Scene{
		ctx:      ctx,
		host:     host,
		icons:    icons,
		cfg:      cfg,
		users:    users,
		dispatch: dispatch,
		states:   make(map[gui.Viewer]*State),
	}
}

// State is what one viewer has open and chosen.
type State struct {
	Viewer   gui.Viewer
	PlayerID int64

	Main     *gui.Menu
	Settings *gui.Window
	Status   *gui.Modeless
	Players  *gui.UsersMenu
	Notice   *gui.MessageBox

	Name   string
	Colour string

	name       *gui.Element
	checks     []*gui.CheckBox
	colourCell []*gui.Element
}

// Attach builds the windows for v and shows the main menu. Attaching the
// same viewer again shows its existing menu.
func (s *Scene) Attach(v gui.Viewer, playerID int64) *State {
	s.mu.Lock()
	st, ok := s.states[v]
	if !ok {
		st = &State{Viewer: v, PlayerID: playerID}
		s.states[v] = st
	}
	s.mu.Unlock()

	if !ok {
		s.build(st)
	}
	st.Main.Show(v)
	return st
}

// State returns the state of v, nil if it was never attached.
func (s *Scene) State(v gui.Viewer) *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[v]
}

// Detach closes and frees every window of v.
func (s *Scene) Detach(v gui.Viewer) {
	s.mu.Lock()
	st := s.states[v]
	delete(s.states, v)
	s.mu.Unlock()
	if st == nil {
		return
	}
	if st.Notice != nil {
		st.Notice.Dismiss()
	}
	for _, w := range st.windows() {
		w.Close(v)
		w.Free()
	}
}

func (st *State) windows() []*gui.Window {
	out := []*gui.Window{st.Main.Window, st.Settings, st.Status.Window}
	if st.Players != nil {
		out = append(out, st.Players.Window)
	}
	return out
}

func (s *Scene) build(st *State) {
	st.Main = gui.NewMenu(s.host, "RWGui", func(v gui.Viewer, id int, _ any) { s.onMain(st, v, id) },
		gui.WithMaxVisible(s.cfg.MaxVisibleItems),
		gui.WithMenuWindow(gui.WithIcons(s.icons), gui.WithCancel(false)))
	st.Main.SetAutoClose(false)
	st.Main.AddItem("Settings", ItemSettings, nil)
	st.Main.AddItem("Players", ItemPlayers, nil)
	st.Main.AddItem("Status", ItemStatus, nil)
	st.Main.AddItem("About", ItemAbout, nil)
	s.applyDefaults(st.Main.Window)

	st.Settings = s.buildSettings(st)
	st.Settings.SetPrevious(st.Main)

	st.Status = gui.NewModeless("Status", nil, gui.WithIcons(s.icons))
	st.Status.Base().SetRelativePosition(0.8, 0.8)
}

// applyDefaults sets the configured margin on w and the configured
// padding on its root and every nested container. Call it once the
// window is populated.
func (s *Scene) applyDefaults(w *gui.Window) {
	w.SetMargin(s.cfg.Margin)
	setPadding(w.Root(), s.cfg.Padding)
}

func setPadding(c *gui.Container, p int) {
	c.SetPadding(p)
	for _, ch := range c.Children() {
		if nested, ok := ch.Node.(*gui.Container); ok {
			setPadding(nested, p)
		}
	}
}

func (s *Scene) buildSettings(st *State) *gui.Window {
	w := gui.NewWindow(s.host, "Settings", gui.Vertical,
		func(v gui.Viewer, id int, data any) { s.onSettings(st, v, id, data) },
		gui.WithIcons(s.icons))

	nameRow := w.AddNewLayoutChild(gui.Horizontal, gui.HLeft|gui.VMiddle)
	nameRow.AddChild(gui.NewLabel("Name"))
	st.name = gui.NewTextField("")
	st.name.SetSize(nameFieldWidth, gui.TextEntryHeight)
	nameRow.AddChildWithID(st.name, FieldName, "name")

	audio := w.AddNewLayoutChild(gui.Horizontal, gui.HLeft|gui.VMiddle)
	for _, c := range []struct {
		text string
		id   int
	}{{"Sound", CheckSound}, {"Music", CheckMusic}} {
		cb := gui.NewCheckBox(s.icons, c.text, gui.Checked, false, c.id, c.text)
		audio.AddChild(cb)
		st.checks = append(st.checks, cb)
	}

	quality := w.AddNewLayoutChild(gui.Horizontal, gui.HLeft|gui.VMiddle)
	for _, c := range []struct {
		text  string
		id    int
		radio bool
		state gui.CheckState
	}{
		{"Auto", RadioAuto, true, gui.Unchecked},
		{"Low", CheckLow, false, gui.Checked},
		{"High", CheckHigh, false, gui.Unchecked},
	} {
		cb := gui.NewCheckBox(s.icons, c.text, c.state, c.radio, c.id, c.text)
		quality.AddChild(cb)
		st.checks = append(st.checks, cb)
	}

	grid := w.AddNewGridChild(2, 2, gui.HCentre|gui.VMiddle)
	for i, name := range colours {
		l := gui.NewLabel(name)
		grid.AddChildWithID(l, colourFirst+i, name)
		st.colourCell = append(st.colourCell, l)
	}

	buttons := w.AddNewLayoutChild(gui.Horizontal, gui.HSpread|gui.VMiddle)
	buttons.AddChildWithID(gui.NewLabel("OK"), gui.OKID, "ok")
	s.applyDefaults(w)
	return w
}

func (s *Scene) onMain(st *State, v gui.Viewer, id int) {
	switch id {
	case ItemSettings:
		st.Main.Close(v)
		st.Settings.Show(v)
	case ItemPlayers:
		s.openPlayers(st, v)
	case ItemStatus:
		if st.Status.Showing(v) {
			st.Status.Close(v)
			return
		}
		st.Status.SetTexts(s.statusLines(st))
		st.Status.Show(v)
	case ItemAbout:
		s.notify(st, v, "About", []string{"RWGui widget demo", "click items to select them"})
	}
}

func (s *Scene) openPlayers(st *State, v gui.Viewer) {
	if st.Players != nil {
		st.Players.Close(v)
		st.Players.Free()
	}
	pm, err := gui.NewUsersMenu(s.ctx, s.users, s.host, "Players",
		func(v gui.Viewer, id int, data any) { s.onPlayer(st, v, id, data) },
		st.PlayerID,
		gui.WithUsersMenuOptions(
			gui.WithMaxVisible(s.cfg.MaxVisibleItems),
			gui.WithMenuWindow(gui.WithIcons(s.icons))))
	st.Players = pm
	s.applyDefaults(pm.Window)
	pm.SetPrevious(st.Main)
	if err != nil {
		slog.Warn("load players", "err", err)
		s.notify(st, v, "Players", []string{"could not load players"})
		return
	}
	if pm.Len() == 0 {
		s.notify(st, v, "Players", []string{"nobody else is here"})
		return
	}
	st.Main.Close(v)
	pm.Show(v)
}

func (s *Scene) onPlayer(st *State, v gui.Viewer, id int, data any) {
	if id == gui.AbortID {
		return
	}
	u, ok := data.(roster.User)
	if !ok {
		return
	}
	lines := []string{u.Name}
	if !u.JoinedAt.IsZero() {
		lines = append(lines, "joined "+humanize.Time(u.JoinedAt))
	}
	s.notify(st, v, "Player", lines)
}

func (s *Scene) onSettings(st *State, v gui.Viewer, id int, data any) {
	switch {
	case id == FieldName:
		if text, ok := data.(string); ok {
			st.Name = strings.TrimSpace(text)
		}
	case id >= colourFirst && id < colourFirst+len(colours):
		st.Colour, _ = data.(string)
		for i, l := range st.colourCell {
			c := gui.TextColor
			if colourFirst+i == id {
				c = gui.TextSelColor
			}
			l.SetFontColor(c)
		}
	case id == gui.OKID:
		st.Settings.Close(v)
		st.Main.Show(v)
		s.notify(st, v, "Saved", s.summary(st))
	}
}

// Checked returns the labels of the checked boxes of the settings
// dialogue in display order.
func (st *State) Checked() []string {
	var out []string
	for _, cb := range st.checks {
		if cb.State() == gui.Checked {
			out = append(out, cb.Text())
		}
	}
	return out
}

func (s *Scene) summary(st *State) []string {
	name := st.Name
	if name == "" {
		name = "(no name)"
	}
	lines := []string{name}
	if on := st.Checked(); len(on) > 0 {
		lines = append(lines, strings.Join(on, ", "))
	}
	if st.Colour != "" {
		lines = append(lines, "colour "+st.Colour)
	}
	return lines
}

func (s *Scene) statusLines(st *State) []string {
	lines := []string{fmt.Sprintf("players online: %d", s.online())}
	if st.Name != "" {
		lines = append(lines, "name: "+st.Name)
	}
	return lines
}

func (s *Scene) online() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

// notify replaces the viewer's current notice with a new one.
func (s *Scene) notify(st *State, v gui.Viewer, title string, lines []string) {
	if st.Notice != nil {
		st.Notice.Dismiss()
	}
	var opts []gui.MessageBoxOption
	if s.dispatch != nil {
		opts = append(opts, gui.WithDispatch(s.dispatch))
	}
	st.Notice = gui.ShowMessageBox(s.host, s.icons, v, title, lines, s.cfg.MessageDelay(), opts...)
}
