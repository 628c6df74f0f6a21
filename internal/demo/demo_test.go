package demo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/2BitsCoin/RisingWorld-RWGui/internal/config"
	"github.com/2BitsCoin/RisingWorld-RWGui/internal/termhost"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/roster"
)

func fixedUsers(users ...roster.User) roster.Source {
	return roster.SourceFunc(func(context.Context) ([]roster.User, error) {
		return users, nil
	})
}

func newScene(t *testing.T, src roster.Source) (*Scene, *termhost.Host, *termhost.Viewer) {
	t.Helper()
	cfg := config.Default()
	cfg.MessageDelaySeconds = 3600
	h := termhost.New()
	v, err := h.Connect("alice", 1)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	s := New(context.Background(), h, nil, cfg, src, nil)
	t.Cleanup(func() { s.Detach(v) })
	return s, h, v
}

// clickItem clicks the main menu label showing text.
func clickItem(t *testing.T, h *termhost.Host, v *termhost.Viewer, m *gui.Menu, text string) {
	t.Helper()
	for _, l := range m.Labels() {
		if l.Text() == text {
			h.Click(v, l)
			return
		}
	}
	t.Fatalf("no menu item %q", text)
}

func TestAttachShowsMainMenu(t *testing.T) {
	s, _, v := newScene(t, fixedUsers())
	st := s.Attach(v, 1)
	if !st.Main.Showing(v) {
		t.Fatal("main menu not shown")
	}
	if again := s.Attach(v, 1); again != st {
		t.Error("second Attach built a new state")
	}
	if got := st.Main.Len(); got != 4 {
		t.Errorf("main items = %d, want 4", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s, h, v := newScene(t, fixedUsers())
	st := s.Attach(v, 1)

	clickItem(t, h, v, st.Main, "Settings")
	if st.Main.Showing(v) || !st.Settings.Showing(v) {
		t.Fatal("settings did not replace the main menu")
	}

	h.TextEntry(v, st.name, "  Steve ")
	if st.Name != "Steve" {
		t.Errorf("name = %q, want Steve", st.Name)
	}

	// unchecking Sound leaves Music, Low checked
	h.Click(v, st.checks[0].Icon())
	if got := strings.Join(st.Checked(), ","); got != "Music,Low" {
		t.Errorf("checked = %s, want Music,Low", got)
	}

	h.Click(v, st.colourCell[2])
	if st.Colour != "Blue" {
		t.Errorf("colour = %q, want Blue", st.Colour)
	}
	if st.colourCell[2].FontColor() != gui.TextSelColor || st.colourCell[0].FontColor() != gui.TextColor {
		t.Error("selected colour not highlighted")
	}

	h.Click(v, findOK(t, st))

	if st.Settings.Showing(v) || !st.Main.Showing(v) {
		t.Error("OK did not return to the main menu")
	}
	if st.Notice == nil || st.Notice.Dismissed() {
		t.Fatal("no summary notice")
	}
	if title := st.Notice.Window().TitleBar().Title().Text(); title != "Saved" {
		t.Errorf("notice title = %q", title)
	}
}

func findOK(t *testing.T, st *State) *gui.Element {
	t.Helper()
	var walk func(c *gui.Container) *gui.Element
	walk = func(c *gui.Container) *gui.Element {
		for _, ch := range c.Children() {
			if sub, ok := ch.Node.(*gui.Container); ok {
				if e := walk(sub); e != nil {
					return e
				}
				continue
			}
			if e, ok := ch.Node.(*gui.Element); ok && e.Text() == "OK" {
				return e
			}
		}
		return nil
	}
	e := walk(st.Settings.Root())
	if e == nil {
		t.Fatal("OK button not found")
	}
	return e
}

func TestSettingsCancelReturnsToMenu(t *testing.T) {
	s, h, v := newScene(t, fixedUsers())
	st := s.Attach(v, 1)
	clickItem(t, h, v, st.Main, "Settings")

	h.Click(v, st.Settings.TitleBar().CancelButton())
	if st.Settings.Showing(v) || !st.Main.Showing(v) {
		t.Error("cancel did not go back to the main menu")
	}
}

func TestPlayersExcludesViewer(t *testing.T) {
	joined := time.Now().Add(-2 * time.Hour)
	s, h, v := newScene(t, fixedUsers(
		roster.User{ID: 1, Name: "alice", JoinedAt: joined},
		roster.User{ID: 2, Name: "bob", JoinedAt: joined},
	))
	st := s.Attach(v, 1)

	clickItem(t, h, v, st.Main, "Players")
	if st.Players == nil || !st.Players.Showing(v) {
		t.Fatal("players menu not shown")
	}
	if got := st.Players.Len(); got != 1 {
		t.Fatalf("players = %d, want 1", got)
	}

	clickItem(t, h, v, st.Players.Menu, "bob")
	if st.Players.Showing(v) || !st.Main.Showing(v) {
		t.Error("selection did not return to the main menu")
	}
	if st.Notice == nil {
		t.Fatal("no notice for picked player")
	}
	texts := labelTexts(st.Notice.Window().Root())
	if len(texts) != 2 || texts[0] != "bob" || texts[1] != "joined 2 hours ago" {
		t.Errorf("notice lines = %q", texts)
	}
}

func TestPlayersLoadError(t *testing.T) {
	src := roster.SourceFunc(func(context.Context) ([]roster.User, error) {
		return nil, errors.New("db locked")
	})
	s, h, v := newScene(t, src)
	st := s.Attach(v, 1)

	clickItem(t, h, v, st.Main, "Players")
	if !st.Main.Showing(v) {
		t.Error("main menu closed on load error")
	}
	if st.Notice == nil || st.Notice.Dismissed() {
		t.Fatal("load error not reported")
	}
}

func TestStatusToggles(t *testing.T) {
	s, h, v := newScene(t, fixedUsers())
	st := s.Attach(v, 1)

	clickItem(t, h, v, st.Main, "Status")
	if !st.Status.Showing(v) {
		t.Fatal("status not shown")
	}
	if got := st.Status.Texts(); len(got) == 0 || got[0] != "players online: 1" {
		t.Errorf("status = %q", got)
	}
	if !st.Main.Showing(v) {
		t.Error("main menu closed by status")
	}
	clickItem(t, h, v, st.Main, "Status")
	if st.Status.Showing(v) {
		t.Error("status still shown after second click")
	}
}

func TestNoticeReplacesPrevious(t *testing.T) {
	s, h, v := newScene(t, fixedUsers())
	st := s.Attach(v, 1)

	clickItem(t, h, v, st.Main, "About")
	first := st.Notice
	clickItem(t, h, v, st.Main, "About")
	if !first.Dismissed() {
		t.Error("old notice left open")
	}
	if st.Notice == first || st.Notice.Dismissed() {
		t.Error("new notice not shown")
	}
}

func TestDetachReleasesListeners(t *testing.T) {
	s, h, v := newScene(t, fixedUsers())
	st := s.Attach(v, 1)
	clickItem(t, h, v, st.Main, "About")

	s.Detach(v)
	if got := len(h.Listeners()); got != 0 {
		t.Errorf("listeners = %d, want 0", got)
	}
	if s.State(v) != nil {
		t.Error("state kept after detach")
	}
	if got := len(v.Elements()); got != 0 {
		t.Errorf("elements = %d, want 0", got)
	}
}

func labelTexts(c *gui.Container) []string {
	var out []string
	for _, ch := range c.Children() {
		if e, ok := ch.Node.(*gui.Element); ok && e.Kind() == gui.KindLabel {
			out = append(out, e.Text())
		}
	}
	return out
}

func TestConfiguredPaddingReachesNestedContainers(t *testing.T) {
	cfg := config.Default()
	cfg.Padding = 9
	cfg.Margin = 4
	h := termhost.New()
	v, err := h.Connect("alice", 1)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	s := New(context.Background(), h, nil, cfg,
		fixedUsers(roster.User{ID: 2, Name: "bob"}), nil)
	t.Cleanup(func() { s.Detach(v) })
	st := s.Attach(v, 1)
	clickItem(t, h, v, st.Main, "Players")
	if st.Players == nil {
		t.Fatal("players menu not built")
	}

	var check func(name string, c *gui.Container) int
	check = func(name string, c *gui.Container) int {
		if c.Padding() != 9 {
			t.Errorf("%s: container padding = %d, want 9", name, c.Padding())
		}
		n := 1
		for _, ch := range c.Children() {
			if nested, ok := ch.Node.(*gui.Container); ok {
				n += check(name, nested)
			}
		}
		return n
	}
	for name, w := range map[string]*gui.Window{
		"settings": st.Settings,
		"main":     st.Main.Window,
		"players":  st.Players.Window,
	} {
		if got := w.Root().Margin(); got != 4 {
			t.Errorf("%s: margin = %d, want 4", name, got)
		}
		if n := check(name, w.Root()); name == "settings" && n < 6 {
			t.Errorf("settings: visited %d containers, want the rows and the grid", n)
		}
	}
}
