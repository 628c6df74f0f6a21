// Package termhost runs widget trees in a terminal. Each connected viewer
// gets its own screen; the active one is drawn with bubbletea and mouse
// clicks and edits are fed back as widget events.
package termhost

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/2BitsCoin/RisingWorld-RWGui/internal/session"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
)

// scroller is implemented by listeners reacting to the mouse wheel.
type scroller interface {
	OnScroll(v gui.Viewer, e *gui.Element, up bool)
}

// Host is the event source and viewer registry. It is safe for
// concurrent use; listeners are always called without the lock held.
type Host struct {
	sessions *session.Registry

	mu        sync.Mutex
	listeners []gui.Listener
	viewers   []*Viewer
	onConnect []func(v *Viewer)
}

func New() *Host {
	return &Host{sessions: session.NewRegistry()}
}

// RegisterListener adds l. Registering twice has no effect.
func (h *Host) RegisterListener(l gui.Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, have := range h.listeners {
		if have == l {
			return
		}
	}
	h.listeners = append(h.listeners, l)
}

func (h *Host) UnregisterListener(l gui.Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, have := range h.listeners {
		if have == l {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns a snapshot of the registered listeners.
func (h *Host) Listeners() []gui.Listener {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]gui.Listener, len(h.listeners))
	copy(out, h.listeners)
	return out
}

// OnConnect registers fn to run whenever a new viewer session starts.
func (h *Host) OnConnect(fn func(v *Viewer)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onConnect = append(h.onConnect, fn)
}

// Connect returns the viewer called name, creating it on first use. The
// connect hooks run for new sessions only.
func (h *Host) Connect(name string, playerID int64) (*Viewer, error) {
	sess, err := h.sessions.GetOrCreate(name)
	if err != nil {
		return nil, fmt.Errorf("connect %q: %w", name, err)
	}

	h.mu.Lock()
	for _, v := range h.viewers {
		if v.sess.ID == sess.ID {
			h.mu.Unlock()
			return v, nil
		}
	}
	v := &Viewer{sess: sess, playerID: playerID}
	h.viewers = append(h.viewers, v)
	hooks := append([]func(*Viewer){}, h.onConnect...)
	h.mu.Unlock()

	slog.Debug("viewer connected", "name", sess.Name, "session", sess.ID)
	if sess.IsNew {
		for _, fn := range hooks {
			fn(v)
		}
	}
	return v, nil
}

// Disconnect drops v and ends its session.
func (h *Host) Disconnect(v *Viewer) {
	h.mu.Lock()
	for i, have := range h.viewers {
		if have == v {
			h.viewers = append(h.viewers[:i], h.viewers[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
	h.sessions.End(v.Name())
}

// Viewers returns the connected viewers in connection order.
func (h *Host) Viewers() []*Viewer {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Viewer, len(h.viewers))
	copy(out, h.viewers)
	return out
}

// Click delivers a click on e by v to every listener.
func (h *Host) Click(v *Viewer, e *gui.Element) {
	for _, l := range h.Listeners() {
		l.OnClick(v, e)
	}
}

// TextEntry delivers new text for the field e edited by v.
func (h *Host) TextEntry(v *Viewer, e *gui.Element, text string) {
	for _, l := range h.Listeners() {
		l.OnTextEntry(v, e, text)
	}
}

// Scroll delivers a wheel turn over e to listeners that handle it.
func (h *Host) Scroll(v *Viewer, e *gui.Element, up bool) {
	for _, l := range h.Listeners() {
		if s, ok := l.(scroller); ok {
			s.OnScroll(v, e, up)
		}
	}
}
