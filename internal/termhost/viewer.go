package termhost

import (
	"sync"

	"github.com/2BitsCoin/RisingWorld-RWGui/internal/session"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
)

// Viewer is one connected party of the terminal host. Elements are drawn
// in the order they were attached, later ones on top.
type Viewer struct {
	sess     *session.Session
	playerID int64

	mu       sync.Mutex
	elements []*gui.Element
	cursor   bool
}

func (v *Viewer) Name() string      { return v.sess.Name }
func (v *Viewer) SessionID() string { return v.sess.ID }

// PlayerID is the roster id of the viewer, 0 when unknown.
func (v *Viewer) PlayerID() int64 { return v.playerID }

func (v *Viewer) AddElement(e *gui.Element) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, have := range v.elements {
		if have == e {
			return
		}
	}
	v.elements = append(v.elements, e)
}

func (v *Viewer) RemoveElement(e *gui.Element) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, have := range v.elements {
		if have == e {
			v.elements = append(v.elements[:i], v.elements[i+1:]...)
			return
		}
	}
}

func (v *Viewer) SetMouseCursorVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cursor = visible
}

// CursorVisible reports whether the viewer's mouse cursor is shown.
func (v *Viewer) CursorVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursor
}

// Elements returns the attached elements bottom to top.
func (v *Viewer) Elements() []*gui.Element {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]*gui.Element, len(v.elements))
	copy(out, v.elements)
	return out
}
