package gui

import "sync"

// fakeViewer records attached elements in order.
type fakeViewer struct {
	name string

	mu       sync.Mutex
	elements []*Element
	cursor   bool
}

func newFakeViewer(name string) *fakeViewer { return &fakeViewer{name: name} }

func (v *fakeViewer) AddElement(e *Element) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, have := range v.elements {
		if have == e {
			return
		}
	}
	v.elements = append(v.elements, e)
}

func (v *fakeViewer) RemoveElement(e *Element) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, have := range v.elements {
		if have == e {
			v.elements = append(v.elements[:i], v.elements[i+1:]...)
			return
		}
	}
}

func (v *fakeViewer) SetMouseCursorVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cursor = visible
}

func (v *fakeViewer) has(e *Element) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, have := range v.elements {
		if have == e {
			return true
		}
	}
	return false
}

func (v *fakeViewer) count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.elements)
}

func (v *fakeViewer) cursorVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursor
}

// fakeHost counts listener registrations.
type fakeHost struct {
	mu           sync.Mutex
	listeners    map[Listener]bool
	registered   int
	unregistered int
}

func newFakeHost() *fakeHost { return &fakeHost{listeners: make(map[Listener]bool)} }

func (h *fakeHost) RegisterListener(l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners[l] = true
	h.registered++
}

func (h *fakeHost) UnregisterListener(l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.listeners, l)
	h.unregistered++
}

func (h *fakeHost) counts() (registered, unregistered int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registered, h.unregistered
}

func (h *fakeHost) active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// call records callback invocations.
type call struct {
	viewer Viewer
	id     int
	data   any
}

type recorder struct {
	calls []call
}

func (r *recorder) callback(v Viewer, id int, data any) {
	r.calls = append(r.calls, call{viewer: v, id: id, data: data})
}

func (r *recorder) last() (call, bool) {
	if len(r.calls) == 0 {
		return call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// boxes returns image elements of the given sizes.
func boxes(sizes ...[2]int) []*Element {
	out := make([]*Element, len(sizes))
	for i, s := range sizes {
		out[i] = NewImage(s[0], s[1])
	}
	return out
}

func position(e *Element) (int, int) {
	x, y := e.Position()
	return int(x), int(y)
}
