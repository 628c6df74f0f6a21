package gui

import (
	"log/slog"
	"sync"
)

// Showable is anything a closing window can fall back to.
type Showable interface {
	Show(v Viewer)
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithIcons sets the icon set used for the cancel button and for check
// boxes created through the window. Without it icons are recorded by id
// only.
func WithIcons(icons *IconSet) WindowOption {
	return func(w *Window) { w.icons = icons }
}

// WithCancel controls whether the title bar carries a cancel button.
// Windows have one by default.
func WithCancel(enabled bool) WindowOption {
	return func(w *Window) { w.hasCancel = enabled }
}

// WithAutoClose makes the window close itself after a child selection.
func WithAutoClose(enabled bool) WindowOption {
	return func(w *Window) { w.autoClose = enabled }
}

// Window is a modal dialogue: a title bar over a root container, with its
// own event routing and a show/close lifecycle per viewer. One window may
// be shown to several viewers at once.
type Window struct {
	host      EventHost
	icons     *IconSet
	hasCancel bool

	panel    *Element
	titleBar *TitleBar
	root     *Container

	callback  Callback
	previous  Showable
	autoClose bool

	viewers     map[Viewer]struct{}
	listenerRef int

	// intercept sees clicks before the default routing and reports
	// whether it consumed them.
	intercept func(v Viewer, e *Element) bool
	scroll    func(v Viewer, e *Element, up bool)

	// guard, when set, is held while an event is routed. Owners tearing
	// the window down from another goroutine hold it too.
	guard sync.Locker
}

// NewWindow creates a window laying out its children in orientation o.
// host may be nil for windows that never receive events.
func NewWindow(host EventHost, title string, o Orientation, callback Callback, opts ...WindowOption) *Window {
	w := &Window{
		host:      host,
		hasCancel: true,
		callback:  callback,
		viewers:   make(map[Viewer]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.panel = NewPanel(0, 0)
	w.panel.SetPivot(PivotCenter)
	w.panel.SetRelativePosition(0.5, 0.5)
	w.panel.SetColor(PanelColor)
	w.panel.SetBorderColor(BorderColor)
	w.panel.SetBorderThickness(BorderThickness)

	w.titleBar = newTitleBar(w.icons, title, w.hasCancel)
	w.panel.attach(w.titleBar.panel)

	w.root = NewContainer(o, HLeft|VTop)
	w.root.SetMargin(Border)
	w.panel.attach(w.root.panel)
	return w
}

// Base returns the window panel, or nil for a nil window.
func (w *Window) Base() *Element {
	if w == nil {
		return nil
	}
	return w.panel
}

func (w *Window) Root() *Container    { return w.root }
func (w *Window) TitleBar() *TitleBar { return w.titleBar }
func (w *Window) Icons() *IconSet     { return w.icons }
func (w *Window) AutoClose() bool     { return w.autoClose }

func (w *Window) SetTitle(title string)     { w.titleBar.SetTitle(title) }
func (w *Window) SetMargin(m int)           { w.root.SetMargin(m) }
func (w *Window) SetPadding(p int)          { w.root.SetPadding(p) }
func (w *Window) SetCallback(cb Callback)   { w.callback = cb }
func (w *Window) SetAutoClose(enabled bool) { w.autoClose = enabled }

// SetPrevious records the window shown again to a viewer when this one
// closes after a selection or a cancel. nil clears it.
func (w *Window) SetPrevious(p Showable) { w.previous = p }

func (w *Window) AddChild(n Node) { w.root.AddChild(n) }

func (w *Window) AddChildWithID(n Node, id int, data any) {
	w.root.AddChildWithID(n, id, data)
}

func (w *Window) RemoveChild(n Node) { w.root.RemoveChild(n) }

func (w *Window) AddNewLayoutChild(o Orientation, flags Flags) *Container {
	return w.root.AddNewLayoutChild(o, flags)
}

func (w *Window) AddNewGridChild(cols, rows int, flags Flags) *Container {
	return w.root.AddNewGridChild(cols, rows, flags)
}

// Size returns the window size computed by the last Layout.
func (w *Window) Size() (int, int) { return w.panel.Size() }

// Layout measures the content, widens it to fit the title and sizes the
// window around it.
func (w *Window) Layout() (int, int) {
	naturalW, _ := w.root.Layout(0, 0, true)
	cw, ch := w.root.Layout(max(naturalW, w.titleBar.MinWidth()), 0, false)

	width := cw + 2*BorderThickness
	height := ch + 2*BorderThickness + w.titleBar.Height()
	w.panel.SetSize(width, height)
	w.root.panel.SetPosition(BorderThickness, BorderThickness+ch)
	w.titleBar.relayout(width, height)
	return width, height
}

// Showing reports whether v currently sees the window.
func (w *Window) Showing(v Viewer) bool {
	_, ok := w.viewers[v]
	return ok
}

// Viewers returns how many viewers currently see the window.
func (w *Window) Viewers() int { return len(w.viewers) }

// ListenerRefs returns the number of viewers holding the event listener.
func (w *Window) ListenerRefs() int { return w.listenerRef }

// Show lays the window out and attaches it to v. The event listener is
// registered with the host for the first viewer only.
func (w *Window) Show(v Viewer) {
	w.Layout()
	if w.Showing(v) {
		return
	}
	v.AddElement(w.panel)
	w.titleBar.attach(v)
	w.root.Show(v)
	w.viewers[v] = struct{}{}

	w.listenerRef++
	if w.listenerRef == 1 && w.host != nil {
		slog.Debug("register window listener", "title", w.titleBar.title.Text())
		w.host.RegisterListener(w)
	}
	v.SetMouseCursorVisible(true)
}

// Close detaches the window from v and keeps it for a later Show. The
// listener is unregistered when the last viewer closes it.
func (w *Window) Close(v Viewer) {
	if !w.Showing(v) {
		return
	}
	w.root.Close(v)
	w.titleBar.detach(v)
	v.RemoveElement(w.panel)
	delete(w.viewers, v)

	w.listenerRef--
	if w.listenerRef == 0 && w.host != nil {
		slog.Debug("unregister window listener", "title", w.titleBar.title.Text())
		w.host.UnregisterListener(w)
	}
	v.SetMouseCursorVisible(false)
}

// Free releases the title bar and the content. The window must not be
// used afterwards.
func (w *Window) Free() {
	w.titleBar.free()
	w.root.Free()
	w.panel.detach(w.titleBar.panel)
	w.panel.detach(w.root.panel)
}

// pop closes the window for v and shows the previous window, if any.
func (w *Window) pop(v Viewer) {
	w.Close(v)
	if w.previous != nil {
		w.previous.Show(v)
	}
}

func (w *Window) invoke(v Viewer, id int, data any) {
	if w.callback != nil {
		w.callback(v, id, data)
	}
}

// OnClick routes a click on e by viewer v.
func (w *Window) OnClick(v Viewer, e *Element) {
	if w.guard != nil {
		w.guard.Lock()
		defer w.guard.Unlock()
	}
	if e == nil || !w.Showing(v) {
		return
	}
	if w.intercept != nil && w.intercept(v, e) {
		return
	}
	if w.titleBar.IsCancelButton(e) {
		w.pop(v)
		w.invoke(v, AbortID, nil)
		return
	}
	ent, ok := w.root.Activate(e)
	if !ok || !ent.HasID {
		return
	}
	data := ent.Data
	if e.Kind() == KindTextField {
		// text arrives with OnTextEntry
		data = nil
	}
	if w.autoClose {
		w.pop(v)
	}
	w.invoke(v, ent.ID, data)
}

// OnTextEntry reports the new text of an edited field.
func (w *Window) OnTextEntry(v Viewer, e *Element, text string) {
	if w.guard != nil {
		w.guard.Lock()
		defer w.guard.Unlock()
	}
	if e == nil || !w.Showing(v) {
		return
	}
	id, ok := w.root.ItemID(e)
	if !ok {
		return
	}
	e.SetText(text)
	w.invoke(v, id, text)
}

// OnScroll forwards a wheel event over e. Only menus react to it.
func (w *Window) OnScroll(v Viewer, e *Element, up bool) {
	if w.guard != nil {
		w.guard.Lock()
		defer w.guard.Unlock()
	}
	if e == nil || w.scroll == nil || !w.Showing(v) {
		return
	}
	w.scroll(v, e, up)
}
