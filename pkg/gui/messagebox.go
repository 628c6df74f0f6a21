package gui

import (
	"log/slog"
	"sync"
	"time"
)

// MessageBoxOption configures a MessageBox.
type MessageBoxOption func(*MessageBox)

// WithDispatch runs timer expiry through dispatch instead of calling
// Dismiss from the timer goroutine. Hosts with an event loop use it to
// deliver the teardown on that loop.
func WithDispatch(dispatch func(fn func())) MessageBoxOption {
	return func(mb *MessageBox) { mb.dispatch = dispatch }
}

// MessageBox is a one-shot window showing a few lines of text to one
// viewer. It goes away when the viewer cancels it or, with a positive
// delay, when the delay expires, whichever comes first.
type MessageBox struct {
	window   *Window
	viewer   Viewer
	dispatch func(fn func())

	mu        sync.Mutex
	timer     *time.Timer
	dismissed bool
	done      chan struct{}
}

// ShowMessageBox builds a message box and shows it to v right away.
func ShowMessageBox(host EventHost, icons *IconSet, v Viewer, title string, texts []string, delay time.Duration, opts ...MessageBoxOption) *MessageBox {
	mb := &MessageBox{
		viewer:   v,
		dispatch: func(fn func()) { fn() },
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(mb)
	}
	mb.window = NewWindow(host, title, Vertical, nil, WithIcons(icons))
	for _, text := range texts {
		mb.window.AddChild(NewLabel(text))
	}
	mb.window.intercept = mb.onClick
	mb.window.guard = &mb.mu

	// hold the lock so an instant expiry waits for Show
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.window.Show(v)
	if delay > 0 {
		mb.timer = time.AfterFunc(delay, func() {
			slog.Debug("message box expired", "title", title)
			mb.dispatch(mb.Dismiss)
		})
	}
	return mb
}

// Window returns the underlying window.
func (mb *MessageBox) Window() *Window { return mb.window }

// Done is closed once the box has been torn down.
func (mb *MessageBox) Done() <-chan struct{} { return mb.done }

// Dismissed reports whether the box has been torn down.
func (mb *MessageBox) Dismissed() bool {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.dismissed
}

// Dismiss closes and frees the box. Only the first call, from the viewer
// or from the timer, has any effect.
func (mb *MessageBox) Dismiss() {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.dismissLocked()
}

// dismissLocked tears the box down; mb.mu must be held.
func (mb *MessageBox) dismissLocked() {
	if mb.dismissed {
		return
	}
	mb.dismissed = true
	if mb.timer != nil {
		mb.timer.Stop()
	}
	mb.window.Close(mb.viewer)
	mb.window.Free()
	close(mb.done)
}

// onClick swallows every click; the cancel button dismisses the box.
// The window routes it with mb.mu held.
func (mb *MessageBox) onClick(_ Viewer, e *Element) bool {
	if mb.window.titleBar.IsCancelButton(e) {
		mb.dismissLocked()
	}
	return true
}
