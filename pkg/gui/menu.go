package gui

import (
	"fmt"
	"log/slog"
)

// MenuOption configures a Menu.
type MenuOption func(*Menu)

// WithMaxVisible sets how many items are shown per page. Values below 2
// leave no room to page and are raised to 2.
func WithMaxVisible(n int) MenuOption {
	return func(m *Menu) { m.maxVisible = max(2, n) }
}

// WithMenuWindow applies window options to the menu's window.
func WithMenuWindow(opts ...WindowOption) MenuOption {
	return func(m *Menu) { m.windowOpts = append(m.windowOpts, opts...) }
}

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Text string
	ID   int
	Data any
}

// Menu is a window listing items one page at a time. Only the first page
// worth of items ever gets a label; scrolling rebinds those labels.
// Selecting an item closes the menu and reports the item's id and data.
type Menu struct {
	*Window

	maxVisible int
	windowOpts []WindowOption

	items  []MenuItem
	labels []*Element
	first  int

	nav        *Container
	prev, next *Element
}

// NewMenu creates an empty menu.
func NewMenu(host EventHost, title string, callback Callback, opts ...MenuOption) *Menu {
	m := &Menu{maxVisible: DefaultMaxVisible}
	for _, opt := range opts {
		opt(m)
	}
	m.Window = NewWindow(host, title, Vertical, callback, m.windowOpts...)
	m.Window.SetAutoClose(true)
	m.Window.intercept = m.onClick
	m.Window.scroll = m.onScroll

	m.nav = NewContainer(Horizontal, HSpread|VMiddle)
	m.prev = NewImage(ButtonSize, ButtonSize)
	m.next = NewImage(ButtonSize, ButtonSize)
	for _, ctl := range []struct {
		e    *Element
		icon Icon
	}{{m.prev, IconArrowUp}, {m.next, IconArrowDown}} {
		if err := m.icons.SetImage(ctl.e, ctl.icon); err != nil {
			slog.Debug("menu paging icon", "err", err)
		}
		m.nav.AddChildWithID(ctl.e, 0, ctl.icon)
	}
	return m
}

func (m *Menu) Base() *Element {
	if m == nil {
		return nil
	}
	return m.Window.Base()
}

// MaxVisible returns the page size.
func (m *Menu) MaxVisible() int { return m.maxVisible }

// First returns the index of the first visible item.
func (m *Menu) First() int { return m.first }

func (m *Menu) Len() int { return len(m.items) }

// Items returns a copy of all items.
func (m *Menu) Items() []MenuItem {
	out := make([]MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Labels returns the live item labels in display order.
func (m *Menu) Labels() []*Element {
	out := make([]*Element, len(m.labels))
	copy(out, m.labels)
	return out
}

// PrevButton and NextButton return the paging controls.
func (m *Menu) PrevButton() *Element { return m.prev }
func (m *Menu) NextButton() *Element { return m.next }

// AddItem appends an item and returns its index.
func (m *Menu) AddItem(text string, id int, data any) int {
	m.items = append(m.items, MenuItem{Text: text, ID: id, Data: data})
	m.rebuild()
	return len(m.items) - 1
}

// RemoveItem removes the item at index and returns index.
func (m *Menu) RemoveItem(index int) (int, error) {
	if index < 0 || index >= len(m.items) {
		return -1, fmt.Errorf("remove menu item %d: %w", index, ErrInvalidParameter)
	}
	m.items = append(m.items[:index], m.items[index+1:]...)
	m.rebuild()
	return index, nil
}

// RemoveItemText removes the first item labelled text and returns its
// index.
func (m *Menu) RemoveItemText(text string) (int, error) {
	for i, it := range m.items {
		if it.Text == text {
			return m.RemoveItem(i)
		}
	}
	return -1, fmt.Errorf("remove menu item %q: %w", text, ErrItemNotFound)
}

// ScrollDown advances one page, keeping the last visible item on top.
func (m *Menu) ScrollDown() {
	m.first = min(m.first+m.maxVisible-1, m.lastFirst())
	m.bind()
}

// ScrollUp goes back one page.
func (m *Menu) ScrollUp() {
	m.first = max(m.first-(m.maxVisible-1), 0)
	m.bind()
}

func (m *Menu) lastFirst() int {
	return max(0, len(m.items)-m.maxVisible)
}

func (m *Menu) paged() bool { return len(m.items) > m.maxVisible }

// bind copies the visible window of items into the labels and updates
// the paging controls.
func (m *Menu) bind() {
	for i, l := range m.labels {
		if m.first+i < len(m.items) {
			l.SetText(m.items[m.first+i].Text)
		}
	}
	m.prev.SetVisible(m.first > 0)
	m.prev.SetClickable(m.first > 0)
	m.next.SetVisible(m.first+m.maxVisible < len(m.items))
	m.next.SetClickable(m.first+m.maxVisible < len(m.items))
	m.Window.Layout()
}

// rebuild matches the label count and the paging row to the item count.
// Viewers already showing the menu get the new content.
func (m *Menu) rebuild() {
	m.first = min(m.first, m.lastFirst())

	want := min(len(m.items), m.maxVisible)
	navWanted := m.paged()
	if want == len(m.labels) && navWanted == m.hasNav() {
		m.bind()
		return
	}

	for v := range m.viewers {
		m.root.Close(v)
	}
	for _, ch := range m.root.Children() {
		m.root.RemoveChild(ch.Node)
	}
	for len(m.labels) < want {
		m.labels = append(m.labels, NewLabel(""))
	}
	m.labels = m.labels[:want]
	for i, l := range m.labels {
		m.root.AddChildWithID(l, i, i)
	}
	if navWanted {
		m.root.AddChild(m.nav)
	}
	m.bind()
	for v := range m.viewers {
		m.root.Show(v)
	}
}

func (m *Menu) hasNav() bool {
	for _, ch := range m.root.children {
		if ch.Node == Node(m.nav) {
			return true
		}
	}
	return false
}

// onClick handles paging and item selection ahead of the window routing.
func (m *Menu) onClick(v Viewer, e *Element) bool {
	switch e {
	case m.prev:
		m.ScrollUp()
		return true
	case m.next:
		m.ScrollDown()
		return true
	}
	for i, l := range m.labels {
		if l != e {
			continue
		}
		idx := m.first + i
		if idx >= len(m.items) {
			return true
		}
		it := m.items[idx]
		if m.autoClose {
			m.pop(v)
		}
		m.invoke(v, it.ID, it.Data)
		return true
	}
	return false
}

// onScroll pages when the wheel turns over one of the menu's elements.
func (m *Menu) onScroll(_ Viewer, e *Element, up bool) {
	if !m.owns(e) {
		return
	}
	if up {
		m.ScrollUp()
	} else {
		m.ScrollDown()
	}
}

func (m *Menu) owns(e *Element) bool {
	if e == m.panel || e == m.root.panel || e == m.prev || e == m.next {
		return true
	}
	for _, l := range m.labels {
		if l == e {
			return true
		}
	}
	return false
}
