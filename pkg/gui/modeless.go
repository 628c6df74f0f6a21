package gui

// Modeless is a passive window listing lines of text. It has no cancel
// button and never listens for events; the owner closes it.
type Modeless struct {
	*Window
	labels []*Element
}

func (m *Modeless) Base() *Element {
	if m == nil {
		return nil
	}
	return m.Window.Base()
}

func NewModeless(title string, texts []string, opts ...WindowOption) *Modeless {
	opts = append(opts, WithCancel(false))
	m := &Modeless{Window: NewWindow(nil, title, Vertical, nil, opts...)}
	m.SetTexts(texts)
	return m
}

// Texts returns the current lines.
func (m *Modeless) Texts() []string {
	out := make([]string, len(m.labels))
	for i, l := range m.labels {
		out[i] = l.Text()
	}
	return out
}

// SetTexts replaces the lines. Viewers already showing the window see
// the new lines.
func (m *Modeless) SetTexts(texts []string) {
	for v := range m.viewers {
		m.root.Close(v)
	}
	for _, l := range m.labels {
		m.root.RemoveChild(l)
	}
	m.labels = m.labels[:0]
	for _, text := range texts {
		l := NewLabel(text)
		m.labels = append(m.labels, l)
		m.root.AddChild(l)
	}
	m.Layout()
	for v := range m.viewers {
		m.root.Show(v)
	}
}
