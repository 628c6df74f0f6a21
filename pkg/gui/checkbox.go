package gui

// CheckState is the state of a CheckBox.
type CheckState int

const (
	Disabled  CheckState = -1
	Unchecked CheckState = 0
	Checked   CheckState = 1
)

func (s CheckState) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	default:
		return "unknown"
	}
}

// checkGap separates the icon from the label.
const checkGap = Border / 2

// CheckBox is an icon and a label acting as one clickable item. A radio
// box uses the round icons and clears plain check boxes next to it when
// it becomes checked.
type CheckBox struct {
	panel *Element
	icon  *Element
	label *Element
	icons *IconSet

	state CheckState
	radio bool
	id    int
	data  any
}

// NewCheckBox creates a check box routed with id and data. A failed icon
// load leaves the icon blank; the box is still usable.
func NewCheckBox(icons *IconSet, text string, state CheckState, radio bool, id int, data any) *CheckBox {
	cb := &CheckBox{
		panel: NewPanel(0, 0),
		icon:  NewImage(ButtonSize, ButtonSize),
		label: NewLabel(text),
		icons: icons,
		radio: radio,
		id:    id,
		data:  data,
	}
	cb.panel.SetPivot(PivotTopLeft)
	cb.icon.SetPivot(PivotTopLeft)
	cb.label.SetPivot(PivotTopLeft)
	cb.panel.attach(cb.icon)
	cb.panel.attach(cb.label)
	cb.SetState(state, nil)
	cb.Layout(0, 0, true)
	return cb
}

func (cb *CheckBox) Base() *Element {
	if cb == nil {
		return nil
	}
	return cb.panel
}

func (cb *CheckBox) State() CheckState { return cb.state }
func (cb *CheckBox) IsRadio() bool     { return cb.radio }
func (cb *CheckBox) ID() int           { return cb.id }
func (cb *CheckBox) Data() any         { return cb.data }
func (cb *CheckBox) Text() string      { return cb.label.Text() }
func (cb *CheckBox) Icon() *Element    { return cb.icon }
func (cb *CheckBox) Label() *Element   { return cb.label }

// SetText replaces the label. The box must be laid out again.
func (cb *CheckBox) SetText(text string) { cb.label.SetText(text) }

// SetState updates the icon and label tint. When a radio box becomes
// checked, every plain check box among parent's direct children that is
// checked is cleared. Other radio boxes are not touched. parent may be
// nil.
func (cb *CheckBox) SetState(state CheckState, parent *Container) {
	cb.state = state

	icon := IconUncheck
	if cb.radio {
		icon = IconRadioUncheck
	}
	switch state {
	case Checked:
		icon = IconCheck
		if cb.radio {
			icon = IconRadioCheck
		}
		cb.label.SetFontColor(TextColor)
		cb.panel.SetClickable(true)
	case Disabled:
		cb.label.SetFontColor(TextDimColor)
		cb.panel.SetClickable(false)
	default:
		cb.label.SetFontColor(TextColor)
		cb.panel.SetClickable(true)
	}
	cb.icon.SetClickable(state != Disabled)
	cb.label.SetClickable(state != Disabled)
	// a missing icon only blanks the image
	_ = cb.icons.SetImage(cb.icon, icon)

	if !cb.radio || state != Checked || parent == nil {
		return
	}
	for _, ch := range parent.children {
		other, ok := ch.Node.(*CheckBox)
		if !ok || other == cb || other.radio || other.state != Checked {
			continue
		}
		other.SetState(Unchecked, nil)
	}
}

// Layout places the icon left of the label and centres the shorter of
// the two vertically.
func (cb *CheckBox) Layout(minWidth, minHeight int, _ bool) (int, int) {
	iw, ih := cb.icon.Size()
	lw, lh := MeasureElement(cb.label)
	h := max(ih, lh, minHeight)
	w := max(iw+checkGap+lw, minWidth)

	cb.icon.SetPosition(0, h-(h-ih)/2)
	cb.label.SetPosition(iw+checkGap, h-(h-lh)/2)
	cb.panel.SetSize(w, h)
	return w, h
}

// AddChild is a no-op; a check box has a fixed set of parts.
func (cb *CheckBox) AddChild(Node) {}

// RemoveChild is a no-op; a check box has a fixed set of parts.
func (cb *CheckBox) RemoveChild(Node) {}

func (cb *CheckBox) Show(v Viewer) {
	v.AddElement(cb.panel)
	v.AddElement(cb.icon)
	v.AddElement(cb.label)
}

func (cb *CheckBox) Close(v Viewer) {
	v.RemoveElement(cb.label)
	v.RemoveElement(cb.icon)
	v.RemoveElement(cb.panel)
}

// Hide behaves like Close; the parts are never detached.
func (cb *CheckBox) Hide(v Viewer) { cb.Close(v) }

func (cb *CheckBox) Free() {
	cb.panel.detach(cb.icon)
	cb.panel.detach(cb.label)
}

func (cb *CheckBox) owns(e *Element) bool {
	return e == cb.panel || e == cb.icon || e == cb.label
}

func (cb *CheckBox) route(e *Element, activate bool) (Entry, bool) {
	return cb.routeSelf(e, nil, activate)
}

// routeSelf answers for clicks on the box or its parts. A disabled box is
// never found. When activated the state flips between checked and
// unchecked.
func (cb *CheckBox) routeSelf(e *Element, parent *Container, activate bool) (Entry, bool) {
	if e == nil || !cb.owns(e) || cb.state == Disabled {
		return Entry{}, false
	}
	if activate {
		next := Checked
		if cb.state == Checked {
			next = Unchecked
		}
		cb.SetState(next, parent)
	}
	return Entry{Node: cb, ID: cb.id, HasID: true, Data: cb.data}, true
}
