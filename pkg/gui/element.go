package gui

import "image"

// Kind identifies the primitive behind an Element.
type Kind int

const (
	KindLabel Kind = iota
	KindImage
	KindPanel
	KindTextField
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindImage:
		return "image"
	case KindPanel:
		return "panel"
	case KindTextField:
		return "textfield"
	default:
		return "unknown"
	}
}

// capabilities describes what a primitive kind supports.
type capabilities struct {
	textMeasured bool // natural size comes from text and font size
	hasFont      bool
	editable     bool
}

var kindCaps = map[Kind]capabilities{
	KindLabel:     {textMeasured: true, hasFont: true},
	KindImage:     {},
	KindPanel:     {},
	KindTextField: {hasFont: true, editable: true},
}

// Pivot is the corner (or centre) an element's position refers to.
type Pivot int

const (
	PivotTopLeft Pivot = iota
	PivotCenter
	PivotBottomLeft
)

// Element is a leaf primitive of the UI tree. Its drawing is up to the
// host; the engine only sets geometry and presentation attributes.
type Element struct {
	kind Kind

	x, y     float64
	relative bool
	width    int
	height   int
	pivot    Pivot

	visible     bool
	clickable   bool
	editable    bool
	listenInput bool

	text             string
	fontSize         int
	fontColor        Color
	color            Color
	borderColor      Color
	borderThickness  int
	backgroundPreset int

	icon  Icon
	image image.Image

	parent *Element
}

func newElement(kind Kind) *Element {
	return &Element{
		kind:      kind,
		visible:   true,
		fontColor: TextColor,
		icon:      NoIcon,
	}
}

// NewLabel creates a text label with the default item font size.
func NewLabel(text string) *Element {
	e := newElement(KindLabel)
	e.text = text
	e.fontSize = ItemSize
	return e
}

// NewImage creates an empty image of the given size.
func NewImage(width, height int) *Element {
	e := newElement(KindImage)
	e.width, e.height = width, height
	return e
}

// NewPanel creates a plain rectangular panel.
func NewPanel(width, height int) *Element {
	e := newElement(KindPanel)
	e.width, e.height = width, height
	return e
}

// NewTextField creates a single-line text entry field.
func NewTextField(text string) *Element {
	e := newElement(KindTextField)
	e.text = text
	e.fontSize = ItemSize
	e.width = TextWidth(text, ItemSize) + Border*2
	e.height = TextEntryHeight
	return e
}

// Base returns e itself; it makes every Element a Node.
func (e *Element) Base() *Element { return e }

func (e *Element) Kind() Kind { return e.kind }

// Position returns the position relative to the render parent. For
// relative positions the values are fractions of the parent size.
func (e *Element) Position() (float64, float64) { return e.x, e.y }

// SetPosition sets an absolute pixel position relative to the parent.
func (e *Element) SetPosition(x, y int) {
	e.x, e.y = float64(x), float64(y)
	e.relative = false
}

// SetRelativePosition sets the position as fractions of the parent size.
func (e *Element) SetRelativePosition(fx, fy float64) {
	e.x, e.y = fx, fy
	e.relative = true
}

func (e *Element) IsRelative() bool { return e.relative }

// Size returns the element's size. Labels report their measured text size.
func (e *Element) Size() (int, int) {
	if kindCaps[e.kind].textMeasured {
		return MeasureElement(e)
	}
	return e.width, e.height
}

func (e *Element) SetSize(width, height int) {
	e.width, e.height = width, height
}

func (e *Element) Pivot() Pivot          { return e.pivot }
func (e *Element) SetPivot(p Pivot)      { e.pivot = p }
func (e *Element) Visible() bool         { return e.visible }
func (e *Element) SetVisible(v bool)     { e.visible = v }
func (e *Element) Clickable() bool       { return e.clickable }
func (e *Element) SetClickable(c bool)   { e.clickable = c }
func (e *Element) Editable() bool        { return e.editable }
func (e *Element) ListensForInput() bool { return e.listenInput }

// SetEditable is ignored by kinds that cannot be edited.
func (e *Element) SetEditable(v bool) {
	if kindCaps[e.kind].editable {
		e.editable = v
	}
}

// SetListenForInput is ignored by kinds that cannot be edited.
func (e *Element) SetListenForInput(v bool) {
	if kindCaps[e.kind].editable {
		e.listenInput = v
	}
}

func (e *Element) Text() string        { return e.text }
func (e *Element) SetText(text string) { e.text = text }
func (e *Element) FontSize() int       { return e.fontSize }

// SetFontSize is ignored by kinds without text.
func (e *Element) SetFontSize(size int) {
	if kindCaps[e.kind].hasFont {
		e.fontSize = size
	}
}

func (e *Element) FontColor() Color          { return e.fontColor }
func (e *Element) SetFontColor(c Color)      { e.fontColor = c }
func (e *Element) Color() Color              { return e.color }
func (e *Element) SetColor(c Color)          { e.color = c }
func (e *Element) BorderColor() Color        { return e.borderColor }
func (e *Element) SetBorderColor(c Color)    { e.borderColor = c }
func (e *Element) BorderThickness() int      { return e.borderThickness }
func (e *Element) SetBorderThickness(t int)  { e.borderThickness = t }
func (e *Element) BackgroundPreset() int     { return e.backgroundPreset }
func (e *Element) SetBackgroundPreset(p int) { e.backgroundPreset = p }

// Icon returns the stock icon shown by an image element, or NoIcon.
func (e *Element) Icon() Icon { return e.icon }

// Image returns the decoded picture of an image element, nil if none.
func (e *Element) Image() image.Image { return e.image }

// Parent returns the render parent, nil for top-level elements.
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) attach(child *Element) { child.parent = e }

func (e *Element) detach(child *Element) {
	if child.parent == e {
		child.parent = nil
	}
}

// Rect is an axis-aligned rectangle in y-up pixel space. X0,Y0 is the
// bottom-left corner.
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r Rect) Width() int  { return r.X1 - r.X0 }
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// ScreenRect resolves the element's rectangle on a screen of the given
// size by walking up the render parents. Parent origins are their
// bottom-left corners.
func (e *Element) ScreenRect(screenW, screenH int) Rect {
	originX, originY, parentW, parentH := 0, 0, screenW, screenH
	if e.parent != nil {
		pr := e.parent.ScreenRect(screenW, screenH)
		originX, originY = pr.X0, pr.Y0
		parentW, parentH = pr.Width(), pr.Height()
	}
	x, y := int(e.x), int(e.y)
	if e.relative {
		x, y = int(e.x*float64(parentW)), int(e.y*float64(parentH))
	}
	w, h := e.Size()
	var r Rect
	switch e.pivot {
	case PivotCenter:
		r = Rect{X0: x - w/2, Y0: y - h/2}
	case PivotBottomLeft:
		r = Rect{X0: x, Y0: y}
	default:
		r = Rect{X0: x, Y0: y - h}
	}
	r.X0 += originX
	r.Y0 += originY
	r.X1 = r.X0 + w
	r.Y1 = r.Y0 + h
	return r
}
