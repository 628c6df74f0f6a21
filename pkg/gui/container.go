package gui

// Node is anything a Container can hold.
type Node interface {
	// Base returns the primitive backing the node: the element itself for
	// leaves, the container panel for composites.
	Base() *Element
}

// composite is a node laying out and showing its own children.
type composite interface {
	Node
	Layout(minWidth, minHeight int, reset bool) (int, int)
	Show(v Viewer)
	Close(v Viewer)
	Hide(v Viewer)
	Free()
	route(e *Element, activate bool) (Entry, bool)
}

// selfRouter is a composite answering for clicks on itself and its parts
// rather than exposing its children to the search.
type selfRouter interface {
	routeSelf(e *Element, parent *Container, activate bool) (Entry, bool)
}

// Entry is a container child with its routing id and data.
type Entry struct {
	Node  Node
	ID    int
	HasID bool
	Data  any
}

// Orientation selects the layout algorithm of a container.
type Orientation int

const (
	Horizontal Orientation = iota + 1
	Vertical
	Grid
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Grid:
		return "grid"
	default:
		return "unknown"
	}
}

// Flags combine one horizontal and one vertical alignment.
type Flags int

const (
	HLeft   Flags = 0x00
	HCentre Flags = 0x01
	HRight  Flags = 0x02
	HSpread Flags = 0x04
	VTop    Flags = 0x00
	VMiddle Flags = 0x08
	VBottom Flags = 0x10
	VSpread Flags = 0x20
)

type align int

const (
	alignStart align = iota
	alignCentre
	alignEnd
	alignSpread
)

func (f Flags) horizontal() align {
	switch {
	case f&HRight != 0:
		return alignEnd
	case f&HCentre != 0:
		return alignCentre
	case f&HSpread != 0:
		return alignSpread
	default:
		return alignStart
	}
}

func (f Flags) vertical() align {
	switch {
	case f&VBottom != 0:
		return alignEnd
	case f&VMiddle != 0:
		return alignCentre
	case f&VSpread != 0:
		return alignSpread
	default:
		return alignStart
	}
}

// childPresets holds the presentation applied to a primitive when it is
// added to a container. active is true when the child carries data.
var childPresets = map[Kind]func(e *Element, active bool){
	KindLabel: func(e *Element, active bool) {
		e.SetClickable(active)
		e.SetFontSize(ItemSize)
	},
	KindImage: func(e *Element, active bool) {
		e.SetClickable(active)
	},
	KindPanel: func(e *Element, active bool) {
		e.SetClickable(active)
	},
	KindTextField: func(e *Element, active bool) {
		e.SetClickable(active)
		e.SetBorderThickness(1)
		e.SetBackgroundPreset(1)
		e.SetEditable(active)
		e.SetListenForInput(active)
	},
}

// Container is a composite element positioning its children automatically.
type Container struct {
	panel       *Element
	orientation Orientation
	cols, rows  int
	flags       Flags
	margin      int
	padding     int
	children    []Entry
	shown       int
}

// NewContainer creates an empty horizontal or vertical container.
func NewContainer(o Orientation, flags Flags) *Container {
	if o != Horizontal {
		o = Vertical
	}
	return newContainer(o, flags)
}

// NewGrid creates an empty grid container with a fixed number of columns.
// rows is the minimum number of rows; more are added as children require.
func NewGrid(cols, rows int, flags Flags) *Container {
	c := newContainer(Grid, flags)
	c.cols = max(1, cols)
	c.rows = max(0, rows)
	return c
}

func newContainer(o Orientation, flags Flags) *Container {
	p := NewPanel(0, 0)
	p.SetPivot(PivotTopLeft)
	return &Container{
		panel:       p,
		orientation: o,
		flags:       flags,
		padding:     DefaultPadding,
	}
}

// Base returns the container panel, or nil for a nil container.
func (c *Container) Base() *Element {
	if c == nil {
		return nil
	}
	return c.panel
}

func (c *Container) Orientation() Orientation { return c.orientation }
func (c *Container) Flags() Flags             { return c.flags }
func (c *Container) SetFlags(f Flags)         { c.flags = f }
func (c *Container) Margin() int              { return c.margin }
func (c *Container) SetMargin(m int)          { c.margin = max(0, m) }
func (c *Container) Padding() int             { return c.padding }
func (c *Container) SetPadding(p int)         { c.padding = max(0, p) }
func (c *Container) Len() int                 { return len(c.children) }

// GridSize returns the configured columns and minimum rows of a grid.
func (c *Container) GridSize() (cols, rows int) { return c.cols, c.rows }

// Size returns the size computed by the last Layout.
func (c *Container) Size() (int, int) { return c.panel.Size() }

// Shown returns how many viewers currently display the container.
func (c *Container) Shown() int { return c.shown }

// Children returns a copy of the entries in layout order.
func (c *Container) Children() []Entry {
	out := make([]Entry, len(c.children))
	copy(out, c.children)
	return out
}

// Child returns the i-th entry.
func (c *Container) Child(i int) (Entry, bool) {
	if i < 0 || i >= len(c.children) {
		return Entry{}, false
	}
	return c.children[i], true
}

// ChildAt returns the grid cell entry at row, col.
func (c *Container) ChildAt(row, col int) (Entry, bool) {
	if c.orientation != Grid || col < 0 || col >= c.cols || row < 0 {
		return Entry{}, false
	}
	return c.Child(row*c.cols + col)
}

// AddChild appends an inactive child without id or data.
func (c *Container) AddChild(n Node) {
	c.add(n, 0, false, nil)
}

// AddChildWithID appends a child routed with id and data. A non-nil data
// makes the child clickable.
func (c *Container) AddChildWithID(n Node, id int, data any) {
	c.add(n, id, true, data)
}

func (c *Container) add(n Node, id int, hasID bool, data any) {
	if isNilNode(n) {
		return
	}
	e := n.Base()
	if _, ok := n.(selfRouter); !ok {
		if preset, ok := childPresets[e.kind]; ok {
			preset(e, data != nil)
		}
	}
	e.SetPivot(PivotTopLeft)
	c.children = append(c.children, Entry{Node: n, ID: id, HasID: hasID, Data: data})
	c.panel.attach(e)
}

// RemoveChild detaches n. Absent or nil nodes are ignored.
func (c *Container) RemoveChild(n Node) {
	if isNilNode(n) {
		return
	}
	for i, ch := range c.children {
		if ch.Node.Base() == n.Base() {
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.panel.detach(n.Base())
			return
		}
	}
}

// AddNewLayoutChild creates a nested horizontal or vertical container,
// appends it and returns it for population.
func (c *Container) AddNewLayoutChild(o Orientation, flags Flags) *Container {
	child := NewContainer(o, flags)
	c.AddChild(child)
	return child
}

// AddNewGridChild creates a nested grid container, appends it and returns
// it for population.
func (c *Container) AddNewGridChild(cols, rows int, flags Flags) *Container {
	child := NewGrid(cols, rows, flags)
	c.AddChild(child)
	return child
}

// ItemID returns the id of the entry owning e anywhere in the subtree.
func (c *Container) ItemID(e *Element) (int, bool) {
	ent, ok := c.route(e, false)
	if !ok || !ent.HasID {
		return 0, false
	}
	return ent.ID, true
}

// ItemData returns the entry owning e anywhere in the subtree.
func (c *Container) ItemData(e *Element) (Entry, bool) {
	return c.route(e, false)
}

// Activate resolves a click on e. It behaves like ItemData but lets
// interactive composites such as check boxes react to the click.
func (c *Container) Activate(e *Element) (Entry, bool) {
	return c.route(e, true)
}

// route searches direct children first, then nested composites depth
// first.
func (c *Container) route(e *Element, activate bool) (Entry, bool) {
	if e == nil {
		return Entry{}, false
	}
	for _, ch := range c.children {
		if ch.Node.Base() != e {
			continue
		}
		if sr, ok := ch.Node.(selfRouter); ok {
			return sr.routeSelf(e, c, activate)
		}
		return ch, true
	}
	for _, ch := range c.children {
		if sr, ok := ch.Node.(selfRouter); ok {
			if ent, found := sr.routeSelf(e, c, activate); found {
				return ent, true
			}
			continue
		}
		if comp, ok := ch.Node.(composite); ok {
			if ent, found := comp.route(e, activate); found {
				return ent, true
			}
		}
	}
	return Entry{}, false
}

// Show attaches the container and all its descendants to v.
func (c *Container) Show(v Viewer) {
	v.AddElement(c.panel)
	for _, ch := range c.children {
		if comp, ok := ch.Node.(composite); ok {
			comp.Show(v)
		} else {
			v.AddElement(ch.Node.Base())
		}
	}
	c.shown++
}

// Close detaches the container and all its descendants from v, leaving
// the tree intact for a later Show.
func (c *Container) Close(v Viewer) {
	for _, ch := range c.children {
		if comp, ok := ch.Node.(composite); ok {
			comp.Close(v)
		} else {
			v.RemoveElement(ch.Node.Base())
		}
	}
	v.RemoveElement(c.panel)
	if c.shown > 0 {
		c.shown--
	}
}

// Hide detaches everything from v and also removes every top-level child
// from the container. Children must be added again before reuse.
func (c *Container) Hide(v Viewer) {
	for _, ch := range c.children {
		if comp, ok := ch.Node.(composite); ok {
			comp.Hide(v)
		} else {
			v.RemoveElement(ch.Node.Base())
		}
		c.panel.detach(ch.Node.Base())
	}
	c.children = nil
	v.RemoveElement(c.panel)
	if c.shown > 0 {
		c.shown--
	}
}

// Free recursively frees nested containers and detaches all children.
// The container is empty afterwards.
func (c *Container) Free() {
	for _, ch := range c.children {
		if comp, ok := ch.Node.(composite); ok {
			comp.Free()
		}
		c.panel.detach(ch.Node.Base())
	}
	c.children = nil
}

// isNilNode reports n as nil when it is nil or wraps a nil pointer. Every
// Node's Base tolerates a nil receiver.
func isNilNode(n Node) bool {
	return n == nil || n.Base() == nil
}
