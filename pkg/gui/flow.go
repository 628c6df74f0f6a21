package gui

// size is the measured extent of one child.
type size struct {
	w, h int
}

// Layout computes the position of every child and the size of the
// container, which is returned. Nested composites are laid out first:
// with reset they are measured from scratch, otherwise they re-flow
// within their current size. The content area is at least
// minWidth × minHeight, margins included.
func (c *Container) Layout(minWidth, minHeight int, reset bool) (int, int) {
	if len(c.children) == 0 {
		c.panel.SetSize(0, 0)
		return 0, 0
	}
	sizes := c.measureChildren(reset)

	var w, h int
	switch c.orientation {
	case Horizontal:
		w, h = c.layoutHorizontal(sizes, minWidth, minHeight)
	case Grid:
		w, h = c.layoutGrid(sizes, minWidth, minHeight)
	default:
		w, h = c.layoutVertical(sizes, minWidth, minHeight)
	}
	c.panel.SetSize(w, h)
	return w, h
}

func (c *Container) measureChildren(reset bool) []size {
	sizes := make([]size, len(c.children))
	for i, ch := range c.children {
		if comp, ok := ch.Node.(composite); ok {
			if reset {
				comp.Layout(0, 0, true)
			} else {
				w, h := comp.Base().Size()
				comp.Layout(w, h, false)
			}
		}
		sizes[i].w, sizes[i].h = MeasureElement(ch.Node.Base())
	}
	return sizes
}

// stretch re-flows nested composites smaller than width × height so they
// fill it, updating sizes in place.
func (c *Container) stretch(sizes []size, width, height int) {
	for i, ch := range c.children {
		comp, ok := ch.Node.(composite)
		if !ok {
			continue
		}
		s := sizes[i]
		if s.w >= width && s.h >= height {
			continue
		}
		comp.Layout(max(s.w, width), max(s.h, height), false)
		sizes[i].w, sizes[i].h = MeasureElement(comp.Base())
	}
}

func (c *Container) layoutHorizontal(sizes []size, minWidth, minHeight int) (int, int) {
	n := len(sizes)
	naturalW, naturalH := c.padding*(n-1), 0
	for _, s := range sizes {
		naturalW += s.w
		naturalH = max(naturalH, s.h)
	}
	contentW := max(naturalW, minWidth-2*c.margin)
	contentH := max(naturalH, minHeight-2*c.margin)

	vAlign := c.flags.vertical()
	if vAlign == alignSpread {
		c.stretch(sizes, 0, contentH)
	}
	offset, gap := distribute(c.flags.horizontal(), contentW-naturalW, n)

	x := c.margin + offset
	top := c.margin + contentH
	for i, ch := range c.children {
		s := sizes[i]
		ch.Node.Base().SetPosition(x, top-crossOffset(vAlign, contentH, s.h))
		x += s.w + c.padding + gap
	}
	return contentW + 2*c.margin, contentH + 2*c.margin
}

func (c *Container) layoutVertical(sizes []size, minWidth, minHeight int) (int, int) {
	n := len(sizes)
	naturalW, naturalH := 0, c.padding*(n-1)
	for _, s := range sizes {
		naturalW = max(naturalW, s.w)
		naturalH += s.h
	}
	contentW := max(naturalW, minWidth-2*c.margin)
	contentH := max(naturalH, minHeight-2*c.margin)

	hAlign := c.flags.horizontal()
	if hAlign == alignSpread {
		c.stretch(sizes, contentW, 0)
	}
	offset, gap := distribute(c.flags.vertical(), contentH-naturalH, n)

	// first child at the top, y decreasing downwards
	y := c.margin + contentH - offset
	for i, ch := range c.children {
		s := sizes[i]
		ch.Node.Base().SetPosition(c.margin+crossOffset(hAlign, contentW, s.w), y)
		y -= s.h + c.padding + gap
	}
	return contentW + 2*c.margin, contentH + 2*c.margin
}

func (c *Container) layoutGrid(sizes []size, minWidth, minHeight int) (int, int) {
	cols := max(1, c.cols)
	rows := max(c.rows, (len(sizes)+cols-1)/cols)

	colW := make([]int, cols)
	rowH := make([]int, rows)
	for i, s := range sizes {
		r, col := i/cols, i%cols
		colW[col] = max(colW[col], s.w)
		rowH[r] = max(rowH[r], s.h)
	}
	naturalW, naturalH := c.padding*(cols-1), c.padding*(rows-1)
	for _, w := range colW {
		naturalW += w
	}
	for _, h := range rowH {
		naturalH += h
	}
	contentW := max(naturalW, minWidth-2*c.margin)
	contentH := max(naturalH, minHeight-2*c.margin)

	hAlign, vAlign := c.flags.horizontal(), c.flags.vertical()
	offX, gapX := distribute(hAlign, contentW-naturalW, cols)
	offY, gapY := distribute(vAlign, contentH-naturalH, rows)

	cellX := make([]int, cols)
	x := c.margin + offX
	for col := range cols {
		cellX[col] = x
		x += colW[col] + c.padding + gapX
	}
	cellTop := make([]int, rows)
	y := c.margin + contentH - offY
	for r := range rows {
		cellTop[r] = y
		y -= rowH[r] + c.padding + gapY
	}

	for i, ch := range c.children {
		r, col := i/cols, i%cols
		s := sizes[i]
		ch.Node.Base().SetPosition(
			cellX[col]+crossOffset(hAlign, colW[col], s.w),
			cellTop[r]-crossOffset(vAlign, rowH[r], s.h),
		)
	}
	return contentW + 2*c.margin, contentH + 2*c.margin
}

// distribute returns the leading offset and the extra gap between items
// for extra free space along the flow axis. A single spread item has no
// gap to widen and stays at the start.
func distribute(a align, extra, count int) (offset, gap int) {
	if extra <= 0 || count == 0 {
		return 0, 0
	}
	switch a {
	case alignEnd:
		return extra, 0
	case alignCentre:
		return extra / 2, 0
	case alignSpread:
		if count > 1 {
			return 0, extra / (count - 1)
		}
	}
	return 0, 0
}

// crossOffset positions an item of itemSize inside space.
func crossOffset(a align, space, itemSize int) int {
	switch a {
	case alignEnd:
		return space - itemSize
	case alignCentre:
		return (space - itemSize) / 2
	default:
		return 0
	}
}
