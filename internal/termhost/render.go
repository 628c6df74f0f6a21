package termhost

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/mouse"
)

// Size of one terminal cell in host pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// iconGlyphs draws stock icons as single runes.
var iconGlyphs = map[gui.Icon]rune{
	gui.IconArrowDown:    '▼',
	gui.IconArrowLeft:    '◀',
	gui.IconArrowRight:   '▶',
	gui.IconArrowUp:      '▲',
	gui.IconCheck:        '✔',
	gui.IconCross:        '✖',
	gui.IconUncheck:      '☐',
	gui.IconPlus:         '+',
	gui.IconMinus:        '-',
	gui.IconRadioCheck:   '◉',
	gui.IconRadioUncheck: '○',
}

const noGlyph = '▪'

type cell struct {
	r      rune
	wide   bool // second half of a double-width rune
	fg, bg gui.Color
}

// Canvas is a character grid the elements of one viewer are drawn on.
// Pixel coordinates are y-up; row 0 is the top of the screen.
type Canvas struct {
	cols, rows int
	cells      []cell
	hits       *mouse.HitMap
}

// NewCanvas returns a blank canvas of cols by rows cells.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	c := &Canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows), hits: mouse.NewHitMap()}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

// ScreenSize is the canvas size in host pixels.
func (c *Canvas) ScreenSize() (int, int) {
	return c.cols * CellWidth, c.rows * CellHeight
}

func (c *Canvas) Size() (int, int) { return c.cols, c.rows }

// HitMap holds one region per drawn element, topmost last.
func (c *Canvas) HitMap() *mouse.HitMap { return c.hits }

// At returns the rune shown at col, row; 0 outside the canvas.
func (c *Canvas) At(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0
	}
	return c.cells[row*c.cols+col].r
}

// Row returns the plain text of one row.
func (c *Canvas) Row(row int) string {
	if row < 0 || row >= c.rows {
		return ""
	}
	var b strings.Builder
	for _, cl := range c.cells[row*c.cols : (row+1)*c.cols] {
		if !cl.wide {
			b.WriteRune(cl.r)
		}
	}
	return b.String()
}

// cellRect converts a y-up pixel rectangle into a cell rectangle.
func (c *Canvas) cellRect(r gui.Rect) mouse.Rect {
	_, screenH := c.ScreenSize()
	x0 := r.X0 / CellWidth
	x1 := ceilDiv(r.X1, CellWidth)
	top := (screenH - r.Y1) / CellHeight
	bottom := ceilDiv(screenH-r.Y0, CellHeight)
	return mouse.Rect{X: x0, Y: top, W: max(x1-x0, 1), H: max(bottom-top, 1)}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}

// Draw paints e on top of what is already drawn. Invisible elements are
// skipped along with their hit region.
func (c *Canvas) Draw(e *gui.Element) {
	if e == nil || !e.Visible() {
		return
	}
	sw, sh := c.ScreenSize()
	cr := c.cellRect(e.ScreenRect(sw, sh))
	hit := cr

	switch e.Kind() {
	case gui.KindPanel:
		if _, ok := colorOf(e.Color()); ok {
			c.fill(cr, e.Color())
		}
	case gui.KindLabel:
		row := cr.Y + (cr.H-1)/2
		w := c.text(cr.X, row, cr.W, e.Text(), e.FontColor())
		hit = mouse.Rect{X: cr.X, Y: row, W: max(w, 1), H: 1}
	case gui.KindImage:
		g, ok := iconGlyphs[e.Icon()]
		if !ok {
			g = noGlyph
		}
		row := cr.Y + (cr.H-1)/2
		col := cr.X + (cr.W-1)/2
		c.put(col, row, g, gui.TextColor)
		hit = mouse.Rect{X: col, Y: row, W: 1, H: 1}
	case gui.KindTextField:
		row := cr.Y + (cr.H-1)/2
		inner := max(cr.W-2, 0)
		c.put(cr.X, row, '[', e.FontColor())
		c.fill(mouse.Rect{X: cr.X + 1, Y: row, W: inner, H: 1}, gui.InactiveColor)
		c.text(cr.X+1, row, inner, e.Text(), e.FontColor())
		c.put(cr.X+cr.W-1, row, ']', e.FontColor())
		hit = mouse.Rect{X: cr.X, Y: row, W: cr.W, H: 1}
	}
	c.hits.AddRect(fmt.Sprintf("%p", e), hit.X, hit.Y, hit.W, hit.H, e)
}

func (c *Canvas) fill(r mouse.Rect, bg gui.Color) {
	for row := r.Y; row < r.Y+r.H; row++ {
		for col := r.X; col < r.X+r.W; col++ {
			if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
				continue
			}
			c.cells[row*c.cols+col] = cell{r: ' ', bg: bg}
		}
	}
}

// put writes one rune, keeping the background underneath.
func (c *Canvas) put(col, row int, r rune, fg gui.Color) int {
	w := runewidth.RuneWidth(r)
	if w == 0 || col < 0 || row < 0 || col+w > c.cols || row >= c.rows {
		return 0
	}
	i := row*c.cols + col
	c.cells[i].r, c.cells[i].fg, c.cells[i].wide = r, fg, false
	if w == 2 {
		c.cells[i+1] = cell{wide: true, fg: fg, bg: c.cells[i].bg}
	}
	return w
}

// text writes s truncated to width cells and returns the cells used.
func (c *Canvas) text(col, row, width int, s string, fg gui.Color) int {
	if width <= 0 {
		return 0
	}
	used := 0
	for _, r := range ansi.Truncate(s, width, "…") {
		used += c.put(col+used, row, r, fg)
	}
	return used
}

// Render returns the canvas as styled terminal lines.
func (c *Canvas) Render() string {
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var b strings.Builder
		cells := c.cells[row*c.cols : (row+1)*c.cols]
		for start := 0; start < len(cells); {
			end := start
			var run strings.Builder
			for end < len(cells) && cells[end].fg == cells[start].fg && cells[end].bg == cells[start].bg {
				if !cells[end].wide {
					run.WriteRune(cells[end].r)
				}
				end++
			}
			b.WriteString(styleOf(cells[start]).Render(run.String()))
			start = end
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func styleOf(cl cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if fg, ok := colorOf(cl.fg); ok {
		st = st.Foreground(fg)
	}
	if bg, ok := colorOf(cl.bg); ok {
		st = st.Background(bg)
	}
	return st
}

// Paint draws every element attached to v bottom to top.
func Paint(v *Viewer, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	for _, e := range v.Elements() {
		c.Draw(e)
	}
	return c
}
