package gui

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Standard sizes, in host pixels.
const (
	ButtonSize      = 18
	ItemSize        = 15
	TextEntryHeight = ItemSize + 8
	TitleSize       = 18
	BorderThickness = 2
	Border          = 6

	// AvgCharWidth is the average glyph width at font size 1.
	AvgCharWidth = 0.5
)

// DefaultPadding is the spacing between consecutive children of a
// container unless overridden with SetPadding.
const DefaultPadding = Border

// DefaultMaxVisible is the number of live rows a Menu shows before paging.
const DefaultMaxVisible = 12

// Reserved callback ids.
const (
	AbortID = -1
	OKID    = 0
)

// Color is a packed 0xRRGGBBAA colour.
type Color uint32

// Palette.
const (
	PanelColor    Color = 0x202020E0
	TitleBarColor Color = 0x505050FF
	BorderColor   Color = 0x909090FF
	ActiveColor   Color = 0x0060D0FF
	InactiveColor Color = 0x404040FF

	TextColor    Color = 0xFFFFFFFF
	TitleColor   Color = 0xFFFFFFFF
	TextSelColor Color = 0x00B0FFFF
	TextDimColor Color = 0x808080FF
)

// RGBA splits the colour into its components.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// TextWidth estimates the rendered width of text at fontSize. Wide runes
// count as two cells.
func TextWidth(text string, fontSize int) int {
	return int(math.Ceil(float64(fontSize) * AvgCharWidth * float64(runewidth.StringWidth(text))))
}

// MeasureElement returns the layout size of e. Labels are measured from
// their text and font size; every other kind reports its set size.
func MeasureElement(e *Element) (int, int) {
	if e == nil {
		return 0, 0
	}
	if e.kind == KindLabel {
		return TextWidth(e.text, e.fontSize), e.fontSize
	}
	return e.width, e.height
}
