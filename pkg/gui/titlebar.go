package gui

// TitleBar is the strip across the top of a window holding its title and
// an optional cancel button.
type TitleBar struct {
	panel  *Element
	title  *Element
	cancel *Element
}

func newTitleBar(icons *IconSet, title string, hasCancel bool) *TitleBar {
	tb := &TitleBar{
		panel: NewPanel(0, 0),
		title: NewLabel(title),
	}
	tb.panel.SetPivot(PivotTopLeft)
	tb.panel.SetColor(TitleBarColor)
	tb.title.SetPivot(PivotTopLeft)
	tb.title.SetFontSize(TitleSize)
	tb.title.SetFontColor(TitleColor)
	tb.panel.attach(tb.title)

	if hasCancel {
		tb.cancel = NewImage(ButtonSize, ButtonSize)
		tb.cancel.SetPivot(PivotTopLeft)
		tb.cancel.SetClickable(true)
		_ = icons.SetImage(tb.cancel, IconCross)
		tb.panel.attach(tb.cancel)
	}
	return tb
}

func (tb *TitleBar) Base() *Element { return tb.panel }

// Title returns the title label.
func (tb *TitleBar) Title() *Element { return tb.title }

// CancelButton returns the cancel image, nil when the bar has none.
func (tb *TitleBar) CancelButton() *Element { return tb.cancel }

func (tb *TitleBar) SetTitle(title string) { tb.title.SetText(title) }

// MinWidth is the narrowest bar still showing the whole title and the
// cancel button.
func (tb *TitleBar) MinWidth() int {
	w := Border + TextWidth(tb.title.Text(), TitleSize) + Border
	if tb.cancel != nil {
		w += Border + ButtonSize
	}
	return w
}

func (tb *TitleBar) Height() int { return TitleSize + 2*Border }

// IsCancelButton reports whether e is this bar's cancel button.
func (tb *TitleBar) IsCancelButton(e *Element) bool {
	return e != nil && tb.cancel != nil && e == tb.cancel
}

// relayout spans the bar across the top edge of an owner of the given
// size, inside its border.
func (tb *TitleBar) relayout(parentW, parentH int) {
	w, h := max(0, parentW-2*BorderThickness), tb.Height()
	tb.panel.SetPosition(BorderThickness, parentH-BorderThickness)
	tb.panel.SetSize(w, h)
	tb.title.SetPosition(Border, h-Border)
	if tb.cancel != nil {
		tb.cancel.SetPosition(w-(Border+ButtonSize), h-Border)
	}
}

func (tb *TitleBar) attach(v Viewer) {
	v.AddElement(tb.panel)
	v.AddElement(tb.title)
	if tb.cancel != nil {
		v.AddElement(tb.cancel)
	}
}

func (tb *TitleBar) detach(v Viewer) {
	if tb.cancel != nil {
		v.RemoveElement(tb.cancel)
	}
	v.RemoveElement(tb.title)
	v.RemoveElement(tb.panel)
}

func (tb *TitleBar) free() {
	tb.panel.detach(tb.title)
	if tb.cancel != nil {
		tb.panel.detach(tb.cancel)
	}
}
