package gui

import "testing"

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text string
		size int
		want int
	}{
		{"", 15, 0},
		{"abcd", 10, 20},
		{"abc", 15, 23},
		{"日本", 10, 20},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text, tt.size); got != tt.want {
			t.Errorf("TextWidth(%q, %d) = %d, want %d", tt.text, tt.size, got, tt.want)
		}
	}
}

func TestMeasureElement(t *testing.T) {
	label := NewLabel("abcd")
	label.SetFontSize(10)
	if w, h := MeasureElement(label); w != 20 || h != 10 {
		t.Errorf("label measured (%d, %d), want (20, 10)", w, h)
	}
	if w, h := MeasureElement(NewPanel(7, 9)); w != 7 || h != 9 {
		t.Errorf("panel measured (%d, %d)", w, h)
	}
	if w, h := MeasureElement(nil); w != 0 || h != 0 {
		t.Errorf("nil measured (%d, %d)", w, h)
	}
	field := NewTextField("ab")
	if w, h := field.Size(); w != TextWidth("ab", ItemSize)+2*Border || h != TextEntryHeight {
		t.Errorf("text field size (%d, %d)", w, h)
	}
}

func TestCapabilities(t *testing.T) {
	img := NewImage(1, 1)
	img.SetEditable(true)
	img.SetListenForInput(true)
	img.SetFontSize(30)
	if img.Editable() || img.ListensForInput() || img.FontSize() != 0 {
		t.Error("image accepted text capabilities")
	}
	field := NewTextField("")
	field.SetEditable(true)
	if !field.Editable() {
		t.Error("text field not editable")
	}
}

func TestScreenRect(t *testing.T) {
	w := NewWindow(nil, "t", Vertical, nil)
	item := NewImage(10, 10)
	w.AddChild(item)
	width, height := w.Layout()

	win := w.Base().ScreenRect(400, 300)
	if win.Width() != width || win.Height() != height {
		t.Fatalf("window rect %v, want %dx%d", win, width, height)
	}
	if win.X0 != 200-width/2 || win.Y0 != 150-height/2 {
		t.Errorf("window not centred: %v", win)
	}

	r := item.ScreenRect(400, 300)
	if !win.Contains(r.X0, r.Y0) || !win.Contains(r.X1, r.Y1) {
		t.Errorf("item %v outside window %v", r, win)
	}
	// the first child sits at the top-left corner of the content
	if r.X0 != win.X0+BorderThickness+Border || r.Y1 != win.Y1-BorderThickness-w.TitleBar().Height()-Border {
		t.Errorf("item rect %v in window %v", r, win)
	}
}
