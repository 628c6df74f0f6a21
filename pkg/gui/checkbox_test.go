package gui

import "testing"

func TestCheckBoxIcons(t *testing.T) {
	tests := []struct {
		name  string
		radio bool
		state CheckState
		want  Icon
	}{
		{"plain unchecked", false, Unchecked, IconUncheck},
		{"plain checked", false, Checked, IconCheck},
		{"plain disabled", false, Disabled, IconUncheck},
		{"radio unchecked", true, Unchecked, IconRadioUncheck},
		{"radio checked", true, Checked, IconRadioCheck},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := NewCheckBox(nil, "x", tt.state, tt.radio, 1, nil)
			if got := cb.Icon().Icon(); got != tt.want {
				t.Errorf("icon = %v, want %v", got, tt.want)
			}
			wantColor := TextColor
			if tt.state == Disabled {
				wantColor = TextDimColor
			}
			if got := cb.Label().FontColor(); got != wantColor {
				t.Errorf("label colour = %#x, want %#x", got, wantColor)
			}
		})
	}
}

func TestCheckBoxLayout(t *testing.T) {
	cb := NewCheckBox(nil, "abcd", Unchecked, false, 1, nil)
	w, h := cb.Layout(0, 0, true)

	lw := TextWidth("abcd", ItemSize)
	if w != ButtonSize+checkGap+lw || h != ButtonSize {
		t.Fatalf("Layout() = (%d, %d), want (%d, %d)", w, h, ButtonSize+checkGap+lw, ButtonSize)
	}
	if _, y := position(cb.Icon()); y != ButtonSize {
		t.Errorf("icon y = %d, want %d", y, ButtonSize)
	}
	// the label is shorter than the icon and is centred
	if x, y := position(cb.Label()); x != ButtonSize+checkGap || y != ButtonSize-(ButtonSize-ItemSize)/2 {
		t.Errorf("label at (%d, %d)", x, y)
	}
}

func TestCheckBoxChildrenFixed(t *testing.T) {
	cb := NewCheckBox(nil, "x", Unchecked, false, 1, nil)
	cb.AddChild(NewLabel("extra"))
	cb.RemoveChild(cb.Label())
	if cb.Label().Parent() != cb.Base() {
		t.Error("RemoveChild detached a part")
	}
}

func TestCheckBoxClickFlips(t *testing.T) {
	root := NewContainer(Vertical, 0)
	cb := NewCheckBox(nil, "opt", Unchecked, false, 42, "payload")
	root.AddChild(cb)

	for _, target := range []*Element{cb.Icon(), cb.Label(), cb.Base()} {
		before := cb.State()
		ent, ok := root.Activate(target)
		if !ok || ent.ID != 42 || ent.Data != "payload" {
			t.Fatalf("Activate() = (%+v, %v)", ent, ok)
		}
		if cb.State() == before {
			t.Errorf("state did not flip from %v", before)
		}
	}

	// lookups do not change state
	state := cb.State()
	if _, ok := root.ItemData(cb.Label()); !ok {
		t.Error("ItemData did not find the box")
	}
	if id, ok := root.ItemID(cb.Icon()); !ok || id != 42 {
		t.Errorf("ItemID() = (%d, %v)", id, ok)
	}
	if cb.State() != state {
		t.Error("lookup changed state")
	}
}

func TestDisabledCheckBoxRejectsClick(t *testing.T) {
	root := NewContainer(Vertical, 0)
	cb := NewCheckBox(nil, "off", Disabled, false, 1, nil)
	root.AddChild(cb)

	if _, ok := root.Activate(cb.Icon()); ok {
		t.Error("disabled box was found")
	}
	if cb.State() != Disabled {
		t.Errorf("state = %v, want disabled", cb.State())
	}
	if cb.Icon().Clickable() {
		t.Error("disabled icon is clickable")
	}
}

func TestRadioClearsPlainSiblingsOnly(t *testing.T) {
	parent := NewContainer(Vertical, 0)
	plainA := NewCheckBox(nil, "a", Checked, false, 1, nil)
	plainB := NewCheckBox(nil, "b", Unchecked, false, 2, nil)
	radioA := NewCheckBox(nil, "ra", Checked, true, 3, nil)
	radioB := NewCheckBox(nil, "rb", Unchecked, true, 4, nil)
	off := NewCheckBox(nil, "off", Disabled, false, 5, nil)
	for _, cb := range []*CheckBox{plainA, plainB, radioA, radioB, off} {
		parent.AddChild(cb)
	}

	radioB.SetState(Checked, parent)

	if plainA.State() != Unchecked {
		t.Errorf("plain sibling = %v, want unchecked", plainA.State())
	}
	if radioA.State() != Checked {
		t.Errorf("radio sibling = %v, want left checked", radioA.State())
	}
	if off.State() != Disabled {
		t.Errorf("disabled sibling = %v, want disabled", off.State())
	}
}

func TestRadioInvariant(t *testing.T) {
	parent := NewContainer(Vertical, 0)
	plain := []*CheckBox{
		NewCheckBox(nil, "p1", Checked, false, 1, nil),
		NewCheckBox(nil, "p2", Checked, false, 2, nil),
	}
	radios := []*CheckBox{
		NewCheckBox(nil, "r1", Unchecked, true, 3, nil),
		NewCheckBox(nil, "r2", Unchecked, true, 4, nil),
		NewCheckBox(nil, "r3", Unchecked, true, 5, nil),
	}
	for _, cb := range append(plain, radios...) {
		parent.AddChild(cb)
	}

	for _, i := range []int{0, 2, 1, 1, 0} {
		radios[i].SetState(Checked, parent)
		checked := 0
		for _, p := range plain {
			if p.State() == Checked {
				checked++
			}
		}
		if checked > 1 {
			t.Fatalf("after checking radio %d, %d plain boxes checked", i, checked)
		}
	}
}

func TestRadioClickThroughContainer(t *testing.T) {
	parent := NewContainer(Vertical, 0)
	plain := NewCheckBox(nil, "p", Checked, false, 1, nil)
	radio := NewCheckBox(nil, "r", Unchecked, true, 2, nil)
	parent.AddChild(plain)
	parent.AddChild(radio)

	if _, ok := parent.Activate(radio.Label()); !ok {
		t.Fatal("radio not found")
	}
	if radio.State() != Checked || plain.State() != Unchecked {
		t.Errorf("radio=%v plain=%v, want checked/unchecked", radio.State(), plain.State())
	}
}

func TestCheckBoxShowClose(t *testing.T) {
	v := newFakeViewer("v")
	root := NewContainer(Vertical, 0)
	cb := NewCheckBox(nil, "x", Unchecked, false, 1, nil)
	root.AddChild(cb)

	root.Show(v)
	for _, e := range []*Element{cb.Base(), cb.Icon(), cb.Label()} {
		if !v.has(e) {
			t.Errorf("%v part not shown", e.Kind())
		}
	}
	root.Hide(v)
	if v.count() != 0 {
		t.Errorf("Hide left %d elements", v.count())
	}
	if cb.Label().Parent() != cb.Base() {
		t.Error("Hide detached the box's own parts")
	}
}
