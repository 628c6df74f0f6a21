package gui

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, x%h, color.White)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDefaultIconsLoad(t *testing.T) {
	icons := DefaultIcons()
	for id := Icon(0); id < iconCount; id++ {
		img, err := icons.Load(id)
		if err != nil {
			t.Errorf("Load(%s) failed: %v", id, err)
			continue
		}
		if b := img.Bounds(); b.Dx() != ButtonSize || b.Dy() != ButtonSize {
			t.Errorf("%s is %dx%d, want %dx%d", id, b.Dx(), b.Dy(), ButtonSize, ButtonSize)
		}
	}
}

func TestIconScaled(t *testing.T) {
	fsys := fstest.MapFS{
		"check.png": {Data: pngBytes(t, 64, 32)},
	}
	icons := NewIconSet(fsys)
	img, err := icons.Load(IconCheck)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != ButtonSize || b.Dy() != ButtonSize {
		t.Errorf("scaled to %dx%d", b.Dx(), b.Dy())
	}
	again, _ := icons.Load(IconCheck)
	if again != img {
		t.Error("second load not served from the cache")
	}
}

func TestIconErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"cross.png": {Data: []byte("not a png")},
	}
	icons := NewIconSet(fsys)

	tests := []struct {
		name string
		id   Icon
		want error
	}{
		{"negative", NoIcon, ErrInvalidParameter},
		{"out of range", iconCount, ErrInvalidParameter},
		{"missing file", IconArrowUp, ErrMissingResource},
		{"corrupt file", IconCross, ErrMissingResource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := icons.Load(tt.id); !errors.Is(err, tt.want) {
				t.Errorf("Load(%d) error = %v, want %v", tt.id, err, tt.want)
			}
		})
	}
}

func TestSetImageFailureLeavesBlank(t *testing.T) {
	icons := NewIconSet(fstest.MapFS{})
	e := NewImage(ButtonSize, ButtonSize)

	err := icons.SetImage(e, IconPlus)
	if !errors.Is(err, ErrMissingResource) {
		t.Fatalf("SetImage error = %v", err)
	}
	if e.Icon() != NoIcon || e.Image() != nil {
		t.Errorf("element keeps icon %v after failure", e.Icon())
	}

	// a broken icon does not stop a check box from laying out
	cb := NewCheckBox(icons, "still works", Checked, false, 1, nil)
	if w, h := cb.Layout(0, 0, true); w == 0 || h == 0 {
		t.Errorf("Layout() = (%d, %d)", w, h)
	}
}

func TestSetImageNilSet(t *testing.T) {
	var icons *IconSet
	e := NewImage(1, 1)
	if err := icons.SetImage(e, IconMinus); err != nil {
		t.Fatalf("SetImage failed: %v", err)
	}
	if e.Icon() != IconMinus || e.Image() != nil {
		t.Errorf("icon=%v image=%v", e.Icon(), e.Image())
	}
	if err := icons.SetImage(e, Icon(99)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("SetImage(99) error = %v", err)
	}
}

func TestNewIconImage(t *testing.T) {
	e, err := NewIconImage(DefaultIcons(), IconRadioCheck)
	if err != nil {
		t.Fatalf("NewIconImage failed: %v", err)
	}
	if w, h := e.Size(); w != ButtonSize || h != ButtonSize || e.Image() == nil {
		t.Errorf("size (%d, %d) image %v", w, h, e.Image() != nil)
	}
}
