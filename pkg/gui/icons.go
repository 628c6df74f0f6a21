package gui

import (
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log/slog"
	"sync"

	"golang.org/x/image/draw"
)

// Icon identifies a stock image.
type Icon int

// NoIcon marks an image element without a stock icon.
const NoIcon Icon = -1

const (
	IconArrowDown Icon = iota
	IconArrowLeft
	IconArrowRight
	IconArrowUp
	IconCheck
	IconCross
	IconUncheck
	IconPlus
	IconMinus
	IconRadioCheck
	IconRadioUncheck

	iconCount
)

var iconFiles = [iconCount]string{
	IconArrowDown:    "arrowDown.png",
	IconArrowLeft:    "arrowLeft.png",
	IconArrowRight:   "arrowRight.png",
	IconArrowUp:      "arrowUp.png",
	IconCheck:        "check.png",
	IconCross:        "cross.png",
	IconUncheck:      "uncheck.png",
	IconPlus:         "plus.png",
	IconMinus:        "minus.png",
	IconRadioCheck:   "radioCheck.png",
	IconRadioUncheck: "radioUncheck.png",
}

func (i Icon) valid() bool { return i >= 0 && i < iconCount }

func (i Icon) String() string {
	if !i.valid() {
		return "none"
	}
	return iconFiles[i]
}

//go:embed assets/*.png
var stockAssets embed.FS

// IconSet resolves stock icons from a file system and caches the decoded
// images, scaled to ButtonSize.
type IconSet struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[Icon]image.Image
}

// NewIconSet returns an icon set reading the stock file names from fsys.
func NewIconSet(fsys fs.FS) *IconSet {
	return &IconSet{fsys: fsys, cache: make(map[Icon]image.Image)}
}

// DefaultIcons returns an icon set over the embedded stock assets.
func DefaultIcons() *IconSet {
	sub, err := fs.Sub(stockAssets, "assets")
	if err != nil {
		panic(err) // embedded directory is always present
	}
	return NewIconSet(sub)
}

// Load returns the decoded image for id.
func (s *IconSet) Load(id Icon) (image.Image, error) {
	if !id.valid() {
		return nil, fmt.Errorf("icon %d: %w", id, ErrInvalidParameter)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if img, ok := s.cache[id]; ok {
		return img, nil
	}
	f, err := s.fsys.Open(iconFiles[id])
	if err != nil {
		return nil, fmt.Errorf("open icon %s: %w: %v", id, ErrMissingResource, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w: %v", id, ErrMissingResource, err)
	}
	img = scaleIcon(img)
	s.cache[id] = img
	return img, nil
}

func scaleIcon(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() == ButtonSize && b.Dy() == ButtonSize {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, ButtonSize, ButtonSize))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// SetImage shows icon id in the image element e. On a load failure the
// element is left without an image and the error is returned; the caller
// may carry on laying out. A nil set only records the icon id, for hosts
// drawing icons themselves.
func (s *IconSet) SetImage(e *Element, id Icon) error {
	if e == nil {
		return nil
	}
	if !id.valid() {
		return fmt.Errorf("icon %d: %w", id, ErrInvalidParameter)
	}
	if s == nil {
		e.icon = id
		return nil
	}
	img, err := s.Load(id)
	if err != nil {
		slog.Debug("gui: icon load failed", "icon", id.String(), "err", err)
		e.icon, e.image = NoIcon, nil
		return err
	}
	e.icon, e.image = id, img
	return nil
}

// NewIconImage creates a ButtonSize image element showing id.
func NewIconImage(icons *IconSet, id Icon) (*Element, error) {
	e := NewImage(ButtonSize, ButtonSize)
	err := icons.SetImage(e, id)
	return e, err
}
