// Package mouse resolves terminal mouse events against rectangular screen
// regions.
package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a cell rectangle. X,Y is the top-left cell; W and H are
// exclusive extents.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell x, y lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit target.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in insertion order. Regions added later sit on
// top of earlier ones.
type HitMap struct {
	regions []Region
}

func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect adds a region. Empty rectangles are ignored.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	if w <= 0 || h <= 0 {
		return
	}
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the topmost region containing x, y, or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// Regions returns the regions bottom to top.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// Action is the outcome of a mouse event.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler turns bubbletea mouse messages into actions against its hit
// map and tracks the hovered region.
type Handler struct {
	HitMap  *HitMap
	hovered string
}

func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleClick resolves a left click at x, y.
func (h *Handler) HandleClick(x, y int) Action {
	return Action{Type: ActionClick, Region: h.HitMap.Test(x, y), X: x, Y: y}
}

// Hovered returns the id of the region under the pointer, if any.
func (h *Handler) Hovered() string { return h.hovered }

// HandleMouse classifies msg.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return h.HandleClick(msg.X, msg.Y)
		case tea.MouseButtonWheelUp:
			return Action{Type: ActionScrollUp, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
		case tea.MouseButtonWheelDown:
			return Action{Type: ActionScrollDown, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
		}
	case tea.MouseActionMotion:
		r := h.HitMap.Test(msg.X, msg.Y)
		h.hovered = ""
		if r != nil {
			h.hovered = r.ID
		}
		return Action{Type: ActionHover, Region: r, X: msg.X, Y: msg.Y}
	}
	return Action{Type: ActionNone, X: msg.X, Y: msg.Y}
}

// Clear drops every region.
func (h *Handler) Clear() {
	h.HitMap.Clear()
	h.hovered = ""
}
