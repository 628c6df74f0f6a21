package output

import (
	"fmt"
	"strings"

	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
)

// TreeNode represents a node of a widget tree for rendering
type TreeNode struct {
	Kind     string
	Text     string
	ID       int
	HasID    bool
	X, Y     int
	W, H     int
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth     int  // 0 = unlimited
	ShowGeometry bool // position and size after layout
	ShowIDs      bool
}

// WidgetTree converts a laid out node and everything below it.
func WidgetTree(n gui.Node) TreeNode {
	e := n.Base()
	x, y := e.Position()
	w, h := e.Size()
	node := TreeNode{X: int(x), Y: int(y), W: w, H: h}

	switch v := n.(type) {
	case *gui.Container:
		node.Kind = v.Orientation().String()
		for _, ch := range v.Children() {
			child := WidgetTree(ch.Node)
			if ch.HasID {
				child.ID, child.HasID = ch.ID, true
			}
			node.Children = append(node.Children, child)
		}
	case *gui.CheckBox:
		node.Kind = "checkbox"
		if v.IsRadio() {
			node.Kind = "radio"
		}
		node.Text = fmt.Sprintf("%s (%s)", v.Text(), v.State())
		node.ID, node.HasID = v.ID(), true
	default:
		node.Kind = e.Kind().String()
		node.Text = e.Text()
	}
	return node
}

// WindowTree converts a window: the title bar text on the root, the root
// container's children below it.
func WindowTree(w *gui.Window) TreeNode {
	node := WidgetTree(w.Root())
	width, height := w.Size()
	node.Kind = "window"
	node.Text = w.TitleBar().Title().Text()
	node.X, node.Y, node.W, node.H = 0, 0, width, height
	return node
}

// RenderTree renders a tree starting from a single root node, the root
// line first.
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := []string{nodeLine(root, opts)}
	lines = append(lines, renderTreeNodes(root.Children, opts, 0, "")...)
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
// Useful for embedding trees in other output
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

func nodeLine(node TreeNode, opts TreeRenderOptions) string {
	parts := []string{node.Kind}
	if opts.ShowIDs && node.HasID {
		parts = append(parts, fmt.Sprintf("#%d", node.ID))
	}
	if node.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", node.Text))
	}
	if opts.ShowGeometry {
		parts = append(parts, fmt.Sprintf("@%d,%d %dx%d", node.X, node.Y, node.W, node.H))
	}
	return strings.Join(parts, " ")
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "\u251c\u2500\u2500 " // ├──
		if isLast {
			connector = "\u2514\u2500\u2500 " // └──
		}

		lines = append(lines, prefix+connector+nodeLine(node, opts))

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "\u2502   " // │
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}
