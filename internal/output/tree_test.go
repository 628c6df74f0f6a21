package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
)

func TestRenderTreeLines_Empty(t *testing.T) {
	lines := RenderTreeLines(nil, TreeRenderOptions{})
	if len(lines) != 0 {
		t.Errorf("expected empty lines, got %d", len(lines))
	}
}

func TestRenderTreeLines_SingleNode(t *testing.T) {
	nodes := []TreeNode{
		{Kind: "label", Text: "Start", ID: 3, HasID: true, X: 6, Y: 21, W: 38, H: 15},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{ShowGeometry: true, ShowIDs: true})

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	for _, want := range []string{"└──", "label", "#3", `"Start"`, "@6,21 38x15"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in output, got: %s", want, line)
		}
	}
}

func TestRenderTreeLines_HidesOptionalParts(t *testing.T) {
	nodes := []TreeNode{{Kind: "label", Text: "x", ID: 3, HasID: true, W: 5, H: 5}}
	line := RenderTreeLines(nodes, TreeRenderOptions{})[0]
	if strings.Contains(line, "#3") || strings.Contains(line, "@") {
		t.Errorf("optional parts shown: %s", line)
	}
}

func TestRenderTreeLines_MultipleNodes(t *testing.T) {
	nodes := []TreeNode{
		{Kind: "label", Text: "First"},
		{Kind: "label", Text: "Second"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "├──") {
		t.Errorf("expected non-last connector for first node, got: %s", lines[0])
	}
	if !strings.Contains(lines[1], "└──") {
		t.Errorf("expected last connector for second node, got: %s", lines[1])
	}
}

func TestRenderTreeLines_NestedPrefix(t *testing.T) {
	nodes := []TreeNode{
		{Kind: "horizontal", Children: []TreeNode{{Kind: "label", Text: "inner"}}},
		{Kind: "label", Text: "after"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "│   └── ") {
		t.Errorf("child line = %q", lines[1])
	}
}

func TestRenderTreeLines_MaxDepth(t *testing.T) {
	nodes := []TreeNode{
		{Kind: "vertical", Children: []TreeNode{{Kind: "label", Text: "deep"}}},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{MaxDepth: 1})
	if len(lines) != 1 {
		t.Errorf("expected depth-limited output of 1 line, got %d", len(lines))
	}
}

func TestWindowTree(t *testing.T) {
	w := gui.NewWindow(nil, "Settings", gui.Vertical, nil)
	w.AddChildWithID(gui.NewLabel("Name"), 1, "name")
	row := w.AddNewLayoutChild(gui.Horizontal, gui.HLeft|gui.VMiddle)
	row.AddChild(gui.NewCheckBox(nil, "Sound", gui.Checked, false, 2, nil))
	row.AddChild(gui.NewCheckBox(nil, "Day", gui.Unchecked, true, 3, nil))
	w.Layout()

	tree := WindowTree(w)
	if tree.Kind != "window" || tree.Text != "Settings" {
		t.Fatalf("root = %s %q", tree.Kind, tree.Text)
	}
	width, height := w.Size()
	if tree.W != width || tree.H != height {
		t.Errorf("root size = %dx%d, want %dx%d", tree.W, tree.H, width, height)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(tree.Children))
	}
	label := tree.Children[0]
	if label.Kind != "label" || !label.HasID || label.ID != 1 {
		t.Errorf("label node = %+v", label)
	}
	boxes := tree.Children[1]
	if boxes.Kind != "horizontal" || len(boxes.Children) != 2 {
		t.Fatalf("row node = %+v", boxes)
	}
	if boxes.Children[0].Kind != "checkbox" || boxes.Children[1].Kind != "radio" {
		t.Errorf("check kinds = %s, %s", boxes.Children[0].Kind, boxes.Children[1].Kind)
	}

	out := RenderTree(tree, TreeRenderOptions{ShowIDs: true})
	if !strings.HasPrefix(out, `window "Settings"`) {
		t.Errorf("render starts with %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, `"Sound (checked)"`) {
		t.Errorf("checkbox state missing:\n%s", out)
	}
}

func TestMessageHelpers(t *testing.T) {
	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() { Stdout, Stderr = oldOut, oldErr })

	Success("added %s", "alice")
	Error("no player %q", "bob")
	Warning("slow")

	if !strings.Contains(out.String(), "added alice") {
		t.Errorf("stdout = %q", out.String())
	}
	for _, want := range []string{`no player "bob"`, "ERROR:", "WARNING:", "slow"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q: %q", want, errOut.String())
		}
	}
}
