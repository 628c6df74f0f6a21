// Package gui provides a retained-mode widget and layout engine for GUI
// surfaces shared by many remote viewers.
//
// Windows are built from primitive elements (labels, images, panels and
// text fields) arranged by containers which compute their own size from
// their children and place them according to alignment flags. Every child
// may carry an id and an arbitrary data value; input events on a child are
// routed back to the owning window, which reports them through a callback.
//
// # Quick Start
//
//	dlg := gui.NewWindow(host, "Settings", gui.Vertical, func(v gui.Viewer, id int, data any) {
//	    switch id {
//	    case gui.AbortID:
//	        // title bar [X] clicked
//	    case idName:
//	        name, _ := data.(string) // nil on click, new text on entry
//	    }
//	})
//	dlg.AddChild(gui.NewLabel("Your name:"))
//	dlg.AddChildWithID(gui.NewTextField(""), idName, "")
//	row := dlg.AddNewLayoutChild(gui.Horizontal, gui.HCentre|gui.VMiddle)
//	row.AddChildWithID(gui.NewLabel("OK"), gui.OKID, true)
//	dlg.Show(viewer)
//
// # Layouts
//
//   - Horizontal: children side by side, left to right
//   - Vertical: children stacked, first at the top
//   - Grid: children fill a fixed number of columns, row by row
//
// Containers nest freely. Margin is added once around a container and
// padding only between consecutive children.
//
// # Coordinates
//
// Positions are host pixels relative to the render parent with the y axis
// pointing up. With the default top-left pivot an element occupies the
// rectangle [x, x+w] × [y-h, y].
//
// # Concurrency
//
// Tree mutation, layout and event dispatch are expected to run on the
// host's single event thread. MessageBox is the only component that
// touches a tree from another goroutine and serialises its own teardown.
package gui
