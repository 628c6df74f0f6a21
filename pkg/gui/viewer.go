package gui

// Viewer is a connected remote party elements are shown to. Implementations
// must be comparable; the engine keys per-viewer state on them.
type Viewer interface {
	AddElement(e *Element)
	RemoveElement(e *Element)
	SetMouseCursorVisible(visible bool)
}

// Listener receives input events delivered by the host.
type Listener interface {
	OnClick(v Viewer, e *Element)
	OnTextEntry(v Viewer, e *Element, text string)
}

// EventHost installs and removes event listeners.
type EventHost interface {
	RegisterListener(l Listener)
	UnregisterListener(l Listener)
}

// Callback reports a selection in a window: the id and data of the child
// that was clicked, the new text of an edited field, or AbortID with nil
// data when the window was cancelled.
type Callback func(v Viewer, id int, data any)
