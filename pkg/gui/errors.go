package gui

import "errors"

var (
	// ErrInvalidParameter reports an out of range icon id or item index.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrItemNotFound reports a remove-by-text or remove-by-index miss.
	ErrItemNotFound = errors.New("item not found")

	// ErrMissingResource reports an asset that failed to load.
	ErrMissingResource = errors.New("missing resource")
)
