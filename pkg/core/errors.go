package core

import "errors"

// Common errors.
var (
	ErrEmptyDocument = errors.New("document has no words")
)
