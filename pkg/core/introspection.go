package core

import (
	"github.com/aretw0/introspection"
)

// DocumentState exposes internal state for observability.
type DocumentState struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	WordCount int    `json:"word_count"`
	Writable  bool   `json:"writable"`
	ReadOnly  bool   `json:"read_only"`
}

// State implements introspection.Introspectable.
func (d *Document) State() any {
	return DocumentState{
		ID:        d.id,
		Title:     d.title,
		WordCount: d.WordCount(),
		Writable:  d.writable,
		ReadOnly:  d.readOnly,
	}
}

// ComponentType implements introspection.Component.
func (d *Document) ComponentType() string {
	return "document"
}

var _ introspection.Introspectable = (*Document)(nil)
var _ introspection.Component = (*Document)(nil)
