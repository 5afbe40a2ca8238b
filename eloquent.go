package eloquent

import (
	"log/slog"

	"github.com/aretw0/eloquent/pkg/core"
	"github.com/aretw0/eloquent/pkg/report"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Document is a public alias for the core document entity.
type Document = core.Document

// Summary is a public alias for the document report snapshot.
type Summary = report.Summary

// NotFound is returned by Document.IndexFor when the word is absent.
const NotFound = core.NotFound

// ErrEmptyDocument is returned by Document.AverageWordLength when there are no words.
var ErrEmptyDocument = core.ErrEmptyDocument

// --- Configuration ---

// Option defines a functional option for configuring a Document.
type Option = core.Option

// WithWritable allows the title to be changed.
func WithWritable(writable bool) Option {
	return core.WithWritable(writable)
}

// WithReadOnly sets the (informational) read-only flag.
func WithReadOnly(readOnly bool) Option {
	return core.WithReadOnly(readOnly)
}

// WithLogger sets the logger for the document.
func WithLogger(logger *slog.Logger) Option {
	return core.WithLogger(logger)
}

// WithID overrides the generated document identity.
func WithID(id string) Option {
	return core.WithID(id)
}

// --- Factory ---

// New creates a new Document.
func New(title, author, content string, opts ...Option) *Document {
	return core.New(title, author, content, opts...)
}

// --- Reporting ---

// Summarize captures the metrics of a document.
func Summarize(doc *Document) (Summary, error) {
	return report.Summarize(doc)
}

// Render formats the summary of a document as "text", "json" or "yaml".
func Render(doc *Document, format string) ([]byte, error) {
	return report.Render(doc, format)
}
