// Package report renders the derived metrics of a document.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/eloquent/pkg/core"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when no formatter is registered for a name.
var ErrUnknownFormat = errors.New("unknown report format")

// Summary is a read-only snapshot of a document and its metrics.
// AverageWordLength is nil when the document has no words.
type Summary struct {
	ID                string   `json:"id" yaml:"id"`
	Title             string   `json:"title" yaml:"title"`
	Author            string   `json:"author" yaml:"author"`
	WordCount         int      `json:"word_count" yaml:"word_count"`
	AverageWordLength *float64 `json:"average_word_length" yaml:"average_word_length"`
	Writable          bool     `json:"writable" yaml:"writable"`
	ReadOnly          bool     `json:"read_only" yaml:"read_only"`
}

// Summarize captures the current state of doc.
func Summarize(doc *core.Document) (Summary, error) {
	s := Summary{
		ID:        doc.ID(),
		Title:     doc.Title(),
		Author:    doc.Author(),
		WordCount: doc.WordCount(),
		Writable:  doc.Writable(),
		ReadOnly:  doc.ReadOnly(),
	}

	avg, err := doc.AverageWordLength()
	switch {
	case err == nil:
		s.AverageWordLength = &avg
	case errors.Is(err, core.ErrEmptyDocument):
		// Leave it unset.
	default:
		return Summary{}, err
	}
	return s, nil
}

// Formatter defines how a Summary is rendered.
type Formatter interface {
	Format(s Summary) ([]byte, error)
}

// DefaultFormatters returns the standard set of formatters, keyed by name.
func DefaultFormatters() map[string]Formatter {
	return map[string]Formatter{
		"text": TextFormatter{},
		"json": JSONFormatter{},
		"yaml": YAMLFormatter{},
		"yml":  YAMLFormatter{},
	}
}

// Formats lists the registered format names in order.
func Formats() []string {
	names := make([]string, 0, len(DefaultFormatters()))
	for name := range DefaultFormatters() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats the summary of doc using the named formatter.
func Render(doc *core.Document, format string) ([]byte, error) {
	f, ok := DefaultFormatters()[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	s, err := Summarize(doc)
	if err != nil {
		return nil, err
	}
	return f.Format(s)
}

// --- Text Formatter ---

// TextFormatter renders one "key: value" pair per line.
type TextFormatter struct{}

func (TextFormatter) Format(s Summary) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "id: %s\n", s.ID)
	fmt.Fprintf(&b, "title: %s\n", s.Title)
	fmt.Fprintf(&b, "author: %s\n", s.Author)
	fmt.Fprintf(&b, "words: %d\n", s.WordCount)
	if s.AverageWordLength != nil {
		fmt.Fprintf(&b, "average word length: %.2f\n", *s.AverageWordLength)
	} else {
		b.WriteString("average word length: n/a\n")
	}
	fmt.Fprintf(&b, "writable: %t\n", s.Writable)
	fmt.Fprintf(&b, "read-only: %t\n", s.ReadOnly)
	return []byte(b.String()), nil
}

// --- JSON Formatter ---

// JSONFormatter renders indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Format(s Summary) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// --- YAML Formatter ---

// YAMLFormatter renders YAML with two-space indentation.
type YAMLFormatter struct{}

func (YAMLFormatter) Format(s Summary) ([]byte, error) {
	var b strings.Builder
	encoder := yaml.NewEncoder(&b)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
