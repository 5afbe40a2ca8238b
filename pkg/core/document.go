// Package core holds the Document entity and its derived metrics.
package core

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NotFound is returned by IndexFor when the word is absent.
const NotFound = -1

// ObscuredTime replaces every clock time matched by ObscureTimes.
const ObscuredTime = "**:** **"

var timePattern = regexp.MustCompile(`\d\d:\d\d (AM|PM)`)

// Document is a titled, authored block of text.
// Words are always derived from the current content and never cached.
//
// A Document is not safe for concurrent mutation; callers sharing one
// across goroutines must synchronize access themselves.
type Document struct {
	id       string
	title    string
	author   string
	content  string
	writable bool
	readOnly bool
	logger   *slog.Logger
}

// New creates a Document. Writable and ReadOnly start false unless set by an option.
func New(title, author, content string, opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Document{
		id:       o.id,
		title:    title,
		author:   author,
		content:  content,
		writable: o.writable,
		readOnly: o.readOnly,
		logger:   o.logger,
	}
}

// ID returns the identity assigned at construction.
func (d *Document) ID() string { return d.id }

// Title returns the current title.
func (d *Document) Title() string { return d.title }

// Author returns the author, including any appended names.
func (d *Document) Author() string { return d.author }

// Content returns the body text.
func (d *Document) Content() string { return d.content }

// Writable reports whether SetTitle is allowed to change the title.
func (d *Document) Writable() bool { return d.writable }

// ReadOnly reports the read-only flag. It is stored but no operation enforces it.
func (d *Document) ReadOnly() bool { return d.readOnly }

// SetAuthor replaces the author.
func (d *Document) SetAuthor(author string) { d.author = author }

// SetContent replaces the body text.
func (d *Document) SetContent(content string) { d.content = content }

// SetWritable sets the flag that gates SetTitle.
func (d *Document) SetWritable(writable bool) { d.writable = writable }

// SetReadOnly sets the read-only flag.
func (d *Document) SetReadOnly(readOnly bool) { d.readOnly = readOnly }

// SetTitle assigns the title only while the document is writable.
// Otherwise the call is silently ignored.
func (d *Document) SetTitle(title string) {
	d.TrySetTitle(title)
}

// TrySetTitle behaves like SetTitle and reports whether the title was applied.
func (d *Document) TrySetTitle(title string) bool {
	if !d.writable {
		d.log().Debug("title change ignored", "id", d.id, "title", d.title, "rejected", title)
		return false
	}
	d.title = title
	return true
}

// Words splits the content on runs of whitespace.
func (d *Document) Words() []string {
	return strings.Fields(d.content)
}

// WordCount returns the number of words in the content.
func (d *Document) WordCount() int {
	return len(d.Words())
}

// AddAuthors appends the names to the author, each separated by a single space.
func (d *Document) AddAuthors(names ...string) {
	d.author += " " + strings.Join(names, " ")
	d.log().Debug("authors added", "id", d.id, "author", d.author)
}

// IndexFor returns the position of the first word exactly equal to word,
// or NotFound.
func (d *Document) IndexFor(word string) int {
	for i, w := range d.Words() {
		if w == word {
			return i
		}
	}
	return NotFound
}

// AverageWordLength returns the mean length of the words, in characters.
// It fails with ErrEmptyDocument when the content holds no words.
func (d *Document) AverageWordLength() (float64, error) {
	words := d.Words()
	if len(words) == 0 {
		return 0, ErrEmptyDocument
	}

	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return float64(total) / float64(len(words)), nil
}

// ObscureTimes replaces every "hh:mm AM" or "hh:mm PM" occurrence in the
// content with ObscuredTime and returns how many were replaced.
func (d *Document) ObscureTimes() int {
	n := len(timePattern.FindAllStringIndex(d.content, -1))
	if n == 0 {
		return 0
	}
	d.content = timePattern.ReplaceAllLiteralString(d.content, ObscuredTime)
	d.log().Debug("times obscured", "id", d.id, "count", n)
	return n
}

// Describe writes a short human readable description of the document to w.
func (d *Document) Describe(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "I am %s\n", d); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "My title is %s\n", d.title); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "I have %d words\n", d.WordCount())
	return err
}

// Clone returns an independent copy of the document under a new ID.
// The writable and read-only flags are copied along with the text fields.
func (d *Document) Clone() *Document {
	return New(
		strings.Clone(d.title),
		strings.Clone(d.author),
		strings.Clone(d.content),
		WithWritable(d.writable),
		WithReadOnly(d.readOnly),
		WithLogger(d.logger),
	)
}

func (d *Document) log() *slog.Logger {
	if d.logger == nil {
		return slog.Default()
	}
	return d.logger
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	return fmt.Sprintf("Document(%s)", d.id)
}
