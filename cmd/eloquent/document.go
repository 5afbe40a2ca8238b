package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/eloquent/pkg/core"
	"github.com/spf13/cobra"
)

// documentFlags holds the persistent flags every subcommand builds its document from.
type documentFlags struct {
	title      string
	author     string
	content    string
	addAuthors []string
	writable   bool
	readOnly   bool
}

var docFlags documentFlags

func addDocumentFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVarP(&docFlags.title, "title", "t", "untitled", "Document title")
	f.StringVarP(&docFlags.author, "author", "a", "anonymous", "Document author")
	f.StringVarP(&docFlags.content, "content", "c", "", "Document content (read from stdin when not set)")
	f.StringArrayVar(&docFlags.addAuthors, "add-author", nil, "Append an author name (repeatable)")
	f.BoolVar(&docFlags.writable, "writable", false, "Allow the title to be changed")
	f.BoolVar(&docFlags.readOnly, "read-only", false, "Mark the document as read-only")
}

// loadDocument builds the document described by the persistent flags.
func loadDocument(cmd *cobra.Command) (*core.Document, error) {
	content := docFlags.content
	if !cmd.Flags().Changed("content") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read content: %w", err)
		}
		content = string(data)
	}

	doc := core.New(docFlags.title, docFlags.author, content,
		core.WithWritable(docFlags.writable),
		core.WithReadOnly(docFlags.readOnly),
		core.WithLogger(slog.Default()),
	)
	if len(docFlags.addAuthors) > 0 {
		doc.AddAuthors(docFlags.addAuthors...)
	}

	slog.Debug("document loaded", "id", doc.ID(), "words", doc.WordCount())
	return doc, nil
}
