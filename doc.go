// Package eloquent is the entry point for the Eloquent document library.
//
// It re-exports the Document entity from pkg/core and the reporting helpers
// from pkg/report behind a single import.
//
// A Document holds a title, an author and a body of text. Words are derived
// from the content on demand by splitting on whitespace, so metrics such as
// WordCount, IndexFor and AverageWordLength always reflect the latest content.
//
// Features:
//
//   - **Derived Metrics**: word list, word count, average word length, word lookup.
//   - **Guarded Title**: SetTitle only applies while the document is writable and is silently ignored otherwise.
//   - **Redaction**: ObscureTimes masks clock times such as "10:30 AM".
//   - **Cloning**: Clone returns an independent copy under a new identity.
//   - **Reports**: Render produces text, JSON or YAML summaries.
//
// Usage:
//
//	doc := eloquent.New("Minutes", "Jane", "Meeting at 10:30 AM today",
//		eloquent.WithWritable(true),
//	)
//
//	doc.AddAuthors("Doe", "Smith")
//	doc.ObscureTimes()
//	out, err := eloquent.Render(doc, "json")
//
// A Document is not safe for concurrent mutation.
package eloquent
