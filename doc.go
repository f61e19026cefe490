// Package mdview converts a restricted Markdown dialect into HTML and
// can keep a browser view in sync with edits to the source file.
//
// The conversion pipeline segments source lines into blocks, resolves
// inline spans and emits escaped HTML. Malformed Markdown never fails:
// every unmatched delimiter, unterminated fence or broken link degrades
// to literal text, so the pipeline always produces output.
//
// In watch mode, a polling Watcher re-renders on file changes and
// publishes into a RenderCache; a ReloadServer serves the cached page
// and signals connected browsers over a server-sent event stream when
// the cache version advances.
//
// Example:
//
//	reader := strings.NewReader("# Hello\n\nMarkdown in, HTML out.\n")
//	err := mdview.Convert(mdview.ConvertRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//		Title:  "hello",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package mdview
