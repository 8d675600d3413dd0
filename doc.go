// Package md2html converts a constrained Markdown subset to HTML.
//
// # Quick Start
//
// Create a service and convert markdown:
//
//	svc := md2html.New()
//	html, err := svc.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(html), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line-ending normalization)
//  2. Block conversion via the selected engine (see below)
//  3. Document shell wrapping (<html><body>...</body></html>)
//
// # Engines
//
// The default engine (EngineBlocks) is a single-pass line classifier and
// block assembler for a constrained Markdown subset:
//
//   - Headings: 1-6 leading '#' followed by whitespace and content.
//     Lines with 7 or more '#', or '#' without content, pass through as
//     plain paragraph text.
//   - Unordered lists: lines starting with "- " produce <ul>/<li>.
//   - Ordered lists: lines starting with "* " produce <ol>/<li>.
//   - Paragraphs: runs of plain text lines, joined with <br/> markers.
//     Blank lines separate paragraphs and close open lists.
//
// Inline formatting inside headings, list items, and paragraph lines:
//
//   - [[text]] is replaced by the lowercase hex MD5 digest of text.
//   - ((text)) is replaced by text with every 'c'/'C' removed.
//   - **text** becomes <b>text</b>.
//   - __text__ becomes <em>text</em>.
//
// No HTML escaping is performed and no escaping mechanism for literal
// marker characters is provided; unmatched delimiters pass through.
//
// The alternate engine (EngineGFM) converts full CommonMark/GFM via
// Goldmark (tables, strikethrough, autolinks, task lists, footnotes,
// syntax highlighting). Select it with WithEngine:
//
//	svc := md2html.New(md2html.WithEngine(md2html.EngineGFM))
//
// # Output Contract
//
// Output is wrapped in a minimal document shell by default:
//
//	<html>
//	<body>
//	...blocks...
//	</body>
//	</html>
//
// Use WithBareFragment to emit the block sequence alone. Conversion is
// deterministic: identical input bytes produce identical output bytes.
package md2html
