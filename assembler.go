package md2html

import (
	"context"
	"fmt"
	"strings"
)

// listKind tracks which list element is currently open.
type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

// tag returns the HTML element name for the list kind.
func (k listKind) tag() string {
	if k == listOrdered {
		return "ol"
	}
	return "ul"
}

// assembler groups classified lines into block-level HTML elements.
// At most one list is open and at most one paragraph buffer is
// accumulating at any time; opening one implicitly closes the other.
// The assembler is total: any line sequence produces a well-defined
// block sequence and never fails.
type assembler struct {
	blocks    []string
	openList  listKind
	paragraph []string
}

// feed processes one raw input line.
func (a *assembler) feed(raw string) {
	ln := classifyLine(raw)

	switch ln.kind {
	case kindHeading:
		a.flushParagraph()
		a.closeList()
		content := formatInline(ln.content)
		a.blocks = append(a.blocks, fmt.Sprintf("<h%d>%s</h%d>", ln.level, content, ln.level))

	case kindUnorderedItem:
		a.appendItem(listUnordered, ln.content)

	case kindOrderedItem:
		a.appendItem(listOrdered, ln.content)

	case kindBlank:
		// Block separator: flushes paragraphs and closes lists, so a
		// list followed by blank-then-paragraph never merges the two.
		a.flushParagraph()
		a.closeList()

	case kindText:
		// Plain text after a list is not a continuation of the list.
		a.closeList()
		// Inline formatting is applied per source line, before buffering,
		// so formatting spans never cross original line boundaries.
		a.paragraph = append(a.paragraph, formatInline(ln.content))
	}
}

// appendItem adds a list item, opening a list of the given kind first if
// one is not already open.
func (a *assembler) appendItem(kind listKind, content string) {
	a.flushParagraph()
	if a.openList != kind {
		a.closeList()
		a.blocks = append(a.blocks, "<"+kind.tag()+">")
		a.openList = kind
	}
	a.blocks = append(a.blocks, "<li>"+formatInline(content)+"</li>")
}

// flushParagraph emits the buffered paragraph, if any, joining lines with
// an explicit line-break marker. A single-line paragraph has no markers.
func (a *assembler) flushParagraph() {
	if len(a.paragraph) == 0 {
		return
	}
	a.blocks = append(a.blocks, "<p>"+strings.Join(a.paragraph, "<br/>")+"</p>")
	a.paragraph = a.paragraph[:0]
}

// closeList emits the closing tag for the open list, if any.
func (a *assembler) closeList() {
	if a.openList == listNone {
		return
	}
	a.blocks = append(a.blocks, "</"+a.openList.tag()+">")
	a.openList = listNone
}

// finish flushes remaining state and returns the blocks in document order.
func (a *assembler) finish() []string {
	a.flushParagraph()
	a.closeList()
	return a.blocks
}

// blockConverter converts the constrained Markdown subset to HTML using
// the line classifier and block assembler.
type blockConverter struct{}

// ToHTML converts Markdown content to an HTML fragment of block elements
// joined by newlines. The conversion is total over its input; the only
// error source is context cancellation.
func (c *blockConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var a assembler
	for _, raw := range strings.Split(content, "\n") {
		a.feed(raw)
	}
	return strings.Join(a.finish(), "\n"), nil
}
