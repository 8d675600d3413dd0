package md2html

import "strings"

// lineKind classifies a single input line.
type lineKind int

const (
	kindText lineKind = iota
	kindBlank
	kindHeading
	kindUnorderedItem
	kindOrderedItem
)

// List markers. The mapping is part of the public contract:
// "- " opens an unordered list, "* " opens an ordered list.
const (
	unorderedMarker = "- "
	orderedMarker   = "* "
)

// Heading level bounds.
const (
	minHeadingLevel = 1
	maxHeadingLevel = 6
)

// line is the classified form of one input line.
type line struct {
	kind    lineKind
	level   int    // heading level, 1-6; zero otherwise
	content string // remainder after the block marker
}

// classifyLine dispatches a raw line over the closed set of line kinds.
// Predicates are evaluated in priority order: heading, unordered item,
// ordered item, blank, text. Classification works on the trimmed line,
// so leading indentation is not significant.
func classifyLine(raw string) line {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return line{kind: kindBlank}
	}

	if level, content, ok := matchHeading(trimmed); ok {
		return line{kind: kindHeading, level: level, content: content}
	}

	if rest, ok := strings.CutPrefix(trimmed, unorderedMarker); ok {
		return line{kind: kindUnorderedItem, content: rest}
	}

	if rest, ok := strings.CutPrefix(trimmed, orderedMarker); ok {
		return line{kind: kindOrderedItem, content: rest}
	}

	return line{kind: kindText, content: trimmed}
}

// matchHeading tests for an ATX heading: 1-6 leading '#' followed by
// whitespace and non-empty content. Lines with more than 6 '#', with no
// whitespace after the markers, or with empty content are not headings
// and degrade to plain text.
func matchHeading(trimmed string) (level int, content string, ok bool) {
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level < minHeadingLevel || level > maxHeadingLevel {
		return 0, "", false
	}

	rest := trimmed[level:]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return 0, "", false
	}

	content = strings.TrimSpace(rest)
	if content == "" {
		return 0, "", false
	}
	return level, content, true
}
