package md2html

import (
	"crypto/md5" // #nosec G501 -- content addressing per the output contract, not cryptography
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"
)

// Precompiled inline patterns. All spans are non-greedy (shortest match).
var (
	// Content-hash syntax [[text]]
	hashSpan = regexp.MustCompile(`\[\[(.*?)\]\]`)

	// Letter-stripping syntax ((text))
	stripSpan = regexp.MustCompile(`\(\((.*?)\)\)`)

	// Bold syntax **text**
	boldSpan = regexp.MustCompile(`\*\*(.*?)\*\*`)

	// Emphasis syntax __text__
	emphasisSpan = regexp.MustCompile(`__(.*?)__`)
)

// strippedLetter is removed (case-insensitively) from ((text)) spans.
const strippedLetter = 'c'

// formatInline applies the inline transformations to one line of text.
// Order matters: bracket and parenthesis spans are resolved first so their
// output is not re-scanned for bold/emphasis markers. Unmatched delimiters
// pass through unchanged; no escaping mechanism is provided.
func formatInline(text string) string {
	text = hashSpan.ReplaceAllStringFunc(text, hashSpanContent)
	text = stripSpan.ReplaceAllStringFunc(text, stripSpanContent)
	text = boldSpan.ReplaceAllString(text, "<b>$1</b>")
	text = emphasisSpan.ReplaceAllString(text, "<em>$1</em>")
	return text
}

// hashSpanContent replaces a [[text]] match with the lowercase hex MD5
// digest of the literal enclosed text.
func hashSpanContent(match string) string {
	inner := match[2 : len(match)-2]
	sum := md5.Sum([]byte(inner)) // #nosec G401 -- deterministic content hash, not cryptography
	return hex.EncodeToString(sum[:])
}

// stripSpanContent replaces a ((text)) match with the enclosed text minus
// every occurrence of the designated letter, case-insensitively.
func stripSpanContent(match string) string {
	inner := match[2 : len(match)-2]
	return strings.Map(func(r rune) rune {
		if r == strippedLetter || r == unicode.ToUpper(strippedLetter) {
			return -1
		}
		return r
	}, inner)
}
