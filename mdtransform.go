package md2html

import (
	"context"
	"regexp"
)

// Line ending normalization pattern.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// markdownPreprocessor defines the contract for markdown preprocessing.
type markdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// lineEndingPreprocessor normalizes input before block conversion.
type lineEndingPreprocessor struct{}

// PreprocessMarkdown converts \r\n and \r to \n so both engines see
// uniform newline-delimited input.
func (p *lineEndingPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}
