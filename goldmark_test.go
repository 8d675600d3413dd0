package md2html

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "basic heading with ID",
			input: "# Hello World",
			wantContains: []string{
				"<h1",
				"Hello World",
				"</h1>",
				`id="`,
			},
		},
		{
			name:  "paragraph with hard breaks",
			input: "Line one\nLine two",
			wantContains: []string{
				"<p>",
				"Line one",
				"<br",
				"Line two",
			},
		},
		{
			name:  "GFM table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{
				"<table>",
				"<thead>",
				"<tbody>",
			},
		},
		{
			name:  "GFM strikethrough",
			input: "~~deleted~~",
			wantContains: []string{
				"<del>",
				"deleted",
			},
		},
		{
			name:  "code block with chroma classes",
			input: "```go\nfunc main() {}\n```",
			wantContains: []string{
				"<pre",
				"<code",
				"func",
			},
		},
		{
			name:  "footnote",
			input: "Text[^1]\n\n[^1]: Footnote content",
			wantContains: []string{
				"<sup",
				"footnote",
			},
		},
		{
			name:  "output is a fragment without document shell",
			input: "# Test",
			wantNot: []string{
				"<!DOCTYPE html>",
				"<html>",
				"<body>",
			},
		},
		{
			name:  "raw HTML is sanitized",
			input: "<script>alert('xss')</script>",
			wantContains: []string{
				"<!-- raw HTML omitted -->",
			},
			wantNot: []string{
				"<script>",
			},
		},
	}

	converter := newGoldmarkConverter()
	ctx := context.Background()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := converter.ToHTML(ctx, tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(result, want) {
					t.Errorf("ToHTML() result should contain %q\nGot:\n%s", want, result)
				}
			}

			for _, notWant := range tt.wantNot {
				if strings.Contains(result, notWant) {
					t.Errorf("ToHTML() result should NOT contain %q\nGot:\n%s", notWant, result)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_ContextCancellation(t *testing.T) {
	t.Parallel()

	converter := newGoldmarkConverter()

	t.Run("cancelled context returns error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := converter.ToHTML(ctx, "# Test")
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("deadline exceeded returns error", func(t *testing.T) {
		t.Parallel()

		// Create an already-expired context to avoid flaky timing issues
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		_, err := converter.ToHTML(ctx, "# Test")
		if err != context.DeadlineExceeded {
			t.Errorf("expected context.DeadlineExceeded, got %v", err)
		}
	})
}
