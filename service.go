package md2html

import (
	"context"
	"fmt"
)

// Document shell fragments. Wrapping is part of the output contract.
const (
	shellOpen  = "<html>\n<body>\n"
	shellClose = "\n</body>\n</html>"
)

// Service orchestrates the markdown-to-HTML pipeline.
type Service struct {
	cfg          serviceConfig
	preprocessor markdownPreprocessor
	converter    htmlConverter
}

// New creates a Service with default configuration (blocks engine,
// shell-wrapped output). Use options to customize behavior.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:          serviceConfig{engine: EngineBlocks},
		preprocessor: &lineEndingPreprocessor{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the converter if not injected (e.g., by tests)
	if s.converter == nil {
		switch s.cfg.engine {
		case EngineGFM:
			s.converter = newGoldmarkConverter()
		default:
			s.converter = &blockConverter{}
		}
	}

	return s
}

// Convert runs the full pipeline and returns the HTML document.
// Empty markdown is valid and yields an empty block sequence. The
// context is used for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	mdContent := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	fragment, err := s.converter.ToHTML(ctx, mdContent)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	if s.cfg.bare {
		return fragment, nil
	}
	return wrapShell(fragment), nil
}

// wrapShell wraps a fragment in the minimal document shell. An empty
// fragment produces a shell with an empty body and no stray blank line.
func wrapShell(fragment string) string {
	if fragment == "" {
		return "<html>\n<body>\n</body>\n</html>"
	}
	return shellOpen + fragment + shellClose
}
