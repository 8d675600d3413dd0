package md2html

// Engine selects the Markdown conversion backend.
type Engine string

// Available engines.
const (
	// EngineBlocks is the constrained single-pass block assembler (default).
	EngineBlocks Engine = "blocks"
	// EngineGFM converts full CommonMark/GFM via Goldmark.
	EngineGFM Engine = "gfm"
)

// IsValid reports whether e names a known engine.
func (e Engine) IsValid() bool {
	switch e {
	case EngineBlocks, EngineGFM:
		return true
	}
	return false
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content; empty input is valid and yields an empty block sequence
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	engine Engine
	bare   bool
}

// WithEngine selects the conversion engine.
// Panics on an unknown engine (programmer error, similar to time.NewTicker).
func WithEngine(e Engine) Option {
	if !e.IsValid() {
		panic("md2html: WithEngine requires a known engine")
	}
	return func(s *Service) {
		s.cfg.engine = e
	}
}

// WithBareFragment emits the block sequence without the document shell.
func WithBareFragment() Option {
	return func(s *Service) {
		s.cfg.bare = true
	}
}
