package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage         = errors.New("usage: md2html <input.md> <output.html>")
	ErrMissingInput  = errors.New("missing input file")
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWriteHTML     = errors.New("failed to write output file")
	ErrUnknownEngine = errors.New("unknown engine")
)

// requiredArgs is the exact number of positional arguments.
const requiredArgs = 2

// run validates arguments, reads the input, converts, and writes the output.
// Input existence is checked before any conversion so a missing input never
// produces a partial output file.
func run(ctx context.Context, flags *cliFlags, positionals []string, stdout, stderr io.Writer) error {
	if len(positionals) != requiredArgs {
		return ErrUsage
	}

	inputPath := positionals[0]
	outputPath := positionals[1]

	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s%s", ErrMissingInput, inputPath, hints.ForMissingInput())
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	engine := md2html.Engine(cfg.Engine)
	if !engine.IsValid() {
		return fmt.Errorf("%w: %q (must be blocks or gfm)", ErrUnknownEngine, cfg.Engine)
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Engine: %s\n", engine)
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	opts := []md2html.Option{md2html.WithEngine(engine)}
	if cfg.Output.Bare {
		opts = append(opts, md2html.WithBareFragment())
	}
	service := md2html.New(opts...)

	html, err := service.Convert(ctx, md2html.Input{Markdown: string(content)})
	if err != nil {
		return err
	}

	// Single write, overwriting any existing file at the output path.
	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil { // #nosec G306 -- generated document, not a secret
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	fmt.Fprintf(stdout, "Created %s\n", outputPath)
	return nil
}

// resolveConfig merges defaults, the optional config file, and flag
// overrides, in that precedence order.
func resolveConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nil))
			}
			return nil, err
		}
		cfg = loaded
		if cfg.Engine == "" {
			cfg.Engine = config.DefaultConfig().Engine
		}
	}

	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.bare {
		cfg.Output.Bare = true
	}

	return cfg, nil
}
