package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Engine != "blocks" {
		t.Errorf("Engine = %q, want %q", cfg.Engine, "blocks")
	}
	if cfg.Output.Bare {
		t.Error("Output.Bare = true, want false")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads a file path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "md2html.yaml")
		content := "engine: gfm\noutput:\n  bare: true\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error: %v", err)
		}
		if cfg.Engine != "gfm" {
			t.Errorf("Engine = %q, want %q", cfg.Engine, "gfm")
		}
		if !cfg.Output.Bare {
			t.Error("Output.Bare = false, want true")
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig(%q) error = %v, want ErrConfigNotFound", path, err)
		}
	})

	t.Run("unresolvable name lists tried paths", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("definitely-not-a-real-config-name")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("LoadConfig(name) error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "md2html.yaml")
		if err := os.WriteFile(path, []byte("engine: blocks\nbogus: 1\n"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "md2html.yaml")
		if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})
}
