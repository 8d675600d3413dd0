package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2html command.
type cliFlags struct {
	config  string
	engine  string
	bare    bool
	verbose bool
	version bool
}

// parseFlags parses command-line flags and returns the remaining
// positional arguments (input path, output path).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)

	f := &cliFlags{}
	fs.StringVar(&f.config, "config", "", "config name or YAML file path")
	fs.StringVar(&f.engine, "engine", "", `conversion engine: "blocks" or "gfm"`)
	fs.BoolVar(&f.bare, "bare", false, "emit the block fragment without the <html><body> shell")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: md2html [flags] <input.md> <output.html>")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
