// Package main is the entry point for the graphedit demo editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/graphedit/internal/engine"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	eng, err := newEngine(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load %s: %v\n", opts.LoadPath, err)
		return 1
	}

	ed, err := newEditor(eng, opts.SavePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer ed.shutdown()

	if err := ed.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func newEngine(opts options) (*engine.Engine, error) {
	engOpts := []engine.Option{
		engine.WithMaxUndoEntries(opts.MaxUndo),
	}

	if opts.LoadPath == "" {
		return engine.New(engOpts...), nil
	}

	data, err := os.ReadFile(opts.LoadPath)
	if err != nil {
		return nil, err
	}
	return engine.NewFromJSON(data, engOpts...)
}

type options struct {
	LoadPath string
	SavePath string
	MaxUndo  int
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.LoadPath, "load", "", "Path to a graph JSON file to open")
	flag.StringVar(&opts.SavePath, "save", "graph.json", "Path the 's' key saves the graph to")
	flag.IntVar(&opts.MaxUndo, "max-undo", 0, "Maximum undo entries (0 for default)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "graphedit - reversible graph editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: graphedit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  arrows/hjkl  Move the cursor\n")
		fmt.Fprintf(os.Stderr, "  n            Add a node at the cursor\n")
		fmt.Fprintf(os.Stderr, "  e            Pick edge endpoints (press on two nodes)\n")
		fmt.Fprintf(os.Stderr, "  u / r        Undo / redo\n")
		fmt.Fprintf(os.Stderr, "  s            Save the graph as JSON\n")
		fmt.Fprintf(os.Stderr, "  q            Quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("graphedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}
