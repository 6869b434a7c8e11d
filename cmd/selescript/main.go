// Package main is the entry point for the selescript command.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/kdouveno/selescript/internal/config"
	"github.com/kdouveno/selescript/internal/logging"
	"github.com/kdouveno/selescript/internal/selection"
	"github.com/kdouveno/selescript/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Options holds the parsed command line.
type Options struct {
	ConfigPath string
	ScriptsDir string
	LogLevel   string
	Script     string
	Selections []selection.Selection
	Diff       bool
	JSON       bool
	Clipboard  bool
	DryRun     bool

	Command string
	File    string
}

// selectionFlag collects repeated -s values.
type selectionFlag struct {
	sels *[]selection.Selection
}

func (f selectionFlag) String() string {
	if f.sels == nil {
		return ""
	}
	parts := make([]string, len(*f.sels))
	for i, s := range *f.sels {
		parts[i] = terminal.FormatSelection(s)
	}
	return strings.Join(parts, ",")
}

func (f selectionFlag) Set(v string) error {
	s, err := terminal.ParseSelection(v)
	if err != nil {
		return err
	}
	*f.sels = append(*f.sels, s)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.ScriptsDir != "" {
		cfg.ScriptsDir = opts.ScriptsDir
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Level(),
		Output: os.Stderr,
		Prefix: config.AppName,
		Color:  cfg.Color,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	a, err := newApp(cfg, opts, logger, cfg.Color && isatty.IsTerminal(os.Stderr.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer a.Close()

	if err := a.Execute(ctx); err != nil {
		if err != errUsage {
			logger.Debug("%s failed: %v", opts.Command, err)
		} else {
			flag.Usage()
		}
		return 1
	}
	return 0
}

func parseFlags() Options {
	var opts Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ScriptsDir, "scripts", "", "Scripts directory (overrides config)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.Var(selectionFlag{sels: &opts.Selections}, "s", "Selection as line:col-line:col, 1-based (repeatable)")
	flag.StringVar(&opts.Script, "script", "", "Script to run, skipping the picker")
	flag.BoolVar(&opts.Diff, "diff", false, "Print a diff of the changes")
	flag.BoolVar(&opts.JSON, "json", false, "Print the run result as JSON")
	flag.BoolVar(&opts.Clipboard, "clipboard", false, "Use the clipboard as the document")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "Print the result instead of saving it")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "selescript - run Lua scripts on text selections\n\n")
		fmt.Fprintf(os.Stderr, "Usage: selescript [options] create|edit|list|config|run [file]|watch file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  selescript create                      Create a script from the template\n")
		fmt.Fprintf(os.Stderr, "  selescript -s 1:1-1:6 run notes.txt    Pick a script and run it on a selection\n")
		fmt.Fprintf(os.Stderr, "  selescript -script upper -clipboard run\n")
		fmt.Fprintf(os.Stderr, "  selescript -script upper watch notes.txt Preview a script on every save\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("selescript %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.Command = flag.Arg(0)
	opts.File = flag.Arg(1)
	return opts
}
