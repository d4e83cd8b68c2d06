// Package main is the entry point for p4edit.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/saibendi/p4-editor/internal/config"
	"github.com/saibendi/p4-editor/internal/engine"
	"github.com/saibendi/p4-editor/internal/logging"
	"github.com/saibendi/p4-editor/internal/plugin/lua"
	"github.com/saibendi/p4-editor/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	logLevel    string
	logFile     string
	script      string
	exec        []string
	json        bool
	showVersion bool
	file        string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "p4edit %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	if err := execute(ctx, opts, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("p4edit", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.StringVarP(&opts.script, "script", "s", "", "Run a Lua script against the buffer and exit")
	fs.StringArrayVarP(&opts.exec, "exec", "e", nil, "Run a buffer command and exit (repeatable)")
	fs.BoolVar(&opts.json, "json", false, "Print the final state as JSON")
	fs.BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "p4edit - cursor-addressable text buffer\n\n")
		fmt.Fprintf(stderr, "Usage: p4edit [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  p4edit notes.txt                     Edit a copy of notes.txt\n")
		fmt.Fprintf(stderr, "  p4edit -e 'insert hi' -e backward    Run commands and print the text\n")
		fmt.Fprintf(stderr, "  p4edit -s edit.lua --json notes.txt  Run a script and print the state\n")
		fmt.Fprintf(stderr, "  echo forward | p4edit notes.txt      Read commands from stdin\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		return opts, errors.Errorf("expected at most one file, got %d", fs.NArg())
	}
	return opts, nil
}

func execute(ctx context.Context, opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	headless := isHeadless(opts, stdin, stdout)

	// The interactive screen owns the terminal, so logs only go to a file there.
	fallback := stderr
	if !headless {
		fallback = nil
	}
	log, closeLog, err := logging.New(cfg.Log.Level, cfg.Log.File, fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	var content string
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return errors.Annotatef(err, "reading %s", opts.file)
		}
		content = string(data)
	}

	eng := engine.New(
		engine.WithContent(content),
		engine.WithLogger(logging.Component(log, "engine")),
	)
	log.Info().Str("engine", eng.ID()).Str("file", opts.file).Bool("headless", headless).Msg("starting")

	if !headless {
		return interactive(ctx, eng, cfg, log)
	}

	switch {
	case opts.script != "" || len(opts.exec) > 0:
		if err := runExec(eng, opts.exec); err != nil {
			return err
		}
		if opts.script != "" {
			if err := runScript(ctx, eng, opts.script, stdout, log); err != nil {
				return err
			}
		}
	default:
		if err := runStdin(ctx, eng, stdin); err != nil {
			return err
		}
	}
	return printState(eng, opts.json, stdout)
}

func loadConfig(opts options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isHeadless reports whether to run without the screen: when commands come
// from flags, or when stdin or stdout is not a terminal.
func isHeadless(opts options, stdin io.Reader, stdout io.Writer) bool {
	if opts.script != "" || len(opts.exec) > 0 {
		return true
	}
	return !isTerminal(stdin) || !isTerminal(stdout)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runExec(eng *engine.Engine, lines []string) error {
	for _, line := range lines {
		if _, err := eng.Exec(line); err != nil {
			return errors.Annotatef(err, "exec %q", line)
		}
	}
	return nil
}

func runScript(ctx context.Context, eng *engine.Engine, path string, stdout io.Writer, log zerolog.Logger) error {
	state := lua.NewState(lua.WithOutput(stdout))
	defer state.Close()
	state.Bind(eng)

	log.Debug().Str("script", path).Msg("running script")
	if err := state.DoFile(ctx, path); err != nil {
		return errors.Annotatef(err, "script %s", path)
	}
	return nil
}

// runStdin executes one command per input line. Blank lines and lines
// starting with '#' are skipped.
func runStdin(ctx context.Context, eng *engine.Engine, stdin io.Reader) error {
	sc := bufio.NewScanner(stdin)
	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := sc.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		if _, err := eng.Exec(line); err != nil {
			return errors.Annotatef(err, "line %d", lineNo)
		}
	}
	return errors.Trace(sc.Err())
}

func printState(eng *engine.Engine, asJSON bool, stdout io.Writer) error {
	if !asJSON {
		_, err := io.WriteString(stdout, eng.Text())
		return err
	}
	state, err := eng.StateJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, state)
	return err
}

func interactive(ctx context.Context, eng *engine.Engine, cfg *config.Config, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Annotate(err, "creating screen")
	}
	t, err := backend.NewTerminal(screen, eng, cfg, logging.Component(log, "terminal"))
	if err != nil {
		return err
	}
	if err := t.Init(); err != nil {
		return errors.Annotate(err, "initializing terminal")
	}
	defer t.Shutdown()

	err = t.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
