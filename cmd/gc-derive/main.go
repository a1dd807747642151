// Package main provides the CLI entrypoint for gc-derive.
//
// gc-derive reads type descriptors from a YAML file and generates the
// rootable, transplantable, class association and trace implementations
// a garbage-collected runtime needs for each type.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"gc-derive/internal/runner"
)

// CLI is the command tree parsed by kong.
type CLI struct {
	Verbose bool `help:"Log debug output." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate implementations for every type in a descriptor file."`
	Check   CheckCmd   `cmd:"" help:"Validate a descriptor file and run generation without writing files."`
}

// runEnv is bound into every command's Run method.
type runEnv struct {
	ctx    context.Context
	logger *slog.Logger
}

// VersionCmd prints the build version.
type VersionCmd struct{}

// Run prints the version to stdout.
func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

// GenCmd generates and writes the output files for a descriptor file.
type GenCmd struct {
	File         string        `arg:"" help:"Descriptor file." type:"existingfile"`
	Out          string        `help:"Output directory for generated files." default:"./generated" short:"o"`
	Derive       []string      `help:"Capabilities to derive for every type, overriding the file (rootable, transplantable, class, trace)." short:"d"`
	StrictNames  bool          `help:"Fail instead of renaming when an introduced identifier is already declared." name:"strict-names"`
	TraceLeading bool          `help:"Require the trace bound on the first type parameter too." name:"trace-leading"`
	Workers      int           `help:"Parallel generation workers (0 means one per CPU)." default:"0"`
	Watch        bool          `help:"Watch the descriptor file and regenerate on change." short:"w"`
	Debounce     time.Duration `help:"Delay before regenerating after a change." default:"100ms"`
}

// Run generates once, or keeps regenerating until interrupted in watch mode.
func (c *GenCmd) Run(env *runEnv) error {
	r := runner.New(runner.Config{
		Input:        c.File,
		OutputDir:    c.Out,
		Derive:       c.Derive,
		StrictNames:  c.StrictNames,
		TraceLeading: c.TraceLeading,
		Workers:      c.Workers,
	}, env.logger)

	if c.Watch {
		return r.Watch(env.ctx, c.Debounce)
	}

	_, err := r.Run(env.ctx)

	return err
}

// CheckCmd runs generation for a descriptor file without writing output.
type CheckCmd struct {
	File        string   `arg:"" help:"Descriptor file." type:"existingfile"`
	Derive      []string `help:"Capabilities to derive for every type, overriding the file." short:"d"`
	StrictNames bool     `help:"Fail instead of renaming when an introduced identifier is already declared." name:"strict-names"`
}

// Run reports how many types generate cleanly, or fails if any type does not.
func (c *CheckCmd) Run(env *runEnv) error {
	res, err := runner.New(runner.Config{
		Input:       c.File,
		Derive:      c.Derive,
		StrictNames: c.StrictNames,
	}, env.logger).Check(env.ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "ok: %d types generate cleanly, %d skipped\n", len(res.Files), len(res.Skipped))

	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("gc-derive"),
		kong.Description("Generate garbage collector capability implementations from type descriptors."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := kctx.Run(&runEnv{ctx: ctx, logger: newLogger(cli.Verbose)})
	kctx.FatalIfErrorf(err)
}
