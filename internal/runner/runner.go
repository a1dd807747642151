package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gc-derive/internal/common"
	"gc-derive/internal/derive"
	"gc-derive/internal/descriptor"
	"gc-derive/internal/emit"
)

// Config holds the settings of one run. Flags set here are combined with
// the header of the descriptor file.
type Config struct {
	// Input is the path of the descriptor file.
	Input string
	// OutputDir is where rendered files are written.
	OutputDir string
	// Derive, when set, replaces the capability list of every type.
	Derive []string
	// StrictNames and TraceLeading are enabled when either the flag or
	// the file header enables them.
	StrictNames  bool
	TraceLeading bool
	// Workers limits parallel generation. Zero means GOMAXPROCS.
	Workers int
}

// Result summarizes a successful run.
type Result struct {
	Files   []*emit.GeneratedFile
	Skipped []string // types with nothing to derive
}

// Runner runs generation for one descriptor file.
type Runner struct {
	config Config
	logger *slog.Logger
}

// New creates a Runner. A nil logger discards all output.
func New(config Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{config: config, logger: logger}
}

// Check loads the descriptor file and generates every type without
// writing anything.
func (r *Runner) Check(ctx context.Context) (*Result, error) {
	f, err := descriptor.LoadFile(r.config.Input)
	if err != nil {
		return nil, err
	}

	return r.generate(ctx, f)
}

// Run generates every type and writes the files to the output directory.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	res, err := r.Check(ctx)
	if err != nil {
		return nil, err
	}

	if err := emit.WriteFiles(res.Files, r.config.OutputDir); err != nil {
		return nil, err
	}

	r.logger.Info("generated files",
		slog.Int("count", len(res.Files)),
		slog.String("out", r.config.OutputDir))

	return res, nil
}

// Options returns the generator options for f with the config applied.
func (r *Runner) Options(f *descriptor.File) derive.Options {
	return derive.Options{
		Runtime:      f.Runtime,
		MarkerSuffix: f.MarkerSuffix,
		StrictNames:  f.StrictNames || r.config.StrictNames,
		TraceLeading: f.TraceLeading || r.config.TraceLeading,
	}
}

type typeResult struct {
	file    *emit.GeneratedFile
	skipped bool
	err     error
}

func (r *Runner) generate(ctx context.Context, f *descriptor.File) (*Result, error) {
	if err := checkNames(f); err != nil {
		return nil, err
	}

	opts := r.Options(f)
	e := emit.NewEmitter(emit.Config{Source: filepath.Base(r.config.Input)})

	results := make([]typeResult, len(f.Types))

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range f.Types {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				results[i] = r.generateType(e, f.Types[i], opts)
				return nil
			}
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}

	var errs []error

	for i, tr := range results {
		name := f.Types[i].Descriptor.Name

		switch {
		case tr.err != nil:
			r.logger.Error("generation failed", slog.String("type", name), slog.Any("error", tr.err))
			errs = append(errs, tr.err)
		case tr.skipped:
			r.logger.Warn("nothing to derive", slog.String("type", name))
			res.Skipped = append(res.Skipped, name)
		default:
			r.logger.Debug("generated", slog.String("type", name), slog.String("file", tr.file.Filename))
			res.Files = append(res.Files, tr.file)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return res, nil
}

func (r *Runner) generateType(e *emit.Emitter, entry descriptor.Entry, opts derive.Options) typeResult {
	list := entry.Derive
	if len(r.config.Derive) > 0 {
		list = r.config.Derive
	}

	caps, err := derive.ParseCapabilities(list)
	if err != nil {
		return typeResult{err: fmt.Errorf("type %s: %w", entry.Descriptor.Name, err)}
	}

	if common.IsEmpty(caps) {
		return typeResult{skipped: true}
	}

	blocks, err := derive.GenerateAll(entry.Descriptor, caps, opts)
	if err != nil {
		return typeResult{err: err}
	}

	file, err := e.Generate(entry.Descriptor.Name, blocks)
	if err != nil {
		return typeResult{err: err}
	}

	return typeResult{file: file}
}

// checkNames rejects files in which two types would share an output file.
func checkNames(f *descriptor.File) error {
	seen := make(map[string]string, len(f.Types))

	for i, entry := range f.Types {
		if entry.Descriptor == nil {
			return fmt.Errorf("types[%d]: missing descriptor", i)
		}

		name := entry.Descriptor.Name
		file := emit.FileName(name)

		if prev, ok := seen[file]; ok {
			if prev == name {
				return fmt.Errorf("type %s is declared more than once", name)
			}

			return fmt.Errorf("types %s and %s would both be written to %s", prev, name, file)
		}

		seen[file] = name
	}

	return nil
}
