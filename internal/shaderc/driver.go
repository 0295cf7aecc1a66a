package shaderc

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/spvbuild/internal/shader"
)

// Policy decides whether compile failures are reported to the caller.
type Policy int

const (
	// IgnoreFailures logs failed compiles and keeps going; Run still returns nil.
	IgnoreFailures Policy = iota
	// ReportFailures keeps going as well but returns the joined failures once
	// the whole batch has been attempted.
	ReportFailures
)

// Failure records one descriptor that did not compile.
type Failure struct {
	Descriptor shader.Descriptor
	Err        error
}

// Summary describes the outcome of a batch.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Failures  []Failure
}

// Driver compiles every descriptor of a registry, one process at a time.
type Driver struct {
	Compiler     Compiler
	Runner       Runner
	SourceRoot   string
	OutputRoot   string
	Policy       Policy
	StrictStages bool // Skip descriptors whose source has no recognized stage
	DryRun       bool // Log commands without running them

	log *zap.Logger
}

// NewDriver creates a driver with the default compiler and an exec runner.
func NewDriver(sourceRoot, outputRoot string, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{
		Compiler:   DefaultCompiler(),
		Runner:     ExecRunner{},
		SourceRoot: sourceRoot,
		OutputRoot: outputRoot,
		log:        log,
	}
}

// Run compiles the registry in order. The only error that stops the batch is
// failing to create the output directory; everything else is recorded in the
// summary and, under ReportFailures, returned after the last descriptor.
func (d *Driver) Run(reg *shader.Registry) (Summary, error) {
	log := d.log
	if log == nil {
		log = zap.NewNop()
	}

	summary := Summary{Total: reg.Len()}

	if !d.DryRun {
		if err := ensureDir(d.OutputRoot); err != nil {
			return summary, err
		}
	}

	for _, desc := range reg.Descriptors() {
		if d.StrictStages {
			if err := desc.ValidateStrict(); err != nil {
				log.Warn("skipping shader", zap.String("shader", desc.Name()), zap.Error(err))
				summary.Skipped++
				summary.Failures = append(summary.Failures, Failure{Descriptor: desc, Err: err})
				continue
			}
		} else if !desc.Stage().Known() {
			log.Debug("source has no stage extension",
				zap.String("shader", desc.Name()),
				zap.String("source", desc.Source()),
				zap.String("output", desc.OutputFilename()))
		}

		cmd, err := d.Compiler.Compose(desc, d.SourceRoot, d.OutputRoot)
		if err != nil {
			log.Warn("failed to compose command", zap.Error(err))
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Descriptor: desc, Err: err})
			continue
		}

		log.Info(cmd.String())
		if d.DryRun {
			summary.Skipped++
			continue
		}

		if err := d.Runner.Run(d.Compiler.Path, cmd.Args()); err != nil {
			log.Warn("shader compile failed",
				zap.String("shader", desc.Name()),
				zap.String("output", cmd.Output),
				zap.Error(err))
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Descriptor: desc, Err: err})
			continue
		}
		summary.Succeeded++
	}

	log.Debug("batch finished",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped))

	if d.Policy == ReportFailures && len(summary.Failures) > 0 {
		return summary, summary.Err()
	}
	return summary, nil
}

// Err joins all recorded failures, or returns nil when there are none.
func (s Summary) Err() error {
	errs := make([]error, 0, len(s.Failures))
	for _, f := range s.Failures {
		errs = append(errs, fmt.Errorf("%s: %w", f.Descriptor.OutputFilename(), f.Err))
	}
	return errors.Join(errs...)
}

// ensureDir creates dir (one level) when it does not exist yet.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output path %s is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("checking output directory: %w", err)
	}
	if err := os.Mkdir(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}
