package game

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/addemup/internal/args"
	"github.com/lox/addemup/internal/config"
	"github.com/lox/addemup/internal/fileutil"
	"github.com/lox/addemup/internal/hand"
	"github.com/lox/addemup/internal/winner"
)

// Report describes a finished run.
type Report struct {
	Outcome    winner.Outcome
	Result     string        // text written (or meant to be written) to the output file
	OutputPath string        // resolved output path, empty when none could be found
	Written    bool          // whether Result reached the output file
	Err        error         // why the run collapsed to ERROR, nil on success
	Elapsed    time.Duration // wall time measured on the runner's clock
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithClock sets the clock used to time runs
func WithClock(clock quartz.Clock) RunnerOption {
	return func(r *Runner) { r.clock = clock }
}

// WithWorkdir sets the directory relative paths are resolved against
func WithWorkdir(dir string) RunnerOption {
	return func(r *Runner) { r.workdir = dir }
}

// Runner executes the single-pass pipeline: arguments, paths, input file,
// validation, resolution, formatting and the final write. Any failure
// collapses the result to ERROR and skips the remaining stages.
type Runner struct {
	logger  *log.Logger
	clock   quartz.Clock
	workdir string
}

// NewRunner creates a runner logging to logger
func NewRunner(logger *log.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Runner{
		logger: logger,
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workdir == "" {
		if wd, err := os.Getwd(); err == nil {
			r.workdir = wd
		}
	}
	return r
}

// Run executes one game for argv (without the program name).
func (r *Runner) Run(ctx context.Context, argv []string) Report {
	start := r.clock.Now()

	report := r.run(ctx, argv)
	report.Elapsed = r.clock.Since(start)

	if report.Err != nil {
		r.logger.Error("Game failed", "kind", KindOf(report.Err), "error", report.Err)
	}
	r.logger.Debug("Run complete", "result", report.Result, "written", report.Written, "elapsed", report.Elapsed)
	return report
}

func (r *Runner) run(ctx context.Context, argv []string) Report {
	a, err := args.Parse(argv)
	if err != nil {
		report := r.fail(fmt.Errorf("%w: %w", ErrArgument, err))
		if out, ok := args.OutputPath(argv); ok {
			r.deliver(&report, fileutil.Resolve(r.workdir, out), true)
		}
		return report
	}

	cfg := r.loadConfig(a.Config)

	inPath := fileutil.Resolve(r.workdir, a.In)
	outPath := fileutil.Resolve(r.workdir, a.Out)
	r.logger.Debug("Resolved paths", "in", inPath, "out", outPath)

	if err := fileutil.RequireFile(outPath); err != nil {
		return r.fail(fmt.Errorf("%w: output: %w", ErrPath, err))
	}
	if err := fileutil.RequireFile(inPath); err != nil {
		report := r.fail(fmt.Errorf("%w: input: %w", ErrPath, err))
		r.deliver(&report, outPath, cfg.Atomic())
		return report
	}

	report := r.play(ctx, inPath, cfg)
	r.deliver(&report, outPath, cfg.Atomic())
	return report
}

func (r *Runner) play(ctx context.Context, inPath string, cfg *config.Config) Report {
	lines, err := fileutil.ReadLines(inPath)
	if err != nil {
		return r.fail(fmt.Errorf("%w: %w", ErrPath, err))
	}

	hands, err := hand.Validate(lines)
	if err != nil {
		return r.fail(fmt.Errorf("%w: %w", ErrFormat, err))
	}
	r.logger.Debug("Hands validated", "players", hands.Players())

	outcome, err := winner.NewResolver(r.logger, cfg.Settings.Workers).Resolve(ctx, hands)
	if err != nil {
		return r.fail(fmt.Errorf("%w: %w", ErrUnexpected, err))
	}

	r.logger.Info("Winner decided", "outcome", outcome.Kind, "winners", len(outcome.Winners))
	return Report{Outcome: outcome, Result: winner.Format(outcome)}
}

func (r *Runner) loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		r.logger.Warn("Ignoring config file", "path", path, "error", err)
		cfg = config.DefaultConfig()
	}
	r.logger.SetLevel(cfg.Level())
	return cfg
}

func (r *Runner) fail(err error) Report {
	outcome := winner.InvalidOutcome()
	return Report{Outcome: outcome, Result: winner.Format(outcome), Err: err}
}

// deliver writes the report's result to an existing output file. A missing
// output file leaves the run silent apart from the log.
func (r *Runner) deliver(report *Report, outPath string, atomic bool) {
	if err := fileutil.RequireFile(outPath); err != nil {
		r.logger.Warn("No output file to report to", "path", outPath, "error", err)
		return
	}
	report.OutputPath = outPath

	write := fileutil.OverwriteFile
	if atomic {
		write = fileutil.OverwriteFileAtomic
	}
	if err := write(outPath, []byte(report.Result)); err != nil {
		r.logger.Error("Failed to write result", "path", outPath, "error", err)
		return
	}
	report.Written = true
}
