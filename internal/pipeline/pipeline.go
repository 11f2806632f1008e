// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the input program and runs it. Frames are rendered to the
// writer if the display is enabled.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, runOpts options.Runner,
	writer io.Writer) (runner.Result, error) {

	system, err := p.detector.Detect(opts)
	if err != nil {
		return runner.Result{}, fmt.Errorf("detecting system: %w", err)
	}
	if system != arch.CHIP8System {
		return runner.Result{}, fmt.Errorf("unsupported system '%s'", system)
	}

	m := config.CreateMachine(p.logger, runOpts)
	if err := p.loader.LoadInto(m, opts); err != nil {
		return runner.Result{}, fmt.Errorf("loading program: %w", err)
	}

	return p.ExecuteWithMachine(ctx, m, opts, runOpts, writer)
}

// ExecuteWithMachine runs a machine that already has a program loaded.
// This is useful for testing and programmatic usage where the program is
// already in memory.
func (p *Pipeline) ExecuteWithMachine(ctx context.Context, m *machine.Machine, opts options.Program,
	runOpts options.Runner, writer io.Writer) (runner.Result, error) {

	var renderer runner.Renderer
	if runOpts.Display {
		renderer = display.New(writer, !runOpts.Unthrottled)
	}

	p.printInfo(opts, runOpts)

	r := runner.New(p.logger, m, renderer, runOpts)
	result, err := r.Run(ctx)
	p.printResult(opts, result)
	if err != nil {
		return result, fmt.Errorf("running program: %w", err)
	}
	return result, nil
}

// printInfo prints information about the program being run.
func (p *Pipeline) printInfo(opts options.Program, runOpts options.Runner) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.Uint64("hz", uint64(runOpts.Frequency)),
		log.Uint64("cycles", runOpts.Cycles))
}

// printResult prints the statistics of a finished run.
func (p *Pipeline) printResult(opts options.Program, result runner.Result) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Emulation finished",
		log.Uint64("steps", result.Steps),
		log.Uint64("instructions", result.Instructions),
		log.Uint64("frames", result.Frames),
		log.Uint64("redraws", result.Redraws))
	if result.UnknownOpcodes > 0 {
		p.logger.Warn("Program used unsupported opcodes",
			log.Uint64("count", result.UnknownOpcodes))
	}
}
