// Package runner drives a machine: it executes instructions at the configured
// rate, ticks the timers at 60 Hz and presents the framebuffer on redraw.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Renderer presents a framebuffer.
type Renderer interface {
	Render(fb *machine.Framebuffer) error
}

// Result contains statistics of a finished run.
type Result struct {
	Steps          uint64 // calls to Step, including cycles waiting for a key
	Instructions   uint64 // instructions fetched by the machine
	Frames         uint64 // timer ticks
	Redraws        uint64 // frames presented to the renderer
	UnknownOpcodes uint64
}

// Runner owns a machine for the duration of a run and serializes all access to it.
type Runner struct {
	logger   *log.Logger
	machine  *machine.Machine
	renderer Renderer
	opts     options.Runner
}

// New returns a new runner. The renderer can be nil, the redraw signal is
// cleared regardless.
func New(logger *log.Logger, m *machine.Machine, renderer Renderer, opts options.Runner) *Runner {
	return &Runner{
		logger:   logger,
		machine:  m,
		renderer: renderer,
		opts:     opts,
	}
}

// Run executes the machine until the cycle budget is used up, a machine fault
// occurs or the context is cancelled. Execution is split into frames of
// Frequency/60 steps, each frame is followed by a timer tick. Unless the run
// is unthrottled every frame is paced to 1/60 of a second.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var result Result
	stepsPerFrame := r.stepsPerFrame()

	var ticker *time.Ticker
	if !r.opts.Unthrottled {
		ticker = time.NewTicker(time.Second / machine.TimerFrequency)
		defer ticker.Stop()
	}

	r.logger.Debug("Starting emulation",
		log.Uint64("cycles", r.opts.Cycles),
		log.Int("steps_per_frame", stepsPerFrame))

	for {
		if err := ctx.Err(); err != nil {
			return r.finish(result), err
		}

		done, err := r.runFrame(&result, stepsPerFrame)
		if err != nil {
			return r.finish(result), fmt.Errorf("executing program: %w", err)
		}

		r.machine.Tick()
		result.Frames++

		if err := r.present(&result); err != nil {
			return r.finish(result), err
		}
		if done {
			return r.finish(result), nil
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return r.finish(result), ctx.Err()
			case <-ticker.C:
			}
		}
	}
}

// runFrame executes the steps of one frame and returns whether the cycle
// budget is used up.
func (r *Runner) runFrame(result *Result, steps int) (bool, error) {
	for range steps {
		if r.opts.Cycles > 0 && result.Steps >= r.opts.Cycles {
			return true, nil
		}
		if err := r.machine.Step(); err != nil {
			return false, err //nolint:wrapcheck // wrapped by caller
		}
		result.Steps++
	}
	return r.opts.Cycles > 0 && result.Steps >= r.opts.Cycles, nil
}

// present hands the framebuffer to the renderer if it changed.
func (r *Runner) present(result *Result) error {
	if !r.machine.Redraw() {
		return nil
	}
	r.machine.ClearRedraw()
	result.Redraws++

	if r.renderer == nil {
		return nil
	}
	if err := r.renderer.Render(r.machine.Framebuffer()); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}

func (r *Runner) stepsPerFrame() int {
	steps := int(r.opts.Frequency / machine.TimerFrequency)
	return max(steps, 1)
}

func (r *Runner) finish(result Result) Result {
	result.Instructions = r.machine.Cycles()
	result.UnknownOpcodes = r.machine.UnknownOpcodes()
	return result
}
