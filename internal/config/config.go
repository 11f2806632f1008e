// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings.
// Instruction tracing is logged at debug level and therefore enables it.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.Debug || opts.Trace {
		cfg.Level = log.DebugLevel
	} else if opts.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateMachine creates a machine configured by the runner options.
// A non-zero seed makes the random numbers of the machine reproducible.
func CreateMachine(logger *log.Logger, opts options.Runner) *machine.Machine {
	m := machine.New(logger)
	if opts.Seed != 0 {
		m.InjectDependencies(machine.Dependencies{
			Random: machine.NewRandom(opts.Seed),
		})
	}
	m.SetTrace(opts.Trace)
	return m
}
