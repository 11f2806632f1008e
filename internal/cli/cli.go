// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

var errInvalidFrequency = errors.New("instruction frequency must be greater than 0")

// ParseFlags parses command line flags and returns program and runner options
func ParseFlags() (options.Program, options.Runner, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, options.Runner{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Runner{}, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	if opts.Frequency == 0 {
		return opts, options.Runner{}, errInvalidFrequency
	}

	return opts, createRunnerOptions(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage message and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// createRunnerOptions creates runner options based on program options
func createRunnerOptions(opts options.Program) options.Runner {
	runOpts := options.NewRunner()
	runOpts.Cycles = opts.Cycles
	runOpts.Frequency = opts.Frequency
	runOpts.Seed = opts.Seed
	runOpts.Unthrottled = opts.Fast
	runOpts.Display = opts.Display
	runOpts.Trace = opts.Trace
	return runOpts
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.SetOutput(discard{})
	flags.StringVar(&opts.Input, "i", "", "name of the input CHIP-8 program file")
	flags.StringVar(&opts.System, "s", "", "system to emulate (chip8) - if not auto-detected from file extension")
	flags.Uint64Var(&opts.Cycles, "cycles", 0, "number of cycles to execute, 0 runs until interrupted")
	flags.UintVar(&opts.Frequency, "hz", options.DefaultFrequency, "instructions executed per second")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random seed for reproducible runs, 0 seeds from the current time")
	flags.BoolVar(&opts.Fast, "fast", false, "do not throttle execution to real time")
	flags.BoolVar(&opts.Display, "display", false, "render the display to the console")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// discard swallows the flag package error output, parse errors are reported
// through the usage message instead.
type discard struct{}

func (discard) Write(p []byte) (int, error) {
	return len(p), nil
}
