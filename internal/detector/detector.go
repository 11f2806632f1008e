// Package detector selects the system to emulate for a program file.
package detector

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnknownSystem is returned for a system option that names no known system.
var ErrUnknownSystem = errors.New("unknown system")

// extensions maps file extensions to systems. CHIP-8 programs are headerless,
// so the extension is the only hint about the content of a file.
var extensions = map[string]arch.System{
	".ch8": arch.CHIP8System,
	".c8":  arch.CHIP8System,
	".rom": arch.CHIP8System,
	".nes": arch.NES,
}

// Detector selects the system from options or the program file name.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns the system named by the system option. Without option the
// system is derived from the input file extension, unknown extensions are
// treated as CHIP-8 programs.
func (d *Detector) Detect(opts options.Program) (arch.System, error) {
	if opts.System != "" {
		system, err := arch.SystemFromString(opts.System)
		if err != nil {
			return "", fmt.Errorf("%w '%s': %w", ErrUnknownSystem, opts.System, err)
		}
		return system, nil
	}

	ext := strings.ToLower(filepath.Ext(opts.Input))
	system, ok := extensions[ext]
	if !ok {
		system = arch.CHIP8System
	}

	d.logger.Debug("Auto-detected system",
		log.Stringer("system", system),
		log.String("file", opts.Input),
		log.String("extension", ext))
	return system, nil
}
