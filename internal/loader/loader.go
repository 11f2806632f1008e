// Package loader handles program file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
)

// Loader handles loading program files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw program image of the input file. CHIP-8 programs have
// no header, the file content is the program. At most one byte more than fits
// into memory is read, so that oversized programs are still detected by the
// machine without reading arbitrarily large files.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, machine.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}
	return data, nil
}

// LoadInto resets the machine and loads the program of the input file into it.
func (l *Loader) LoadInto(m *machine.Machine, opts options.Program) error {
	data, err := l.Load(opts)
	if err != nil {
		return err
	}

	m.Reset()
	if err := m.Load(data); err != nil {
		return fmt.Errorf("loading program %s: %w", opts.Input, err)
	}
	return nil
}
