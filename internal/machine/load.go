package machine

import "fmt"

// Load copies the program image into memory starting at ProgramStart.
// A program larger than MaxProgramSize is rejected before any byte is copied
// and the returned error wraps ErrProgramTooLarge.
// Registers, stack and program counter are not touched, call Reset first for
// a clean start.
func (m *Machine) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(m.memory[ProgramStart:], program)
	return nil
}
