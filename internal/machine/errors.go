package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrProgramTooLarge is returned by Load when the program does not fit into
	// the memory between ProgramStart and MaxAddress.
	ErrProgramTooLarge = errors.New("program too large")

	// ErrProgramCounterOutOfBounds is a fatal fault raised when the instruction
	// at the program counter would be read past the end of memory.
	ErrProgramCounterOutOfBounds = errors.New("program counter out of bounds")

	// ErrStackOverflow is a fatal fault raised by a call with a full stack.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is a fatal fault raised by a return with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// State is a value snapshot of the machine registers.
type State struct {
	PC         uint16
	Opcode     uint16 // last fetched opcode
	I          uint16
	SP         uint8
	V          [RegisterCount]uint8
	Stack      [StackSize]uint16
	DelayTimer uint8
	SoundTimer uint8
}

// FaultError is a fatal machine fault. It wraps one of the fault sentinel
// errors and carries the machine state at the time of the fault, with PC set
// to the address of the faulting instruction.
type FaultError struct {
	Err   error
	State State
}

func (e *FaultError) Error() string {
	if errors.Is(e.Err, ErrProgramCounterOutOfBounds) {
		return fmt.Sprintf("%s: pc $%04X, sp %d", e.Err, e.State.PC, e.State.SP)
	}
	return fmt.Sprintf("%s at $%04X: opcode $%04X (%s), sp %d",
		e.Err, e.State.PC, e.State.Opcode, Mnemonic(e.State.Opcode), e.State.SP)
}

// Unwrap returns the fault sentinel error.
func (e *FaultError) Unwrap() error {
	return e.Err
}
