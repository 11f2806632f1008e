// Package machine implements the CHIP-8 virtual machine.
//
// # Machine State
//
// A Machine owns the complete mutable state of one virtual machine:
//   - 4KB of memory (0x000-MaxAddress), the font table lives at 0x000-0x04F
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as flag register
//   - the 16-bit index register I and the program counter
//   - a 16 entry return address stack
//   - delay and sound timers
//   - a 64x32 monochrome framebuffer and the redraw signal
//
// Multiple machines can exist side by side, there is no package level state.
//
// # Execution
//
// Step executes exactly one fetch-decode-execute cycle. The program counter is
// advanced before the instruction executes, jumps and calls overwrite it.
// Fatal faults (program counter out of bounds, stack overflow or underflow)
// halt the machine and are returned as *FaultError. Unknown opcodes are logged
// and counted but do not stop execution.
//
// # Collaborators
//
// Timers are decremented by calling Tick at 60 Hz, the keypad is injected as a
// Keypad implementation and random bytes for CXNN come from an injectable
// RandomSource, which makes runs replayable when seeded.
//
// # Usage Example
//
//	m := machine.New(logger)
//	if err := m.Load(program); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if err := m.Step(); err != nil {
//			return fmt.Errorf("executing program: %w", err)
//		}
//		if m.Redraw() {
//			render(m.Framebuffer())
//			m.ClearRedraw()
//		}
//	}
package machine
