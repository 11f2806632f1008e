package machine

import (
	"github.com/retroenv/retrogolib/log"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Step executes a single instruction cycle: the opcode at the program counter
// is fetched, the program counter is advanced past it and the instruction is
// executed.
//
// While the machine waits for a key press (FX0A) no instruction is fetched,
// the keypad is polled instead. A halted machine returns its fault again.
// All fatal faults are returned as *FaultError.
func (m *Machine) Step() error {
	if m.fault != nil {
		return m.fault
	}
	if m.awaitingKey {
		m.pollKey()
		return nil
	}

	address := m.pc
	if address > MaxAddress-1 {
		return m.raise(ErrProgramCounterOutOfBounds, address, 0)
	}

	opcode := uint16(m.memory[address])<<8 | uint16(m.memory[address+1])
	m.opcode = opcode
	m.pc += opcodeSize
	m.cycles++

	if m.trace {
		m.logger.Debug("Executing instruction",
			log.Hex("address", address),
			log.Hex("opcode", opcode),
			log.String("instruction", Mnemonic(opcode)))
	}

	return m.execute(address, opcode)
}

// raise halts the machine with a fatal fault for the instruction at address.
// Reporting the fault is left to the caller that receives the error.
func (m *Machine) raise(err error, address, opcode uint16) error {
	state := m.State()
	state.PC = address
	state.Opcode = opcode
	m.fault = &FaultError{
		Err:   err,
		State: state,
	}

	m.logger.Debug("Machine fault",
		log.Err(err),
		log.Hex("address", address),
		log.Hex("opcode", opcode),
		log.Uint8("sp", m.sp))
	return m.fault
}

// unknown reports an opcode that is not part of the instruction set.
// Every distinct opcode is logged once per reset, all occurrences are counted.
func (m *Machine) unknown(address, opcode uint16) {
	m.unknownOpcodes++
	if m.reportedOpcodes.Contains(opcode) {
		return
	}
	m.reportedOpcodes.Add(opcode)

	m.logger.Warn("Unknown opcode",
		log.Hex("address", address),
		log.Hex("opcode", opcode))
}

// skipIf skips the next instruction if the condition is met.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += opcodeSize
	}
}

// indexAddress returns the memory address at the given offset from the index
// register, wrapped into the address space.
func (m *Machine) indexAddress(offset uint16) uint16 {
	return (m.i + offset) & MaxAddress
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
