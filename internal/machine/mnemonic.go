package machine

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

const unknownMnemonic = "unknown"

// lookupInstruction returns the instruction definition matching the opcode
// or nil if the opcode is not part of the instruction set.
func lookupInstruction(opcode uint16) *chip8.Instruction {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

// Mnemonic returns the instruction name of the opcode, for example "jp" for 0x1234.
func Mnemonic(opcode uint16) string {
	ins := lookupInstruction(opcode)
	if ins == nil {
		return unknownMnemonic
	}
	return ins.Name
}
