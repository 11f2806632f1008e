package machine

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected string
	}{
		{"clear screen", 0x00E0, chip8.ClsName},
		{"return", 0x00EE, chip8.RetName},
		{"jump", 0x1234, chip8.JpName},
		{"call", 0x2345, chip8.CallName},
		{"draw", 0xD125, chip8.DrwName},
		{"skip if pressed", 0xE19E, chip8.SkpName},
		{"skip if not pressed", 0xE1A1, chip8.SknpName},
		{"unknown", 0x812F, unknownMnemonic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mnemonic(tt.opcode))
		})
	}
}

func TestFaultErrorMessage(t *testing.T) {
	err := &FaultError{
		Err: ErrStackOverflow,
		State: State{
			PC:     0x234,
			Opcode: 0x2200,
			SP:     StackSize,
		},
	}
	assert.ErrorContains(t, err, "stack overflow at $0234")
	assert.ErrorContains(t, err, chip8.CallName)
	assert.ErrorContains(t, err, "sp 16")

	err = &FaultError{
		Err:   ErrProgramCounterOutOfBounds,
		State: State{PC: 0xFFF},
	}
	assert.Equal(t, "program counter out of bounds: pc $0FFF, sp 0", err.Error())
}
