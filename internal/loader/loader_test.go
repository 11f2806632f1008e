package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLoad(t *testing.T) {
	t.Run("load program file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		loader := New()
		data, err := loader.Load(programOptions(tmpFile))
		assert.NoError(t, err)
		assert.Len(t, data, 4)
		assert.Equal(t, byte(0x12), data[0])
		assert.Equal(t, byte(0x78), data[3])
	})

	t.Run("oversized file is truncated after the limit", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, 2*machine.MemorySize))

		loader := New()
		data, err := loader.Load(programOptions(tmpFile))
		assert.NoError(t, err)
		assert.Len(t, data, machine.MaxProgramSize+1)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		_, err := loader.Load(programOptions("/nonexistent/file.ch8"))
		assert.Error(t, err)
		assert.ErrorContains(t, err, "opening file")
	})
}

func TestLoadInto(t *testing.T) {
	t.Run("resets and loads", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x60, 0x2A})

		m := machine.New(log.NewTestLogger(t))
		assert.NoError(t, m.Load([]byte{0x1F, 0x00}))
		assert.NoError(t, m.Step())
		assert.Equal(t, uint16(0xF00), m.PC())

		loader := New()
		assert.NoError(t, loader.LoadInto(m, programOptions(tmpFile)))
		assert.Equal(t, uint16(machine.ProgramStart), m.PC())
		assert.Equal(t, byte(0x60), m.Memory(machine.ProgramStart))
		assert.Equal(t, byte(0x2A), m.Memory(machine.ProgramStart+1))
	})

	t.Run("program too large", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, machine.MaxProgramSize+1))

		m := machine.New(log.NewTestLogger(t))
		loader := New()
		err := loader.LoadInto(m, programOptions(tmpFile))
		assert.Error(t, err)
		assert.True(t, errors.Is(err, machine.ErrProgramTooLarge))
	})
}

func programOptions(input string) options.Program {
	return options.Program{
		Parameters: options.Parameters{Input: input},
	}
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
