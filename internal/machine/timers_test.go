package machine

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTick(t *testing.T) {
	m := newTestMachine(t,
		0x6002, // LD V0, 2
		0xF015, // LD DT, V0
		0x6101, // LD V1, 1
		0xF118, // LD ST, V1
	)
	stepN(t, m, 4)
	assert.True(t, m.SoundActive())

	m.Tick()
	assert.Equal(t, uint8(1), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())
	assert.False(t, m.SoundActive())

	m.Tick()
	m.Tick()
	assert.Equal(t, uint8(0), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())
}
