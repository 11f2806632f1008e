package machine

// Keypad provides the state of the 16 key hexadecimal keypad.
type Keypad interface {
	// IsPressed returns whether the key 0x0-0xF is currently held down.
	IsPressed(key uint8) bool
}

// Keys is a Keypad backed by a plain key state vector.
type Keys [KeyCount]bool

// IsPressed returns whether the given key is held down. Keys outside of 0x0-0xF are never pressed.
func (k *Keys) IsPressed(key uint8) bool {
	if key >= KeyCount {
		return false
	}
	return k[key]
}

// Press marks the given key as held down. Keys outside of 0x0-0xF are ignored.
func (k *Keys) Press(key uint8) {
	if key < KeyCount {
		k[key] = true
	}
}

// Release marks the given key as released. Keys outside of 0x0-0xF are ignored.
func (k *Keys) Release(key uint8) {
	if key < KeyCount {
		k[key] = false
	}
}

// pollKey completes a pending FX0A key wait if any key is held down.
// The lowest pressed key is stored in the waiting register.
func (m *Machine) pollKey() {
	for key := uint8(0); key < KeyCount; key++ {
		if !m.keypad.IsPressed(key) {
			continue
		}
		m.v[m.waitRegister] = key
		m.awaitingKey = false
		return
	}
}
