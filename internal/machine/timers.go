package machine

// TimerFrequency is the rate in Hz that Tick is expected to be called at.
const TimerFrequency = 60

// Tick decrements the delay and sound timers if they are not zero.
func (m *Machine) Tick() {
	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}
}

// DelayTimer returns the delay timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.delay
}

// SoundTimer returns the sound timer value.
func (m *Machine) SoundTimer() uint8 {
	return m.sound
}

// SoundActive returns whether the buzzer should sound.
func (m *Machine) SoundActive() bool {
	return m.sound > 0
}
