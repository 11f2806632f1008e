package machine

// spriteWidth is the number of pixels per sprite row, one per bit.
const spriteWidth = 8

// draw XORs a sprite of height rows read from memory at I onto the
// framebuffer at (Vx, Vy). The origin and every pixel wrap around both display
// axes independently. VF is set to 1 if any set pixel was turned off and to 0
// otherwise.
func (m *Machine) draw(x, y, height uint8) {
	originX := int(m.v[x]) % DisplayWidth
	originY := int(m.v[y]) % DisplayHeight
	m.v[flagRegister] = 0

	for row := range int(height) {
		sprite := m.memory[m.indexAddress(uint16(row))]
		py := (originY + row) % DisplayHeight

		for col := range spriteWidth {
			if sprite&(0x80>>col) == 0 {
				continue
			}

			px := (originX + col) % DisplayWidth
			index := px + py*DisplayWidth
			if m.display[index] == 1 {
				m.v[flagRegister] = 1
			}
			m.display[index] ^= 1
		}
	}

	m.redraw = true
}
