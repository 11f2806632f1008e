package machine

// execute runs the decoded instruction. The program counter already points
// to the next instruction, address is the location of the executed one.
func (m *Machine) execute(address, opcode uint16) error {
	x := uint8(opcode>>8) & 0x0F
	y := uint8(opcode>>4) & 0x0F
	n := uint8(opcode) & 0x0F
	nn := uint8(opcode)
	nnn := opcode & 0x0FFF

	switch opcode >> 12 {
	case 0x0:
		return m.executeSystem(address, opcode)

	case 0x1: // JP addr
		m.pc = nnn

	case 0x2: // CALL addr
		if m.sp >= StackSize {
			return m.raise(ErrStackOverflow, address, opcode)
		}
		m.stack[m.sp] = m.pc
		m.sp++
		m.pc = nnn

	case 0x3: // SE Vx, byte
		m.skipIf(m.v[x] == nn)

	case 0x4: // SNE Vx, byte
		m.skipIf(m.v[x] != nn)

	case 0x5: // SE Vx, Vy
		if n != 0 {
			m.unknown(address, opcode)
			return nil
		}
		m.skipIf(m.v[x] == m.v[y])

	case 0x6: // LD Vx, byte
		m.v[x] = nn

	case 0x7: // ADD Vx, byte
		m.v[x] = uint8((uint16(m.v[x]) + uint16(nn)) & 0xFF)

	case 0x8:
		m.executeALU(address, opcode, x, y, n)

	case 0x9: // SNE Vx, Vy
		if n != 0 {
			m.unknown(address, opcode)
			return nil
		}
		m.skipIf(m.v[x] != m.v[y])

	case 0xA: // LD I, addr
		m.i = nnn

	case 0xB: // JP V0, addr
		m.pc = (nnn + uint16(m.v[0])) & MaxAddress

	case 0xC: // RND Vx, byte
		m.v[x] = uint8(m.random.Uint32()&0xFF) & nn

	case 0xD: // DRW Vx, Vy, nibble
		m.draw(x, y, n)

	case 0xE:
		m.executeKey(address, opcode, x, nn)

	case 0xF:
		m.executeMisc(address, opcode, x, nn)
	}

	return nil
}

// executeSystem handles the 0NNN instruction family.
func (m *Machine) executeSystem(address, opcode uint16) error {
	switch opcode {
	case 0x00E0: // CLS
		m.display = Framebuffer{}
		m.redraw = true

	case 0x00EE: // RET
		if m.sp == 0 {
			return m.raise(ErrStackUnderflow, address, opcode)
		}
		m.sp--
		m.pc = m.stack[m.sp]

	default: // SYS addr, machine code routines are not supported
		m.unknown(address, opcode)
	}
	return nil
}

// executeALU handles the 8XYN register arithmetic family.
// Flags are computed from the operand values before the instruction and
// written after the result, so VF holds the flag even if x is F.
func (m *Machine) executeALU(address, opcode uint16, x, y, n uint8) {
	vx, vy := m.v[x], m.v[y]

	switch n {
	case 0x0: // LD Vx, Vy
		m.v[x] = vy

	case 0x1: // OR Vx, Vy
		m.v[x] = vx | vy

	case 0x2: // AND Vx, Vy
		m.v[x] = vx & vy

	case 0x3: // XOR Vx, Vy
		m.v[x] = vx ^ vy

	case 0x4: // ADD Vx, Vy
		sum := uint16(vx) + uint16(vy)
		m.v[x] = uint8(sum & 0xFF)
		m.v[flagRegister] = flag(sum > 0xFF)

	case 0x5: // SUB Vx, Vy
		m.v[x] = uint8((uint16(vx) - uint16(vy)) & 0xFF)
		m.v[flagRegister] = flag(vx >= vy)

	case 0x6: // SHR Vx
		m.v[x] = vx >> 1
		m.v[flagRegister] = vx & 0x01

	case 0x7: // SUBN Vx, Vy
		m.v[x] = uint8((uint16(vy) - uint16(vx)) & 0xFF)
		m.v[flagRegister] = flag(vy >= vx)

	case 0xE: // SHL Vx
		m.v[x] = uint8((uint16(vx) << 1) & 0xFF)
		m.v[flagRegister] = vx >> 7

	default:
		m.unknown(address, opcode)
	}
}

// executeKey handles the EXNN keypad skip family. Both instructions poll the
// keypad once and never block.
func (m *Machine) executeKey(address, opcode uint16, x, nn uint8) {
	key := m.v[x] & 0x0F

	switch nn {
	case 0x9E: // SKP Vx
		m.skipIf(m.keypad.IsPressed(key))

	case 0xA1: // SKNP Vx
		m.skipIf(!m.keypad.IsPressed(key))

	default:
		m.unknown(address, opcode)
	}
}

// executeMisc handles the FXNN timer, keypad wait and memory transfer family.
func (m *Machine) executeMisc(address, opcode uint16, x, nn uint8) {
	switch nn {
	case 0x07: // LD Vx, DT
		m.v[x] = m.delay

	case 0x0A: // LD Vx, K
		m.awaitingKey = true
		m.waitRegister = x

	case 0x15: // LD DT, Vx
		m.delay = m.v[x]

	case 0x18: // LD ST, Vx
		m.sound = m.v[x]

	case 0x1E: // ADD I, Vx
		m.i = uint16((uint32(m.i) + uint32(m.v[x])) & 0xFFFF)

	case 0x29: // LD F, Vx
		m.i = FontAddress(m.v[x])

	case 0x33: // LD B, Vx
		value := m.v[x]
		m.memory[m.indexAddress(0)] = value / 100
		m.memory[m.indexAddress(1)] = value / 10 % 10
		m.memory[m.indexAddress(2)] = value % 10

	case 0x55: // LD [I], Vx
		for r := uint8(0); r <= x; r++ {
			m.memory[m.indexAddress(uint16(r))] = m.v[r]
		}

	case 0x65: // LD Vx, [I]
		for r := uint8(0); r <= x; r++ {
			m.v[r] = m.memory[m.indexAddress(uint16(r))]
		}

	default:
		m.unknown(address, opcode)
	}
}
