package machine

import (
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// CHIP-8 memory layout and register file constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: Font glyphs for the hexadecimal digits
//	0x050-0x1FF: Reserved interpreter area
//	0x200-0xFFF: Program space (3584 bytes)
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// ProgramStart is the address programs are loaded to and the reset value of the program counter.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general-purpose V registers.
	RegisterCount = 16

	// StackSize is the number of return addresses the stack can hold.
	StackSize = 16

	// DisplayWidth is the framebuffer width in pixels.
	DisplayWidth = 64

	// DisplayHeight is the framebuffer height in pixels.
	DisplayHeight = 32

	// KeyCount is the number of keys on the hexadecimal keypad.
	KeyCount = 16
)

// flagRegister is the index of VF, which receives carry, borrow and collision flags.
const flagRegister = 0xF

// Framebuffer holds one byte per pixel with value 0 or 1, row-major, indexed by x + y*DisplayWidth.
type Framebuffer [DisplayWidth * DisplayHeight]uint8

// Machine is a CHIP-8 virtual machine instance.
// A Machine must only be used from one goroutine at a time, Step and Tick
// have to be serialized by the caller.
type Machine struct {
	logger *log.Logger
	keypad Keypad
	random RandomSource
	trace  bool

	memory  [MemorySize]byte
	v       [RegisterCount]uint8
	i       uint16
	pc      uint16
	opcode  uint16
	stack   [StackSize]uint16
	sp      uint8
	delay   uint8
	sound   uint8
	display Framebuffer
	redraw  bool

	awaitingKey  bool
	waitRegister uint8

	fault           *FaultError
	cycles          uint64
	unknownOpcodes  uint64
	reportedOpcodes set.Set[uint16] // unknown opcodes that have been logged already
}

// Dependencies contains the collaborators a Machine uses.
// Nil fields keep the current collaborator.
type Dependencies struct {
	Keypad Keypad
	Random RandomSource
}

// New returns a new machine in reset state. It reads keys from an internal
// Keys instance and uses a random source seeded from the current time until
// other dependencies are injected.
func New(logger *log.Logger) *Machine {
	m := &Machine{
		logger: logger,
		keypad: &Keys{},
		random: NewRandom(uint64(time.Now().UnixNano())),
	}
	m.Reset()
	return m
}

// InjectDependencies sets the collaborators of the machine.
func (m *Machine) InjectDependencies(deps Dependencies) {
	if deps.Keypad != nil {
		m.keypad = deps.Keypad
	}
	if deps.Random != nil {
		m.random = deps.Random
	}
}

// SetTrace enables debug logging of every executed instruction.
func (m *Machine) SetTrace(enabled bool) {
	m.trace = enabled
}

// Reset initializes all machine state to its power-on values: memory is
// cleared and seeded with the font table, registers, stack, timers and
// framebuffer are zeroed and the program counter is set to ProgramStart.
// Injected dependencies are kept.
func (m *Machine) Reset() {
	m.memory = [MemorySize]byte{}
	copy(m.memory[FontStart:], font[:])

	m.v = [RegisterCount]uint8{}
	m.i = 0
	m.pc = ProgramStart
	m.opcode = 0
	m.stack = [StackSize]uint16{}
	m.sp = 0
	m.delay = 0
	m.sound = 0
	m.display = Framebuffer{}
	m.redraw = false

	m.awaitingKey = false
	m.waitRegister = 0

	m.fault = nil
	m.cycles = 0
	m.unknownOpcodes = 0
	m.reportedOpcodes = set.New[uint16]()
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the index register.
func (m *Machine) I() uint16 {
	return m.i
}

// SP returns the stack pointer, which is the number of return addresses on the stack.
func (m *Machine) SP() uint8 {
	return m.sp
}

// V returns the value of register Vx. Only the low nibble of x is used.
func (m *Machine) V(x uint8) uint8 {
	return m.v[x&0xF]
}

// Memory returns the byte at the given address, wrapped into the address space.
func (m *Machine) Memory(address uint16) byte {
	return m.memory[address&MaxAddress]
}

// Framebuffer returns the framebuffer. The returned array must be treated as read-only.
func (m *Machine) Framebuffer() *Framebuffer {
	return &m.display
}

// Pixel returns whether the pixel at the given coordinates is set.
// Coordinates wrap around the display edges.
func (m *Machine) Pixel(x, y int) bool {
	return m.display[pixelIndex(x, y)] != 0
}

// Redraw returns whether the framebuffer changed since the redraw signal was last cleared.
func (m *Machine) Redraw() bool {
	return m.redraw
}

// ClearRedraw clears the redraw signal after the framebuffer has been presented.
func (m *Machine) ClearRedraw() {
	m.redraw = false
}

// AwaitingKey returns whether the machine is blocked on a key press by a FX0A instruction.
func (m *Machine) AwaitingKey() bool {
	return m.awaitingKey
}

// Halted returns whether a fatal fault stopped the machine.
func (m *Machine) Halted() bool {
	return m.fault != nil
}

// Fault returns the fault that halted the machine or nil.
func (m *Machine) Fault() *FaultError {
	return m.fault
}

// Cycles returns the number of instructions fetched since the last reset.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// UnknownOpcodes returns the number of unknown opcodes executed since the last reset.
func (m *Machine) UnknownOpcodes() uint64 {
	return m.unknownOpcodes
}

// State returns a snapshot of the machine registers.
func (m *Machine) State() State {
	return State{
		PC:         m.pc,
		Opcode:     m.opcode,
		I:          m.i,
		SP:         m.sp,
		V:          m.v,
		Stack:      m.stack,
		DelayTimer: m.delay,
		SoundTimer: m.sound,
	}
}

func pixelIndex(x, y int) int {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return x + y*DisplayWidth
}
