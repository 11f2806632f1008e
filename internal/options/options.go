// Package options contains the program options.
package options

// DefaultFrequency is the default number of instructions executed per second.
const DefaultFrequency = 700

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input CHIP-8 program file"`
}

// Flags contains behavior options.
type Flags struct {
	System    string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
	Cycles    uint64 `flag:"cycles" usage:"number of cycles to execute, 0 runs until interrupted"`
	Frequency uint   `flag:"hz" usage:"instructions executed per second" default:"700"`
	Seed      uint64 `flag:"seed" usage:"random seed for reproducible runs, 0 seeds from the current time"`
	Fast      bool   `flag:"fast" usage:"do not throttle execution to real time"`
	Display   bool   `flag:"display" usage:"render the display to the console"`
	Trace     bool   `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Debug     bool   `flag:"debug" usage:"enable debug logging"`
	Quiet     bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}

// Runner defines options to control the emulation loop.
type Runner struct {
	Cycles      uint64 // cycles to execute, 0 for no limit
	Frequency   uint   // instructions per second
	Seed        uint64 // random seed, 0 for a time based seed
	Unthrottled bool   // run as fast as possible instead of real time
	Display     bool   // render frames on redraw
	Trace       bool   // log every executed instruction
}

// NewRunner returns a new runner options instance with default options.
func NewRunner() Runner {
	return Runner{
		Frequency: DefaultFrequency,
	}
}
