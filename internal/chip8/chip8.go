// Package chip8 implements the CHIP-8 interpreter core: the
// fetch-decode-execute cycle, the memory/register/stack data model, the
// monochrome framebuffer and the timer subsystem.
//
// The core is single-threaded, synchronous and host-agnostic. The host
// calls Step at its own cadence (historically 500-1000 instructions per
// second) and TickTimers at a fixed 60 Hz driven by a wall clock; the core
// never paces itself. ROM loading, rendering, keyboard mapping and audio
// are the host's responsibility.
package chip8

import (
	"math/rand"
	"time"

	"github.com/jon-axon/chipolata/internal/options"
)

// Status is the execution state of the interpreter.
type Status int

const (
	// StatusReady means the next Step will execute an instruction.
	StatusReady Status = iota
	// StatusWaitingForKey means a key-wait instruction suspended execution;
	// Step is a no-op until the keypad reports a new press.
	StatusWaitingForKey
	// StatusHalted means a failure stopped the run; the host decides
	// whether to reset, reload or abort.
	StatusHalted
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusWaitingForKey:
		return "waiting for key"
	case StatusHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// Interpreter is a complete CHIP-8 machine state. All components are owned
// by one instance so multiple interpreters can run independently. No
// concurrent access is permitted; a host running the interpreter on a
// dedicated goroutine must route any cross-thread interaction through that
// goroutine or a mutex guarding the whole state.
type Interpreter struct {
	memory  Memory
	display Display
	stack   Stack
	keypad  Keypad

	v  [16]uint8 // general purpose registers V0-VF
	i  uint16    // index register
	pc uint16    // program counter

	delayTimer uint8
	soundTimer uint8

	cycles  uint64
	status  Status
	haltErr error
	waitReg uint8 // target register of a pending key-wait

	displayUpdated bool

	settings options.Settings
	rng      *rand.Rand
}

// New returns an interpreter with cleared state and the built-in font
// written to memory. No program is loaded yet; Load must be called before
// stepping.
func New(settings options.Settings) *Interpreter {
	if settings.ProgramStart == 0 {
		settings.ProgramStart = options.DefaultProgramStart
	}
	seed := settings.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	vm := &Interpreter{
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
	}
	vm.reset()
	return vm
}

// reset returns every component to its power-on state and rewrites the font
// glyphs.
func (vm *Interpreter) reset() {
	vm.memory.clear()
	vm.display.Clear()
	vm.stack.clear()
	vm.keypad.clear()
	vm.v = [16]uint8{}
	vm.i = 0
	vm.pc = vm.settings.ProgramStart
	vm.delayTimer = 0
	vm.soundTimer = 0
	vm.cycles = 0
	vm.status = StatusReady
	vm.haltErr = nil
	vm.displayUpdated = false

	// font data lives in the reserved interpreter region
	_ = vm.memory.WriteBytes(FontStart, fontData)
}

// Load resets the interpreter and copies a ROM image to the program load
// address. A ROM exceeding the available memory is refused with
// RomTooLargeError and leaves the interpreter reset but empty.
func (vm *Interpreter) Load(rom []byte) error {
	vm.reset()
	free := MemorySize - int(vm.settings.ProgramStart)
	if len(rom) > free {
		return &RomTooLargeError{Size: len(rom), Free: free}
	}
	return vm.memory.WriteBytes(vm.settings.ProgramStart, rom)
}

// Step runs one fetch-decode-execute cycle and returns control to the host.
//
// In the waiting-for-key state Step is a no-op until a key press has been
// reported, at which point the key index is stored and execution resumes.
// Any failure transitions the interpreter to the halted state and is
// returned as a HaltError carrying the failing opcode and program counter;
// every subsequent Step returns the same error.
func (vm *Interpreter) Step() error {
	switch vm.status {
	case StatusHalted:
		return vm.haltErr

	case StatusWaitingForKey:
		key, ok := vm.keypad.takeWaitPress()
		if !ok {
			return nil
		}
		vm.v[vm.waitReg] = key
		vm.pc += 2
		vm.status = StatusReady
		return nil
	}

	vm.cycles++

	opPC := vm.pc
	word, err := vm.memory.ReadWord(opPC)
	if err != nil {
		return vm.halt(opPC, 0, err)
	}
	vm.pc += 2

	in, err := Decode(word)
	if err != nil {
		return vm.halt(opPC, word, err)
	}
	if err := vm.execute(in); err != nil {
		return vm.halt(opPC, word, err)
	}
	return nil
}

// halt transitions the interpreter to the halted state. There is no
// automatic recovery.
func (vm *Interpreter) halt(pc, opcode uint16, err error) error {
	vm.status = StatusHalted
	vm.haltErr = &HaltError{PC: pc, Opcode: opcode, Cycles: vm.cycles, Err: err}
	return vm.haltErr
}

// TickTimers decrements the delay and sound timers by one, floored at zero.
// The host calls this at a fixed 60 Hz independent of the Step cadence.
func (vm *Interpreter) TickTimers() {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}
}

// SetKey reports a key press or release from the host. Key state is
// instantaneous and consumed by the key-skip and key-wait instructions.
func (vm *Interpreter) SetKey(key uint8, pressed bool) error {
	return vm.keypad.SetKey(key, pressed)
}

// Status returns the current execution state.
func (vm *Interpreter) Status() Status {
	return vm.status
}

// PC returns the current program counter.
func (vm *Interpreter) PC() uint16 {
	return vm.pc
}

// Cycles returns the number of executed fetch-decode-execute cycles.
func (vm *Interpreter) Cycles() uint64 {
	return vm.cycles
}

// Register returns the value of general purpose register VX.
func (vm *Interpreter) Register(x uint8) uint8 {
	return vm.v[x&0xF]
}

// DelayTimer returns the current delay timer value.
func (vm *Interpreter) DelayTimer() uint8 {
	return vm.delayTimer
}

// SoundTimer returns the current sound timer value.
func (vm *Interpreter) SoundTimer() uint8 {
	return vm.soundTimer
}

// SoundActive reports whether the host should play a tone. The core does
// not generate audio itself.
func (vm *Interpreter) SoundActive() bool {
	return vm.soundTimer > 0
}

// Pixels returns a copy of the framebuffer reflecting only completed draw
// operations.
func (vm *Interpreter) Pixels() Pixels {
	return vm.display.Snapshot()
}

// DisplayUpdated reports whether a draw or clear happened since the last
// call, and resets the flag. Hosts use this to skip redundant renders.
func (vm *Interpreter) DisplayUpdated() bool {
	updated := vm.displayUpdated
	vm.displayUpdated = false
	return updated
}

// Snapshot is a copy of the complete interpreter state for host inspection
// or debugging.
type Snapshot struct {
	Pixels     Pixels
	Memory     [MemorySize]byte
	V          [16]uint8
	I          uint16
	PC         uint16
	StackDepth int
	DelayTimer uint8
	SoundTimer uint8
	Cycles     uint64
	Status     Status
}

// ExportSnapshot returns a copy of the current interpreter state.
func (vm *Interpreter) ExportSnapshot() Snapshot {
	return Snapshot{
		Pixels:     vm.display.Snapshot(),
		Memory:     vm.memory.bytes,
		V:          vm.v,
		I:          vm.i,
		PC:         vm.pc,
		StackDepth: vm.stack.Depth(),
		DelayTimer: vm.delayTimer,
		SoundTimer: vm.soundTimer,
		Cycles:     vm.cycles,
		Status:     vm.status,
	}
}
