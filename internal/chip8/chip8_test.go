package chip8

import (
	"errors"
	"testing"

	"github.com/jon-axon/chipolata/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

// romFromWords packs instruction words into a big-endian ROM image.
func romFromWords(words ...uint16) []byte {
	rom := make([]byte, 0, len(words)*2)
	for _, word := range words {
		rom = append(rom, byte(word>>8), byte(word))
	}
	return rom
}

// newTestVM returns an interpreter with a deterministic random source and
// the given instruction words loaded at the program start address.
func newTestVM(t *testing.T, settings options.Settings, words ...uint16) *Interpreter {
	t.Helper()

	settings.RandSeed = 1
	vm := New(settings)
	assert.NoError(t, vm.Load(romFromWords(words...)))
	return vm
}

func stepN(t *testing.T, vm *Interpreter, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		assert.NoError(t, vm.Step())
	}
}

func TestNew(t *testing.T) {
	vm := New(options.DefaultSettings())

	assert.Equal(t, StatusReady, vm.Status())
	assert.Equal(t, uint16(options.DefaultProgramStart), vm.PC())
	assert.Equal(t, uint64(0), vm.Cycles())

	// the built-in font glyphs are present in the reserved region
	value, err := vm.memory.ReadByte(FontStart)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xF0), value)
}

func TestLoad(t *testing.T) {
	vm := New(options.DefaultSettings())
	assert.NoError(t, vm.Load([]byte{0x12, 0x34}))

	word, err := vm.memory.ReadWord(options.DefaultProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), word)
}

func TestLoad_TooLarge(t *testing.T) {
	vm := New(options.DefaultSettings())
	rom := make([]byte, MemorySize-options.DefaultProgramStart+1)

	err := vm.Load(rom)
	assert.Error(t, err)

	var tooLarge *RomTooLargeError
	assert.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, len(rom), tooLarge.Size)
}

func TestLoad_ResetsState(t *testing.T) {
	vm := newTestVM(t, options.DefaultSettings(), 0x6142, 0x00E0)
	stepN(t, vm, 2)
	assert.Equal(t, uint8(0x42), vm.Register(1))

	assert.NoError(t, vm.Load(romFromWords(0x1200)))

	assert.Equal(t, uint8(0), vm.Register(1))
	assert.Equal(t, uint16(options.DefaultProgramStart), vm.PC())
	assert.Equal(t, uint64(0), vm.Cycles())
	assert.Equal(t, StatusReady, vm.Status())
}

func TestStep(t *testing.T) {
	vm := newTestVM(t, options.DefaultSettings(), 0x6142)
	stepN(t, vm, 1)

	assert.Equal(t, uint16(0x202), vm.PC())
	assert.Equal(t, uint64(1), vm.Cycles())
	assert.Equal(t, uint8(0x42), vm.Register(1))
}

func TestStep_UnknownOpcodeHalts(t *testing.T) {
	vm := newTestVM(t, options.DefaultSettings(), 0x0123)

	err := vm.Step()
	assert.Error(t, err)
	assert.Equal(t, StatusHalted, vm.Status())

	var haltErr *HaltError
	assert.True(t, errors.As(err, &haltErr))
	assert.Equal(t, uint16(0x200), haltErr.PC)
	assert.Equal(t, uint16(0x0123), haltErr.Opcode)

	var unknown *UnknownOpcodeError
	assert.True(t, errors.As(err, &unknown))

	// halting is final, every further step returns the same error
	assert.Equal(t, err, vm.Step())
	assert.Equal(t, uint64(1), vm.Cycles())
}

func TestStep_StackOverflowHalts(t *testing.T) {
	// the program calls itself endlessly
	vm := newTestVM(t, options.DefaultSettings(), 0x2200)
	stepN(t, vm, StackDepth)

	err := vm.Step()
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, StatusHalted, vm.Status())
}

func TestStep_ReturnWithEmptyStackHalts(t *testing.T) {
	vm := newTestVM(t, options.DefaultSettings(), 0x00EE)

	err := vm.Step()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, StatusHalted, vm.Status())
}

func TestStep_CallAndReturn(t *testing.T) {
	vm := newTestVM(t, options.DefaultSettings(),
		0x2204, // 0x200: call 0x204
		0x0000, // 0x202: unreachable
		0x00EE, // 0x204: return
	)

	stepN(t, vm, 1)
	assert.Equal(t, uint16(0x204), vm.PC())

	stepN(t, vm, 1)
	assert.Equal(t, uint16(0x202), vm.PC())
}

func TestStep_KeyWait(t *testing.T) {
	vm := newTestVM(t, options.DefaultSettings(), 0xF50A, 0x6142)

	// a key held before the wait starts must not complete it
	assert.NoError(t, vm.SetKey(0x3, true))

	stepN(t, vm, 1)
	assert.Equal(t, StatusWaitingForKey, vm.Status())
	assert.Equal(t, uint16(0x200), vm.PC())

	// steps while waiting make no progress
	stepN(t, vm, 3)
	assert.Equal(t, uint16(0x200), vm.PC())
	assert.Equal(t, uint64(1), vm.Cycles())

	// a fresh press completes the wait and stores the key
	assert.NoError(t, vm.SetKey(0x3, false))
	assert.NoError(t, vm.SetKey(0x3, true))

	stepN(t, vm, 1)
	assert.Equal(t, StatusReady, vm.Status())
	assert.Equal(t, uint16(0x202), vm.PC())
	assert.Equal(t, uint8(0x3), vm.Register(5))
}

func TestTickTimers(t *testing.T) {
	vm := newTestVM(t, options.DefaultSettings(),
		0x610A, // v1 = 10
		0xF115, // delay timer = v1
		0xF118, // sound timer = v1
	)
	stepN(t, vm, 3)
	assert.Equal(t, uint8(10), vm.DelayTimer())
	assert.Equal(t, uint8(10), vm.SoundTimer())
	assert.True(t, vm.SoundActive())

	for i := 0; i < 10; i++ {
		vm.TickTimers()
	}
	assert.Equal(t, uint8(0), vm.DelayTimer())
	assert.Equal(t, uint8(0), vm.SoundTimer())
	assert.False(t, vm.SoundActive())

	// timers stop at zero instead of wrapping around
	vm.TickTimers()
	assert.Equal(t, uint8(0), vm.DelayTimer())
	assert.Equal(t, uint8(0), vm.SoundTimer())
}

func TestDisplayUpdated(t *testing.T) {
	vm := newTestVM(t, options.DefaultSettings(), 0x00E0)
	assert.False(t, vm.DisplayUpdated())

	stepN(t, vm, 1)
	assert.True(t, vm.DisplayUpdated())

	// the flag resets after being read
	assert.False(t, vm.DisplayUpdated())
}

func TestExportSnapshot(t *testing.T) {
	vm := newTestVM(t, options.DefaultSettings(),
		0x6142, // v1 = 0x42
		0xA300, // i = 0x300
	)
	stepN(t, vm, 2)

	snapshot := vm.ExportSnapshot()
	assert.Equal(t, uint8(0x42), snapshot.V[1])
	assert.Equal(t, uint16(0x300), snapshot.I)
	assert.Equal(t, uint16(0x204), snapshot.PC)
	assert.Equal(t, uint64(2), snapshot.Cycles)
	assert.Equal(t, StatusReady, snapshot.Status)
	assert.Equal(t, 0, snapshot.StackDepth)
	assert.Equal(t, uint8(0x61), snapshot.Memory[0x200])
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusReady, "ready"},
		{StatusWaitingForKey, "waiting for key"},
		{StatusHalted, "halted"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.String())
	}
}
