// Package options contains the program options.
package options

const (
	// DefaultClockHz is the default interpreter speed in instructions per second.
	// CHIP-8 has no canonical clock speed; 720 matches common historical usage.
	DefaultClockHz = 720

	// DefaultProgramStart is the memory address where programs are loaded
	// and begin execution.
	DefaultProgramStart = 0x200
)

// Quirks enumerates the documented points of behavioral divergence among
// historical CHIP-8 interpreters. Each toggle alters exactly one ambiguous
// instruction behavior.
type Quirks struct {
	// ShiftUsesSourceRegister makes 8XY6/8XYE copy VY into VX before
	// shifting, as the original COSMAC VIP interpreter did. When false the
	// shift operates on VX alone (CHIP-48 behavior).
	ShiftUsesSourceRegister bool

	// LoadStoreIncrementsIndex makes FX55/FX65 leave I incremented by X+1,
	// as the original interpreter did. When false I is left unchanged.
	LoadStoreIncrementsIndex bool

	// DrawWrapsAtEdges makes DXYN wrap sprites around the display edges
	// instead of clipping them.
	DrawWrapsAtEdges bool

	// JumpWithOffsetUsesVX makes BNNN jump to XNN+VX (CHIP-48 behavior)
	// instead of NNN+V0.
	JumpWithOffsetUsesVX bool
}

// Settings holds the interpreter construction options.
type Settings struct {
	// ProgramStart is the address at which ROMs are loaded and execution
	// begins. Runtime writes below this address are rejected.
	ProgramStart uint16

	// Quirks selects the behavior for ambiguous instructions.
	Quirks Quirks

	// RandSeed seeds the random byte source used by CXKK. A zero value
	// selects a time-based seed.
	RandSeed int64
}

// DefaultSettings returns interpreter settings matching the original
// COSMAC VIP interpreter behavior.
func DefaultSettings() Settings {
	return Settings{
		ProgramStart: DefaultProgramStart,
		Quirks: Quirks{
			ShiftUsesSourceRegister:  true,
			LoadStoreIncrementsIndex: true,
		},
	}
}

// Program contains the command line options of the emulator.
type Program struct {
	Input string // ROM file to run

	ClockHz int // instructions per second
	Seed    int64

	Scale      int    // window pixel size per CHIP-8 pixel
	Foreground string // foreground color as RRGGBB hex
	Background string // background color as RRGGBB hex

	ShiftSource        bool
	LoadStoreIncrement bool
	DrawWrap           bool
	JumpVX             bool

	Disasm bool // disassemble the ROM instead of running it
	Debug  bool
	Quiet  bool
}

// Settings converts the program options into interpreter settings.
func (p Program) Settings() Settings {
	return Settings{
		ProgramStart: DefaultProgramStart,
		Quirks: Quirks{
			ShiftUsesSourceRegister:  p.ShiftSource,
			LoadStoreIncrementsIndex: p.LoadStoreIncrement,
			DrawWrapsAtEdges:         p.DrawWrap,
			JumpWithOffsetUsesVX:     p.JumpVX,
		},
		RandSeed: p.Seed,
	}
}
