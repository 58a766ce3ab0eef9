package chip8

import (
	"errors"
	"fmt"
)

// Stack nesting violations halt the run. CHIP-8 execution is deterministic,
// so a repeated failure indicates a non-conformant program, not a transient
// condition.
var (
	ErrStackOverflow  = errors.New("call stack overflow")
	ErrStackUnderflow = errors.New("call stack underflow")
)

// RomTooLargeError is returned when a ROM image does not fit into the memory
// available above the program load address. The load is refused and the
// interpreter stays usable.
type RomTooLargeError struct {
	Size int // ROM size in bytes
	Free int // bytes available at the load address
}

func (e *RomTooLargeError) Error() string {
	return fmt.Sprintf("ROM size %d exceeds available memory %d", e.Size, e.Free)
}

// OutOfBoundsError is returned when a memory access falls outside the
// addressable space or a runtime write targets the reserved interpreter
// region below the program load address.
type OutOfBoundsError struct {
	Address uint16
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("memory address %#04x out of bounds", e.Address)
}

// UnknownOpcodeError is returned when an instruction word matches no known
// CHIP-8 bit pattern. Malformed ROMs are surfaced rather than silently
// skipped so they stay diagnosable.
type UnknownOpcodeError struct {
	Opcode uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %#04x", e.Opcode)
}

// InvalidKeyError is returned when a key ordinal outside the CHIP-8 keypad
// range 0x0-0xF is referenced.
type InvalidKeyError struct {
	Key uint8
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key %#x", e.Key)
}

// InvalidGlyphError is returned by FX29 when the requested font glyph digit
// is outside the range 0x0-0xF.
type InvalidGlyphError struct {
	Digit uint8
}

func (e *InvalidGlyphError) Error() string {
	return fmt.Sprintf("no font glyph for digit %#x", e.Digit)
}

// HaltError wraps any failure raised during a step. It records the program
// counter and instruction word of the failing opcode plus the cycle count
// for diagnosis. Once raised, the interpreter stays halted and every further
// Step returns the same error.
type HaltError struct {
	PC     uint16
	Opcode uint16
	Cycles uint64
	Err    error
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("halted at pc %#04x opcode %#04x cycle %d: %s",
		e.PC, e.Opcode, e.Cycles, e.Err)
}

func (e *HaltError) Unwrap() error {
	return e.Err
}
