// Package disasm provides a CHIP-8 ROM disassembler.
// It identifies opcodes using the canonical CHIP-8 instruction table and
// prints one assembly line per instruction word. Words matching no known
// instruction are emitted as data bytes.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Disasm disassembles CHIP-8 ROM images.
type Disasm struct {
	baseAddress uint16
}

// New returns a disassembler emitting addresses relative to the given
// program load address.
func New(baseAddress uint16) *Disasm {
	return &Disasm{baseAddress: baseAddress}
}

// Process writes the disassembly of the ROM image to the writer.
func (d *Disasm) Process(w io.Writer, rom []byte) error {
	for offset := 0; offset < len(rom); offset += opcodeSize {
		address := d.baseAddress + uint16(offset)

		// a trailing odd byte can not form an instruction word
		if offset+1 >= len(rom) {
			if _, err := fmt.Fprintf(w, "$%04X: .byte $%02X\n", address, rom[offset]); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			break
		}

		word := uint16(rom[offset])<<8 | uint16(rom[offset+1])
		line := d.formatWord(word)
		if _, err := fmt.Fprintf(w, "$%04X: %s\n", address, line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

// formatWord formats a single instruction word as assembly code, or as data
// bytes if it matches no known instruction.
func (d *Disasm) formatWord(word uint16) string {
	opcode, ok := lookupOpcode(word)
	if !ok || opcode.Instruction == nil {
		return fmt.Sprintf(".byte $%02X, $%02X", word>>8, word&0xFF)
	}

	name := opcode.Instruction.Name
	if params := formatInstruction(name, word); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// lookupOpcode matches an instruction word against the canonical CHIP-8
// opcode table.
func lookupOpcode(word uint16) (chip8.Opcode, bool) {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value {
			return op, true
		}
	}
	return chip8.Opcode{}, false
}

// formatInstruction formats a CHIP-8 instruction with its parameters.
// Returns the formatted parameter string for the given instruction.
func formatInstruction(name string, opcode uint16) string {
	switch name {
	case chip8.ClsName, chip8.RetName:
		return "" // No parameters
	case chip8.JpName:
		return formatJumpInstruction(opcode)
	case chip8.CallName:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.SeName, chip8.SneName:
		return formatCompareInstruction(opcode)
	case chip8.LdName:
		return formatLoadInstruction(opcode)
	case chip8.AddName:
		return formatAddInstruction(opcode)
	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName:
		return formatBinaryInstruction(opcode)
	case chip8.ShrName, chip8.ShlName:
		return formatShiftInstruction(opcode)
	case chip8.RndName:
		return formatRandomInstruction(opcode)
	case chip8.DrwName:
		return formatDrawInstruction(opcode)
	case chip8.SkpName, chip8.SknpName:
		return formatSkipInstruction(opcode)
	}
	return ""
}

// formatJumpInstruction formats jump instructions (JP addr, JP V0+addr).
func formatJumpInstruction(opcode uint16) string {
	if opcode&0xF000 == 0x1000 {
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	}
	if opcode&0xF000 == 0xB000 {
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return ""
}

// formatCompareInstruction formats comparison instructions (SE, SNE).
func formatCompareInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	// SE/SNE instructions:
	// 3XNN: SE Vx, byte
	// 4XNN: SNE Vx, byte
	// 5XY0: SE Vx, Vy
	// 9XY0: SNE Vx, Vy
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x5000, 0x9000:
		y := extractRegisterY(opcode)
		return fmt.Sprintf("V%X, V%X", x, y)
	}
	return ""
}

// formatLoadInstruction formats the load instruction family, covering the
// register, index, timer, key, font, BCD and register dump/load variants.
func formatLoadInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		y := extractRegisterY(opcode)
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	case 0xF000:
		switch opcode & 0x00FF {
		case 0x07:
			return fmt.Sprintf("V%X, DT", x)
		case 0x0A:
			return fmt.Sprintf("V%X, K", x)
		case 0x15:
			return fmt.Sprintf("DT, V%X", x)
		case 0x18:
			return fmt.Sprintf("ST, V%X", x)
		case 0x29:
			return fmt.Sprintf("F, V%X", x)
		case 0x33:
			return fmt.Sprintf("B, V%X", x)
		case 0x55:
			return fmt.Sprintf("[I], V%X", x)
		case 0x65:
			return fmt.Sprintf("V%X, [I]", x)
		}
	}
	return ""
}

// formatAddInstruction formats add instructions (ADD Vx, byte/Vy and ADD I, Vx).
func formatAddInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		y := extractRegisterY(opcode)
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0xF000:
		return fmt.Sprintf("I, V%X", x)
	}
	return ""
}

// formatBinaryInstruction formats binary operation instructions (OR, AND, XOR, SUB, SUBN).
func formatBinaryInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	y := extractRegisterY(opcode)
	return fmt.Sprintf("V%X, V%X", x, y)
}

// formatShiftInstruction formats shift instructions (SHR, SHL).
func formatShiftInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	y := extractRegisterY(opcode)
	return fmt.Sprintf("V%X, V%X", x, y)
}

// formatRandomInstruction formats random number instructions (RND).
func formatRandomInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
}

// formatDrawInstruction formats draw instructions (DRW).
func formatDrawInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	y := extractRegisterY(opcode)
	n := opcode & 0x000F
	return fmt.Sprintf("V%X, V%X, $%X", x, y, n)
}

// formatSkipInstruction formats skip instructions (SKP, SKNP).
func formatSkipInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	return fmt.Sprintf("V%X", x)
}

// extractRegisterX extracts the X register nibble from a CHIP-8 opcode.
func extractRegisterX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

// extractRegisterY extracts the Y register nibble from a CHIP-8 opcode.
func extractRegisterY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}

// Mnemonic returns the assembly representation of a single instruction
// word, for diagnostics and trace logging.
func Mnemonic(word uint16) string {
	var d Disasm
	return strings.TrimSpace(d.formatWord(word))
}
