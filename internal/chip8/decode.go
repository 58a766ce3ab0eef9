package chip8

// Op identifies one of the canonical CHIP-8 operations.
type Op uint8

// The canonical CHIP-8 operations. Multi-variant opcode families (0x8XY_,
// 0xEX__, 0xFX__) decode to one Op per variant.
const (
	OpCls     Op = iota // 00E0 clear the display
	OpRet               // 00EE return from subroutine
	OpJp                // 1NNN jump to address
	OpCall              // 2NNN call subroutine
	OpSeByte            // 3XKK skip if VX == KK
	OpSneByte           // 4XKK skip if VX != KK
	OpSeReg             // 5XY0 skip if VX == VY
	OpLdByte            // 6XKK set VX = KK
	OpAddByte           // 7XKK set VX = VX + KK
	OpLdReg             // 8XY0 set VX = VY
	OpOr                // 8XY1 set VX = VX | VY
	OpAnd               // 8XY2 set VX = VX & VY
	OpXor               // 8XY3 set VX = VX ^ VY
	OpAddReg            // 8XY4 set VX = VX + VY, VF = carry
	OpSub               // 8XY5 set VX = VX - VY, VF = not borrow
	OpShr               // 8XY6 shift right, VF = shifted out bit
	OpSubn              // 8XY7 set VX = VY - VX, VF = not borrow
	OpShl               // 8XYE shift left, VF = shifted out bit
	OpSneReg            // 9XY0 skip if VX != VY
	OpLdI               // ANNN set I = NNN
	OpJpOffset          // BNNN jump with register offset
	OpRnd               // CXKK set VX = random byte & KK
	OpDrw               // DXYN draw sprite, VF = collision
	OpSkp               // EX9E skip if key VX pressed
	OpSknp              // EXA1 skip if key VX not pressed
	OpLdVxDt            // FX07 set VX = delay timer
	OpLdKey             // FX0A wait for key press, store key in VX
	OpLdDtVx            // FX15 set delay timer = VX
	OpLdStVx            // FX18 set sound timer = VX
	OpAddI              // FX1E set I = I + VX
	OpLdFont            // FX29 set I = font glyph address for digit VX
	OpBcd               // FX33 store BCD of VX at I, I+1, I+2
	OpLdMemV            // FX55 store V0..VX at I
	OpLdVMem            // FX65 load V0..VX from I
)

// Instruction is a decoded instruction word with its extracted operand
// fields. Decoding is separated from execution so the dispatch can be
// tested in isolation from state mutation.
type Instruction struct {
	Op   Op
	Word uint16 // the raw instruction word

	X   uint8  // second nibble, register index
	Y   uint8  // third nibble, register index
	N   uint8  // lowest nibble
	KK  uint8  // lowest byte
	NNN uint16 // lowest 12 bits, address
}

// Decode identifies the operation encoded in a 16-bit instruction word and
// extracts its operand fields. Bit patterns matching none of the 34
// executable CHIP-8 operations fail with UnknownOpcodeError; this includes
// the 0NNN machine code call, which no modern interpreter supports.
func Decode(word uint16) (Instruction, error) {
	in := Instruction{
		Word: word,
		X:    uint8(word >> 8 & 0xF),
		Y:    uint8(word >> 4 & 0xF),
		N:    uint8(word & 0xF),
		KK:   uint8(word & 0xFF),
		NNN:  word & 0xFFF,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			in.Op = OpCls
		case 0x00EE:
			in.Op = OpRet
		default:
			return in, &UnknownOpcodeError{Opcode: word}
		}
	case 0x1:
		in.Op = OpJp
	case 0x2:
		in.Op = OpCall
	case 0x3:
		in.Op = OpSeByte
	case 0x4:
		in.Op = OpSneByte
	case 0x5:
		if in.N != 0 {
			return in, &UnknownOpcodeError{Opcode: word}
		}
		in.Op = OpSeReg
	case 0x6:
		in.Op = OpLdByte
	case 0x7:
		in.Op = OpAddByte
	case 0x8:
		switch in.N {
		case 0x0:
			in.Op = OpLdReg
		case 0x1:
			in.Op = OpOr
		case 0x2:
			in.Op = OpAnd
		case 0x3:
			in.Op = OpXor
		case 0x4:
			in.Op = OpAddReg
		case 0x5:
			in.Op = OpSub
		case 0x6:
			in.Op = OpShr
		case 0x7:
			in.Op = OpSubn
		case 0xE:
			in.Op = OpShl
		default:
			return in, &UnknownOpcodeError{Opcode: word}
		}
	case 0x9:
		if in.N != 0 {
			return in, &UnknownOpcodeError{Opcode: word}
		}
		in.Op = OpSneReg
	case 0xA:
		in.Op = OpLdI
	case 0xB:
		in.Op = OpJpOffset
	case 0xC:
		in.Op = OpRnd
	case 0xD:
		in.Op = OpDrw
	case 0xE:
		switch in.KK {
		case 0x9E:
			in.Op = OpSkp
		case 0xA1:
			in.Op = OpSknp
		default:
			return in, &UnknownOpcodeError{Opcode: word}
		}
	case 0xF:
		switch in.KK {
		case 0x07:
			in.Op = OpLdVxDt
		case 0x0A:
			in.Op = OpLdKey
		case 0x15:
			in.Op = OpLdDtVx
		case 0x18:
			in.Op = OpLdStVx
		case 0x1E:
			in.Op = OpAddI
		case 0x29:
			in.Op = OpLdFont
		case 0x33:
			in.Op = OpBcd
		case 0x55:
			in.Op = OpLdMemV
		case 0x65:
			in.Op = OpLdVMem
		default:
			return in, &UnknownOpcodeError{Opcode: word}
		}
	}
	return in, nil
}
