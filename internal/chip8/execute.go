package chip8

// execute applies the effect of a decoded instruction to the interpreter
// state. The program counter has already been advanced past the instruction;
// jumps overwrite it and skips advance it one more instruction.
//
// Arithmetic and shift instructions write the result register before the VF
// flag, so the flag survives when the destination register is VF itself.
func (vm *Interpreter) execute(in Instruction) error {
	switch in.Op {
	case OpCls:
		vm.display.Clear()
		vm.displayUpdated = true

	case OpRet:
		addr, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		vm.pc = addr

	case OpJp:
		vm.pc = in.NNN

	case OpCall:
		if err := vm.stack.Push(vm.pc); err != nil {
			return err
		}
		vm.pc = in.NNN

	case OpSeByte:
		if vm.v[in.X] == in.KK {
			vm.pc += 2
		}

	case OpSneByte:
		if vm.v[in.X] != in.KK {
			vm.pc += 2
		}

	case OpSeReg:
		if vm.v[in.X] == vm.v[in.Y] {
			vm.pc += 2
		}

	case OpLdByte:
		vm.v[in.X] = in.KK

	case OpAddByte:
		vm.v[in.X] += in.KK

	case OpLdReg:
		vm.v[in.X] = vm.v[in.Y]

	case OpOr:
		vm.v[in.X] |= vm.v[in.Y]

	case OpAnd:
		vm.v[in.X] &= vm.v[in.Y]

	case OpXor:
		vm.v[in.X] ^= vm.v[in.Y]

	case OpAddReg:
		sum := uint16(vm.v[in.X]) + uint16(vm.v[in.Y])
		vm.v[in.X] = uint8(sum)
		vm.v[0xF] = flag(sum > 0xFF)

	case OpSub:
		noBorrow := vm.v[in.X] >= vm.v[in.Y]
		vm.v[in.X] -= vm.v[in.Y]
		vm.v[0xF] = flag(noBorrow)

	case OpShr:
		value := vm.shiftSource(in)
		vm.v[in.X] = value >> 1
		vm.v[0xF] = value & 0x01

	case OpSubn:
		noBorrow := vm.v[in.Y] >= vm.v[in.X]
		vm.v[in.X] = vm.v[in.Y] - vm.v[in.X]
		vm.v[0xF] = flag(noBorrow)

	case OpShl:
		value := vm.shiftSource(in)
		vm.v[in.X] = value << 1
		vm.v[0xF] = value >> 7

	case OpSneReg:
		if vm.v[in.X] != vm.v[in.Y] {
			vm.pc += 2
		}

	case OpLdI:
		vm.i = in.NNN

	case OpJpOffset:
		if vm.settings.Quirks.JumpWithOffsetUsesVX {
			vm.pc = in.NNN + uint16(vm.v[in.X])
		} else {
			vm.pc = in.NNN + uint16(vm.v[0])
		}

	case OpRnd:
		vm.v[in.X] = uint8(vm.rng.Intn(0x100)) & in.KK

	case OpDrw:
		sprite, err := vm.memory.ReadBytes(vm.i, int(in.N))
		if err != nil {
			return err
		}
		collision := vm.display.DrawSprite(vm.v[in.X], vm.v[in.Y], sprite,
			vm.settings.Quirks.DrawWrapsAtEdges)
		vm.v[0xF] = flag(collision)
		vm.displayUpdated = true

	case OpSkp:
		pressed, err := vm.keypad.Pressed(vm.v[in.X])
		if err != nil {
			return err
		}
		if pressed {
			vm.pc += 2
		}

	case OpSknp:
		pressed, err := vm.keypad.Pressed(vm.v[in.X])
		if err != nil {
			return err
		}
		if !pressed {
			vm.pc += 2
		}

	case OpLdVxDt:
		vm.v[in.X] = vm.delayTimer

	case OpLdKey:
		// Suspend until the keypad reports a new press; the program
		// counter is rewound so the instruction stays current while
		// waiting.
		vm.pc -= 2
		vm.waitReg = in.X
		vm.keypad.beginWait()
		vm.status = StatusWaitingForKey

	case OpLdDtVx:
		vm.delayTimer = vm.v[in.X]

	case OpLdStVx:
		vm.soundTimer = vm.v[in.X]

	case OpAddI:
		sum := uint32(vm.i) + uint32(vm.v[in.X])
		vm.i = uint16(sum)
		vm.v[0xF] = flag(sum > 0xFFF)

	case OpLdFont:
		addr, err := FontAddress(vm.v[in.X])
		if err != nil {
			return err
		}
		vm.i = addr

	case OpBcd:
		value := vm.v[in.X]
		digits := []byte{value / 100, value / 10 % 10, value % 10}
		for offset, digit := range digits {
			if err := vm.writeByte(vm.i+uint16(offset), digit); err != nil {
				return err
			}
		}

	case OpLdMemV:
		for reg := uint16(0); reg <= uint16(in.X); reg++ {
			if err := vm.writeByte(vm.i+reg, vm.v[reg]); err != nil {
				return err
			}
		}
		if vm.settings.Quirks.LoadStoreIncrementsIndex {
			vm.i += uint16(in.X) + 1
		}

	case OpLdVMem:
		for reg := uint16(0); reg <= uint16(in.X); reg++ {
			value, err := vm.memory.ReadByte(vm.i + reg)
			if err != nil {
				return err
			}
			vm.v[reg] = value
		}
		if vm.settings.Quirks.LoadStoreIncrementsIndex {
			vm.i += uint16(in.X) + 1
		}

	default:
		return &UnknownOpcodeError{Opcode: in.Word}
	}
	return nil
}

// shiftSource returns the register value a shift instruction operates on.
// The original COSMAC VIP interpreter shifted a copy of VY, later
// interpreters shifted VX in place.
func (vm *Interpreter) shiftSource(in Instruction) uint8 {
	if vm.settings.Quirks.ShiftUsesSourceRegister {
		return vm.v[in.Y]
	}
	return vm.v[in.X]
}

// writeByte stores a byte for an executing instruction. Writes below the
// program load address target the reserved interpreter region and are
// rejected.
func (vm *Interpreter) writeByte(addr uint16, value byte) error {
	if addr < vm.settings.ProgramStart {
		return &OutOfBoundsError{Address: addr}
	}
	return vm.memory.WriteByte(addr, value)
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
