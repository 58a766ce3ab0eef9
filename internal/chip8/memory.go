package chip8

// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: interpreter and font data
//	0x200-0xFFF: user program space
const (
	// MemorySize is the size of the flat CHIP-8 address space in bytes.
	MemorySize = 0x1000

	// FontStart is the memory address at which the built-in hexadecimal
	// font glyphs are stored.
	FontStart = 0x050
)

// Memory is the flat 4096 byte address store holding font data, the loaded
// program and working data.
type Memory struct {
	bytes [MemorySize]byte
}

// ReadByte returns the byte at the given address.
func (m *Memory) ReadByte(addr uint16) (byte, error) {
	if addr >= MemorySize {
		return 0, &OutOfBoundsError{Address: addr}
	}
	return m.bytes[addr], nil
}

// WriteByte stores a byte at the given address.
func (m *Memory) WriteByte(addr uint16, value byte) error {
	if addr >= MemorySize {
		return &OutOfBoundsError{Address: addr}
	}
	m.bytes[addr] = value
	return nil
}

// ReadWord returns the big-endian 16-bit word at the given address, with the
// high byte at addr and the low byte at addr+1.
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if addr+1 >= MemorySize {
		return 0, &OutOfBoundsError{Address: addr + 1}
	}
	return uint16(m.bytes[addr])<<8 | uint16(m.bytes[addr+1]), nil
}

// ReadBytes returns a copy of count bytes starting at the given address.
func (m *Memory) ReadBytes(addr uint16, count int) ([]byte, error) {
	last := int(addr) + count - 1
	if last >= MemorySize {
		return nil, &OutOfBoundsError{Address: uint16(last)}
	}
	buf := make([]byte, count)
	copy(buf, m.bytes[addr:int(addr)+count])
	return buf, nil
}

// WriteBytes stores the given bytes at successive addresses starting at addr.
func (m *Memory) WriteBytes(addr uint16, data []byte) error {
	last := int(addr) + len(data) - 1
	if last >= MemorySize {
		return &OutOfBoundsError{Address: uint16(last)}
	}
	copy(m.bytes[addr:], data)
	return nil
}

// clear zeroes the whole address space.
func (m *Memory) clear() {
	m.bytes = [MemorySize]byte{}
}
