package chip8

// FontGlyphSize is the height in bytes of each built-in font glyph. Each
// glyph is one byte wide and five bytes tall.
const FontGlyphSize = 5

// fontData holds the 16 built-in hexadecimal sprite glyphs, written to
// memory at FontStart on reset.
var fontData = []byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// FontAddress returns the memory address of the built-in glyph sprite for
// the given hexadecimal digit. The address is stable for the life of a
// session.
func FontAddress(digit uint8) (uint16, error) {
	if digit > 0xF {
		return 0, &InvalidGlyphError{Digit: digit}
	}
	return FontStart + uint16(digit)*FontGlyphSize, nil
}
