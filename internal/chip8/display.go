package chip8

// Display dimensions in logical pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Pixels is a snapshot of the monochrome framebuffer, indexed [y][x].
type Pixels [DisplayHeight][DisplayWidth]bool

// Display is the monochrome framebuffer. Sprites are blitted with logical
// XOR against the existing pixel state.
type Display struct {
	pixels Pixels
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = Pixels{}
}

// Pixel reports whether the pixel at (x, y) is set.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[y][x]
}

// Snapshot returns a copy of the current pixel grid. The copy reflects only
// completed draw operations, never a partial sprite write.
func (d *Display) Snapshot() Pixels {
	return d.pixels
}

// DrawSprite XORs an 8 pixel wide, len(sprite) pixel tall sprite onto the
// framebuffer at (x, y). The start position always wraps into the display;
// pixels past the right or bottom edge wrap around when wrap is set and are
// clipped otherwise. It reports whether any pixel transitioned from set to
// unset (the collision flag).
func (d *Display) DrawSprite(x, y uint8, sprite []byte, wrap bool) bool {
	startX := int(x) % DisplayWidth
	startY := int(y) % DisplayHeight

	collision := false
	for row, spriteByte := range sprite {
		py := startY + row
		if py >= DisplayHeight {
			if !wrap {
				continue
			}
			py %= DisplayHeight
		}
		for bit := 0; bit < 8; bit++ {
			if spriteByte&(0x80>>bit) == 0 {
				continue
			}
			px := startX + bit
			if px >= DisplayWidth {
				if !wrap {
					continue
				}
				px %= DisplayWidth
			}
			if d.pixels[py][px] {
				collision = true
			}
			d.pixels[py][px] = !d.pixels[py][px]
		}
	}
	return collision
}
