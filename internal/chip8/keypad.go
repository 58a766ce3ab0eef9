package chip8

// KeyCount is the number of keys on the CHIP-8 keypad.
const KeyCount = 16

const noKey = -1

// Keypad holds the pressed state of the 16 hexadecimal keys plus the
// blocking-wait bookkeeping used by the FX0A instruction. Key state is
// instantaneous: the host reports presses and releases and the key-skip
// instructions consume the current state.
type Keypad struct {
	keys [KeyCount]bool

	// set to the first key that transitions to pressed while a key-wait
	// is in progress
	waitPress int
	waiting   bool
}

// SetKey records the pressed state of a key.
func (k *Keypad) SetKey(key uint8, pressed bool) error {
	if key >= KeyCount {
		return &InvalidKeyError{Key: key}
	}
	if k.waiting && pressed && !k.keys[key] {
		k.waitPress = int(key)
	}
	k.keys[key] = pressed
	return nil
}

// Pressed reports whether a key is currently pressed.
func (k *Keypad) Pressed(key uint8) (bool, error) {
	if key >= KeyCount {
		return false, &InvalidKeyError{Key: key}
	}
	return k.keys[key], nil
}

// beginWait arms the key-wait mechanism. Only a key that transitions to
// pressed after this point completes the wait.
func (k *Keypad) beginWait() {
	k.waiting = true
	k.waitPress = noKey
}

// takeWaitPress returns the key that completed an armed wait, if any, and
// disarms the mechanism on success.
func (k *Keypad) takeWaitPress() (uint8, bool) {
	if !k.waiting || k.waitPress == noKey {
		return 0, false
	}
	key := uint8(k.waitPress)
	k.waiting = false
	k.waitPress = noKey
	return key, true
}

// clear releases all keys and disarms any pending wait.
func (k *Keypad) clear() {
	k.keys = [KeyCount]bool{}
	k.waiting = false
	k.waitPress = noKey
}
