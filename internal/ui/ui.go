// Package ui implements the SDL2 host for the interpreter: a window
// rendering the framebuffer, keyboard to keypad mapping and the beep tone.
// It paces the interpreter at the configured clock speed and drives the
// timers at 60 Hz; the core itself never self-paces.
package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jon-axon/chipolata/internal/chip8"
	"github.com/jon-axon/chipolata/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// timerHz is the fixed timer decrement and frame rate.
const timerHz = 60

// UI owns the SDL window, surface and audio device for one emulator run.
type UI struct {
	logger *log.Logger
	vm     *chip8.Interpreter

	window  *sdl.Window
	surface *sdl.Surface
	beeper  *beeper

	scale      int32
	foreground uint32
	background uint32

	paused bool
}

// Run opens the emulator window and runs the interpreter until the window
// is closed, the context is cancelled or the interpreter halts with an
// error.
func Run(ctx context.Context, logger *log.Logger, vm *chip8.Interpreter, opts options.Program) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	defer sdl.Quit()

	ui, err := newUI(logger, vm, opts)
	if err != nil {
		return err
	}
	defer ui.destroy()

	stepsPerFrame := opts.ClockHz / timerHz
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	ticker := time.NewTicker(time.Second / timerHz)
	defer ticker.Stop()

	ui.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if quit := ui.pollEvents(); quit {
			return nil
		}
		if ui.paused {
			continue
		}

		for i := 0; i < stepsPerFrame; i++ {
			if err := vm.Step(); err != nil {
				ui.render()
				return err
			}
		}
		vm.TickTimers()

		if vm.SoundActive() {
			ui.beeper.play()
		}
		if vm.DisplayUpdated() {
			ui.render()
		}
	}
}

func newUI(logger *log.Logger, vm *chip8.Interpreter, opts options.Program) (*UI, error) {
	ui := &UI{
		logger:     logger,
		vm:         vm,
		scale:      int32(opts.Scale),
		foreground: parseColor(opts.Foreground),
		background: parseColor(opts.Background),
	}

	window, err := sdl.CreateWindow("Chipolata | CHIP-8 Emulator",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		chip8.DisplayWidth*ui.scale, chip8.DisplayHeight*ui.scale, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	ui.window = window

	ui.surface, err = window.GetSurface()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("getting window surface: %w", err)
	}

	ui.beeper, err = newBeeper()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	return ui, nil
}

// destroy releases the SDL resources.
func (ui *UI) destroy() {
	ui.beeper.close()
	_ = ui.window.Destroy()
}

// render draws the framebuffer snapshot onto the window surface.
func (ui *UI) render() {
	_ = ui.surface.FillRect(nil, ui.background)

	pixels := ui.vm.Pixels()
	for y := int32(0); y < chip8.DisplayHeight; y++ {
		for x := int32(0); x < chip8.DisplayWidth; x++ {
			if !pixels[y][x] {
				continue
			}
			rect := sdl.Rect{X: x * ui.scale, Y: y * ui.scale, W: ui.scale, H: ui.scale}
			_ = ui.surface.FillRect(&rect, ui.foreground)
		}
	}
	_ = ui.window.UpdateSurface()
}

// pollEvents drains the SDL event queue and reports whether the emulator
// should quit.
func (ui *UI) pollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			pressed := t.GetType() == sdl.KEYDOWN
			switch t.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				if pressed {
					return true
				}
			case sdl.SCANCODE_SPACE:
				if pressed {
					ui.paused = !ui.paused
					ui.logger.Info("Pause toggled", log.String("paused", strconv.FormatBool(ui.paused)))
				}
			default:
				if key, ok := keypadIndex(t.Keysym.Scancode); ok {
					if err := ui.vm.SetKey(key, pressed); err != nil {
						ui.logger.Warn("Setting key state failed", log.Err(err))
					}
				}
			}
		}
	}
	return false
}

// keypadIndex maps QWERTY keyboard scancodes to the CHIP-8 keypad:
//
//	+--------+--------+--------+--------+
//	| 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
//	| Q -> 4 | W -> 5 | E -> 6 | R -> D |
//	| A -> 7 | S -> 8 | D -> 9 | F -> E |
//	| Z -> A | X -> 0 | C -> B | V -> F |
//	+--------+--------+--------+--------+
func keypadIndex(code sdl.Scancode) (uint8, bool) {
	switch code {
	case sdl.SCANCODE_1:
		return 0x1, true
	case sdl.SCANCODE_2:
		return 0x2, true
	case sdl.SCANCODE_3:
		return 0x3, true
	case sdl.SCANCODE_4:
		return 0xC, true
	case sdl.SCANCODE_Q:
		return 0x4, true
	case sdl.SCANCODE_W:
		return 0x5, true
	case sdl.SCANCODE_E:
		return 0x6, true
	case sdl.SCANCODE_R:
		return 0xD, true
	case sdl.SCANCODE_A:
		return 0x7, true
	case sdl.SCANCODE_S:
		return 0x8, true
	case sdl.SCANCODE_D:
		return 0x9, true
	case sdl.SCANCODE_F:
		return 0xE, true
	case sdl.SCANCODE_Z:
		return 0xA, true
	case sdl.SCANCODE_X:
		return 0x0, true
	case sdl.SCANCODE_C:
		return 0xB, true
	case sdl.SCANCODE_V:
		return 0xF, true
	default:
		return 0, false
	}
}

// parseColor converts an RRGGBB hex string to a surface color value.
// Values are validated during flag parsing.
func parseColor(hex string) uint32 {
	value, _ := strconv.ParseUint(hex, 16, 32)
	return uint32(value)
}
