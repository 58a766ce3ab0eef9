package ui

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	audioSampleRate = 48000
	beepFrequencyHz = 440
)

// beeper plays the CHIP-8 tone while the sound timer is nonzero. The tone
// is a precomputed sine wave queued one frame at a time.
type beeper struct {
	device sdl.AudioDeviceID
	frame  []byte
}

func newBeeper() (*beeper, error) {
	spec := &sdl.AudioSpec{
		Freq:     audioSampleRate,
		Format:   sdl.AUDIO_F32,
		Channels: 1,
		Samples:  4096,
	}
	device, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, err
	}
	sdl.PauseAudioDevice(device, false)

	return &beeper{
		device: device,
		frame:  sineFrame(),
	}, nil
}

// play queues one frame worth of tone samples.
func (b *beeper) play() {
	_ = sdl.QueueAudio(b.device, b.frame)
}

func (b *beeper) close() {
	sdl.CloseAudioDevice(b.device)
}

// sineFrame precomputes 1/60th of a second of a sine wave as little-endian
// float32 samples.
func sineFrame() []byte {
	samples := audioSampleRate / timerHz
	frame := make([]byte, 0, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / audioSampleRate
		sample := float32(math.Sin(2 * math.Pi * beepFrequencyHz * t))
		bits := math.Float32bits(sample)
		frame = append(frame, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
	}
	return frame
}
