package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/jon-axon/chipolata/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Program{
				Input:              "test.ch8",
				ClockHz:            options.DefaultClockHz,
				Scale:              12,
				Foreground:         "00DCFF",
				Background:         "094992",
				ShiftSource:        true,
				LoadStoreIncrement: true,
			},
		},
		{
			name: "custom clock and scale",
			args: []string{"prog", "-clock", "1000", "-scale", "8", "test.ch8"},
			want: options.Program{
				Input:              "test.ch8",
				ClockHz:            1000,
				Scale:              8,
				Foreground:         "00DCFF",
				Background:         "094992",
				ShiftSource:        true,
				LoadStoreIncrement: true,
			},
		},
		{
			name: "quirk flags",
			args: []string{"prog", "-shift-vy=false", "-inc-index=false", "-wrap", "-jump-vx", "test.ch8"},
			want: options.Program{
				Input:      "test.ch8",
				ClockHz:    options.DefaultClockHz,
				Scale:      12,
				Foreground: "00DCFF",
				Background: "094992",
				DrawWrap:   true,
				JumpVX:     true,
			},
		},
		{
			name: "disasm mode",
			args: []string{"prog", "-disasm", "test.ch8"},
			want: options.Program{
				Input:              "test.ch8",
				ClockHz:            options.DefaultClockHz,
				Scale:              12,
				Foreground:         "00DCFF",
				Background:         "094992",
				ShiftSource:        true,
				LoadStoreIncrement: true,
				Disasm:             true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_MissingROM(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog"}

	_, err := ParseFlags()
	assert.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestValidateArgs(t *testing.T) {
	assert.NoError(t, validateArgs([]string{"test.ch8"}))

	err := validateArgs([]string{"test.ch8", "-clock"})
	assert.ErrorContains(t, err, "last argument")
}

func TestValidateOptions(t *testing.T) {
	valid := options.Program{
		ClockHz:    options.DefaultClockHz,
		Scale:      12,
		Foreground: "00DCFF",
		Background: "094992",
	}

	tests := []struct {
		name        string
		mutate      func(opts *options.Program)
		expectError bool
	}{
		{"valid defaults", func(*options.Program) {}, false},
		{"zero clock", func(opts *options.Program) { opts.ClockHz = 0 }, true},
		{"negative scale", func(opts *options.Program) { opts.Scale = -1 }, true},
		{"short color", func(opts *options.Program) { opts.Foreground = "FFF" }, true},
		{"non-hex color", func(opts *options.Program) { opts.Background = "GGGGGG" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)

			err := validateOptions(opts)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
