// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/jon-axon/chipolata/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	if err := validateOptions(opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chipolata [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks option values for usable ranges
func validateOptions(opts options.Program) error {
	if opts.ClockHz <= 0 {
		return fmt.Errorf("clock speed must be positive, got %d", opts.ClockHz)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %d", opts.Scale)
	}
	for _, color := range []string{opts.Foreground, opts.Background} {
		if len(color) != 6 {
			return fmt.Errorf("color %q is not a RRGGBB hex value", color)
		}
		if _, err := strconv.ParseUint(color, 16, 32); err != nil {
			return fmt.Errorf("color %q is not a RRGGBB hex value", color)
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.ClockHz, "clock", options.DefaultClockHz, "interpreter speed in instructions per second")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed for the random byte source, 0 uses a time based seed")
	flags.IntVar(&opts.Scale, "scale", 12, "window pixels per CHIP-8 pixel")
	flags.StringVar(&opts.Foreground, "fg", "00DCFF", "foreground color as RRGGBB hex")
	flags.StringVar(&opts.Background, "bg", "094992", "background color as RRGGBB hex")
	flags.BoolVar(&opts.ShiftSource, "shift-vy", true, "quirk: 8XY6/8XYE shift a copy of VY instead of VX")
	flags.BoolVar(&opts.LoadStoreIncrement, "inc-index", true, "quirk: FX55/FX65 leave I incremented by X+1")
	flags.BoolVar(&opts.DrawWrap, "wrap", false, "quirk: DXYN wraps sprites at the display edges instead of clipping")
	flags.BoolVar(&opts.JumpVX, "jump-vx", false, "quirk: BNNN jumps to XNN+VX instead of NNN+V0")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly of the ROM instead of running it")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
