// Package main implements the main entry point for the Chipolata CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jon-axon/chipolata/internal/chip8"
	"github.com/jon-axon/chipolata/internal/cli"
	"github.com/jon-axon/chipolata/internal/config"
	"github.com/jon-axon/chipolata/internal/disasm"
	"github.com/jon-axon/chipolata/internal/loader"
	"github.com/jon-axon/chipolata/internal/options"
	"github.com/jon-axon/chipolata/internal/ui"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}

		var haltErr *chip8.HaltError
		if errors.As(err, &haltErr) {
			logger.Error("Interpreter halted",
				log.Hex("pc", haltErr.PC),
				log.Hex("opcode", haltErr.Opcode),
				log.String("assembly", disasm.Mnemonic(haltErr.Opcode)),
				log.Int("cycles", int(haltErr.Cycles)),
				log.Err(haltErr.Err))
			os.Exit(1)
		}
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.LoadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM file: %w", err)
	}
	logger.Info("ROM loaded",
		log.String("file", opts.Input),
		log.Int("bytes", len(rom)))

	if opts.Disasm {
		return disasm.New(options.DefaultProgramStart).Process(os.Stdout, rom)
	}

	vm := chip8.New(opts.Settings())
	if err := vm.Load(rom); err != nil {
		return fmt.Errorf("loading ROM into interpreter: %w", err)
	}
	logger.Debug("Interpreter initialized",
		log.Int("clock", opts.ClockHz),
		log.Hex("programStart", uint16(options.DefaultProgramStart)))

	return ui.Run(ctx, logger, vm, opts)
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("chipolata", log.String("version", buildinfo.Version(version, commit, date)))
}
