package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/fagyapong/pschip8/pschip8"
	"github.com/fagyapong/pschip8/pschip8/audio"
	"github.com/fagyapong/pschip8/pschip8/backend"
	"github.com/fagyapong/pschip8/pschip8/backend/headless"
	"github.com/fagyapong/pschip8/pschip8/backend/terminal"
	"github.com/fagyapong/pschip8/pschip8/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "pschip8"
	app.Description = "Pretty simple CHIP-8 interpreter"
	app.Usage = "pschip8 [options] <program file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the CHIP-8 program file",
		},
		cli.BoolFlag{
			Name:  "sdl2",
			Usage: "Use the SDL2 window backend (requires a build with -tags sdl2)",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Pixel scale factor for the SDL2 window",
			Value: 8,
		},
		cli.BoolFlag{
			Name:  "test-pattern",
			Usage: "Display a test pattern instead of running a program",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running interpreter", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else if !c.Bool("test-pattern") {
			cli.ShowAppHelp(c)
			return errors.New("no program path provided")
		}
	}

	var machine *pschip8.Machine
	var err error
	if romPath != "" {
		machine, err = pschip8.NewWithFile(romPath)
		if err != nil {
			return err
		}
	} else {
		// Test pattern mode without a program: idle on a jump-to-self.
		machine, err = pschip8.NewWithProgram([]uint16{0x1200})
		if err != nil {
			return err
		}
	}

	config := backend.Config{
		Title:       "pschip8",
		Scale:       c.Int("scale"),
		TestPattern: c.Bool("test-pattern"),
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}

		snapshotConfig, err := headless.CreateSnapshotConfig(
			c.Int("snapshot-interval"), c.String("snapshot-dir"), romPath)
		if err != nil {
			return err
		}

		h := headless.New(frames, snapshotConfig)
		if err := h.Init(config); err != nil {
			return err
		}
		return machine.Run(h, timing.NewNoOpLimiter())
	}

	var b backend.Backend
	if c.Bool("sdl2") {
		b = backend.NewSDL2Backend()
	} else {
		b = terminal.New()
	}
	if err := b.Init(config); err != nil {
		return err
	}

	// Interactive runs get the square wave beeper; a missing audio
	// device degrades to silence rather than failing the run.
	player, err := audio.NewPlayer(machine.AudioGate())
	if err != nil {
		slog.Warn("Audio unavailable, running silent", "error", err)
	} else {
		defer player.Close()
	}

	limiter := timing.NewTickerLimiter()
	defer limiter.Stop()

	return machine.Run(b, limiter)
}
