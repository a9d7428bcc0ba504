// Command gc9a01sim runs the emulated GC9A01 round display with a demo
// driving it over the emulated SPI bus, either in a desktop window or
// headless.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"gc9a01sim/app"
	"gc9a01sim/bus"
	"gc9a01sim/chip"
	"gc9a01sim/driver"
	"gc9a01sim/hal"
)

const panelSize = 240

// The framebuffer is the chip's pixel store.
var _ chip.Store = (*hal.Framebuffer)(nil)

func main() {
	var cfg hal.HeadlessConfig
	var termDemo bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&termDemo, "term-demo", false, "Run the tinyterm console demo.")
	flag.Parse()

	log := hal.NewLogger()

	fb := hal.NewFramebuffer(panelSize, panelSize)
	c, err := chip.New(fb, panelSize, panelSize)
	if err != nil {
		fatal(err)
	}
	board := bus.New(c)

	dev, err := driver.New(board.Port(), board.CS(), board.DC(), board.RST(), nil)
	if err != nil {
		fatal(err)
	}
	log.WriteLineString("gc9a01: 240x240 round display ready")

	step, err := app.New(log, dev, app.Config{TermDemo: termDemo})
	if err != nil {
		fatal(err)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, step, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(fb, step); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
