// Package app contains the demo scenes that exercise the emulated panel
// end to end: every frame goes driver -> SPI bytes -> chip -> pixel store.
package app

import (
	"fmt"
	"image/color"
	"math"

	"gc9a01sim/driver"
	"gc9a01sim/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// Config selects the demo scene.
type Config struct {
	// TermDemo renders a scrolling tinyterm console instead of the
	// default watch face.
	TermDemo bool
}

var (
	black = color.RGBA{A: 0xFF}
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	amber = color.RGBA{R: 0xFF, G: 0xA0, A: 0xFF}
	teal  = color.RGBA{G: 0xC0, B: 0xB0, A: 0xFF}
)

var font = &proggy.TinySZ8pt7b

// The driver must satisfy tinyterm's extended displayer surface.
var _ tinyterm.Displayer = (*driver.Dev)(nil)

// New returns the per-tick step function for the selected scene.
func New(log hal.Logger, dev *driver.Dev, cfg Config) (func() error, error) {
	if dev == nil {
		return nil, fmt.Errorf("app: nil device")
	}
	if cfg.TermDemo {
		return newTermDemo(log, dev)
	}
	return newFaceDemo(log, dev), nil
}

// newFaceDemo draws a round watch-style face: ring, title, a sweeping
// marker and a tick counter. Inversion is toggled periodically to exercise
// INVON/INVOFF over the wire.
func newFaceDemo(log hal.Logger, dev *driver.Dev) func() error {
	log.WriteLineString("app: face demo")
	w16, h16 := dev.Size()
	w, h := int(w16), int(h16)
	cx, cy := w/2, h/2
	radius := w/2 - 4

	var tick uint64
	inverted := false

	return func() error {
		if err := dev.FillRectangle(0, 0, w16, h16, black); err != nil {
			return err
		}

		drawRing(dev, cx, cy, radius, teal)
		drawRing(dev, cx, cy, radius-1, teal)

		// Sweep marker, one revolution per 360 ticks.
		a := float64(tick%360) * math.Pi / 180
		mx := cx + int(float64(radius-8)*math.Sin(a))
		my := cy - int(float64(radius-8)*math.Cos(a))
		if err := dev.FillRectangle(int16(mx-2), int16(my-2), 5, 5, amber); err != nil {
			return err
		}

		tinyfont.WriteLine(dev, font, int16(cx-24), int16(cy-10), "GC9A01", white)
		tinyfont.WriteLine(dev, font, int16(cx-28), int16(cy+14), fmt.Sprintf("%06d", tick), amber)

		if tick%300 == 299 {
			inverted = !inverted
			if err := dev.Invert(inverted); err != nil {
				return err
			}
			log.WriteLineString(fmt.Sprintf("app: inversion %v", inverted))
		}

		tick++
		return dev.Display()
	}
}

// newTermDemo runs a tinyterm console on the panel.
func newTermDemo(log hal.Logger, dev *driver.Dev) (func() error, error) {
	log.WriteLineString("app: terminal demo")

	term := tinyterm.NewTerminal(dev)
	term.Configure(&tinyterm.Config{
		Font:       font,
		FontHeight: 10,
		FontOffset: 6,
	})

	// The terminal draws into the staging buffer as it is written; the
	// driver pushes the frame to the panel.
	var tick uint64
	return func() error {
		if tick%30 == 0 {
			fmt.Fprintf(term, "\ntick %d", tick)
			if err := dev.Display(); err != nil {
				return err
			}
		}
		tick++
		return nil
	}, nil
}

// drawRing plots a one-pixel circle outline.
func drawRing(dev *driver.Dev, cx, cy, r int, c color.RGBA) {
	for deg := 0; deg < 360; deg++ {
		a := float64(deg) * math.Pi / 180
		x := cx + int(math.Round(float64(r)*math.Cos(a)))
		y := cy + int(math.Round(float64(r)*math.Sin(a)))
		dev.SetPixel(int16(x), int16(y), c)
	}
}
