// Package driver talks to a GC9A01 panel over periph.io SPI and GPIO, the
// way Adafruit_GC9A01A does on a microcontroller. It keeps an RGB565
// staging buffer and pushes full frames with CASET/RASET/RAMWR, holding
// chip-select low across the write command and its pixel data — the
// controller drops an in-flight memory write when CS deasserts.
//
// Dev implements tinygo.org/x/drivers Displayer (plus the FillRectangle /
// SetScroll / SetRotation extensions), so tinyfont and tinyterm can render
// through it.
package driver

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"tinygo.org/x/drivers"
)

const (
	cmdSWRESET = 0x01
	cmdSLPOUT  = 0x11
	cmdINVOFF  = 0x20
	cmdINVON   = 0x21
	cmdDISPOFF = 0x28
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdRASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdMADCTL  = 0x36
	cmdCOLMOD  = 0x3A
)

// colmod16bpp selects the 16-bit RGB565 pixel format.
const colmod16bpp = 0x55

var _ drivers.Displayer = (*Dev)(nil)

// Opts is the panel configuration.
type Opts struct {
	W int // width in pixels (default 240)
	H int // height in pixels (default 240)
}

// Dev is the device handle for one panel.
type Dev struct {
	c   conn.Conn
	cs  gpio.PinOut
	dc  gpio.PinOut
	rst gpio.PinIO

	rect image.Rectangle

	buf []byte // staging frame, RGB565 little-endian
	tx  []byte // transfer chunk, RGB565 big-endian
}

// New connects to the panel on p and runs the init sequence. cs and dc are
// required; rst may be nil if the reset line is tied high. opts may be nil
// for a 240x240 panel.
func New(p spi.Port, cs, dc gpio.PinOut, rst gpio.PinIO, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 240, H: 240}
	}
	if opts.W <= 0 || opts.H <= 0 {
		return nil, errors.New("driver: width and height must be positive")
	}
	if cs == nil || dc == nil {
		return nil, errors.New("driver: cs and dc pins are required")
	}

	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		c:    c,
		cs:   cs,
		dc:   dc,
		rst:  rst,
		rect: image.Rect(0, 0, opts.W, opts.H),
		buf:  make([]byte, opts.W*opts.H*2),
		tx:   make([]byte, 4096),
	}

	if err := d.reset(); err != nil {
		return nil, err
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// reset pulses the RST line. No settle delays: the emulated panel resets
// instantly on the falling edge.
func (d *Dev) reset() error {
	if d.rst == nil {
		return nil
	}
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("driver: failed to pull RST low: %w", err)
	}
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("driver: failed to release RST: %w", err)
	}
	return nil
}

func (d *Dev) init() error {
	if err := d.cmd(cmdSWRESET); err != nil {
		return err
	}
	if err := d.cmd(cmdSLPOUT); err != nil {
		return err
	}
	if err := d.cmd(cmdCOLMOD, colmod16bpp); err != nil {
		return err
	}
	if err := d.cmd(cmdMADCTL, 0x00); err != nil {
		return err
	}
	return d.cmd(cmdDISPON)
}

// cmd sends one command with its parameters in a single CS frame. The
// command byte and its parameters both ride with DC low; DC goes high only
// for pixel data after RAMWR.
func (d *Dev) cmd(cmd byte, data ...byte) error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(data) > 0 {
		if err := d.c.Tx(data, nil); err != nil {
			return err
		}
	}
	return d.cs.Out(gpio.High)
}

// setWindow addresses the inclusive rectangle the next memory write fills.
func (d *Dev) setWindow(x0, y0, x1, y1 uint16) error {
	if err := d.cmd(
		cmdCASET,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	); err != nil {
		return err
	}
	return d.cmd(
		cmdRASET,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
}

// Size returns the panel dimensions.
func (d *Dev) Size() (x, y int16) {
	return int16(d.rect.Dx()), int16(d.rect.Dy())
}

// Bounds returns the panel rectangle.
func (d *Dev) Bounds() image.Rectangle { return d.rect }

// SetPixel stages one pixel. It takes effect on the next Display.
func (d *Dev) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.rect.Dx() || iy < 0 || iy >= d.rect.Dy() {
		return
	}
	p := rgb565(c.R, c.G, c.B)
	off := (iy*d.rect.Dx() + ix) * 2
	d.buf[off] = byte(p)
	d.buf[off+1] = byte(p >> 8)
}

// FillRectangle stages a filled rectangle, clipped to the panel.
func (d *Dev) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return errors.New("driver: invalid rectangle")
	}
	x1 := int(x) + int(width)
	y1 := int(y) + int(height)
	for iy := int(y); iy < y1; iy++ {
		for ix := int(x); ix < x1; ix++ {
			d.SetPixel(int16(ix), int16(iy), c)
		}
	}
	return nil
}

// SetScroll is a no-op: the panel subset in use has no hardware scroll, so
// callers (tinyterm) must use software scrolling.
func (d *Dev) SetScroll(line int16) {}

// SetRotation only supports the native orientation.
func (d *Dev) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return errors.New("driver: only native rotation supported")
	}
	return nil
}

// Display pushes the staged frame to the panel. The wire format is
// big-endian RGB565, so bytes are swapped while chunking through the
// transfer buffer.
func (d *Dev) Display() error {
	w, h := d.rect.Dx(), d.rect.Dy()
	if err := d.setWindow(0, 0, uint16(w-1), uint16(h-1)); err != nil {
		return err
	}

	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmdRAMWR}, nil); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}

	chunk := d.tx
	total := w * h * 2
	for off := 0; off < total; {
		n := len(chunk)
		if remain := total - off; n > remain {
			n = remain
		}
		src := d.buf[off : off+n]
		for i := 0; i < n; i += 2 {
			chunk[i] = src[i+1]
			chunk[i+1] = src[i]
		}
		if err := d.c.Tx(chunk[:n], nil); err != nil {
			return err
		}
		off += n
	}

	return d.cs.Out(gpio.High)
}

// Invert switches panel color inversion on or off.
func (d *Dev) Invert(invert bool) error {
	if invert {
		return d.cmd(cmdINVON)
	}
	return d.cmd(cmdINVOFF)
}

// Halt turns the display off.
func (d *Dev) Halt() error {
	return d.cmd(cmdDISPOFF)
}

func (d *Dev) String() string {
	return fmt.Sprintf("gc9a01.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}
