// Package chip emulates the GC9A01 240x240 round LCD controller.
//
// The model is command/data accurate for the subset of the MIPI-DCS command
// set that the common Arduino drivers use: software reset, sleep-out,
// display on/off, inversion on/off, column/row address set, memory write,
// memory access control and pixel format set. Pixel data is 16-bit RGB565,
// big-endian on the wire, expanded to 32-bit opaque RGBA in the store.
// Pixels outside the inscribed circle are forced to black, modeling the
// round panel.
//
// The host drives the chip through four entry points: Receive for SPI byte
// chunks and ChipSelect/DataCommand/Reset for the CS/DC/RST lines. The host
// must serialize calls; the chip holds no locks.
package chip

import "image/color"

// Mode says how incoming SPI bytes are interpreted. It follows the DC line,
// never the byte stream itself.
type Mode uint8

const (
	ModeCommand Mode = iota
	ModeData
)

// Store is the pixel memory the chip renders into. Offsets are byte
// offsets, row-major, 4 bytes per pixel. The chip only ever writes.
type Store interface {
	WriteRGBA(offset int, c color.RGBA)
}

// Chip is a single emulated GC9A01 instance.
//
// The zero value is not usable; construct with New.
type Chip struct {
	store  Store
	width  int
	height int

	// Line levels as last driven by the host. Edge handlers act on
	// changes only, like a pin-change interrupt.
	csLevel  bool
	dcLevel  bool
	rstLevel bool

	mode      Mode
	receiving bool

	// Command-mode parse state.
	inCommand bool
	command   byte
	argsWant  int
	argsGot   int
	args      [maxCommandArgs]byte

	// Data-mode parse state: first half of a 16-bit pixel word.
	pendingHigh  byte
	pendingValid bool

	writeActive bool
	displayOn   bool
	inverted    bool

	win window
}

// New returns an initialized chip bound to store. The store is cleared to
// opaque black and the address window covers the full frame, matching the
// power-on state of the real controller.
func New(store Store, width, height int) (*Chip, error) {
	if store == nil {
		return nil, errNilStore
	}
	if width <= 0 || height <= 0 {
		return nil, errBadSize
	}
	c := &Chip{
		store:  store,
		width:  width,
		height: height,
		// CS and RST idle high (pulled up), DC low: command mode.
		csLevel:  true,
		rstLevel: true,
		mode:     ModeCommand,
	}
	c.win.reset(width, height)
	c.clearStore()
	return c, nil
}

// Width returns the fixed panel width in pixels.
func (c *Chip) Width() int { return c.width }

// Height returns the fixed panel height in pixels.
func (c *Chip) Height() int { return c.height }

// DisplayOn reports the DISPON/DISPOFF flag. The flag does not gate pixel
// writes; presentation is the host's concern.
func (c *Chip) DisplayOn() bool { return c.displayOn }

// Inverted reports the INVON/INVOFF flag.
func (c *Chip) Inverted() bool { return c.inverted }

// Receive consumes a chunk of SPI bytes. Chunks may be any length,
// including a single byte; parse state carries across chunk boundaries.
// Bytes arriving while the chip is deselected are ignored.
func (c *Chip) Receive(p []byte) {
	if !c.receiving {
		return
	}
	for _, b := range p {
		if c.mode == ModeCommand {
			c.commandByte(b)
		} else {
			c.dataByte(b)
		}
	}
}

// ChipSelect drives the CS line. A falling edge starts byte reception; a
// rising edge stops it and aborts any in-flight command or pixel word
// without committing partial data.
func (c *Chip) ChipSelect(level bool) {
	if level == c.csLevel {
		return
	}
	c.csLevel = level
	if !level {
		c.resetParser()
		c.receiving = true
		return
	}
	c.receiving = false
	c.writeActive = false
	c.resetParser()
}

// DataCommand drives the DC line: low selects command mode, high data mode.
// An edge interrupts the byte stream, so a partial argument list or a
// pending pixel high byte from the previous mode is abandoned. Reception
// resumes immediately if the chip is selected.
func (c *Chip) DataCommand(level bool) {
	if level == c.dcLevel {
		return
	}
	c.dcLevel = level
	if level {
		c.mode = ModeData
	} else {
		c.mode = ModeCommand
	}
	c.resetParser()
	c.receiving = !c.csLevel
}

// Reset drives the RST line. A falling edge performs a hardware reset:
// store cleared to black, flags cleared, window back to the full frame.
// It also stops byte reception; the next CS or DC edge restarts it.
func (c *Chip) Reset(level bool) {
	if level == c.rstLevel {
		return
	}
	c.rstLevel = level
	if level {
		return
	}
	c.receiving = false
	c.resetParser()
	c.softReset()
}

// commandByte advances the command-mode state machine by one byte.
func (c *Chip) commandByte(b byte) {
	if !c.inCommand {
		c.command = b
		c.argsWant = argCount(b)
		c.argsGot = 0
		if c.argsWant == 0 {
			c.dispatch(b, nil)
			return
		}
		c.inCommand = true
		return
	}
	c.args[c.argsGot] = b
	c.argsGot++
	if c.argsGot >= c.argsWant {
		c.inCommand = false
		c.dispatch(c.command, c.args[:c.argsGot])
	}
}

// dataByte advances the data-mode state machine by one byte. Bytes outside
// an active memory write are dropped.
func (c *Chip) dataByte(b byte) {
	if !c.writeActive {
		return
	}
	if !c.pendingValid {
		c.pendingHigh = b
		c.pendingValid = true
		return
	}
	word := uint16(c.pendingHigh)<<8 | uint16(b)
	c.pendingValid = false
	c.writePixel(word)
}

// writePixel commits one RGB565 word at the cursor and advances it.
func (c *Chip) writePixel(word uint16) {
	col, row := c.win.col, c.win.row
	if !c.win.inBounds() {
		// Defensive: the cursor is kept in-window by construction.
		return
	}
	px := decodeRGB565(word)
	if c.inverted {
		px = invertRGB(px)
	}
	px = clipRound(px, col, row, c.width, c.height)
	c.store.WriteRGBA((row*c.width+col)*4, px)
	c.win.advance()
}

// resetParser drops transient parse state: a partially received command and
// a pending pixel high byte.
func (c *Chip) resetParser() {
	c.inCommand = false
	c.argsGot = 0
	c.argsWant = 0
	c.pendingValid = false
}

// softReset is the SWRESET / RST-line state: black store, flags cleared,
// full-frame window, cursor at the origin.
func (c *Chip) softReset() {
	c.clearStore()
	c.displayOn = false
	c.inverted = false
	c.writeActive = false
	c.pendingValid = false
	c.win.reset(c.width, c.height)
}

func (c *Chip) clearStore() {
	black := color.RGBA{A: 0xFF}
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			c.store.WriteRGBA((row*c.width+col)*4, black)
		}
	}
}
