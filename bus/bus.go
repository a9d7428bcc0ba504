// Package bus exposes an emulated chip through periph.io pin and SPI
// interfaces, so host code can drive it exactly like real hardware: CS, DC
// and RST as gpio pins, pixel/command bytes through an spi.Port.
package bus

import (
	"gc9a01sim/chip"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Board is one emulated chip with its wiring.
type Board struct {
	cs   *linePin
	dc   *linePin
	rst  *linePin
	port *chipPort
}

// New wires c to a fresh set of lines. Line levels start at the chip's
// power-on defaults: CS and RST high, DC low.
func New(c *chip.Chip) *Board {
	return &Board{
		cs:   newLinePin("CS", 0, gpio.High, gpio.PullUp, c.ChipSelect),
		dc:   newLinePin("DC", 1, gpio.Low, gpio.Float, c.DataCommand),
		rst:  newLinePin("RST", 2, gpio.High, gpio.PullUp, c.Reset),
		port: &chipPort{chip: c},
	}
}

// CS returns the chip-select line.
func (b *Board) CS() gpio.PinIO { return b.cs }

// DC returns the data/command line.
func (b *Board) DC() gpio.PinIO { return b.dc }

// RST returns the reset line.
func (b *Board) RST() gpio.PinIO { return b.rst }

// Port returns the SPI port the chip listens on.
func (b *Board) Port() spi.Port { return b.port }
