package bus

import (
	"errors"
	"fmt"

	"gc9a01sim/chip"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

var (
	_ spi.Port = (*chipPort)(nil)
	_ spi.Conn = (*chipConn)(nil)
)

// chipPort is the spi.Port the emulated chip listens on. Connect hands out
// a write-only conn; the chip has no MISO.
type chipPort struct {
	chip *chip.Chip
}

func (p *chipPort) String() string { return "gc9a01" }

func (p *chipPort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if f <= 0 {
		return nil, fmt.Errorf("bus: invalid frequency %s", f)
	}
	if bits != 8 {
		return nil, fmt.Errorf("bus: only 8-bit words supported, got %d", bits)
	}
	// The model is level-insensitive, so any clock mode works.
	return &chipConn{chip: p.chip}, nil
}

// chipConn delivers each Tx write buffer to the chip as one chunk,
// preserving whatever fragmentation the caller chose. Chip-select is a
// separate pin, not part of the transfer.
type chipConn struct {
	chip *chip.Chip
}

func (c *chipConn) String() string { return "gc9a01" }

func (c *chipConn) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errors.New("bus: read not supported, no MISO line")
	}
	c.chip.Receive(w)
	return nil
}

func (c *chipConn) TxPackets(p []spi.Packet) error {
	for i := range p {
		if err := c.Tx(p[i].W, p[i].R); err != nil {
			return err
		}
	}
	return nil
}

func (c *chipConn) Duplex() conn.Duplex { return conn.Half }
