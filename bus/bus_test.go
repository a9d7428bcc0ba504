package bus

import (
	"testing"

	"gc9a01sim/chip"
	"gc9a01sim/hal"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

func newTestBoard(t *testing.T) (*Board, *chip.Chip, *hal.Framebuffer) {
	t.Helper()
	fb := hal.NewFramebuffer(240, 240)
	c, err := chip.New(fb, 240, 240)
	if err != nil {
		t.Fatalf("chip.New: %v", err)
	}
	return New(c), c, fb
}

func TestLinePinFiresOnChangeOnly(t *testing.T) {
	var edges []bool
	p := newLinePin("CS", 0, gpio.High, gpio.PullUp, func(level bool) {
		edges = append(edges, level)
	})

	if err := p.Out(gpio.High); err != nil {
		t.Fatalf("Out: %v", err)
	}
	if len(edges) != 0 {
		t.Fatal("same-level write fired an edge")
	}

	if err := p.Out(gpio.Low); err != nil {
		t.Fatalf("Out: %v", err)
	}
	if err := p.Out(gpio.Low); err != nil {
		t.Fatalf("Out: %v", err)
	}
	if err := p.Out(gpio.High); err != nil {
		t.Fatalf("Out: %v", err)
	}

	if len(edges) != 2 || edges[0] != false || edges[1] != true {
		t.Fatalf("edges = %v, want [false true]", edges)
	}
	if p.Read() != gpio.High {
		t.Fatal("level not retained")
	}
}

func TestLinePinUnsupportedOps(t *testing.T) {
	p := newLinePin("DC", 1, gpio.Low, gpio.Float, func(bool) {})
	if err := p.In(gpio.PullUp, gpio.BothEdges); err == nil {
		t.Fatal("In should fail on a host-driven line")
	}
	if err := p.PWM(gpio.DutyHalf, physic.KiloHertz); err == nil {
		t.Fatal("PWM should fail")
	}
}

func TestPortConnectValidation(t *testing.T) {
	b, _, _ := newTestBoard(t)
	if _, err := b.Port().Connect(0, spi.Mode0, 8); err == nil {
		t.Fatal("expected error for zero frequency")
	}
	if _, err := b.Port().Connect(physic.MegaHertz, spi.Mode0, 16); err == nil {
		t.Fatal("expected error for 16-bit words")
	}
	if _, err := b.Port().Connect(physic.MegaHertz, spi.Mode3, 8); err != nil {
		t.Fatalf("mode3 should connect: %v", err)
	}
}

func TestConnDeliversBytesToChip(t *testing.T) {
	b, c, _ := newTestBoard(t)
	sc, err := b.Port().Connect(physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if err := b.CS().Out(gpio.Low); err != nil {
		t.Fatalf("CS: %v", err)
	}
	if err := sc.Tx([]byte{0x29}, nil); err != nil { // DISPON
		t.Fatalf("Tx: %v", err)
	}
	if !c.DisplayOn() {
		t.Fatal("command did not reach the chip")
	}

	if err := sc.Tx(nil, make([]byte, 1)); err == nil {
		t.Fatal("read should fail: no MISO")
	}
	if d := sc.Duplex(); d != conn.Half {
		t.Fatalf("duplex = %v", d)
	}
}

func TestTxPackets(t *testing.T) {
	b, c, _ := newTestBoard(t)
	sc, err := b.Port().Connect(physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := b.CS().Out(gpio.Low); err != nil {
		t.Fatalf("CS: %v", err)
	}
	err = sc.TxPackets([]spi.Packet{
		{W: []byte{0x21}}, // INVON
		{W: []byte{0x29}}, // DISPON
	})
	if err != nil {
		t.Fatalf("TxPackets: %v", err)
	}
	if !c.Inverted() || !c.DisplayOn() {
		t.Fatal("packet commands did not reach the chip")
	}
}
