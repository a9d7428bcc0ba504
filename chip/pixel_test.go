package chip

import (
	"image/color"
	"testing"
)

func TestDecodeRGB565RoundTrip(t *testing.T) {
	for p := 0; p <= 0xFFFF; p++ {
		c := decodeRGB565(uint16(p))
		if c.A != 0xFF {
			t.Fatalf("0x%04X: alpha = 0x%02X, want opaque", p, c.A)
		}
		got := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
		if got != uint16(p) {
			t.Fatalf("0x%04X: re-encoded to 0x%04X", p, got)
		}
	}
}

func TestDecodeRGB565Primaries(t *testing.T) {
	if got := decodeRGB565(0xF800); got != (color.RGBA{R: 0xF8, A: 0xFF}) {
		t.Fatalf("red: got %v", got)
	}
	if got := decodeRGB565(0x07E0); got != (color.RGBA{G: 0xFC, A: 0xFF}) {
		t.Fatalf("green: got %v", got)
	}
	if got := decodeRGB565(0x001F); got != (color.RGBA{B: 0xF8, A: 0xFF}) {
		t.Fatalf("blue: got %v", got)
	}
	if got := decodeRGB565(0x0000); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("black: got %v", got)
	}
}

func TestInvertRGBInvolution(t *testing.T) {
	colors := []color.RGBA{
		{A: 0xFF},
		{R: 0xF8, A: 0xFF},
		{R: 0x12, G: 0x34, B: 0x56, A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
	for _, c := range colors {
		if got := invertRGB(invertRGB(c)); got != c {
			t.Fatalf("%v: double inversion gave %v", c, got)
		}
	}
	inv := invertRGB(color.RGBA{R: 0xF8, A: 0xFF})
	if inv != (color.RGBA{R: 0x07, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("inverted red: got %v", inv)
	}
}

func TestClipRound(t *testing.T) {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black := color.RGBA{A: 0xFF}

	// Center is never clipped.
	if got := clipRound(white, 120, 120, 240, 240); got != white {
		t.Fatalf("center clipped: %v", got)
	}
	// Points on the circle's horizontal extent pass.
	if got := clipRound(white, 0, 120, 240, 240); got != white {
		t.Fatalf("(0,120) clipped: %v", got)
	}
	// Corners are always forced black.
	if got := clipRound(white, 0, 0, 240, 240); got != black {
		t.Fatalf("(0,0) not clipped: %v", got)
	}
	if got := clipRound(white, 239, 239, 240, 240); got != black {
		t.Fatalf("(239,239) not clipped: %v", got)
	}
	// Just outside the circle near a corner.
	if got := clipRound(white, 4, 4, 240, 240); got != black {
		t.Fatalf("(4,4) not clipped: %v", got)
	}
}
