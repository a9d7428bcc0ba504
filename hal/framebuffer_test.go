package hal

import (
	"image/color"
	"testing"
)

func TestFramebufferWriteAndSnapshot(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	if fb.SizeBytes() != 4*4*4 {
		t.Fatalf("SizeBytes = %d", fb.SizeBytes())
	}

	red := color.RGBA{R: 0xFF, A: 0xFF}
	fb.WriteRGBA((1*4+2)*4, red) // pixel (2,1)

	if got := fb.At((1*4 + 2) * 4); got != red {
		t.Fatalf("At = %v, want %v", got, red)
	}

	snap := make([]byte, fb.SizeBytes())
	fb.Snapshot(snap)
	off := (1*4 + 2) * 4
	if snap[off] != 0xFF || snap[off+1] != 0 || snap[off+2] != 0 || snap[off+3] != 0xFF {
		t.Fatalf("snapshot bytes = %v", snap[off:off+4])
	}
}

func TestFramebufferIgnoresOutOfRangeOffsets(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.WriteRGBA(-4, color.RGBA{R: 0xFF, A: 0xFF})
	fb.WriteRGBA(fb.SizeBytes(), color.RGBA{R: 0xFF, A: 0xFF})

	snap := make([]byte, fb.SizeBytes())
	fb.Snapshot(snap)
	for i, b := range snap {
		if b != 0 {
			t.Fatalf("byte %d modified by out-of-range write", i)
		}
	}
	if got := fb.At(-1); got != (color.RGBA{}) {
		t.Fatalf("out-of-range At = %v", got)
	}
}
