package hal

import (
	"image/color"
	"sync"
)

// Framebuffer is an in-memory RGBA pixel store, 4 bytes per pixel,
// row-major. The chip writes into it by byte offset; the presentation
// layer reads it through Snapshot. The mutex only protects the
// writer/snapshot pair — per-pixel writes are not promised to be visible
// mid-frame in any particular order.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

// NewFramebuffer allocates a zeroed width x height RGBA store.
func NewFramebuffer(width, height int) *Framebuffer {
	stride := width * 4
	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *Framebuffer) Width() int       { return f.width }
func (f *Framebuffer) Height() int      { return f.height }
func (f *Framebuffer) StrideBytes() int { return f.stride }
func (f *Framebuffer) SizeBytes() int   { return len(f.buf) }

// WriteRGBA stores a 4-byte RGBA pixel at the given byte offset. Offsets
// outside the buffer are ignored. This satisfies the chip's Store contract.
func (f *Framebuffer) WriteRGBA(offset int, c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if offset < 0 || offset+3 >= len(f.buf) {
		return
	}
	f.buf[offset+0] = c.R
	f.buf[offset+1] = c.G
	f.buf[offset+2] = c.B
	f.buf[offset+3] = c.A
}

// At returns the pixel whose first byte sits at the given byte offset.
// Out-of-range offsets read as transparent black.
func (f *Framebuffer) At(offset int) color.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	if offset < 0 || offset+3 >= len(f.buf) {
		return color.RGBA{}
	}
	return color.RGBA{
		R: f.buf[offset+0],
		G: f.buf[offset+1],
		B: f.buf[offset+2],
		A: f.buf[offset+3],
	}
}

// Snapshot copies the current contents into dst, which should be
// SizeBytes long.
func (f *Framebuffer) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
