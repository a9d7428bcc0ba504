package chip

import "image/color"

// decodeRGB565 expands a packed 5-6-5 value to opaque 8-8-8 RGBA. The
// expansion is a plain shift into the high bits, no low-bit replication,
// matching what the driver-facing hardware model does.
func decodeRGB565(p uint16) color.RGBA {
	return color.RGBA{
		R: uint8(p>>11) << 3,
		G: uint8(p>>5&0x3F) << 2,
		B: uint8(p&0x1F) << 3,
		A: 0xFF,
	}
}

// invertRGB flips each color channel, leaving alpha opaque.
func invertRGB(c color.RGBA) color.RGBA {
	return color.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// clipRound forces pixels outside the inscribed circle to opaque black.
// The radius comes from the width; the panel is square by contract.
func clipRound(c color.RGBA, col, row, width, height int) color.RGBA {
	r := width / 2
	dx := col - width/2
	dy := row - height/2
	if dx*dx+dy*dy > r*r {
		return color.RGBA{A: 0xFF}
	}
	return c
}
