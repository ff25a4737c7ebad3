package fbshot

import (
	"encoding/binary"
	"fmt"
)

// RGB565 sub-field layout of a little-endian 16-bit word, low bits first:
// blue occupies bits 0-4, green bits 5-10, red bits 11-15.
const (
	blueShift  = 0
	greenShift = 5
	redShift   = 11

	blueMask  = 0x1f
	greenMask = 0x3f
	redMask   = 0x1f
)

// expand5 and expand6 map packed channel values to 8 bits with the exact
// v*255/max truncating rescale, so 0 maps to 0 and the channel maximum to 255.
var (
	expand5 [32]uint8
	expand6 [64]uint8
)

func init() {
	for v := range expand5 {
		expand5[v] = uint8(v * colorMax / (len(expand5) - 1))
	}
	for v := range expand6 {
		expand6[v] = uint8(v * colorMax / (len(expand6) - 1))
	}
}

// DecodeRGB565 splits a packed RGB565 word into 8-bit-per-channel RGB.
func DecodeRGB565(p uint16) (r, g, b uint8) {
	r = expand5[(p>>redShift)&redMask]
	g = expand6[(p>>greenShift)&greenMask]
	b = expand5[(p>>blueShift)&blueMask]

	return r, g, b
}

// ExpandFrame converts a raw RGB565 frame into packed RGB888 triplets,
// preserving row-major pixel order. The conversion is pure and pointwise.
func ExpandFrame(raw []byte, g Geometry) ([]byte, error) {
	if len(raw) != g.frameSize() {
		return nil, fmt.Errorf("frame size %d does not match %dx%d display", len(raw), g.Width, g.Height)
	}

	out := make([]byte, g.pixels()*bytesPerPixel888)
	for i := 0; i < g.pixels(); i++ {
		p := binary.LittleEndian.Uint16(raw[i*bytesPerPixel565:])
		r, gr, b := DecodeRGB565(p)
		out[i*bytesPerPixel888] = r
		out[i*bytesPerPixel888+1] = gr
		out[i*bytesPerPixel888+2] = b
	}

	return out, nil
}
