package fbshot

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestExpandEndpoints(t *testing.T) {
	if expand5[0] != 0 || expand5[31] != 255 {
		t.Fatalf("expand5 endpoints: got %d, %d, want 0, 255", expand5[0], expand5[31])
	}
	if expand6[0] != 0 || expand6[63] != 255 {
		t.Fatalf("expand6 endpoints: got %d, %d, want 0, 255", expand6[0], expand6[63])
	}
}

func TestExpandMatchesLinearRescale(t *testing.T) {
	for v := 0; v < 32; v++ {
		if want := uint8(v * 255 / 31); expand5[v] != want {
			t.Fatalf("expand5[%d]: got %d, want %d", v, expand5[v], want)
		}
	}
	for v := 0; v < 64; v++ {
		if want := uint8(v * 255 / 63); expand6[v] != want {
			t.Fatalf("expand6[%d]: got %d, want %d", v, expand6[v], want)
		}
	}
}

func TestExpandMonotonic(t *testing.T) {
	for v := 1; v < 32; v++ {
		if expand5[v] < expand5[v-1] {
			t.Fatalf("expand5 not monotonic at %d: %d < %d", v, expand5[v], expand5[v-1])
		}
	}
	for v := 1; v < 64; v++ {
		if expand6[v] < expand6[v-1] {
			t.Fatalf("expand6 not monotonic at %d: %d < %d", v, expand6[v], expand6[v-1])
		}
	}
}

func TestDecodeRGB565KnownColors(t *testing.T) {
	cases := []struct {
		name    string
		packed  uint16
		r, g, b uint8
	}{
		{name: "black", packed: 0x0000, r: 0, g: 0, b: 0},
		{name: "white", packed: 0xffff, r: 255, g: 255, b: 255},
		{name: "red", packed: 0xf800, r: 255, g: 0, b: 0},
		{name: "green", packed: 0x07e0, r: 0, g: 255, b: 0},
		{name: "blue", packed: 0x001f, r: 0, g: 0, b: 255},
		{name: "mid gray", packed: 0x8410, r: 131, g: 129, b: 131},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := DecodeRGB565(tc.packed)
			if r != tc.r || g != tc.g || b != tc.b {
				t.Fatalf("decode %#04x: got (%d,%d,%d), want (%d,%d,%d)", tc.packed, r, g, b, tc.r, tc.g, tc.b)
			}
		})
	}
}

func TestExpandFramePointwise(t *testing.T) {
	g := Geometry{Width: 8, Height: 4}

	raw := make([]byte, g.frameSize())
	for i := 0; i < g.pixels(); i++ {
		binary.LittleEndian.PutUint16(raw[i*2:], 0xf81f) // magenta
	}

	pix, err := ExpandFrame(raw, g)
	if err != nil {
		t.Fatalf("expand frame: %v", err)
	}
	if len(pix) != g.pixels()*3 {
		t.Fatalf("unexpected output length: got %d, want %d", len(pix), g.pixels()*3)
	}

	first := pix[:3]
	if !bytes.Equal(first, []byte{255, 0, 255}) {
		t.Fatalf("unexpected first pixel: got %v", first)
	}
	for i := 0; i < g.pixels(); i++ {
		if !bytes.Equal(pix[i*3:i*3+3], first) {
			t.Fatalf("pixel %d differs: got %v, want %v", i, pix[i*3:i*3+3], first)
		}
	}
}

func TestExpandFrameSizeMismatch(t *testing.T) {
	g := Geometry{Width: 8, Height: 4}

	if _, err := ExpandFrame(make([]byte, g.frameSize()-1), g); err == nil {
		t.Fatal("expected error for truncated frame")
	}
	if _, err := ExpandFrame(make([]byte, g.frameSize()+2), g); err == nil {
		t.Fatal("expected error for oversized frame")
	}
}
