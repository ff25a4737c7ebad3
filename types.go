package fbshot

// Geometry describes fixed pixel dimensions of a frame.
type Geometry struct {
	Width  int
	Height int
}

// DisplayGeometry returns the geometry of the TXT 4.0 display.
func DisplayGeometry() Geometry {
	return Geometry{Width: DisplayWidth, Height: DisplayHeight}
}

func (g Geometry) pixels() int { return g.Width * g.Height }

// frameSize is the byte count of one raw RGB565 frame.
func (g Geometry) frameSize() int { return g.pixels() * bytesPerPixel565 }

// rowSize is the byte count of one expanded RGB888 scanline.
func (g Geometry) rowSize() int { return g.Width * bytesPerPixel888 }

// CaptureOptions controls a single screenshot capture.
type CaptureOptions struct {
	Device   string // framebuffer device path (default /dev/fb0)
	Dir      string // output directory (default: current directory)
	BaseName string // output base name (default "screenshot")
	NoDate   bool   // omit the date component from the file name
}

// CaptureResult reports the outcome of a successful capture.
type CaptureResult struct {
	Path string // resolved output file path
}
