package fbshot

import (
	"fmt"
	"os"
)

// Capture grabs the current display contents and writes them to a unique PNG
// file. It runs the full pipeline once: resolve the output name, read one
// frame from the device, expand it to RGB888 and encode it scanline by
// scanline. There are no retries; the first failing stage aborts the capture.
func Capture(opts ...func(o *CaptureOptions)) (*CaptureResult, error) {
	opt := CaptureOptions{
		Device:   DefaultDevice,
		BaseName: defaultBaseName,
	}

	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	g := DisplayGeometry()

	// The output name has no dependency on pixel content, so it is resolved
	// before the device is touched.
	path := UniquePath(opt.Dir, opt.BaseName, !opt.NoDate)

	raw, err := CaptureFrame(opt.Device, g)
	if err != nil {
		return nil, fmt.Errorf("capture frame: %w", err)
	}

	pix, err := ExpandFrame(raw, g)
	if err != nil {
		return nil, fmt.Errorf("expand frame: %w", err)
	}

	if err := writePNGFile(path, pix, g); err != nil {
		return nil, err
	}

	return &CaptureResult{Path: path}, nil
}

// writePNGFile encodes pix into a new file at path. On encoder failure a
// truncated file may remain behind.
func writePNGFile(path string, pix []byte, g Geometry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}

	enc, err := NewPNGEncoder(f, g)
	if err != nil {
		f.Close()

		return fmt.Errorf("encode png: %w", err)
	}

	for y := 0; y < g.Height; y++ {
		row := pix[y*g.rowSize() : (y+1)*g.rowSize()]
		if err := enc.WriteRow(row); err != nil {
			f.Close()

			return fmt.Errorf("encode png: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		f.Close()

		return fmt.Errorf("encode png: %w", err)
	}

	return f.Close()
}
