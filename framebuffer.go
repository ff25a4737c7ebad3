package fbshot

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrDeviceUnavailable indicates the framebuffer device could not be opened.
	ErrDeviceUnavailable = errors.New("framebuffer device unavailable")
	// ErrShortRead indicates the device returned fewer bytes than one full frame.
	ErrShortRead = errors.New("short framebuffer read")
)

// ReadFrame reads exactly one raw RGB565 frame from r.
//
// The read is all-or-nothing: a stream that yields fewer than
// g.frameSize() bytes fails with ErrShortRead. The caller must not retry a
// failed read, since a second read would observe a different frame.
func ReadFrame(r io.Reader, g Geometry) ([]byte, error) {
	raw := make([]byte, g.frameSize())
	n, err := io.ReadFull(r, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %d of %d bytes: %w", ErrShortRead, n, len(raw), err)
	}
	return raw, nil
}

// CaptureFrame opens the framebuffer device and reads one frame from it.
// An empty device path selects DefaultDevice.
func CaptureFrame(device string, g Geometry) ([]byte, error) {
	if device == "" {
		device = DefaultDevice
	}
	f, err := os.Open(device)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	defer f.Close()

	return ReadFrame(f, g)
}
