package fbshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	pngBitDepth     = 8
	pngColorTypeRGB = 2 // truecolor, no alpha
	pngFilterNone   = 0
)

// RowEncoder serializes an image one scanline at a time, top to bottom.
// Exactly Geometry.Height rows must be written before Close.
type RowEncoder interface {
	WriteRow(row []byte) error
	Close() error
}

// PNGEncoder writes an 8-bit truecolor, non-interlaced PNG scanline by
// scanline. Pixel data is deflated at the default compression level into a
// single IDAT chunk emitted on Close. A failed encode may leave a truncated
// file behind; no cleanup is attempted.
type PNGEncoder struct {
	w      io.Writer
	geom   Geometry
	idat   bytes.Buffer
	zw     *zlib.Writer
	rows   int
	closed bool
}

// NewPNGEncoder writes the PNG signature and IHDR for the given geometry and
// returns an encoder ready to accept scanlines.
func NewPNGEncoder(w io.Writer, g Geometry) (*PNGEncoder, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("invalid geometry %dx%d", g.Width, g.Height)
	}

	e := &PNGEncoder{w: w, geom: g}
	e.zw = zlib.NewWriter(&e.idat)

	if _, err := w.Write(pngSignature); err != nil {
		return nil, fmt.Errorf("write png signature: %w", err)
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:], uint32(g.Width))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(g.Height))
	ihdr[8] = pngBitDepth
	ihdr[9] = pngColorTypeRGB
	// compression method, filter method and interlace method stay zero

	if err := writeChunk(w, "IHDR", ihdr[:]); err != nil {
		return nil, err
	}

	return e, nil
}

// WriteRow appends one RGB888 scanline. The row length must match the
// declared width.
func (e *PNGEncoder) WriteRow(row []byte) error {
	if e.closed {
		return errors.New("png encoder already closed")
	}
	if len(row) != e.geom.rowSize() {
		return fmt.Errorf("row length %d does not match width %d", len(row), e.geom.Width)
	}
	if e.rows >= e.geom.Height {
		return fmt.Errorf("more than %d rows written", e.geom.Height)
	}

	if _, err := e.zw.Write([]byte{pngFilterNone}); err != nil {
		return fmt.Errorf("compress scanline: %w", err)
	}
	if _, err := e.zw.Write(row); err != nil {
		return fmt.Errorf("compress scanline: %w", err)
	}
	e.rows++

	return nil
}

// Close flushes the compressed pixel stream and emits the IDAT and IEND
// chunks. It fails if the number of written rows does not match the geometry.
func (e *PNGEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.rows != e.geom.Height {
		return fmt.Errorf("wrote %d of %d rows", e.rows, e.geom.Height)
	}
	if err := e.zw.Close(); err != nil {
		return fmt.Errorf("close pixel stream: %w", err)
	}
	if err := writeChunk(e.w, "IDAT", e.idat.Bytes()); err != nil {
		return err
	}

	return writeChunk(e.w, "IEND", nil)
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:], uint32(len(data)))
	copy(hdr[4:], typ)

	crc := crc32.NewIEEE()
	_, _ = crc.Write(hdr[4:])
	_, _ = crc.Write(data)

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write %s chunk: %w", typ, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s chunk: %w", typ, err)
	}
	if _, err := w.Write(sum[:]); err != nil {
		return fmt.Errorf("write %s chunk: %w", typ, err)
	}

	return nil
}
