package dotpro

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Decoder reads .pro files of one format revision.
type Decoder struct {
	revision Revision
}

// NewDecoder returns a decoder for the given revision.
func NewDecoder(rev Revision) *Decoder {
	return &Decoder{revision: rev}
}

// Revision reports the revision d decodes.
func (d *Decoder) Revision() Revision {
	return d.revision
}

// Decode reads a canonical (calibrated) revision image from r.
func Decode(r io.Reader) (*Image, error) {
	return NewDecoder(RevisionCalibrated).Decode(r)
}

// DecodeFile opens path, decodes it and closes it again whether or not
// decoding succeeded.
func (d *Decoder) DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open .pro file: %w", err)
	}
	defer f.Close()

	img, err := d.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode reads one image from r.
//
// Fields are read in file order. A projection code other than 1 or 2 stops
// decoding before the reserved block and grid are read. A stream that ends
// early yields an error wrapping ErrIncompleteData and no image.
func (d *Decoder) Decode(r io.Reader) (*Image, error) {
	c := newCursor(r)

	buf := make([]byte, prefixSize)
	if err := c.read(buf, prefixLayout); err != nil {
		return nil, err
	}
	var raw rawPrefix
	if err := binary.Read(bytes.NewReader(buf), byteOrder, &raw); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}

	projection, err := ParseProjection(raw.ProjectionCode)
	if err != nil {
		return nil, &DecodeError{Field: "projection code", Offset: 72, Err: err}
	}

	calibration := IdentityCalibration
	if d.revision.Calibrated {
		buf = make([]byte, calibrationSize)
		if err := c.read(buf, calibrationLayout); err != nil {
			return nil, err
		}
		var rc rawCalibration
		if err := binary.Read(bytes.NewReader(buf), byteOrder, &rc); err != nil {
			return nil, fmt.Errorf("decode calibration: %w", err)
		}
		calibration = Calibration{A: rc.A, B: rc.B}
	}

	if err := c.skip(int64(d.revision.Reserved), "reserved padding block"); err != nil {
		return nil, err
	}

	grid := Grid{
		Projection:      projection,
		Rows:            raw.Rows,
		Columns:         raw.Columns,
		AnchorLatitude:  raw.AnchorLatitude,
		AnchorLongitude: raw.AnchorLongitude,
		LatitudeExtent:  raw.LatitudeExtent,
		LongitudeExtent: raw.LongitudeExtent,
		LatitudeStep:    raw.LatitudeStep,
		LongitudeStep:   raw.LongitudeStep,
	}

	pixels, err := readGrid(c, grid.Len())
	if err != nil {
		return nil, err
	}

	return &Image{
		Header: Header{
			Format:     raw.Format,
			Platform:   raw.Platform,
			PlatformID: raw.PlatformID,
			Orbit:      raw.Orbit,
			Year:       raw.Year,
			Day:        raw.Day,
			TimeOfDay:  raw.TimeOfDay,
		},
		Grid:        grid,
		Calibration: calibration,
		pixels:      pixels,
	}, nil
}

// gridChunk is the number of samples read per call. The grid is read in
// chunks so a header claiming a huge grid fails on a short stream before
// the full grid is allocated.
const gridChunk = 32 * 1024

func readGrid(c *cursor, n int) ([]uint16, error) {
	start := c.off
	layout := []field{{"brightness grid", start, int64(n) * sampleSize}}

	pixels := make([]uint16, 0, min(n, gridChunk))
	buf := make([]byte, min(n, gridChunk)*sampleSize)
	for len(pixels) < n {
		chunk := buf[:min(n-len(pixels), gridChunk)*sampleSize]
		if err := c.read(chunk, layout); err != nil {
			got := (c.off - start) / sampleSize
			return nil, fmt.Errorf("read %d of %d samples: %w", got, n, err)
		}
		for i := 0; i < len(chunk); i += sampleSize {
			pixels = append(pixels, byteOrder.Uint16(chunk[i:]))
		}
	}
	return pixels, nil
}
