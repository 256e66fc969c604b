package dotpro

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Encode writes img to w in revision r. Reserved blocks are zero filled.
// For revisions without calibration the coefficients are not written.
func (r Revision) Encode(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	raw := rawPrefix{
		Format:          img.Header.Format,
		Platform:        img.Header.Platform,
		PlatformID:      img.Header.PlatformID,
		Orbit:           img.Header.Orbit,
		Year:            img.Header.Year,
		Day:             img.Header.Day,
		TimeOfDay:       img.Header.TimeOfDay,
		ProjectionCode:  uint16(img.Grid.Projection),
		Rows:            img.Grid.Rows,
		Columns:         img.Grid.Columns,
		AnchorLatitude:  img.Grid.AnchorLatitude,
		AnchorLongitude: img.Grid.AnchorLongitude,
		LatitudeExtent:  img.Grid.LatitudeExtent,
		LongitudeExtent: img.Grid.LongitudeExtent,
		LatitudeStep:    img.Grid.LatitudeStep,
		LongitudeStep:   img.Grid.LongitudeStep,
	}
	if err := binary.Write(bw, byteOrder, &raw); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	if r.Calibrated {
		rc := rawCalibration{A: img.Calibration.A, B: img.Calibration.B}
		if err := binary.Write(bw, byteOrder, &rc); err != nil {
			return fmt.Errorf("encode calibration: %w", err)
		}
	}

	if _, err := bw.Write(make([]byte, r.Reserved)); err != nil {
		return fmt.Errorf("encode reserved block: %w", err)
	}

	if err := binary.Write(bw, byteOrder, img.pixels); err != nil {
		return fmt.Errorf("encode brightness grid: %w", err)
	}

	return bw.Flush()
}
