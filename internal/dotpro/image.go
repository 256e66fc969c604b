package dotpro

import (
	"fmt"
	"strings"
	"time"
)

// Projection is the map projection code stored in the header.
type Projection uint16

const (
	Mercator        Projection = 1
	Equirectangular Projection = 2
)

// ParseProjection validates a raw projection code.
func ParseProjection(code uint16) (Projection, error) {
	switch p := Projection(code); p {
	case Mercator, Equirectangular:
		return p, nil
	default:
		return 0, &ProjectionError{Code: code}
	}
}

func (p Projection) String() string {
	switch p {
	case Mercator:
		return "mercator"
	case Equirectangular:
		return "equirectangular"
	default:
		return fmt.Sprintf("Projection(%d)", uint16(p))
	}
}

// Header holds the acquisition metadata at the start of a .pro file.
type Header struct {
	Format     uint8
	Platform   [PlatformNameLen]byte // as written, not necessarily terminated
	PlatformID uint32
	Orbit      uint32
	Year       uint16
	Day        uint16
	TimeOfDay  uint32 // milliseconds since midnight
}

// PlatformName returns the platform name bytes verbatim.
func (h Header) PlatformName() string {
	return string(h.Platform[:])
}

// TrimmedPlatformName strips trailing NUL and space padding.
func (h Header) TrimmedPlatformName() string {
	return strings.TrimRight(h.PlatformName(), "\x00 ")
}

// AcquiredAt interprets Year, Day (day of year, 1-based) and TimeOfDay as a UTC time.
func (h Header) AcquiredAt() time.Time {
	t := time.Date(int(h.Year), time.January, 1, 0, 0, 0, 0, time.UTC)
	return t.AddDate(0, 0, int(h.Day)-1).Add(time.Duration(h.TimeOfDay) * time.Millisecond)
}

// Grid describes the pixel grid and its geographic placement.
type Grid struct {
	Projection      Projection
	Rows            uint16
	Columns         uint16
	AnchorLatitude  float32
	AnchorLongitude float32
	LatitudeExtent  float32
	LongitudeExtent float32
	// Steps are carried for completeness; the index mapping does not use them.
	LatitudeStep  float32
	LongitudeStep float32
}

// Len is the number of samples the grid holds.
func (g Grid) Len() int {
	return int(g.Rows) * int(g.Columns)
}

// Calibration maps raw brightness to temperature: T = A*bright + B.
type Calibration struct {
	A float64
	B float64
}

// IdentityCalibration is used for revisions that carry no coefficients.
var IdentityCalibration = Calibration{A: 1, B: 0}

// Image is a decoded .pro file. It is read-only once constructed; methods
// never modify it, so a single Image may be shared freely.
type Image struct {
	Header      Header
	Grid        Grid
	Calibration Calibration

	pixels []uint16 // row-major, bottom row first
}

// NewImage assembles an Image. The pixel slice is copied and must hold
// exactly Rows*Columns samples.
func NewImage(h Header, g Grid, c Calibration, pixels []uint16) (*Image, error) {
	if _, err := ParseProjection(uint16(g.Projection)); err != nil {
		return nil, err
	}
	if len(pixels) != g.Len() {
		return nil, fmt.Errorf("grid of %d x %d needs %d samples, got %d", g.Columns, g.Rows, g.Len(), len(pixels))
	}
	img := &Image{Header: h, Grid: g, Calibration: c, pixels: make([]uint16, len(pixels))}
	copy(img.pixels, pixels)
	return img, nil
}

// Len returns the number of brightness samples.
func (img *Image) Len() int {
	return len(img.pixels)
}

// Pixels returns a copy of the brightness grid in file order.
func (img *Image) Pixels() []uint16 {
	out := make([]uint16, len(img.pixels))
	copy(out, img.pixels)
	return out
}
