package dotpro

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// byteOrder is used for every multi-byte field in a .pro file.
var byteOrder = binary.LittleEndian

// rawPrefix mirrors the first 102 bytes of every revision, in file order.
// The blank field is the 42-byte reserved block following the header.
type rawPrefix struct {
	Format          uint8
	Platform        [PlatformNameLen]byte
	PlatformID      uint32
	Orbit           uint32
	Year            uint16
	Day             uint16
	TimeOfDay       uint32
	_               [42]byte
	ProjectionCode  uint16
	Rows            uint16
	Columns         uint16
	AnchorLatitude  float32
	AnchorLongitude float32
	LatitudeExtent  float32
	LongitudeExtent float32
	LatitudeStep    float32
	LongitudeStep   float32
}

// rawCalibration follows the prefix in calibrated revisions.
type rawCalibration struct {
	A float64
	B float64
}

const (
	// PlatformNameLen is the fixed width of the platform name field.
	PlatformNameLen = 13

	prefixSize      = 102
	calibrationSize = 16
	sampleSize      = 2
)

// field describes one entry of the fixed layout.
type field struct {
	name   string
	offset int64
	width  int64
}

// prefixLayout lists the fields of rawPrefix with their byte offsets.
var prefixLayout = []field{
	{"format marker", 0, 1},
	{"platform name", 1, PlatformNameLen},
	{"platform id", 14, 4},
	{"orbit number", 18, 4},
	{"acquisition year", 22, 2},
	{"acquisition day", 24, 2},
	{"acquisition time", 26, 4},
	{"reserved header block", 30, 42},
	{"projection code", 72, 2},
	{"row count", 74, 2},
	{"column count", 76, 2},
	{"anchor latitude", 78, 4},
	{"anchor longitude", 82, 4},
	{"latitude extent", 86, 4},
	{"longitude extent", 90, 4},
	{"latitude step", 94, 4},
	{"longitude step", 98, 4},
}

var calibrationLayout = []field{
	{"calibration A", prefixSize, 8},
	{"calibration B", prefixSize + 8, 8},
}

// fieldAt names the layout field containing the byte at off.
func fieldAt(layout []field, off int64) field {
	for _, f := range layout {
		if off >= f.offset && off < f.offset+f.width {
			return f
		}
	}
	return layout[len(layout)-1]
}

// Revision describes one historical revision of the .pro header.
//
// All known revisions share the 102-byte prefix. They differ in whether two
// float64 calibration coefficients follow it and in the size of the reserved
// block that pads the header before the brightness grid.
type Revision struct {
	Name       string
	Calibrated bool
	Reserved   int
}

var (
	// RevisionCalibrated carries calibration coefficients A and B and a
	// 394-byte reserved block. It is the canonical revision.
	RevisionCalibrated = Revision{Name: "calibrated", Calibrated: true, Reserved: 394}

	// RevisionLegacy has no calibration coefficients and a 410-byte reserved
	// block. Images decoded with it use the identity calibration (A=1, B=0).
	RevisionLegacy = Revision{Name: "legacy", Calibrated: false, Reserved: 410}
)

// Revisions lists the known revisions, canonical first.
var Revisions = []Revision{RevisionCalibrated, RevisionLegacy}

// LookupRevision finds a known revision by name, case-insensitively.
func LookupRevision(name string) (Revision, error) {
	for _, r := range Revisions {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return Revision{}, fmt.Errorf("unknown format revision %q", name)
}

// HeaderSize is the number of bytes before the brightness grid.
func (r Revision) HeaderSize() int {
	n := prefixSize + r.Reserved
	if r.Calibrated {
		n += calibrationSize
	}
	return n
}

func (r Revision) String() string {
	return r.Name
}
