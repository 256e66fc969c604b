package dotpro

import (
	"math"

	"github.com/ironsheep/dotpro-mcp/internal/geo"
)

// rowBias is the half-pixel row offset used when mapping a row to latitude.
// It pairs with the -0.5 in CoordinateToIndex; both are part of the format's
// established output and must not be normalized.
const rowBias = 0.52

// widthFactor is the number of pixels per radian of Mercator ordinate.
func (img *Image) widthFactor() float64 {
	return (float64(img.Grid.Columns) / float64(img.Grid.LongitudeExtent) * 360) / (2 * math.Pi)
}

// mapOffset is the Mercator ordinate of the anchor latitude, in pixels.
func (img *Image) mapOffset(width float64) float64 {
	return width * math.Log(math.Tan(math.Pi/4+geo.DegreesToRadians(float64(img.Grid.AnchorLatitude))/2))
}

// longitudeStep is the longitude covered by one column.
func (img *Image) longitudeStep() float64 {
	return float64(img.Grid.LongitudeExtent) / float64(int(img.Grid.Columns)-1)
}

// IndexToCoordinate returns the geographic position of pixel (col, row)
// in degrees. No bounds check is made; indices outside the grid extrapolate.
// A single-column grid has no longitude step and yields a NaN longitude.
func (img *Image) IndexToCoordinate(col, row int) geo.Coordinate {
	lon := float64(img.Grid.AnchorLongitude) + float64(col)*float64(img.Grid.LongitudeExtent)/float64(int(img.Grid.Columns)-1)

	width := img.widthFactor()
	offset := img.mapOffset(width)
	a := (float64(img.Grid.Rows) + offset - float64(row) - rowBias) / width
	lat := 180 / math.Pi * (2*math.Atan(math.Exp(a)) - math.Pi/2)

	return geo.NewCoordinate(lon, lat)
}

// CoordinateToIndex returns the pixel containing c. The column is rounded
// half up and the row is floored. The result may lie outside the grid; use
// Contains or Locate when it will index pixels.
func (img *Image) CoordinateToIndex(c geo.Coordinate) (col, row int) {
	column, estimated := img.position(c)
	return int(column), int(estimated)
}

// position is CoordinateToIndex before conversion to int.
func (img *Image) position(c geo.Coordinate) (column, row float64) {
	c.ToDegrees()

	column = math.Floor((c.Longitude-float64(img.Grid.AnchorLongitude))/img.longitudeStep() + 0.5)

	width := img.widthFactor()
	offset := img.mapOffset(width)
	ordinate := math.Log(math.Tan(math.Pi/4 + geo.DegreesToRadians(c.Latitude)/2))
	row = math.Floor(float64(img.Grid.Rows) - (width*ordinate - offset) - 0.5)

	return column, row
}

// Contains reports whether (col, row) indexes a pixel of the grid.
func (img *Image) Contains(col, row int) bool {
	return col >= 0 && col < int(img.Grid.Columns) && row >= 0 && row < int(img.Grid.Rows)
}

// CheckIndex returns an *IndexError when (col, row) lies outside the grid.
func (img *Image) CheckIndex(col, row int) error {
	if img.Contains(col, row) {
		return nil
	}
	return &IndexError{Col: col, Row: row, Columns: int(img.Grid.Columns), Rows: int(img.Grid.Rows)}
}

// Locate is CoordinateToIndex followed by a bounds check. Coordinates that
// map to no finite index, or to one beyond int range, fail with a
// *CoordinateError instead of an *IndexError.
func (img *Image) Locate(c geo.Coordinate) (col, row int, err error) {
	column, estimated := img.position(c)
	if !inIndexRange(column) || !inIndexRange(estimated) {
		return 0, 0, &CoordinateError{Coordinate: c, Columns: int(img.Grid.Columns), Rows: int(img.Grid.Rows)}
	}
	col, row = int(column), int(estimated)
	return col, row, img.CheckIndex(col, row)
}

// inIndexRange reports whether f is finite and within int32 range.
func inIndexRange(f float64) bool {
	return f >= math.MinInt32 && f <= math.MaxInt32
}

// BrightnessAt returns the raw sample at (col, row). Row 0 is the top of the
// image while the grid is stored bottom row first, hence the vertical flip.
func (img *Image) BrightnessAt(col, row int) (uint16, error) {
	if err := img.CheckIndex(col, row); err != nil {
		return 0, err
	}
	return img.pixels[col+int(img.Grid.Columns)*(int(img.Grid.Rows)-row-1)], nil
}

// Temperature applies the image's linear calibration to a brightness value.
func (img *Image) Temperature(bright uint16) float64 {
	return img.Calibration.Temperature(bright)
}

// Temperature applies T = A*bright + B.
func (c Calibration) Temperature(bright uint16) float64 {
	return c.A*float64(bright) + c.B
}
