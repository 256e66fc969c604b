package slice

import (
	"fmt"

	"github.com/ironsheep/dotpro-mcp/internal/dotpro"
	"github.com/ironsheep/dotpro-mcp/internal/geo"
)

// Point is one sample along a slice.
type Point struct {
	Index       int            `json:"index"` // 1-based
	X           int            `json:"x"`
	Y           int            `json:"y"`
	Coordinate  geo.Coordinate `json:"coordinate"`
	Brightness  uint16         `json:"brightness"`
	Temperature float64        `json:"temperature"`
	Distance    float64        `json:"distance_km"` // from the first point
}

// StepCount returns the number of steps between from and to: the Chebyshev
// distance between their pixel indices.
func StepCount(img *dotpro.Image, from, to geo.Coordinate) int {
	x1, y1 := img.CoordinateToIndex(from)
	x2, y2 := img.CoordinateToIndex(to)
	return max(abs(x1-x2), abs(y1-y2))
}

// Create samples img along the straight line from one geographic point to
// another, interpolating longitude and latitude linearly.
//
// The result holds StepCount+1 points ordered from `from` to `to`. When both
// endpoints fall in the same pixel the result is the single point `from`.
// Both endpoints are located first, so an endpoint off the grid fails with
// "slice endpoint 1" or "slice endpoint 2" before anything is allocated.
// Every sampled point must land inside the grid; otherwise Create returns an
// error wrapping dotpro.ErrIndexOutOfBounds that names the offending point.
func Create(img *dotpro.Image, from, to geo.Coordinate) ([]Point, error) {
	from.ToDegrees()
	to.ToDegrees()

	for i, c := range []geo.Coordinate{from, to} {
		if _, _, err := img.Locate(c); err != nil {
			return nil, fmt.Errorf("slice endpoint %d at %v: %w", i+1, c, err)
		}
	}

	n := StepCount(img, from, to)

	var deltaLon, deltaLat float64
	if n > 0 {
		deltaLon = (to.Longitude - from.Longitude) / float64(n)
		deltaLat = (to.Latitude - from.Latitude) / float64(n)
	}

	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		c := geo.NewCoordinate(from.Longitude+float64(i)*deltaLon, from.Latitude+float64(i)*deltaLat)

		x, y := img.CoordinateToIndex(c)
		bright, err := img.BrightnessAt(x, y)
		if err != nil {
			return nil, fmt.Errorf("slice point %d at %v: %w", i+1, c, err)
		}

		points = append(points, Point{
			Index:       i + 1,
			X:           x,
			Y:           y,
			Coordinate:  c,
			Brightness:  bright,
			Temperature: img.Temperature(bright),
			Distance:    geo.Distance(c, from),
		})
	}

	return points, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
