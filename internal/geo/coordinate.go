package geo

import (
	"fmt"
	"math"
)

// Unit identifies the angular unit of a Coordinate.
type Unit int

const (
	// Degrees is the zero value so a literal Coordinate{Longitude, Latitude} is in degrees.
	Degrees Unit = iota
	Radians
)

func (u Unit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Coordinate is a (longitude, latitude) pair tagged with its angular unit.
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Unit      Unit    `json:"-"`
}

// NewCoordinate returns a coordinate in degrees.
func NewCoordinate(longitude, latitude float64) Coordinate {
	return Coordinate{Longitude: longitude, Latitude: latitude, Unit: Degrees}
}

// ToRadians converts c in place. It does nothing if c is already in radians.
func (c *Coordinate) ToRadians() {
	if c.Unit == Radians {
		return
	}
	c.Longitude = DegreesToRadians(c.Longitude)
	c.Latitude = DegreesToRadians(c.Latitude)
	c.Unit = Radians
}

// ToDegrees converts c in place. It does nothing if c is already in degrees.
func (c *Coordinate) ToDegrees() {
	if c.Unit == Degrees {
		return
	}
	c.Longitude = RadiansToDegrees(c.Longitude)
	c.Latitude = RadiansToDegrees(c.Latitude)
	c.Unit = Degrees
}

// InRadians returns a copy of c expressed in radians.
func (c Coordinate) InRadians() Coordinate {
	c.ToRadians()
	return c
}

// InDegrees returns a copy of c expressed in degrees.
func (c Coordinate) InDegrees() Coordinate {
	c.ToDegrees()
	return c
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g %s)", c.Longitude, c.Latitude, c.Unit)
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(x float64) float64 {
	return x * math.Pi / 180
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(x float64) float64 {
	return x / math.Pi * 180
}
