package geo

import "math"

// EarthRadiusKm is the sphere radius used for every distance in the .pro tooling.
const EarthRadiusKm = 6371.21

// Distance returns the great-circle distance in kilometers between a and b,
// using the spherical law of cosines. Inputs may be in either unit; they are
// converted on copies.
//
// The cosine is clamped to [-1, 1] so identical or nearly identical points
// yield 0 instead of NaN.
func Distance(a, b Coordinate) float64 {
	a.ToRadians()
	b.ToRadians()

	cos := math.Sin(a.Latitude)*math.Sin(b.Latitude) +
		math.Cos(a.Latitude)*math.Cos(b.Latitude)*math.Cos(a.Longitude-b.Longitude)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * EarthRadiusKm
}
