package geo

import "math"

// quarterPi is a variable so every intermediate below rounds to float64 in
// the same order as previously exported data.
var quarterPi = math.Atan2(1, 1)

// MercatorLatitude maps a latitude in degrees onto the Mercator latitude scale,
// also in degrees. The result is finite for any latitude in [-90, 90]; the
// tangent diverges at ±180 and the result is NaN beyond.
func MercatorLatitude(lat float64) float64 {
	x := lat * (quarterPi / 90)
	return 90 * math.Log(math.Tan(float64(0.5*x)+quarterPi)) / quarterPi
}

// UnmercatorLatitude is the inverse of MercatorLatitude.
func UnmercatorLatitude(mercator float64) float64 {
	x := mercator * (quarterPi / 90)
	return 90 * 2.0 * (math.Atan(math.Exp(x)) - quarterPi) / quarterPi
}
