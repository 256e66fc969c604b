// Package slice samples .pro images along straight lines and exports the
// samples as vector-overlay (.vec) text.
//
// A slice between two geographic points takes one step per pixel along the
// dominant axis (the Chebyshev distance between the endpoint pixels), so a
// slice crossing 120 columns and 40 rows has 121 points. Each point carries
// its pixel index, coordinate, raw brightness, calibrated temperature and the
// great-circle distance from the first point.
//
// # Overlay Format
//
// Each point becomes one line:
//
//	TYPE = POINT COLOR = 10 GEO = (37.5, 55.75) WIDTH = 3 IS_WIDTH_ADAPTIVE = FALSE
//
// Coordinates are in degrees, longitude first, with period decimals.
package slice
