// Package geo provides the angular and spherical arithmetic shared by the
// .pro image tools: coordinates tagged with their angular unit, the Mercator
// latitude transform, and great-circle distance.
//
// # Units
//
// A Coordinate carries an explicit Unit. Geodesy formulas work in radians;
// everything user facing (tool arguments, exported overlays) is in degrees.
// Conversions are explicit and idempotent: converting a coordinate that is
// already in the target unit leaves it untouched.
//
// # Earth Model
//
// Distances use a sphere of radius EarthRadiusKm (6371.21 km). This is the
// radius the .pro tooling has always used and is kept so distances in exported
// slices stay comparable with existing data.
package geo
