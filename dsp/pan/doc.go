// Package pan converts spatial directions into per-channel mixing gains
// for an ambisonic output bus.
//
// Directions use a listener-relative right-handed frame: +x left, +y up,
// +z front. Coefficients follow ACN channel ordering with N3D (full 3D)
// normalization up to third order, so a bus carrying fewer channels simply
// consumes a prefix of the coefficient set.
package pan
