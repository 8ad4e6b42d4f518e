// Package spectrum provides helpers for working with complex frequency
// spectra: magnitude and power extraction with SIMD-accelerated kernels.
package spectrum
