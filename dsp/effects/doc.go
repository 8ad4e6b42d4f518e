// Package effects provides reusable non-I/O DSP effect kernels.
//
// Effects in this package:
//   - Echo: two-tap feedback echo with damped recirculation, panned onto
//     a multi-channel ambisonic bus.
//
// All effects are designed for real-time processing with zero-allocation
// hot paths. Buffer sizing and parameter updates are control-path
// operations; a host must sequence them around Process calls, never
// concurrently with one.
package effects
