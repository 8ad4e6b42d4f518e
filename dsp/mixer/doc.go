// Package mixer accumulates mono sample streams into multi-channel output
// busses with per-channel gain ramping.
//
// Gains move linearly from their current value toward a target across one
// call, and the reached value is written back, so gain changes spread over
// a block instead of stepping between blocks.
package mixer
