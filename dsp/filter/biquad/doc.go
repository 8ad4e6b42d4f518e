// Package biquad implements second-order IIR filter sections in
// Direct Form II Transposed, with both stateful block processing and a
// pure per-sample transform for callers that carry the filter state
// themselves (feedback loops, interleaved processing).
package biquad
