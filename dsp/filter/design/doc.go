// Package design provides closed-form biquad coefficient designs.
//
// The formulas follow the RBJ Audio EQ Cookbook. Invalid inputs (frequency
// outside (0, Nyquist), non-finite values) yield the zero Coefficients
// value, which a caller can detect or treat as silence.
package design
