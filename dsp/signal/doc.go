// Package signal generates deterministic test signals.
package signal
