package effects

import (
	"fmt"
	"math"

	"github.com/Rihay66/openal-soft/dsp/core"
	"github.com/Rihay66/openal-soft/dsp/filter/biquad"
	"github.com/Rihay66/openal-soft/dsp/filter/design"
	"github.com/Rihay66/openal-soft/dsp/mixer"
	"github.com/Rihay66/openal-soft/dsp/pan"
)

const (
	defaultEchoMaxDelay   = 0.207
	defaultEchoMaxLRDelay = 0.404
	defaultEchoMaxBlock   = 1024

	// dampingFreqRef is the pivot frequency of the feedback damping shelf.
	dampingFreqRef = 5000.0

	// minDampedGain floors the damping shelf at -24 dB so full damping
	// still passes some high-frequency content instead of degenerating
	// into a lowpass.
	minDampedGain = 0.0625
)

// EchoParams holds the user-facing echo properties, translated into DSP
// state by [Echo.Update].
type EchoParams struct {
	Delay    float64 // first-tap delay in seconds, 0 to the configured maximum
	LRDelay  float64 // extra second-tap delay in seconds, 0 to the configured maximum
	Damping  float64 // high-frequency feedback damping, 0 to 1
	Feedback float64 // per-cycle recirculation gain, 0 to 1
	Spread   float64 // lateral placement of the tap pair, -1 to +1 (0 = center)
}

// DefaultEchoParams returns the standard echo preset.
func DefaultEchoParams() EchoParams {
	return EchoParams{
		Delay:    0.1,
		LRDelay:  0.1,
		Damping:  0.5,
		Feedback: 0.5,
		Spread:   -1,
	}
}

type echoTap struct {
	// delay is the read distance behind the write cursor in samples.
	delay uint

	current [pan.MaxChannels]float64
	target  [pan.MaxChannels]float64
}

// Echo is a two-tap feedback echo over a power-of-two ring buffer.
//
// The first tap produces the initial echo, the second tap both produces a
// mirrored echo and feeds the ring buffer back through a high-shelf
// damping filter, so the recirculating tail decays and dulls. Each tap is
// panned onto the output bus with its own gain vector, ramped across each
// block.
//
// Lifecycle: [Echo.DeviceUpdate] sizes the buffer for a sample rate,
// [Echo.Update] translates parameters, [Echo.Process] runs the hot path.
// The three must not run concurrently on one instance.
type Echo struct {
	buffer []float64
	mask   uint
	offset uint // write cursor, always masked between blocks

	taps [2]echoTap

	damping  biquad.Coefficients
	z0, z1   float64 // damping filter state, persists across blocks and updates
	feedGain float64

	temp [2][]float64

	maxDelay   float64
	maxLRDelay float64
	maxBlock   int
}

// EchoOption configures an Echo at construction time.
type EchoOption func(*Echo)

// WithMaxDelay sets the largest first-tap delay in seconds the echo must
// accommodate. The ring buffer is sized from this bound.
func WithMaxDelay(seconds float64) EchoOption {
	return func(e *Echo) {
		e.maxDelay = seconds
	}
}

// WithMaxLRDelay sets the largest extra second-tap delay in seconds.
func WithMaxLRDelay(seconds float64) EchoOption {
	return func(e *Echo) {
		e.maxLRDelay = seconds
	}
}

// WithMaxBlockSize sets the largest sample count a single Process call
// may be asked for.
func WithMaxBlockSize(samples int) EchoOption {
	return func(e *Echo) {
		e.maxBlock = samples
	}
}

// NewEcho creates an echo with default bounds (0.207 s first tap, 0.404 s
// extra second-tap delay, 1024-sample blocks). DeviceUpdate must be called
// before the first Process.
func NewEcho(opts ...EchoOption) (*Echo, error) {
	e := &Echo{
		maxDelay:   defaultEchoMaxDelay,
		maxLRDelay: defaultEchoMaxLRDelay,
		maxBlock:   defaultEchoMaxBlock,

		// Transparent until the first Update.
		damping: biquad.Coefficients{B0: 1},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	if e.maxDelay <= 0 || math.IsNaN(e.maxDelay) || math.IsInf(e.maxDelay, 0) {
		return nil, fmt.Errorf("echo max delay must be > 0: %f", e.maxDelay)
	}
	if e.maxLRDelay < 0 || math.IsNaN(e.maxLRDelay) || math.IsInf(e.maxLRDelay, 0) {
		return nil, fmt.Errorf("echo max LR delay must be >= 0: %f", e.maxLRDelay)
	}
	if e.maxBlock <= 0 {
		return nil, fmt.Errorf("echo max block size must be > 0: %d", e.maxBlock)
	}

	e.temp[0] = make([]float64, e.maxBlock)
	e.temp[1] = make([]float64, e.maxBlock)

	return e, nil
}

// MaxDelay returns the configured first-tap delay bound in seconds.
func (e *Echo) MaxDelay() float64 { return e.maxDelay }

// MaxLRDelay returns the configured extra second-tap delay bound in seconds.
func (e *Echo) MaxLRDelay() float64 { return e.maxLRDelay }

// MaxBlockSize returns the largest per-call sample count Process accepts.
func (e *Echo) MaxBlockSize() int { return e.maxBlock }

// BufferLen returns the current ring buffer length. Zero before the first
// DeviceUpdate.
func (e *Echo) BufferLen() int { return len(e.buffer) }

// DeviceUpdate sizes the ring buffer for a new device sample rate.
//
// The buffer length is the smallest power of two covering the worst-case
// combined tap delay, so tap positions wrap with a bitmask. Reallocation
// happens only when that length changes; reallocating discards all echo
// history. Both taps' live gains are cleared either way, so output after a
// device change fades in instead of jumping to the full target gain.
func (e *Echo) DeviceUpdate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("echo sample rate must be > 0: %f", sampleRate)
	}

	required := int(math.Round(e.maxDelay*sampleRate)) + int(math.Round(e.maxLRDelay*sampleRate))

	length := core.NextPowerOfTwo(required)
	if length != len(e.buffer) {
		e.buffer = make([]float64, length)
		e.mask = uint(length - 1)
		e.offset = 0
	}

	for t := range e.taps {
		e.taps[t].current = [pan.MaxChannels]float64{}
	}

	return nil
}

// Update translates effect parameters into tap offsets, damping filter
// coefficients, feedback gain and per-tap target pan gains for the given
// output bus. The ring buffer, write cursor, live pan gains and the
// damping filter's running state are deliberately left alone; the next
// Process block ramps toward the new targets.
//
// Update is a pure function of its inputs: identical arguments always
// produce identical internal state.
func (e *Echo) Update(params EchoParams, sampleRate float64, target pan.Target, sendGain float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("echo sample rate must be > 0: %f", sampleRate)
	}
	if params.Delay < 0 || params.Delay > e.maxDelay || math.IsNaN(params.Delay) {
		return fmt.Errorf("echo delay must be in [0, %f]: %f", e.maxDelay, params.Delay)
	}
	if params.LRDelay < 0 || params.LRDelay > e.maxLRDelay || math.IsNaN(params.LRDelay) {
		return fmt.Errorf("echo LR delay must be in [0, %f]: %f", e.maxLRDelay, params.LRDelay)
	}
	if params.Damping < 0 || params.Damping > 1 || math.IsNaN(params.Damping) {
		return fmt.Errorf("echo damping must be in [0, 1]: %f", params.Damping)
	}
	if params.Feedback < 0 || params.Feedback > 1 || math.IsNaN(params.Feedback) {
		return fmt.Errorf("echo feedback must be in [0, 1]: %f", params.Feedback)
	}
	if params.Spread < -1 || params.Spread > 1 || math.IsNaN(params.Spread) {
		return fmt.Errorf("echo spread must be in [-1, 1]: %f", params.Spread)
	}
	if sendGain < 0 || math.IsNaN(sendGain) || math.IsInf(sendGain, 0) {
		return fmt.Errorf("echo send gain must be >= 0: %f", sendGain)
	}

	// The first tap needs at least one sample of delay; the second tap
	// always trails the first by at least one more.
	tap0 := uint(math.Round(params.Delay * sampleRate))
	if tap0 < 1 {
		tap0 = 1
	}

	lr := uint(math.Round(params.LRDelay * sampleRate))
	if lr < 1 {
		lr = 1
	}

	e.taps[0].delay = tap0
	e.taps[1].delay = tap0 + lr

	gainHF := math.Max(1-params.Damping, minDampedGain)
	e.damping = design.HighShelfFromSlope(dampingFreqRef, gainHF, 1, sampleRate)

	e.feedGain = params.Feedback

	// Spread places the tap pair on mirrored unit directions in the
	// horizontal plane: x lateral, sqrt(1-x*x) forward.
	x := params.Spread
	z := math.Sqrt(1 - x*x)

	pan.Gains(target, pan.Coefficients(x, 0, z), sendGain, e.taps[0].target[:])
	pan.Gains(target, pan.Coefficients(-x, 0, z), sendGain, e.taps[1].target[:])

	return nil
}

// Process runs one block: n mono input samples from in, accumulated as
// panned echo output into the channels of out.
//
// Caller contract (not validated here, this is the real-time path):
// 0 < n <= MaxBlockSize, len(in) >= n, every out channel holds at least
// n samples, and DeviceUpdate has been called. Process never allocates.
func (e *Echo) Process(n int, in []float64, out [][]float64) {
	if n <= 0 || len(e.buffer) == 0 {
		return
	}

	delaybuf := e.buffer
	mask := e.mask
	offset := e.offset
	tap0 := offset - e.taps[0].delay
	tap1 := offset - e.taps[1].delay

	temp0 := e.temp[0]
	temp1 := e.temp[1]

	filter := e.damping
	z0, z1 := e.z0, e.z1
	feed := e.feedGain

	for i := 0; i < n; {
		offset &= mask
		tap0 &= mask
		tap1 &= mask

		// Run unmasked until whichever index reaches the buffer end
		// first, so the inner loop carries no wrap handling at all.
		maxPos := offset
		if tap0 > maxPos {
			maxPos = tap0
		}
		if tap1 > maxPos {
			maxPos = tap1
		}

		td := int(mask + 1 - maxPos)
		if rem := n - i; td > rem {
			td = rem
		}

		for ; td > 0; td-- {
			// Feed the ring buffer's input first; the taps read
			// strictly older samples.
			delaybuf[offset] = in[i]

			t0 := delaybuf[tap0]
			t1 := delaybuf[tap1]
			tap0++
			tap1++

			temp0[i] = t0
			temp1[i] = t1
			i++

			// Recirculate the second tap through the damping shelf.
			var fb float64
			fb, z0, z1 = filter.ProcessOne(t1, z0, z1)
			delaybuf[offset] += fb * feed
			offset++
		}
	}

	e.offset = offset & mask
	e.z0 = core.FlushDenormals(z0)
	e.z1 = core.FlushDenormals(z1)

	mixer.Mix(temp0[:n], out, e.taps[0].current[:], e.taps[0].target[:])
	mixer.Mix(temp1[:n], out, e.taps[1].current[:], e.taps[1].target[:])
}
