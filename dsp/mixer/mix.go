package mixer

import "math"

// SilenceGain is the level below which a channel's contribution is
// considered inaudible and skipped entirely (-100 dB).
const SilenceGain = 1e-5

// Mix accumulates the mono stream in into each channel of out, ramping the
// channel gain linearly from current[c] to target[c] across len(in)
// samples. Output samples are added to, never overwritten. current[c] is
// left at target[c] afterwards, so the next call continues without a
// discontinuity.
//
// Channels where both the current and the target gain sit below
// [SilenceGain] are skipped without touching the output. The channel count
// processed is the smallest of len(out), len(current) and len(target);
// every out[c] must hold at least len(in) samples.
func Mix(in []float64, out [][]float64, current, target []float64) {
	n := len(in)
	if n == 0 {
		return
	}

	channels := len(out)
	if len(current) < channels {
		channels = len(current)
	}
	if len(target) < channels {
		channels = len(target)
	}

	for c := 0; c < channels; c++ {
		gain := current[c]
		tgt := target[c]

		if math.Max(math.Abs(gain), math.Abs(tgt)) < SilenceGain {
			current[c] = tgt
			continue
		}

		dst := out[c][:n]

		if gain == tgt {
			for i, x := range in {
				dst[i] += x * gain
			}
			continue
		}

		step := (tgt - gain) / float64(n)
		for i, x := range in {
			dst[i] += x * (gain + step*float64(i))
		}

		current[c] = tgt
	}
}
