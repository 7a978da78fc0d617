package scoring

// NeutralSubScore is the [0,1] score used when a signal is absent or
// cannot be fetched.
const NeutralSubScore = 0.5

// NeutralScore is the persisted 0..100 equivalent, assigned at item creation.
const NeutralScore = 50

// NormalizeSentiment maps a raw analyzer polarity into [0,1]. The raw value
// is clamped into [-1,1] before rescaling, so magnitudes beyond 1 saturate
// at the extremes rather than being proportionally rescaled. The bundled
// analyzer emits values in [-5,5]; a comment averaging more than one full
// valence point per token is already an extreme signal.
func NormalizeSentiment(raw float64) float64 {
	clamped := clampFloat(raw, -1, 1)
	return (clamped + 1) / 2
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
