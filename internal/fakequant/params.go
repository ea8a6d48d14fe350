package fakequant

// DefaultNumBits is the bit-width used when Params are built with NewParams.
const DefaultNumBits = 8

// Params carries the affine quantization parameters and the delay state for
// one forward or backward call. Defaults are explicit rather than implied by
// the call site: NewParams yields NumBits=8, QuantDelay=0, Iter=0.
//
// Params holds no state between calls. Iter is the caller's training step
// counter, passed in per call; the transforms never retain or increment it.
type Params struct {
	// Scale is the positive quantization step between adjacent grid points.
	Scale float64

	// ZeroPoint is the non-negative integer offset of real zero on the grid.
	ZeroPoint int64

	// NumBits is the bit-width of the target integer representation,
	// bounding the grid to [0, 2^NumBits - 1]. Must be in [1, 32].
	NumBits int64

	// QuantDelay is the number of initial training steps during which
	// quantization is suppressed and both transforms are the identity.
	QuantDelay int64

	// Iter is the current training step. Required to be >= 0 whenever
	// QuantDelay is nonzero.
	Iter int64
}

// NewParams returns Params for the given scale and zero point with the
// documented defaults applied.
func NewParams(scale float64, zeroPoint int64) Params {
	return Params{
		Scale:     scale,
		ZeroPoint: zeroPoint,
		NumBits:   DefaultNumBits,
	}
}

// delayed reports whether the call falls inside the warm-up window, during
// which both transforms pass their input through unchanged. The boundary
// step Iter == QuantDelay still passes through.
func (p Params) delayed() bool {
	return p.QuantDelay > 0 && p.Iter <= p.QuantDelay
}

// kernel derives the per-element numeric kernel from the parameters.
func (p Params) kernel() Affine {
	return NewAffine(p.Scale, p.ZeroPoint, p.NumBits)
}
