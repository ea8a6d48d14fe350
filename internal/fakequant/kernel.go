package fakequant

import "math"

// Affine holds the per-element constants of the fake-quantization rule.
// It is the pure numeric kernel, separated from any execution strategy: the
// CPU backend feeds Apply and Mask to its parallel map, and the WebGPU
// backend mirrors the same arithmetic in WGSL.
type Affine struct {
	Scale     float32
	InvScale  float32
	ZeroPoint float32
	QuantMin  float32
	QuantMax  float32
}

// NewAffine derives the kernel constants from the call parameters.
// The representable range is [0, 2^numBits - 1], computed in floating point.
func NewAffine(scale float64, zeroPoint, numBits int64) Affine {
	return Affine{
		Scale:     float32(scale),
		InvScale:  float32(1.0 / scale),
		ZeroPoint: float32(zeroPoint),
		QuantMin:  0,
		QuantMax:  float32(math.Exp2(float64(numBits)) - 1),
	}
}

// point computes the quantization point of x on the integer grid:
// round(x/scale + zero_point), with round half away from zero.
func (k Affine) point(x float32) float32 {
	return float32(math.Round(float64(x*k.InvScale + k.ZeroPoint)))
}

// Apply maps one element through quantize -> clamp -> dequantize.
func (k Affine) Apply(x float32) float32 {
	q := clamp(k.point(x), k.QuantMin, k.QuantMax)
	return (q - k.ZeroPoint) * k.Scale
}

// Mask returns 1 when the quantization point of x lies inside the
// representable range, and 0 when it saturates the clamp.
func (k Affine) Mask(x float32) float32 {
	q := k.point(x)
	if q < k.QuantMin || q > k.QuantMax {
		return 0
	}
	return 1
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
