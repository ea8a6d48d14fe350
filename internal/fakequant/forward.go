package fakequant

import (
	"github.com/born-ml/qat/internal/tensor"
)

// KernelBackend is implemented by backends that run the affine quantization
// kernels natively (for example as GPU compute shaders) instead of through
// tensor.Backend.MapUnary. The transforms upgrade to it when available.
type KernelBackend interface {
	// Quantize runs the forward rule (Affine.Apply) over x into a fresh tensor.
	Quantize(x *tensor.RawTensor, k Affine) *tensor.RawTensor

	// QuantizeMask runs the gradient-mask rule (Affine.Mask) over x into a
	// fresh tensor.
	QuantizeMask(x *tensor.RawTensor, k Affine) *tensor.RawTensor
}

// Forward simulates quantization of x with per-tensor affine parameters,
// returning a fresh tensor of the same shape. Each element is independently
// mapped through quantize -> clamp -> dequantize:
//
//	y = (clamp(round(x/scale + zero_point), 0, 2^num_bits-1) - zero_point) * scale
//
// During the delay window (QuantDelay > 0 and Iter <= QuantDelay) the
// transform is the identity and returns an exact copy of x.
//
// x is never mutated. Validation failures surface before any allocation or
// device work.
func Forward(x *tensor.RawTensor, p Params, b tensor.Backend) (*tensor.RawTensor, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	if err := checkTensor(x, b); err != nil {
		return nil, err
	}

	if p.delayed() {
		return b.Copy(x), nil
	}

	k := p.kernel()
	if kb, ok := b.(KernelBackend); ok {
		return kb.Quantize(x, k), nil
	}
	return b.MapUnary(x, k.Apply), nil
}
