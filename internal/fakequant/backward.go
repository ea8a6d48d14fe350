package fakequant

import (
	"github.com/born-ml/qat/internal/tensor"
)

// Backward computes the straight-through-estimator gradient of Forward with
// respect to x, given the upstream gradient grad. For each element the
// forward quantization point is recomputed; the gradient flows through
// unchanged where that point stayed inside [0, 2^num_bits-1] and is zeroed
// where it saturated:
//
//	dX = mask(x) * dY,  mask(x) = 1 if quant_min <= round(x/scale + zero_point) <= quant_max else 0
//
// During the delay window the gradient passes through unchanged, returning
// an exact copy of grad, consistent with Forward's identity passthrough.
//
// Neither input is mutated; the mask and the output are fresh tensors.
func Backward(x, grad *tensor.RawTensor, p Params, b tensor.Backend) (*tensor.RawTensor, error) {
	if err := ValidateBackward(p, x, grad); err != nil {
		return nil, err
	}
	if err := checkTensor(x, b); err != nil {
		return nil, err
	}
	if err := checkTensor(grad, b); err != nil {
		return nil, err
	}

	if p.delayed() {
		return b.Copy(grad), nil
	}

	k := p.kernel()
	var mask *tensor.RawTensor
	if kb, ok := b.(KernelBackend); ok {
		mask = kb.QuantizeMask(x, k)
	} else {
		mask = b.MapUnary(x, k.Mask)
	}
	return b.Mul(mask, grad), nil
}
