// Package fakequant implements simulated per-tensor affine quantization for
// quantization-aware training.
//
// The forward transform maps every element of a float32 tensor through
// quantize -> clamp -> dequantize, so the tensor stays in floating point but
// carries the noise of the target integer representation. The backward
// transform implements the straight-through estimator: the upstream gradient
// passes through unchanged wherever the forward quantization point stayed
// inside the representable range, and is zeroed where it saturated.
//
// Both transforms are stateless per call. A quantization delay can suppress
// quantization for the first training steps; the caller supplies the current
// step via Params.Iter and owns its persistence.
package fakequant
