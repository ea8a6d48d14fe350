//go:build windows

package webgpu

import (
	"github.com/born-ml/qat/internal/fakequant"
	"github.com/born-ml/qat/internal/tensor"
)

// Quantize runs the forward fake-quantization rule over x on GPU.
// Implements fakequant.KernelBackend.
func (b *Backend) Quantize(x *tensor.RawTensor, k fakequant.Affine) *tensor.RawTensor {
	result, err := b.runAffineKernel(x, k, "fake_quantize", fakeQuantizeShader)
	if err != nil {
		panic("webgpu: Quantize: " + err.Error())
	}
	return result
}

// QuantizeMask runs the gradient-mask rule over x on GPU.
// Implements fakequant.KernelBackend.
func (b *Backend) QuantizeMask(x *tensor.RawTensor, k fakequant.Affine) *tensor.RawTensor {
	result, err := b.runAffineKernel(x, k, "quantize_mask", quantizeMaskShader)
	if err != nil {
		panic("webgpu: QuantizeMask: " + err.Error())
	}
	return result
}

// Mul performs the element-wise product of two same-shaped tensors on GPU.
func (b *Backend) Mul(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runMul(a, other)
	if err != nil {
		panic("webgpu: Mul: " + err.Error())
	}
	return result
}
