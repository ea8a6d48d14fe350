//go:build !windows

// Package webgpu implements the WebGPU backend for GPU-accelerated
// quantization kernels. The go-webgpu bindings currently ship natives for
// windows only; on other platforms New reports the backend as unavailable.
package webgpu

import (
	"errors"

	"github.com/born-ml/qat/internal/fakequant"
	"github.com/born-ml/qat/internal/tensor"
)

// ErrUnavailable is returned by New on platforms without WebGPU natives.
var ErrUnavailable = errors.New("webgpu: not available on this platform")

// Backend is a placeholder on platforms without WebGPU support.
// New never returns a usable instance here; the methods exist so that code
// written against the backend type compiles everywhere.
type Backend struct{}

// New reports WebGPU as unavailable on this platform.
func New() (*Backend, error) {
	return nil, ErrUnavailable
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() bool {
	return false
}

// Release is a no-op on platforms without WebGPU support.
func (b *Backend) Release() {}

// Name returns the backend name.
func (b *Backend) Name() string { return "WebGPU (unavailable)" }

// Device returns the compute device.
func (b *Backend) Device() tensor.Device { return tensor.WebGPU }

func (b *Backend) Copy(x *tensor.RawTensor) *tensor.RawTensor {
	panic("webgpu: backend not available on this platform")
}

func (b *Backend) Mul(a, other *tensor.RawTensor) *tensor.RawTensor {
	panic("webgpu: backend not available on this platform")
}

func (b *Backend) MapUnary(x *tensor.RawTensor, f func(float32) float32) *tensor.RawTensor {
	panic("webgpu: backend not available on this platform")
}

func (b *Backend) Quantize(x *tensor.RawTensor, k fakequant.Affine) *tensor.RawTensor {
	panic("webgpu: backend not available on this platform")
}

func (b *Backend) QuantizeMask(x *tensor.RawTensor, k fakequant.Affine) *tensor.RawTensor {
	panic("webgpu: backend not available on this platform")
}
