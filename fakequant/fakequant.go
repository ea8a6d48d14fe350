// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fakequant provides the public API for simulated quantization.
//
// Fake quantization maps float values onto a discrete grid and back, so a
// model experiences quantization error during training while all arithmetic
// stays in floating point. The backward transform implements the
// straight-through estimator: gradients flow unchanged where the forward
// value was representable and are zeroed where it saturated.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{0.1, 0.4, 0.6, 0.9}, tensor.Shape{4}, backend)
//	p := fakequant.NewParams(1.0, 0)
//	p.NumBits = 1
//	y, err := fakequant.Forward(x.Raw(), p, backend)
package fakequant

import (
	"github.com/born-ml/qat/internal/fakequant"
	"github.com/born-ml/qat/tensor"
)

// Params holds the affine quantization parameters and training state.
type Params = fakequant.Params

// DefaultNumBits is the bit width used when none is specified.
const DefaultNumBits = fakequant.DefaultNumBits

// NewParams creates Params with the given scale and zero point and the
// default bit width. Delay fields start at zero, meaning quantization is
// active from the first step.
func NewParams(scale float64, zeroPoint int64) Params {
	return fakequant.NewParams(scale, zeroPoint)
}

// Affine is the per-element quantization rule, precomputed from Params.
type Affine = fakequant.Affine

// NewAffine precomputes the affine rule for the given parameters.
func NewAffine(scale float64, zeroPoint, numBits int64) Affine {
	return fakequant.NewAffine(scale, zeroPoint, numBits)
}

// KernelBackend is implemented by backends that run the quantization
// kernels natively instead of through MapUnary.
type KernelBackend = fakequant.KernelBackend

// Sentinel errors. Use errors.Is to classify failures.
var (
	ErrInvalidArgument = fakequant.ErrInvalidArgument
	ErrEmptyTensor     = fakequant.ErrEmptyTensor
	ErrPrecondition    = fakequant.ErrPrecondition
)

// Forward applies the fake quantization transform to x.
//
// Each element is mapped to its nearest representable grid point:
//
//	y = (clamp(round(x/scale + zero_point), 0, 2^bits-1) - zero_point) * scale
//
// During the delay window (QuantDelay > 0 and Iter <= QuantDelay) the
// input is copied through unchanged.
func Forward(x *tensor.RawTensor, p Params, b tensor.Backend) (*tensor.RawTensor, error) {
	return fakequant.Forward(x, p, b)
}

// Backward applies the straight-through estimator to the upstream
// gradient. Gradient elements whose forward quantization point fell
// outside the representable range are zeroed; the rest pass through.
func Backward(x, grad *tensor.RawTensor, p Params, b tensor.Backend) (*tensor.RawTensor, error) {
	return fakequant.Backward(x, grad, p, b)
}

// Validate reports whether p describes a usable quantization configuration.
func Validate(p Params) error {
	return fakequant.Validate(p)
}
