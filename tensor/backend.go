// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/qat/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for the quantization kernels.
//
// Implementations:
//   - backend/cpu: Pure Go with chunked goroutine parallelism
//   - backend/webgpu: GPU compute via WebGPU (Windows)
//
// Example:
//
//	import (
//	    "github.com/born-ml/qat/backend/cpu"
//	    "github.com/born-ml/qat/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
type Backend interface {
	// Element-wise operations.
	Copy(x *RawTensor) *RawTensor                               // Deep copy into a fresh buffer.
	Mul(a, b *RawTensor) *RawTensor                             // Element-wise multiplication.
	MapUnary(x *RawTensor, f func(float32) float32) *RawTensor  // Apply f to every element.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU", "WebGPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
