// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the quantization kernels.
//
// The backend parallelizes element-wise work across goroutines in fixed
// chunks; small tensors run sequentially to avoid scheduling overhead.
// It is safe for concurrent use.
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
package cpu

import (
	internalcpu "github.com/born-ml/qat/internal/backend/cpu"
	"github.com/born-ml/qat/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend with default parallelism settings.
func New() *Backend {
	return internalcpu.New()
}
