// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated
// quantization kernels.
//
// The go-webgpu bindings currently ship natives for Windows only; on other
// platforms New returns an error and IsAvailable reports false. Use
// IsAvailable for graceful fallback to the CPU backend:
//
//	var backend tensor.Backend = cpu.New()
//	if webgpu.IsAvailable() {
//	    if gpu, err := webgpu.New(); err == nil {
//	        defer gpu.Release()
//	        backend = gpu
//	    }
//	}
package webgpu

import (
	"github.com/born-ml/qat/fakequant"
	internalwebgpu "github.com/born-ml/qat/internal/backend/webgpu"
	"github.com/born-ml/qat/tensor"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Compile-time checks. The WebGPU backend runs the quantization kernels
// natively on the device, so it also implements fakequant.KernelBackend.
var (
	_ tensor.Backend          = (*Backend)(nil)
	_ fakequant.KernelBackend = (*Backend)(nil)
)

// New creates a new WebGPU backend.
//
// This function initializes the WebGPU device and returns a backend ready
// for kernel dispatch. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
