// Package cpu implements the CPU backend for the quantization kernels.
// Element-wise passes run over contiguous chunks of the host buffer via the
// internal/parallel driver.
package cpu

import (
	"fmt"

	"github.com/born-ml/qat/internal/parallel"
	"github.com/born-ml/qat/internal/tensor"
)

// Backend implements tensor.Backend on the host CPU.
type Backend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend with default parallelism.
func New() *Backend {
	return &Backend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
// Useful for benchmarks and for forcing sequential execution in tests.
func NewWithConfig(cfg parallel.Config) *Backend {
	return &Backend{
		device: tensor.CPU,
		par:    cfg,
	}
}

// Name returns the backend name.
func (c *Backend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (c *Backend) Device() tensor.Device {
	return c.device
}

// Copy returns a fresh tensor with the same contents as x.
func (c *Backend) Copy(x *tensor.RawTensor) *tensor.RawTensor {
	out := tensor.EmptyLike(x)
	copy(out.Data(), x.Data())
	return out
}

// Mul performs the element-wise product of two same-shaped float32 tensors.
func (c *Backend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("mul: shape mismatch: %v vs %v", a.Shape(), b.Shape()))
	}
	if a.DType() != tensor.Float32 || b.DType() != tensor.Float32 {
		panic(fmt.Sprintf("mul: unsupported dtypes %s/%s (only float32 supported)", a.DType(), b.DType()))
	}

	out := tensor.EmptyLike(a)
	av, bv, ov := a.AsFloat32(), b.AsFloat32(), out.AsFloat32()

	parallel.ForRange(len(av), func(start, end int) {
		for i := start; i < end; i++ {
			ov[i] = av[i] * bv[i]
		}
	}, c.par)

	return out
}

// MapUnary applies a pure per-element function to x into a fresh tensor.
// Chunks of the element range are processed by independent goroutines; the
// result does not depend on the partitioning.
func (c *Backend) MapUnary(x *tensor.RawTensor, f func(float32) float32) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("mapunary: unsupported dtype %s (only float32 supported)", x.DType()))
	}

	out := tensor.EmptyLike(x)
	xv, ov := x.AsFloat32(), out.AsFloat32()

	parallel.ForRange(len(xv), func(start, end int) {
		for i := start; i < end; i++ {
			ov[i] = f(xv[i])
		}
	}, c.par)

	return out
}
