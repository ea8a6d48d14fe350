package tensor

// Backend defines the compute interface the quantization kernels require
// from a device. It is deliberately narrow: the kernels need fresh-copy
// allocation, an element-wise product and a parallel element-wise map, and
// nothing else.
//
// Implementations:
//   - CPU: chunked goroutine execution over the host buffer
//   - WebGPU: WGSL compute shaders (the map primitive falls back to the
//     host, since Go closures cannot cross the device boundary)
type Backend interface {
	// Copy returns a fresh tensor with the same contents, shape and dtype
	// as x, resident on this backend's device.
	Copy(x *RawTensor) *RawTensor

	// Mul performs the element-wise product of two same-shaped float32
	// tensors into a fresh output tensor.
	Mul(a, b *RawTensor) *RawTensor

	// MapUnary applies a pure per-element function to every element of a
	// float32 tensor, writing into a fresh output tensor. Elements are
	// independent; the backend chooses the partitioning.
	MapUnary(x *RawTensor, f func(float32) float32) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
