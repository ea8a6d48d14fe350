package fakequant

import (
	"fmt"

	"github.com/born-ml/qat/internal/tensor"
)

// Validate checks the structural validity of p before any numeric work or
// allocation. It is a pure check with no side effects; the first failing
// check determines the diagnostic.
func Validate(p Params) error {
	if p.NumBits < 1 || p.NumBits > 32 {
		return fmt.Errorf("num_bits must be in [1, 32], got %d: %w", p.NumBits, ErrInvalidArgument)
	}
	if p.ZeroPoint < 0 {
		return fmt.Errorf("zero_point must be non-negative, got %d: %w", p.ZeroPoint, ErrInvalidArgument)
	}
	if p.QuantDelay < 0 {
		return fmt.Errorf("quant_delay must be non-negative, got %d: %w", p.QuantDelay, ErrInvalidArgument)
	}
	if p.QuantDelay != 0 && p.Iter < 0 {
		return fmt.Errorf("iter must be non-negative when quant_delay is set, got %d: %w", p.Iter, ErrInvalidArgument)
	}
	return nil
}

// ValidateBackward runs Validate and the backward-only tensor checks: the
// input must have at least one element and match the upstream gradient's
// element count.
func ValidateBackward(p Params, x, grad *tensor.RawTensor) error {
	if err := Validate(p); err != nil {
		return err
	}
	if x.NumElements() == 0 {
		return fmt.Errorf("input tensor has no elements: %w", ErrEmptyTensor)
	}
	if x.NumElements() != grad.NumElements() {
		return fmt.Errorf("input has %d elements but upstream gradient has %d: %w",
			x.NumElements(), grad.NumElements(), ErrInvalidArgument)
	}
	return nil
}

// checkTensor verifies the device and dtype preconditions of one input
// tensor against the executing backend.
func checkTensor(x *tensor.RawTensor, b tensor.Backend) error {
	if x.Device() != b.Device() {
		return fmt.Errorf("tensor resides on %s but backend %q computes on %s: %w",
			x.Device(), b.Name(), b.Device(), ErrPrecondition)
	}
	if x.DType() != tensor.Float32 {
		return fmt.Errorf("tensor dtype is %s, want float32: %w", x.DType(), ErrPrecondition)
	}
	return nil
}
