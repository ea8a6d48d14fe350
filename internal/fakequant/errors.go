package fakequant

import "errors"

// Common errors. Validation failures wrap one of these sentinels; callers
// dispatch with errors.Is.
var (
	// ErrInvalidArgument reports an out-of-range or inconsistent parameter:
	// num_bits, zero_point, quant_delay, iter, or mismatched tensor sizes.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyTensor reports a zero-element input where elements are required
	// (the backward transform).
	ErrEmptyTensor = errors.New("empty tensor")

	// ErrPrecondition reports an input tensor on the wrong device or with the
	// wrong element type for the executing backend.
	ErrPrecondition = errors.New("precondition violation")
)
