// Package ops provides name-based dispatch for the quantization kernels, so
// a calling framework can discover and invoke them by stable operator names.
package ops

import (
	"fmt"
	"sort"

	"github.com/born-ml/qat/internal/fakequant"
	"github.com/born-ml/qat/internal/tensor"
)

// Stable operator names under which the kernels are registered.
const (
	ForwardOp  = "qat::fake_quantize_per_tensor_affine_forward"
	BackwardOp = "qat::fake_quantize_per_tensor_affine_backward"
)

// Handler executes one registered operator. Inputs are positional: the
// forward operator takes [X], the backward operator takes [X, dY]. Scalar
// arguments arrive as fakequant.Params; a zero NumBits means "omitted" and
// is replaced by the operator's declared default before validation.
type Handler func(ctx *Context, inputs []*tensor.RawTensor, p fakequant.Params) ([]*tensor.RawTensor, error)

// Context provides the backend and other execution context for operators.
type Context struct {
	Backend tensor.Backend
}

// Registry maps operator names to handler functions.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates a registry with both quantization operators installed.
func NewRegistry() *Registry {
	r := &Registry{
		handlers: make(map[string]Handler),
	}

	r.Register(ForwardOp, forwardHandler)
	r.Register(BackwardOp, backwardHandler)

	return r
}

// Register adds a custom operator handler.
func (r *Registry) Register(name string, handler Handler) {
	r.handlers[name] = handler
}

// Get returns the handler for an operator name.
func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Execute runs an operator with the given inputs.
func (r *Registry) Execute(ctx *Context, name string, inputs []*tensor.RawTensor, p fakequant.Params) ([]*tensor.RawTensor, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unsupported operator: %s", name)
	}
	return handler(ctx, inputs, p)
}

// SupportedOps returns a list of all registered operator names.
func (r *Registry) SupportedOps() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// withDeclaredDefaults fills omitted scalar arguments with the values the
// operator declaration documents: num_bits defaults to 8.
func withDeclaredDefaults(p fakequant.Params) fakequant.Params {
	if p.NumBits == 0 {
		p.NumBits = fakequant.DefaultNumBits
	}
	return p
}

func forwardHandler(ctx *Context, inputs []*tensor.RawTensor, p fakequant.Params) ([]*tensor.RawTensor, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("%s expects 1 input, got %d", ForwardOp, len(inputs))
	}
	out, err := fakequant.Forward(inputs[0], withDeclaredDefaults(p), ctx.Backend)
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{out}, nil
}

func backwardHandler(ctx *Context, inputs []*tensor.RawTensor, p fakequant.Params) ([]*tensor.RawTensor, error) {
	if len(inputs) != 2 {
		return nil, fmt.Errorf("%s expects 2 inputs, got %d", BackwardOp, len(inputs))
	}
	out, err := fakequant.Backward(inputs[0], inputs[1], withDeclaredDefaults(p), ctx.Backend)
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{out}, nil
}
