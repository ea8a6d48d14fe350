package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/qat/internal/backend/cpu"
	"github.com/born-ml/qat/internal/fakequant"
	"github.com/born-ml/qat/internal/ops"
	"github.com/born-ml/qat/internal/tensor"
)

func raw(t *testing.T, data []float32, b tensor.Backend) *tensor.RawTensor {
	t.Helper()
	x, err := tensor.FromSlice(data, tensor.Shape{len(data)}, b)
	require.NoError(t, err)
	return x.Raw()
}

func TestRegistry_ForwardDispatch(t *testing.T) {
	r := ops.NewRegistry()
	ctx := &ops.Context{Backend: cpu.New()}

	x := raw(t, []float32{0.1, 0.4, 0.6, 0.9}, ctx.Backend)
	outs, err := r.Execute(ctx, ops.ForwardOp, []*tensor.RawTensor{x}, fakequant.NewParams(1.0, 0))
	require.NoError(t, err)
	require.Len(t, outs, 1)

	assert.Equal(t, []float32{0, 0, 1, 1}, outs[0].AsFloat32())
}

func TestRegistry_BackwardDispatch(t *testing.T) {
	r := ops.NewRegistry()
	ctx := &ops.Context{Backend: cpu.New()}

	x := raw(t, []float32{-1000, 0, 1000}, ctx.Backend)
	dy := raw(t, []float32{1, 1, 1}, ctx.Backend)
	outs, err := r.Execute(ctx, ops.BackwardOp, []*tensor.RawTensor{x, dy}, fakequant.NewParams(1.0, 128))
	require.NoError(t, err)
	require.Len(t, outs, 1)

	assert.Equal(t, []float32{0, 1, 0}, outs[0].AsFloat32())
}

func TestRegistry_DefaultNumBits(t *testing.T) {
	r := ops.NewRegistry()
	ctx := &ops.Context{Backend: cpu.New()}

	// NumBits omitted (zero): the declaration's default of 8 applies, so 300
	// clamps to 255 rather than failing validation.
	x := raw(t, []float32{300}, ctx.Backend)
	outs, err := r.Execute(ctx, ops.ForwardOp, []*tensor.RawTensor{x}, fakequant.Params{Scale: 1.0})
	require.NoError(t, err)

	assert.Equal(t, []float32{255}, outs[0].AsFloat32())
}

func TestRegistry_UnknownOp(t *testing.T) {
	r := ops.NewRegistry()
	ctx := &ops.Context{Backend: cpu.New()}

	_, err := r.Execute(ctx, "qat::no_such_op", nil, fakequant.Params{})
	assert.Error(t, err)
}

func TestRegistry_ArityChecked(t *testing.T) {
	r := ops.NewRegistry()
	ctx := &ops.Context{Backend: cpu.New()}

	x := raw(t, []float32{1}, ctx.Backend)

	_, err := r.Execute(ctx, ops.ForwardOp, []*tensor.RawTensor{x, x}, fakequant.NewParams(1, 0))
	assert.Error(t, err)

	_, err = r.Execute(ctx, ops.BackwardOp, []*tensor.RawTensor{x}, fakequant.NewParams(1, 0))
	assert.Error(t, err)
}

func TestRegistry_ValidationSurfaces(t *testing.T) {
	r := ops.NewRegistry()
	ctx := &ops.Context{Backend: cpu.New()}

	x := raw(t, []float32{1}, ctx.Backend)
	_, err := r.Execute(ctx, ops.ForwardOp, []*tensor.RawTensor{x}, fakequant.Params{Scale: 1, NumBits: 33})
	assert.ErrorIs(t, err, fakequant.ErrInvalidArgument)
}

func TestRegistry_SupportedOps(t *testing.T) {
	r := ops.NewRegistry()
	names := r.SupportedOps()

	assert.Contains(t, names, ops.ForwardOp)
	assert.Contains(t, names, ops.BackwardOp)
}
