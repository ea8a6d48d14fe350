package fakequant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/qat/internal/backend/cpu"
	"github.com/born-ml/qat/internal/fakequant"
	"github.com/born-ml/qat/internal/tensor"
)

func TestBackward_MaskSaturatedElements(t *testing.T) {
	b := cpu.New()
	x := rawFromSlice(t, []float32{-1000, 0, 1000}, b)
	dy := rawFromSlice(t, []float32{1, 1, 1}, b)

	// scale=1, zero_point=128, num_bits=8: quant_max=255; the first element
	// saturates below quant_min, the last above quant_max.
	dx, err := fakequant.Backward(x, dy, fakequant.NewParams(1.0, 128), b)
	require.NoError(t, err)

	assert.Equal(t, []float32{0, 1, 0}, dx.AsFloat32())
}

func TestBackward_ScalesGradientByMask(t *testing.T) {
	b := cpu.New()
	x := rawFromSlice(t, []float32{-1000, 10, 1000, -5}, b)
	dy := rawFromSlice(t, []float32{0.5, -2, 3, 0.25}, b)

	dx, err := fakequant.Backward(x, dy, fakequant.NewParams(1.0, 128), b)
	require.NoError(t, err)

	// Gradient flows unchanged for in-range elements, zeroed for saturated.
	assert.Equal(t, []float32{0, -2, 0, 0.25}, dx.AsFloat32())

	// Inputs untouched.
	assert.Equal(t, []float32{0.5, -2, 3, 0.25}, dy.AsFloat32())
}

func TestBackward_DelayPassthrough(t *testing.T) {
	b := cpu.New()
	x := rawFromSlice(t, []float32{-1000, 0, 1000}, b)
	grad := []float32{0.5, -2, 3}
	dy := rawFromSlice(t, grad, b)

	p := fakequant.NewParams(1.0, 128)
	p.QuantDelay = 5
	p.Iter = 3

	dx, err := fakequant.Backward(x, dy, p, b)
	require.NoError(t, err)
	assert.Equal(t, grad, dx.AsFloat32(), "delayed backward must copy the upstream gradient")

	// Fresh buffer, not a view of dy.
	dx.AsFloat32()[0] = 42
	assert.Equal(t, float32(0.5), dy.AsFloat32()[0])
}

func TestBackward_DelayBoundary(t *testing.T) {
	b := cpu.New()
	p := fakequant.NewParams(1.0, 128)
	p.QuantDelay = 5

	x := rawFromSlice(t, []float32{1000}, b)
	dy := rawFromSlice(t, []float32{3}, b)

	// iter == quant_delay: gradient passes through.
	p.Iter = 5
	dx, err := fakequant.Backward(x, dy, p, b)
	require.NoError(t, err)
	assert.Equal(t, float32(3), dx.AsFloat32()[0])

	// iter > quant_delay: the saturated element is masked out.
	p.Iter = 6
	dx, err = fakequant.Backward(x, dy, p, b)
	require.NoError(t, err)
	assert.Equal(t, float32(0), dx.AsFloat32()[0])
}

func TestBackward_SizeMismatch(t *testing.T) {
	b := cpu.New()
	x := rawFromSlice(t, []float32{1, 2, 3}, b)
	dy := rawFromSlice(t, []float32{1, 2}, b)

	_, err := fakequant.Backward(x, dy, fakequant.NewParams(1.0, 0), b)
	assert.ErrorIs(t, err, fakequant.ErrInvalidArgument)
}

func TestBackward_EmptyInput(t *testing.T) {
	b := cpu.New()
	x, err := tensor.NewRaw(tensor.Shape{0}, tensor.Float32, b.Device())
	require.NoError(t, err)
	dy, err := tensor.NewRaw(tensor.Shape{0}, tensor.Float32, b.Device())
	require.NoError(t, err)

	_, berr := fakequant.Backward(x, dy, fakequant.NewParams(1.0, 0), b)
	assert.ErrorIs(t, berr, fakequant.ErrEmptyTensor)
}

func TestBackward_WrongDType(t *testing.T) {
	b := cpu.New()
	x, err := tensor.FromSlice([]float64{1}, tensor.Shape{1}, b)
	require.NoError(t, err)
	dy, err := tensor.FromSlice([]float64{1}, tensor.Shape{1}, b)
	require.NoError(t, err)

	_, berr := fakequant.Backward(x.Raw(), dy.Raw(), fakequant.NewParams(1.0, 0), b)
	assert.ErrorIs(t, berr, fakequant.ErrPrecondition)
}

// The backward mask is decided by the unclamped quantization point, exactly
// matching where the forward transform saturates.
func TestBackward_MaskMatchesForwardSaturation(t *testing.T) {
	b := cpu.New()
	p := fakequant.NewParams(0.5, 32)

	vals := []float32{-100, -30, -16, 0, 55.4, 111.5, 112, 200}
	x := rawFromSlice(t, vals, b)
	ones := make([]float32, len(vals))
	for i := range ones {
		ones[i] = 1
	}
	dy := rawFromSlice(t, ones, b)

	y, err := fakequant.Forward(x, p, b)
	require.NoError(t, err)
	dx, err := fakequant.Backward(x, dy, p, b)
	require.NoError(t, err)

	lo := float32((0 - 32) * 0.5)   // dequantized quant_min
	hi := float32((255 - 32) * 0.5) // dequantized quant_max
	for i := range vals {
		saturated := y.AsFloat32()[i] == lo && vals[i] < lo || y.AsFloat32()[i] == hi && vals[i] > hi
		if saturated {
			assert.Equal(t, float32(0), dx.AsFloat32()[i], "element %d (%f) saturated but got gradient", i, vals[i])
		} else {
			assert.Equal(t, float32(1), dx.AsFloat32()[i], "element %d (%f) in range but gradient blocked", i, vals[i])
		}
	}
}
