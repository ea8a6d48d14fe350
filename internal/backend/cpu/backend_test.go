package cpu_test

import (
	"testing"

	"github.com/born-ml/qat/internal/backend/cpu"
	"github.com/born-ml/qat/internal/parallel"
	"github.com/born-ml/qat/internal/tensor"
)

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*cpu.Backend)(nil)

func fromSlice(t *testing.T, data []float32, b tensor.Backend) *tensor.RawTensor {
	t.Helper()
	x, err := tensor.FromSlice(data, tensor.Shape{len(data)}, b)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return x.Raw()
}

func TestCopy(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 2, 3}, b)

	y := b.Copy(x)
	for i, want := range []float32{1, 2, 3} {
		if y.AsFloat32()[i] != want {
			t.Errorf("y[%d] = %f, want %f", i, y.AsFloat32()[i], want)
		}
	}

	// Fresh allocation, not a view.
	y.AsFloat32()[0] = 42
	if x.AsFloat32()[0] != 1 {
		t.Error("Copy aliased the source buffer")
	}
}

func TestMul(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 2, 3, 4}, b)
	y := fromSlice(t, []float32{2, 0, -1, 0.5}, b)

	z := b.Mul(x, y)
	want := []float32{2, 0, -3, 2}
	for i := range want {
		if z.AsFloat32()[i] != want[i] {
			t.Errorf("z[%d] = %f, want %f", i, z.AsFloat32()[i], want[i])
		}
	}

	// Inputs untouched.
	if x.AsFloat32()[0] != 1 || y.AsFloat32()[0] != 2 {
		t.Error("Mul mutated an input")
	}
}

func TestMul_ShapeMismatchPanics(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 2}, b)
	y := fromSlice(t, []float32{1, 2, 3}, b)

	defer func() {
		if recover() == nil {
			t.Error("Mul with mismatched shapes should panic")
		}
	}()
	b.Mul(x, y)
}

func TestMapUnary(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{-2, -1, 0, 1, 2}, b)

	y := b.MapUnary(x, func(v float32) float32 { return v * v })
	want := []float32{4, 1, 0, 1, 4}
	for i := range want {
		if y.AsFloat32()[i] != want[i] {
			t.Errorf("y[%d] = %f, want %f", i, y.AsFloat32()[i], want[i])
		}
	}
}

// MapUnary must produce identical results regardless of partitioning.
func TestMapUnary_ParallelMatchesSequential(t *testing.T) {
	n := parallel.DefaultConfig().MinChunkSize * 8
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(i%251) * 0.37
	}

	par := cpu.New()
	seq := cpu.NewWithConfig(parallel.Config{Enabled: false})

	x := fromSlice(t, data, par)
	f := func(v float32) float32 { return v*0.5 + 1 }

	got := par.MapUnary(x, f).AsFloat32()
	want := seq.MapUnary(x, f).AsFloat32()

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d: parallel %f != sequential %f", i, got[i], want[i])
		}
	}
}

func TestMapUnary_Empty(t *testing.T) {
	b := cpu.New()
	raw, err := tensor.NewRaw(tensor.Shape{0}, tensor.Float32, b.Device())
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}

	y := b.MapUnary(raw, func(v float32) float32 { return v + 1 })
	if y.NumElements() != 0 {
		t.Errorf("NumElements() = %d, want 0", y.NumElements())
	}
}
