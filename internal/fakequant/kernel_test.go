package fakequant

import "testing"

func TestAffine_RoundHalfAwayFromZero(t *testing.T) {
	k := NewAffine(1.0, 0, 8)

	tests := []struct {
		in   float32
		want float32
	}{
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{0.49, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := k.Apply(tt.in); got != tt.want {
			t.Errorf("Apply(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestAffine_NegativeHalfRoundsToZeroPoint(t *testing.T) {
	// zero_point 2 shifts the grid so negative halves are exercised:
	// -0.5*1 + 2 = 1.5 rounds away from zero to 2, dequantizing to 0.
	k := NewAffine(1.0, 2, 8)
	if got := k.Apply(-0.5); got != 0 {
		t.Errorf("Apply(-0.5) = %f, want 0", got)
	}
}

func TestAffine_Clamp(t *testing.T) {
	k := NewAffine(1.0, 0, 8)

	// 300 exceeds quant_max=255 and saturates.
	if got := k.Apply(300); got != 255 {
		t.Errorf("Apply(300) = %f, want 255", got)
	}
	// -5 falls below quant_min=0 and saturates.
	if got := k.Apply(-5); got != 0 {
		t.Errorf("Apply(-5) = %f, want 0", got)
	}
}

func TestAffine_Mask(t *testing.T) {
	k := NewAffine(1.0, 128, 8)

	tests := []struct {
		in   float32
		want float32
	}{
		{-1000, 0}, // saturates below quant_min
		{0, 1},     // lands on the zero point
		{1000, 0},  // saturates above quant_max
		{127, 1},   // exactly quant_max
		{-128, 1},  // exactly quant_min
		{-128.6, 0},
	}
	for _, tt := range tests {
		if got := k.Mask(tt.in); got != tt.want {
			t.Errorf("Mask(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestAffine_QuantMax(t *testing.T) {
	tests := []struct {
		bits int64
		want float32
	}{
		{1, 1},
		{8, 255},
		{16, 65535},
		{32, 4294967295},
	}
	for _, tt := range tests {
		k := NewAffine(1.0, 0, tt.bits)
		if k.QuantMax != tt.want {
			t.Errorf("NewAffine(bits=%d).QuantMax = %f, want %f", tt.bits, k.QuantMax, tt.want)
		}
		if k.QuantMin != 0 {
			t.Errorf("NewAffine(bits=%d).QuantMin = %f, want 0", tt.bits, k.QuantMin)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp(5,0,10) = %f", got)
	}
	if got := clamp(-1, 0, 10); got != 0 {
		t.Errorf("clamp(-1,0,10) = %f", got)
	}
	if got := clamp(11, 0, 10); got != 10 {
		t.Errorf("clamp(11,0,10) = %f", got)
	}
}
