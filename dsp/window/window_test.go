package window

import (
	"math"
	"testing"
)

func TestHannMatchesClosedForm(t *testing.T) {
	const length = 64

	got := Hann(length)
	if len(got) != length {
		t.Fatalf("len = %d, want %d", len(got), length)
	}

	for i := range got {
		want := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(length-1)))
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("w[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestHannEndpointsAndPeak(t *testing.T) {
	w := Hann(65)

	if math.Abs(w[0]) > 1e-15 || math.Abs(w[64]) > 1e-15 {
		t.Fatalf("endpoints should be 0: w[0]=%v w[64]=%v", w[0], w[64])
	}

	if math.Abs(w[32]-1) > 1e-12 {
		t.Fatalf("center should be 1: w[32]=%v", w[32])
	}
}

func TestGenerateShortLengths(t *testing.T) {
	tests := []struct {
		name   string
		typ    Type
		length int
		want   []float64
	}{
		{name: "hann zero", typ: TypeHann, length: 0, want: nil},
		{name: "hann negative", typ: TypeHann, length: -4, want: nil},
		{name: "hann one", typ: TypeHann, length: 1, want: []float64{1}},
		{name: "hamming one", typ: TypeHamming, length: 1, want: []float64{1}},
		{name: "blackman one", typ: TypeBlackman, length: 1, want: []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.typ, tt.length)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("w[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateRectangular(t *testing.T) {
	w := Generate(TypeRectangular, 16)
	for i, v := range w {
		if v != 1 {
			t.Fatalf("w[%d] = %v, want 1", i, v)
		}
	}
}

func TestGeneratePeriodic(t *testing.T) {
	// Periodic Hann of length N equals the first N samples of a
	// symmetric Hann of length N+1.
	const n = 32

	periodic := Generate(TypeHann, n, WithPeriodic())
	symmetric := Generate(TypeHann, n+1)

	for i := range periodic {
		if math.Abs(periodic[i]-symmetric[i]) > 1e-12 {
			t.Fatalf("periodic[%d] = %v, want %v", i, periodic[i], symmetric[i])
		}
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	want := Hann(len(buf))

	Apply(TypeHann, buf)

	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-15 {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestApplyEmpty(t *testing.T) {
	Apply(TypeHann, nil) // must not panic
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	got, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients() error = %v", err)
	}

	want := []float64{0.5, 1, 1.5}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if samples[0] != 1 {
		t.Fatal("input must not be modified")
	}
}

func TestApplyCoefficientsLengthMismatch(t *testing.T) {
	if _, err := ApplyCoefficients([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}

	if err := ApplyCoefficientsInPlace([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}
