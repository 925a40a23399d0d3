package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-psola/dsp/core"
)

func TestSine(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))

	out, err := g.Sine(1000, 0.5, 480)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(out) != 480 {
		t.Fatalf("len = %d, want 480", len(out))
	}

	// 1 kHz at 48 kHz: exactly 48 samples per period.
	for i := 0; i < 480-48; i++ {
		if math.Abs(out[i]-out[i+48]) > 1e-9 {
			t.Fatalf("sample %d not periodic: %v vs %v", i, out[i], out[i+48])
		}
	}

	if core.MaxAbs(out) > 0.5+1e-12 {
		t.Fatalf("amplitude exceeded: %v", core.MaxAbs(out))
	}
}

func TestSineInvalidInput(t *testing.T) {
	g := NewGenerator()

	if _, err := g.Sine(440, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.Sine(440, 1, -5); err == nil {
		t.Fatal("expected error for negative samples")
	}
}

func TestPulseTrainPeriodicity(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))

	// 150 Hz at 48 kHz: exactly 320 samples per period.
	out, err := g.PulseTrain(150, 1.0, 1600)
	if err != nil {
		t.Fatalf("PulseTrain() error = %v", err)
	}

	for i := 0; i < 1600-320; i++ {
		if math.Abs(out[i]-out[i+320]) > 1e-9 {
			t.Fatalf("sample %d not periodic: %v vs %v", i, out[i], out[i+320])
		}
	}

	// Pulse onset should dominate the rest of the period.
	if out[0] != 1.0 {
		t.Fatalf("pulse onset = %v, want 1.0", out[0])
	}
	if out[160] > 0.1 {
		t.Fatalf("mid-period value should have decayed: %v", out[160])
	}
}

func TestPulseTrainInvalidInput(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))

	tests := []struct {
		name    string
		freq    float64
		samples int
	}{
		{name: "zero freq", freq: 0, samples: 100},
		{name: "negative freq", freq: -100, samples: 100},
		{name: "above nyquist", freq: 24000, samples: 100},
		{name: "zero samples", freq: 150, samples: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.PulseTrain(tt.freq, 1, tt.samples); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a := NewGeneratorWithOptions(nil, WithSeed(42))
	b := NewGeneratorWithOptions(nil, WithSeed(42))

	na, err := a.WhiteNoise(1.0, 256)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	nb, _ := b.WhiteNoise(1.0, 256)

	for i := range na {
		if na[i] != nb[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{0.1, -0.4, 0.2}, 1.0)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if math.Abs(core.MaxAbs(out)-1.0) > 1e-12 {
		t.Fatalf("peak = %v, want 1.0", core.MaxAbs(out))
	}
}

func TestNormalizeSilence(t *testing.T) {
	out, err := Normalize([]float64{0, 0, 0}, 1.0)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %v, want 0", i, v)
		}
	}
}

func TestNormalizeInvalidInput(t *testing.T) {
	if _, err := Normalize(nil, 1.0); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative peak")
	}
}
