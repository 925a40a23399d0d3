package core

import "testing"

func TestApplyProcessorOptionsDefaults(t *testing.T) {
	cfg := ApplyProcessorOptions()

	if cfg.SampleRate != 48000 {
		t.Fatalf("SampleRate = %v, want 48000", cfg.SampleRate)
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(44100))

	if cfg.SampleRate != 44100 {
		t.Fatalf("SampleRate = %v, want 44100", cfg.SampleRate)
	}
}

func TestApplyProcessorOptionsIgnoresInvalid(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(-1), nil)

	if cfg.SampleRate != 48000 {
		t.Fatalf("invalid sample rate should be ignored: %v", cfg.SampleRate)
	}
}
