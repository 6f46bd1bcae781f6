package audio

import (
	"math"
	"testing"
)

func TestParamAt(t *testing.T) {
	p := Param{}.Set(0, 1).Linear(1, 2).Exponential(0.01, 3).Set(5, 4)

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"before first event", 0.5, -1},
		{"at set", 1, 0},
		{"linear midpoint", 1.5, 0.5},
		{"linear end", 2, 1},
		{"exponential midpoint", 2.5, 0.1},
		{"holds before set", 3.5, 0.01},
		{"after last event", 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.At(tt.t, -1); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestParamAt_ExponentialFromZeroHolds(t *testing.T) {
	p := Param{}.Set(0, 0).Exponential(1, 1)
	if got := p.At(0.5, 0); got != 0 {
		t.Errorf("Expected exponential ramp from zero to hold 0, got %v", got)
	}
}

func TestParamAt_EmptyUsesDefault(t *testing.T) {
	if got := (Param{}).At(3, 440); got != 440 {
		t.Errorf("Expected default 440, got %v", got)
	}
}

func TestBufferDuration(t *testing.T) {
	b := &Buffer{SampleRate: 100, Channels: [][]float32{make([]float32, 50)}}
	if b.Len() != 50 {
		t.Errorf("Expected 50 frames, got %d", b.Len())
	}
	if b.Duration() != 0.5 {
		t.Errorf("Expected 0.5s, got %v", b.Duration())
	}
	var empty *Buffer
	if empty.Len() != 0 || empty.Duration() != 0 {
		t.Error("Expected nil buffer to be empty")
	}
}

func TestEffectVoices_EndSilent(t *testing.T) {
	noise := NoiseBuffer(8000, 0.5, constSource(0.9))
	voices := []Voice{
		OrbVoice(1, constSource(0.5)),
		PowerVoice(1),
		ShieldVoice(1, noise),
		DamageVoice(1),
		GameOverVoice(1),
	}
	voices = append(voices, LevelVoices(1)...)

	for _, v := range voices {
		if v.Stop <= v.Start {
			t.Errorf("%s voice stops at %v before it starts at %v", v.Wave, v.Stop, v.Start)
		}
		if g := v.Gain.At(v.Stop, 1); g > 0.001 {
			t.Errorf("%s voice still audible at stop: gain %v", v.Wave, g)
		}
	}
}

func TestOrbVoice_PitchRange(t *testing.T) {
	tests := []struct {
		draw float64
		want float64
	}{
		{0, 520},
		{0.5, 630},
		{0.999999, 740},
	}
	for _, tt := range tests {
		v := OrbVoice(0, constSource(tt.draw))
		if got := v.Freq.At(0, 0); math.Abs(got-tt.want) > 0.01 {
			t.Errorf("draw %v: start pitch %v, want %v", tt.draw, got, tt.want)
		}
		if got := v.Freq.At(0.18, 0); math.Abs(got-tt.want*1.8) > 0.02 {
			t.Errorf("draw %v: end pitch %v, want %v", tt.draw, got, tt.want*1.8)
		}
	}
}

func TestLevelVoices_Staggered(t *testing.T) {
	voices := LevelVoices(2)
	if len(voices) != 3 {
		t.Fatalf("Expected 3 notes, got %d", len(voices))
	}
	for i, v := range voices {
		want := 2 + float64(i)*0.08
		if math.Abs(v.Start-want) > 1e-9 {
			t.Errorf("note %d starts at %v, want %v", i, v.Start, want)
		}
		if v.Freq.At(v.Start, 0) != levelNotes[i] {
			t.Errorf("note %d pitch %v, want %v", i, v.Freq.At(v.Start, 0), levelNotes[i])
		}
	}
}

func TestNoiseBuffer_Decays(t *testing.T) {
	b := NoiseBuffer(1000, 1, constSource(1))
	if b.Len() != 1000 {
		t.Fatalf("Expected 1000 frames, got %d", b.Len())
	}
	data := b.Channels[0]
	if data[0] != 1 {
		t.Errorf("Expected full-scale first sample, got %v", data[0])
	}
	for i := 1; i < len(data); i++ {
		if data[i] > data[i-1] {
			t.Fatalf("sample %d rose: %v > %v", i, data[i], data[i-1])
		}
	}
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
