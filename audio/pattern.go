package audio

// Chords is the backing rotation, one chord per pattern cycle.
var Chords = [][]float64{
	{174.61, 220.0, 261.63},
	{196.0, 246.94, 311.13},
	{164.81, 207.65, 246.94},
	{184.997, 233.082, 293.66},
}

// ChordAt returns the chord for a cycle index.
func ChordAt(index int) []float64 {
	return Chords[index%len(Chords)]
}

// PatternVoices builds one cycle: arpeggiated chord tones on half beats plus
// a bass note an octave below the root on the downbeat.
func PatternVoices(chord []float64, start float64, cfg Config) []Voice {
	half := cfg.Beat() / 2
	voices := make([]Voice, 0, cfg.PatternSteps+1)
	for step := 0; step < cfg.PatternSteps; step++ {
		t := start + float64(step)*half
		voices = append(voices, ArpVoice(chord[step%len(chord)], t))
	}
	return append(voices, BassVoice(chord[0]/2, start))
}

// ArpVoice is a plucked, resonant triangle note.
func ArpVoice(freq, t float64) Voice {
	return Voice{
		Wave:   WaveTriangle,
		Freq:   Param{}.Set(freq, t),
		Gain:   Param{}.Set(0, t).Linear(0.22, t+0.015).Exponential(silence, t+0.45),
		Filter: &Filter{Type: Lowpass, Freq: freq * 4, Q: 10},
		Start:  t,
		Stop:   t + 0.6,
	}
}

// BassVoice is a sawtooth that glides down an octave.
func BassVoice(freq, t float64) Voice {
	return Voice{
		Wave:   WaveSawtooth,
		Freq:   Param{}.Set(freq, t).Linear(freq*0.5, t+0.8),
		Gain:   Param{}.Set(0, t).Linear(0.32, t+0.05).Exponential(silence, t+1.6),
		Filter: &Filter{Type: Lowpass, Freq: freq * 2.5, Q: 6},
		Start:  t,
		Stop:   t + 1.8,
	}
}
