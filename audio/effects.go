package audio

import "github.com/simukka/chromatic-surge/common"

// silence is the floor exponential envelopes decay to; exponential ramps
// cannot reach zero.
const silence = 0.0001

// OrbVoice is the pickup chirp: a sine rising by 1.8x.
func OrbVoice(now float64, rng common.Source) Voice {
	initial := common.RandRange(rng, 520, 740)
	return Voice{
		Wave:  WaveSine,
		Freq:  Param{}.Set(initial, now).Exponential(initial*1.8, now+0.18),
		Gain:  Param{}.Set(0, now).Linear(0.55, now+0.015).Exponential(silence, now+0.38),
		Start: now,
		Stop:  now + 0.5,
	}
}

// PowerVoice is a square sweep through a resonant bandpass.
func PowerVoice(now float64) Voice {
	const base = 320.0
	return Voice{
		Wave:   WaveSquare,
		Freq:   Param{}.Set(base, now).Linear(base*2.2, now+0.4),
		Gain:   Param{}.Set(0, now).Linear(0.42, now+0.02).Exponential(silence, now+0.6),
		Filter: &Filter{Type: Bandpass, Freq: base * 3, Q: 8},
		Start:  now,
		Stop:   now + 0.7,
	}
}

// ShieldVoice is a highpassed noise burst.
func ShieldVoice(now float64, noise *Buffer) Voice {
	d := noise.Duration()
	return Voice{
		Wave:   WaveNoise,
		Noise:  noise,
		Gain:   Param{}.Set(0.4, now).Exponential(silence, now+d),
		Filter: &Filter{Type: Highpass, Freq: 600, Q: 1},
		Start:  now,
		Stop:   now + d,
	}
}

// DamageVoice is a falling sawtooth.
func DamageVoice(now float64) Voice {
	return Voice{
		Wave:  WaveSawtooth,
		Freq:  Param{}.Set(160, now).Exponential(60, now+0.4),
		Gain:  Param{}.Set(0.48, now).Exponential(silence, now+0.5),
		Start: now,
		Stop:  now + 0.6,
	}
}

// levelNotes are staggered 80ms apart.
var levelNotes = []float64{660, 880, 1046}

// LevelVoices is an ascending three-note triangle figure.
func LevelVoices(now float64) []Voice {
	voices := make([]Voice, 0, len(levelNotes))
	for i, freq := range levelNotes {
		t := now + float64(i)*0.08
		voices = append(voices, Voice{
			Wave:  WaveTriangle,
			Freq:  Param{}.Set(freq, t),
			Gain:  Param{}.Set(0, t).Linear(0.36, t+0.03).Exponential(silence, t+0.35),
			Start: t,
			Stop:  t + 0.4,
		})
	}
	return voices
}

// GameOverVoice is a slow sine fall over two octaves.
func GameOverVoice(now float64) Voice {
	return Voice{
		Wave:  WaveSine,
		Freq:  Param{}.Set(220, now).Exponential(55, now+1.2),
		Gain:  Param{}.Set(0.4, now).Exponential(silence, now+1.3),
		Start: now,
		Stop:  now + 1.4,
	}
}

// NoiseBuffer fills a mono buffer with linearly decaying white noise.
func NoiseBuffer(sampleRate int, seconds float64, rng common.Source) *Buffer {
	length := int(float64(sampleRate) * seconds)
	data := make([]float32, length)
	for i := range data {
		env := 1 - float64(i)/float64(length)
		data[i] = float32((rng.Float64()*2 - 1) * env)
	}
	return &Buffer{SampleRate: sampleRate, Channels: [][]float32{data}}
}
