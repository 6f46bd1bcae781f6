package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/simukka/chromatic-surge/common"
)

// Effect is a named one-shot sound.
type Effect struct {
	Name  string
	Build func(now float64, cfg Config, rng common.Source) []Voice
}

// Effects lists every one-shot sound the game plays.
var Effects = []Effect{
	{"orb", func(now float64, _ Config, rng common.Source) []Voice {
		return []Voice{OrbVoice(now, rng)}
	}},
	{"power", func(now float64, _ Config, _ common.Source) []Voice {
		return []Voice{PowerVoice(now)}
	}},
	{"shield", func(now float64, cfg Config, rng common.Source) []Voice {
		return []Voice{ShieldVoice(now, NoiseBuffer(cfg.SampleRate, cfg.NoiseBurstTime, rng))}
	}},
	{"damage", func(now float64, _ Config, _ common.Source) []Voice {
		return []Voice{DamageVoice(now)}
	}},
	{"level", func(now float64, _ Config, _ common.Source) []Voice {
		return LevelVoices(now)
	}},
	{"game-over", func(now float64, _ Config, _ common.Source) []Voice {
		return []Voice{GameOverVoice(now)}
	}},
}

// RenderEffect schedules an effect at time zero on a fresh renderer,
// through the fx and master gains. It returns the renderer and the time
// the last voice stops.
func RenderEffect(e Effect, cfg Config, rng common.Source) (*Renderer, float64) {
	r := NewRenderer(beep.SampleRate(cfg.SampleRate))
	fx := r.NewBus(cfg.FxVolume, r.NewBus(cfg.MasterVolume, nil))
	end := 0.0
	for _, v := range e.Build(0, cfg, rng) {
		r.Start(v, fx)
		end = max(end, v.Stop)
	}
	return r, end
}

// RenderAmbient starts the pad and pattern scheduler on a fresh renderer.
func RenderAmbient(cfg Config, rng common.Source) (*Renderer, *Engine) {
	r := NewRenderer(beep.SampleRate(cfg.SampleRate))
	e := NewEngine(r).WithConfig(cfg).WithSource(rng)
	e.Resume()
	return r, e
}

// WriteWAV encodes the next seconds of r as 16-bit stereo WAV.
func WriteWAV(w io.WriteSeeker, r *Renderer, seconds float64) error {
	format := r.Format()
	n := format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	if err := wav.Encode(w, beep.Take(n, r), format); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}
