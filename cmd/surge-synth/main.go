// Command surge-synth renders the Chromatic Surge soundtrack and sound
// effects to WAV files.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/simukka/chromatic-surge/audio"
	"github.com/simukka/chromatic-surge/common"
)

func main() {
	out := flag.String("out", "surge-ambient.wav", "ambient track output file")
	seconds := flag.Float64("seconds", 30, "ambient track length in seconds")
	effectsDir := flag.String("effects-dir", "", "also write each sound effect into this directory")
	seed := flag.Uint("seed", 0, "variation seed, 0 picks one from the clock")
	flag.Parse()

	if *seed == 0 {
		*seed = uint(time.Now().UnixNano())
	}
	rng := common.NewSeededRNG(uint32(*seed))
	cfg := audio.AudioConfig

	r, _ := audio.RenderAmbient(cfg, rng)
	if err := writeFile(*out, r, *seconds); err != nil {
		log.Fatalf("ambient: %v", err)
	}
	log.Printf("wrote %s (%.1fs)", *out, *seconds)

	if *effectsDir == "" {
		return
	}
	if err := os.MkdirAll(*effectsDir, 0o755); err != nil {
		log.Fatalf("effects dir: %v", err)
	}
	for _, e := range audio.Effects {
		r, end := audio.RenderEffect(e, cfg, rng)
		path := filepath.Join(*effectsDir, e.Name+".wav")
		if err := writeFile(path, r, end); err != nil {
			log.Fatalf("%s: %v", e.Name, err)
		}
		log.Printf("wrote %s (%.2fs)", path, end)
	}
}

func writeFile(path string, r *audio.Renderer, seconds float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := audio.WriteWAV(f, r, seconds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
