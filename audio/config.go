package audio

// Config holds the mix and timing settings for the synthesis engine.
type Config struct {
	// Bus gains
	MasterVolume float64 // master bus -> destination
	MusicVolume  float64 // pad + pattern bus
	FxVolume     float64 // one-shot effects bus
	PadVolume    float64 // pad voice gain into the music bus

	// Pad
	PadSeconds float64 // length of the looping pad buffer

	// Pattern scheduler
	Tempo          float64 // beats per minute
	PatternSteps   int     // arp notes per cycle, one per half beat
	PatternBeats   float64 // cycle length in beats
	PatternLead    float64 // seconds between scheduling and the first note
	NoiseBurstTime float64 // shield noise burst length in seconds

	// Native renderer
	SampleRate int
}

// AudioConfig is the default engine configuration.
var AudioConfig = Config{
	MasterVolume: 0.72,
	MusicVolume:  0.28,
	FxVolume:     0.6,
	PadVolume:    0.42,

	PadSeconds: 8,

	Tempo:          108,
	PatternSteps:   8,
	PatternBeats:   8,
	PatternLead:    0.1,
	NoiseBurstTime: 0.5,

	SampleRate: 44100,
}

// Beat returns the length of one beat in seconds.
func (c Config) Beat() float64 {
	return 60 / c.Tempo
}

// CycleSeconds returns the time between pattern cycles.
func (c Config) CycleSeconds() float64 {
	return c.Beat() * c.PatternBeats
}
