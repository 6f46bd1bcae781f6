package game

// Control is a logical key binding.
type Control int

const (
	ControlNone Control = iota
	ControlUp
	ControlDown
	ControlLeft
	ControlRight
	ControlBoost
	ControlStart
	ControlStats
	ControlAudio
)

// KeyMap maps DOM key names to controls.
var KeyMap = map[string]Control{
	"ArrowUp":    ControlUp,
	"w":          ControlUp,
	"W":          ControlUp,
	"ArrowDown":  ControlDown,
	"s":          ControlDown,
	"S":          ControlDown,
	"ArrowLeft":  ControlLeft,
	"a":          ControlLeft,
	"A":          ControlLeft,
	"ArrowRight": ControlRight,
	"d":          ControlRight,
	"D":          ControlRight,
	"Shift":      ControlBoost,
	" ":          ControlStart,
	"F10":        ControlStats,
	"m":          ControlAudio,
	"M":          ControlAudio,
}

// TranslateKey converts a key name to its control.
func TranslateKey(key string) Control {
	return KeyMap[key]
}

// Held reports whether c is a held control rather than a trigger.
func (c Control) Held() bool {
	return c >= ControlUp && c <= ControlBoost
}

// Set applies a held control to the input snapshot.
func (in *Input) Set(c Control, down bool) {
	switch c {
	case ControlUp:
		in.Up = down
	case ControlDown:
		in.Down = down
	case ControlLeft:
		in.Left = down
	case ControlRight:
		in.Right = down
	case ControlBoost:
		in.Boost = down
	}
}

// Clear releases every control and the pointer.
func (in *Input) Clear() {
	*in = Input{}
}
