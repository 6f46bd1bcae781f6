package game

import "testing"

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected Control
	}{
		{"Arrow up", "ArrowUp", ControlUp},
		{"W is up", "w", ControlUp},
		{"Shifted W is up", "W", ControlUp},
		{"S is down", "s", ControlDown},
		{"A is left", "a", ControlLeft},
		{"D is right", "D", ControlRight},
		{"Shift boosts", "Shift", ControlBoost},
		{"Space starts", " ", ControlStart},
		{"F10 toggles stats", "F10", ControlStats},
		{"M toggles audio", "m", ControlAudio},
		{"Unknown key", "q", ControlNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateKey(tt.key); got != tt.expected {
				t.Errorf("TranslateKey(%q) = %d, expected %d", tt.key, got, tt.expected)
			}
		})
	}
}

func TestControl_Held(t *testing.T) {
	held := []Control{ControlUp, ControlDown, ControlLeft, ControlRight, ControlBoost}
	for _, c := range held {
		if !c.Held() {
			t.Errorf("Expected control %d to be held", c)
		}
	}
	for _, c := range []Control{ControlNone, ControlStart, ControlStats, ControlAudio} {
		if c.Held() {
			t.Errorf("Expected control %d to be a trigger", c)
		}
	}
}

func TestInput_SetAndClear(t *testing.T) {
	var in Input

	in.Set(ControlUp, true)
	in.Set(ControlRight, true)
	in.Set(ControlBoost, true)
	in.Set(ControlStart, true)
	in.Pointer = Pointer{Active: true, ID: 4}

	if !in.Up || !in.Right || !in.Boost || in.Down || in.Left {
		t.Errorf("Unexpected input %+v", in)
	}

	in.Set(ControlUp, false)
	if in.Up {
		t.Error("Expected up released")
	}

	in.Clear()
	if in != (Input{}) {
		t.Errorf("Expected cleared input, got %+v", in)
	}
}
