package audio

import "time"

// Backend constructs synthesis contexts. A nil Backend means the host has no
// synthesis API and the engine stays Unsupported.
type Backend interface {
	NewContext() (Context, error)
}

// Context is a running synthesis graph with its own clock.
type Context interface {
	// CurrentTime is the context clock in seconds.
	CurrentTime() float64
	SampleRate() int
	Suspended() bool
	Resume()
	Suspend()

	// NewBus creates a gain stage feeding out, or the destination when out is nil.
	NewBus(gain float64, out Bus) Bus
	// Start schedules a voice into a bus.
	Start(v Voice, out Bus)
	// Loop plays a buffer repeatedly until the returned Player is stopped.
	Loop(buf *Buffer, gain float64, out Bus) Player
	// AfterFunc runs f after d on the backend's scheduler.
	AfterFunc(d time.Duration, f func()) Timer
}

// Bus is an opaque gain stage.
type Bus interface {
	Gain() float64
}

// Player is a running looped source.
type Player interface {
	Stop()
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop cancels the callback, reporting whether it was still pending.
	Stop() bool
}
