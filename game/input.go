package game

// InputState is the per-frame snapshot of player intents
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Shoot bool
	Laser bool
	Boost bool
}

// InputProvider produces the snapshot the simulation reads each frame.
// The view's keyboard poller and the scripted test inputs implement it.
type InputProvider interface {
	Input() InputState
}

// StaticInput always returns the same snapshot
type StaticInput InputState

// Input implements InputProvider
func (s StaticInput) Input() InputState { return InputState(s) }

// edgeDetector turns a held button into a one-frame press
type edgeDetector struct {
	wasDown bool
}

// rising reports true only on the frame the button goes down
func (e *edgeDetector) rising(down bool) bool {
	pressed := down && !e.wasDown
	e.wasDown = down
	return pressed
}
