package game

import "log"

// DebugState holds global debug flags that persist across simulation resets
type DebugState struct {
	Verbose  bool // log lifecycle events (spawns, kills, detonations, waves)
	ShowGrid bool // draw broad-phase cells in the view
}

// Global debug state instance (persists across resets)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// SetDebug toggles verbose simulation logging
func SetDebug(on bool) {
	globalDebugState.Verbose = on
}

func logDebug(format string, args ...any) {
	if !globalDebugState.Verbose {
		return
	}
	log.Printf(format, args...)
}
