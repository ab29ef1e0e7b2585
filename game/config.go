package game

// Config holds game configuration constants
type Config struct {
	// WorldSize is the side of the square toroidal world
	WorldSize float64

	// CellSize is the minimum size of a broad-phase grid cell
	CellSize float64

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// Seed for the simulation random source (0 picks a time based seed)
	Seed int64

	// RewardOptionCount is how many rewards are offered after a wave clear
	RewardOptionCount int

	// BackgroundCount is the number of decorative background objects
	BackgroundCount int

	// Debug enables simulation diagnostics through the standard logger
	Debug bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		WorldSize:         8000.0,
		CellSize:          500.0,
		ScreenWidth:       1280,
		ScreenHeight:      720,
		RewardOptionCount: 3,
		BackgroundCount:   200,
	}
}

// Half returns half the world size
func (c Config) Half() float64 {
	return c.WorldSize / 2
}

// CellCount returns the number of grid cells along one axis
func (c Config) CellCount() int {
	if c.CellSize <= 0 {
		return 1
	}
	n := int(c.WorldSize / c.CellSize)
	if n < 1 {
		return 1
	}
	return n
}
