package game

// WeaponPattern selects how the player's gun spreads its shots
type WeaponPattern int

const (
	PatternDual      WeaponPattern = iota // two parallel barrels
	PatternFan3                           // 3-way fan
	PatternFan5                           // 5-way fan
	PatternParallel5                      // five parallel barrels
)

// Shot is one bullet of a volley, relative to the ship
type Shot struct {
	Lateral float64 // offset to the right of the nose, world units
	Angle   float64 // heading offset, radians
}

// ShotPattern holds configuration for each weapon pattern
type ShotPattern struct {
	Pattern WeaponPattern
	Name    string
	Shots   []Shot
}

// GetShotPattern returns the volley layout for a pattern
func GetShotPattern(pattern WeaponPattern) ShotPattern {
	switch pattern {
	case PatternDual:
		return ShotPattern{
			Pattern: PatternDual,
			Name:    "Twin",
			Shots:   []Shot{{Lateral: -6}, {Lateral: 6}},
		}
	case PatternFan3:
		return ShotPattern{
			Pattern: PatternFan3,
			Name:    "3-Way",
			Shots:   []Shot{{Angle: -0.15}, {}, {Angle: 0.15}},
		}
	case PatternFan5:
		return ShotPattern{
			Pattern: PatternFan5,
			Name:    "5-Way",
			Shots:   []Shot{{Angle: -0.3}, {Angle: -0.15}, {}, {Angle: 0.15}, {Angle: 0.3}},
		}
	case PatternParallel5:
		return ShotPattern{
			Pattern: PatternParallel5,
			Name:    "Parallel",
			Shots:   []Shot{{Lateral: -16}, {Lateral: -8}, {}, {Lateral: 8}, {Lateral: 16}},
		}
	default:
		return GetShotPattern(PatternDual)
	}
}

// CanShoot reports whether a gun with the given remaining cooldown may fire
func CanShoot(cooldown float64) bool {
	return cooldown <= 0
}
