package game

// Side represents which team an entity fights for
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideEnemy
)

// String returns a readable side name
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// GetOppositeSide returns the side a projectile of s is allowed to hit
func GetOppositeSide(s Side) Side {
	switch s {
	case SidePlayer:
		return SideEnemy
	case SideEnemy:
		return SidePlayer
	default:
		return SideNone
	}
}

// Hostile reports whether something on side a may damage something on side b
func Hostile(a, b Side) bool {
	if a == SideNone || b == SideNone {
		return false
	}
	return a != b
}
