package game

import "math"

// PredictiveAim returns the lead point, relative to the shooter, at which a
// projectile of the given speed meets a target currently at rel moving with
// targetVel. Velocities are per frame.
func PredictiveAim(rel, targetVel Vec, projectileSpeed float64) Vec {
	// If target is not moving, just aim at it
	if math.Abs(targetVel.X) < 0.1 && math.Abs(targetVel.Y) < 0.1 {
		return rel
	}
	distance := rel.Len()
	if distance < 1.0 || projectileSpeed <= 0 {
		return rel
	}

	// Refine the time of flight a few times
	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		predicted := rel.Add(targetVel.Scale(t))
		d := predicted.Len()
		if d <= 0 {
			break
		}
		newT := d / projectileSpeed
		if math.Abs(newT-t) < 0.001 {
			break
		}
		t = newT
	}

	return rel.Add(targetVel.Scale(t))
}
