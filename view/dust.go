package view

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wrapfighter/game"
)

const (
	dustCount          = 120
	dustSpanMultiplier = 1.2
)

// dustMote is a screen-space speck used for parallax
type dustMote struct {
	pos   game.Vec
	speed float64
}

// Dust is a parallax layer that drifts against the player's motion
type Dust struct {
	motes []dustMote
	span  float64
}

// NewDust scatters motes over a square slightly larger than the screen
func NewDust(width, height int, rng *rand.Rand) *Dust {
	span := math.Hypot(float64(width), float64(height)) * dustSpanMultiplier
	d := &Dust{span: span, motes: make([]dustMote, dustCount)}
	for i := range d.motes {
		d.motes[i] = dustMote{
			pos:   game.Vec{X: (rng.Float64() - 0.5) * span, Y: (rng.Float64() - 0.5) * span},
			speed: 0.2 + rng.Float64()*0.5,
		}
	}
	return d
}

// Update moves the dust opposite to vel and keeps it around the centre
func (d *Dust) Update(delta float64, vel game.Vec) {
	half := d.span * 0.5
	for i := range d.motes {
		m := &d.motes[i]
		m.pos = m.pos.Sub(vel.Scale(delta * m.speed))
		if m.pos.X < -half {
			m.pos.X += d.span
		}
		if m.pos.X > half {
			m.pos.X -= d.span
		}
		if m.pos.Y < -half {
			m.pos.Y += d.span
		}
		if m.pos.Y > half {
			m.pos.Y -= d.span
		}
	}
}

// Draw renders the dust around the screen centre
func (d *Dust) Draw(screen *ebiten.Image, cx, cy float64) {
	for _, m := range d.motes {
		vector.DrawFilledRect(screen, float32(cx+m.pos.X), float32(cy+m.pos.Y), 1.5, 1.5, colorDust, false)
	}
}
