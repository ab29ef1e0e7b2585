package game

import "math/rand"

var backgroundTints = []Tint{TintBlue, TintGreen, TintOrange, TintPurple, TintPink, TintCyan, TintYellow}

// Background is a static, non-colliding square scattered across the world so
// that motion is visible against it.
type Background struct {
	Entity

	Tint  Tint
	Size  float64
	Alpha float64
}

// NewBackground creates a decoration with a random size and tint
func NewBackground(x, y float64, rng *rand.Rand, worldSize float64) *Background {
	return &Background{
		Entity: newEntity(x, y, worldSize),
		Tint:   backgroundTints[rng.Intn(len(backgroundTints))],
		Size:   10 + rng.Float64()*40,
		Alpha:  0.3 + rng.Float64()*0.4,
	}
}

// Kind implements Object
func (b *Background) Kind() Kind { return KindBackground }

// Update does nothing; decorations never move
func (b *Background) Update(float64) {}

// scatterBackground places count decorations uniformly over the world
func scatterBackground(count int, rng *rand.Rand, worldSize float64) []*Background {
	out := make([]*Background, 0, count)
	half := worldSize / 2
	for i := 0; i < count; i++ {
		x := rng.Float64()*worldSize - half
		y := rng.Float64()*worldSize - half
		out = append(out, NewBackground(x, y, rng, worldSize))
	}
	return out
}
