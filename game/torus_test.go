package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteDistance checks every tiled image of b around a
func bruteDistance(a, b Vec, size float64) float64 {
	best := math.Inf(1)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			img := Vec{b.X + float64(dx)*size, b.Y + float64(dy)*size}
			best = math.Min(best, a.Sub(img).Len())
		}
	}
	return best
}

func TestWrapDeltaMatchesTiledImages(t *testing.T) {
	rng := testRNG()
	half := testWorld / 2
	for i := 0; i < 2000; i++ {
		a := Vec{rng.Float64()*testWorld - half, rng.Float64()*testWorld - half}
		b := Vec{rng.Float64()*testWorld - half, rng.Float64()*testWorld - half}

		d := WrapDelta(a, b, testWorld)
		assert.LessOrEqual(t, math.Abs(d.X), half)
		assert.LessOrEqual(t, math.Abs(d.Y), half)
		assert.InDelta(t, bruteDistance(a, b, testWorld), d.Len(), 1e-6)
	}
}

func TestWrapDeltaAcrossEdge(t *testing.T) {
	a := Vec{3990, 0}
	b := Vec{-3990, 0}

	d := WrapDelta(a, b, testWorld)
	assert.InDelta(t, -20, d.X, 1e-9)
	assert.InDelta(t, 0, d.Y, 1e-9)
	assert.InDelta(t, 20, WrapDistance(a, b, testWorld), 1e-9)
}

func TestWrapPosition(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside", 100, 100},
		{"lower bound kept", -4000, -4000},
		{"upper bound folds", 4000, -4000},
		{"past right edge", 4010, -3990},
		{"past left edge", -4010, 3990},
		{"several laps", 4000 + 3*8000 + 5, -3995},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapPosition(Vec{tt.in, tt.in}, testWorld)
			assert.InDelta(t, tt.want, got.X, 1e-6)
			assert.InDelta(t, tt.want, got.Y, 1e-6)
		})
	}
}

func TestWrapZeroSizeIsIdentity(t *testing.T) {
	p := Vec{123, -456}
	assert.Equal(t, p, WrapPosition(p, 0))
	assert.Equal(t, Vec{1, 2}, WrapDelta(Vec{3, 5}, Vec{2, 3}, 0))
}

func TestForwardAndHeadingAgree(t *testing.T) {
	up := Forward(0)
	assert.InDelta(t, 0, up.X, 1e-12)
	assert.InDelta(t, -1, up.Y, 1e-12)

	right := Forward(math.Pi / 2)
	assert.InDelta(t, 1, right.X, 1e-12)

	for _, theta := range []float64{-3, -1.2, 0, 0.4, 2.9} {
		assert.InDelta(t, theta, HeadingTo(Forward(theta)), 1e-9)
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-12)
	assert.Equal(t, 0.0, NormalizeAngle(math.NaN()))
	assert.Equal(t, 0.0, NormalizeAngle(math.Inf(1)))
}

func TestRotateTowards(t *testing.T) {
	t.Run("snaps when within one step", func(t *testing.T) {
		assert.Equal(t, 0.5, RotateTowards(0.45, 0.5, 0.1))
	})
	t.Run("steps toward target", func(t *testing.T) {
		assert.InDelta(t, 0.1, RotateTowards(0, 1, 0.1), 1e-12)
		assert.InDelta(t, -0.1, RotateTowards(0, -1, 0.1), 1e-12)
	})
	t.Run("takes the short way round", func(t *testing.T) {
		got := RotateTowards(math.Pi-0.05, -math.Pi+0.05, 0.01)
		require.Greater(t, got, math.Pi-0.05)
	})
}
