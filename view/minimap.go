package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"wrapfighter/game"
)

// Minimap geometry and trail constants
const (
	minimapSize       = 160.0
	minimapMargin     = 20.0
	minimapBlipSize   = 2.5
	minimapHeadingLen = 8.0

	trailMaxAge         = 180.0 // frames
	trailUpdateInterval = 6.0   // frames between trail points
	trailMaxPoints      = 30
)

var (
	colorMinimapBackdrop = color.NRGBA{R: 10, G: 16, B: 32, A: 200}
	colorMinimapFrame    = color.NRGBA{R: 24, G: 48, B: 96, A: 255}
	colorMinimapTrail    = color.NRGBA{R: 180, G: 255, B: 200, A: 255}
)

// trailPoint is a remembered world position of the player
type trailPoint struct {
	pos game.Vec
	age float64
}

// Minimap shows the whole torus re-centred on the player, so the player
// always sits in the middle and everything else wraps around them.
type Minimap struct {
	X, Y float64

	trail      []trailPoint
	trailTimer float64
}

// NewMinimap creates a minimap anchored to the top-right of a screen
func NewMinimap(screenWidth int) *Minimap {
	return &Minimap{
		X: float64(screenWidth) - minimapSize - minimapMargin,
		Y: minimapMargin,
	}
}

// Reset forgets the trail
func (m *Minimap) Reset() {
	m.trail = m.trail[:0]
	m.trailTimer = 0
}

// Update ages the trail and records the player's position periodically
func (m *Minimap) Update(delta float64, player *game.Player) {
	kept := m.trail[:0]
	for _, p := range m.trail {
		p.age += delta
		if p.age < trailMaxAge {
			kept = append(kept, p)
		}
	}
	m.trail = kept

	if player == nil || !player.IsAlive() {
		return
	}
	m.trailTimer += delta
	if m.trailTimer >= trailUpdateInterval {
		m.trail = append(m.trail, trailPoint{pos: player.Position})
		if len(m.trail) > trailMaxPoints {
			m.trail = m.trail[1:]
		}
		m.trailTimer = 0
	}
}

// project maps a world position to minimap coordinates
func (m *Minimap) project(p, center game.Vec, worldSize float64) (float32, float32) {
	d := game.WrapDelta(p, center, worldSize)
	scale := minimapSize / worldSize
	return float32(m.X + minimapSize/2 + d.X*scale), float32(m.Y + minimapSize/2 + d.Y*scale)
}

// Draw renders the frame, trail, blips and player marker
func (m *Minimap) Draw(screen *ebiten.Image, player *game.Player, objs []game.Object, worldSize float64) {
	vector.DrawFilledRect(screen, float32(m.X), float32(m.Y), minimapSize, minimapSize, colorMinimapBackdrop, false)
	vector.StrokeRect(screen, float32(m.X), float32(m.Y), minimapSize, minimapSize, 1, colorMinimapFrame, false)
	if player == nil || worldSize <= 0 {
		return
	}
	center := player.Position

	for i := 0; i+1 < len(m.trail); i++ {
		a, b := m.trail[i], m.trail[i+1]
		if game.WrapDistance(a.pos, b.pos, worldSize) > worldSize/4 {
			continue
		}
		x1, y1 := m.project(a.pos, center, worldSize)
		x2, y2 := m.project(b.pos, center, worldSize)
		alpha := 1 - (a.age+b.age)/2/trailMaxAge
		c := colorMinimapTrail
		c.A = uint8(float64(c.A) * alpha * 0.6)
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, c, false)
	}

	for _, obj := range objs {
		body := obj.Body()
		if !body.IsAlive() {
			continue
		}
		var clr color.Color
		size := float32(minimapBlipSize)
		switch {
		case obj.Kind().IsEnemy():
			clr = GetShipStyle(obj.Kind()).Color
		case obj.Kind() == game.KindHomingMissile:
			clr = colorMissile
			size = 1.5
		default:
			continue
		}
		x, y := m.project(body.Position, center, worldSize)
		vector.DrawFilledCircle(screen, x, y, size, clr, false)
	}

	px, py := float32(m.X+minimapSize/2), float32(m.Y+minimapSize/2)
	head := game.Forward(player.Rotation).Scale(minimapHeadingLen)
	vector.StrokeLine(screen, px, py, px+float32(head.X), py+float32(head.Y), 1, colornames.Lightcyan, false)
	vector.DrawFilledCircle(screen, px, py, minimapBlipSize, colorPlayer, false)
}
