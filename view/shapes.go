package view

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"wrapfighter/game"
)

// ShipShape defines the outline a craft is drawn with
type ShipShape int

const (
	ShipShapeCircle ShipShape = iota
	ShipShapeTriangle
	ShipShapeDiamond
	ShipShapeDart
	ShipShapeFlower
)

// ShipStyle holds the look of one craft archetype
type ShipStyle struct {
	Shape ShipShape
	Color color.RGBA
	Scale float64 // outline size relative to the collision radius
}

// GetShipStyle returns the style for a craft kind
func GetShipStyle(kind game.Kind) ShipStyle {
	switch kind {
	case game.KindPlayer:
		return ShipStyle{Shape: ShipShapeTriangle, Color: colorPlayer, Scale: 1.2}
	case game.KindFighter:
		return ShipStyle{Shape: ShipShapeTriangle, Color: colornames.Red, Scale: 1.3}
	case game.KindAceFighter:
		return ShipStyle{Shape: ShipShapeDart, Color: colornames.Darkorange, Scale: 1.2}
	case game.KindAceOrbiter:
		return ShipStyle{Shape: ShipShapeDiamond, Color: colornames.Mediumpurple, Scale: 1.2}
	case game.KindMissileFlower:
		return ShipStyle{Shape: ShipShapeFlower, Color: colornames.Hotpink, Scale: 1}
	case game.KindHomingMissile:
		return ShipStyle{Shape: ShipShapeDart, Color: colorMissile, Scale: 1.4}
	default:
		return ShipStyle{Shape: ShipShapeCircle, Color: colornames.White, Scale: 1}
	}
}

// local outlines, forward is -Y
var (
	triangleOutline = []game.Vec{{X: 0, Y: -1}, {X: -0.8, Y: 0.8}, {X: 0, Y: 0.4}, {X: 0.8, Y: 0.8}}
	diamondOutline  = []game.Vec{{X: 0, Y: -1}, {X: -0.7, Y: 0}, {X: 0, Y: 1}, {X: 0.7, Y: 0}}
	dartOutline     = []game.Vec{{X: 0, Y: -1.2}, {X: -0.9, Y: 0.7}, {X: 0, Y: 0.2}, {X: 0.9, Y: 0.7}}
)

// rotatePoint rotates a local point by angle
func rotatePoint(p game.Vec, angle float64) game.Vec {
	sinA, cosA := math.Sin(angle), math.Cos(angle)
	return game.Vec{X: p.X*cosA - p.Y*sinA, Y: p.X*sinA + p.Y*cosA}
}

// strokeOutline draws a closed polygon scaled by size around (cx, cy)
func strokeOutline(dst *ebiten.Image, outline []game.Vec, cx, cy, size, angle float64, width float32, clr color.Color) {
	for i := range outline {
		a := rotatePoint(outline[i].Scale(size), angle)
		b := rotatePoint(outline[(i+1)%len(outline)].Scale(size), angle)
		vector.StrokeLine(dst, float32(cx+a.X), float32(cy+a.Y), float32(cx+b.X), float32(cy+b.Y), width, clr, true)
	}
}

// drawShip draws a craft outline in its archetype style
func drawShip(dst *ebiten.Image, style ShipStyle, cx, cy, radius, angle float64) {
	size := radius * style.Scale
	switch style.Shape {
	case ShipShapeTriangle:
		strokeOutline(dst, triangleOutline, cx, cy, size, angle, 2, style.Color)
	case ShipShapeDiamond:
		strokeOutline(dst, diamondOutline, cx, cy, size, angle, 2, style.Color)
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(size*0.25), style.Color, true)
	case ShipShapeDart:
		strokeOutline(dst, dartOutline, cx, cy, size, angle, 2, style.Color)
	case ShipShapeFlower:
		vector.StrokeCircle(dst, float32(cx), float32(cy), float32(size*0.6), 2, style.Color, true)
		for i := 0; i < game.FlowerMissileCount; i++ {
			p := rotatePoint(game.Vec{X: 0, Y: -size}, angle+float64(i)*2*math.Pi/game.FlowerMissileCount)
			vector.DrawFilledCircle(dst, float32(cx+p.X), float32(cy+p.Y), float32(size*0.18), style.Color, true)
		}
	default:
		vector.StrokeCircle(dst, float32(cx), float32(cy), float32(size), 2, style.Color, true)
	}
}

// drawHealthBar draws a small bar above damaged craft
func drawHealthBar(dst *ebiten.Image, cx, cy, radius, ratio float64) {
	if ratio >= 1 || ratio <= 0 {
		return
	}
	barWidth := radius * 2
	barX := cx - barWidth/2
	barY := cy - radius - 8
	vector.DrawFilledRect(dst, float32(barX), float32(barY), float32(barWidth), 3, color.RGBA{100, 0, 0, 255}, true)
	vector.DrawFilledRect(dst, float32(barX), float32(barY), float32(barWidth*ratio), 3, hpColor(ratio), true)
}
