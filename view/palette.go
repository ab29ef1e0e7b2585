package view

import (
	"image/color"

	"golang.org/x/image/colornames"

	"wrapfighter/game"
)

// Screen colours
var (
	colorBackdrop     = color.RGBA{8, 10, 24, 255}
	colorPlayer       = colornames.Cyan
	colorPlayerBullet = colornames.Yellow
	colorEnemyBullet  = colornames.Orangered
	colorMissile      = colornames.Orange
	colorBeam         = colornames.Lightcyan
	colorEnemyBeam    = colornames.Violet
	colorGaugeBack    = color.RGBA{51, 51, 51, 204}
	colorGaugeFrame   = colornames.White
	colorGrid         = color.RGBA{40, 60, 90, 255}
	colorDust         = color.RGBA{120, 130, 160, 160}
)

// tintColor maps a simulation tint to a screen colour
func tintColor(t game.Tint) color.RGBA {
	switch t {
	case game.TintOrange:
		return colornames.Darkorange
	case game.TintWhite:
		return colornames.White
	case game.TintCyan:
		return colornames.Cyan
	case game.TintRed:
		return colornames.Red
	case game.TintYellow:
		return colornames.Gold
	case game.TintBlue:
		return colornames.Royalblue
	case game.TintGreen:
		return colornames.Limegreen
	case game.TintPurple:
		return colornames.Mediumpurple
	case game.TintPink:
		return colornames.Hotpink
	default:
		return colornames.White
	}
}

// withAlpha scales c to alpha in [0, 1]
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * alpha)}
}

// hpColor follows the gauge thresholds: cyan, green, yellow, red
func hpColor(ratio float64) color.RGBA {
	switch {
	case ratio < 0.3:
		return colornames.Red
	case ratio < 0.5:
		return colornames.Yellow
	case ratio < 0.75:
		return colornames.Lime
	default:
		return colornames.Cyan
	}
}
