package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"wrapfighter/game"
)

// HUD layout constants
const (
	gaugeWidth       = 200.0
	gaugeHeight      = 20.0
	powerGaugeHeight = 8.0
	gaugeTop         = 20.0
	bannerScale      = 3.0
	menuWidth        = 420.0
	menuRowHeight    = 44.0
)

// drawText is a small wrapper that uses the classic text.Draw signature
func drawText(img *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(img, s, basicfont.Face7x13, x, y, col)
}

// textWidth returns the pixel width of s in the HUD face
func textWidth(s string) int {
	return text.BoundString(basicfont.Face7x13, s).Dx()
}

// HUD draws gauges, score, wave progress, banners and the reward menu
type HUD struct {
	Width  float64
	Height float64

	banner     *ebiten.Image
	bannerText string
}

// NewHUD creates a HUD for a width x height screen
func NewHUD(width, height int) *HUD {
	return &HUD{Width: float64(width), Height: float64(height)}
}

// Draw renders the overlay for state
func (h *HUD) Draw(screen *ebiten.Image, state game.HUDState) {
	h.drawGauges(screen, state)

	drawText(screen, fmt.Sprintf("SCORE: %06d", state.Score), 20, 34, colornames.White)
	drawText(screen, fmt.Sprintf("WAVE %d  %d/%d  enemies %d", state.Wave, state.Spawned, state.Required, state.EnemiesAlive), 20, 54, colornames.Lightgray)

	if state.Announcement != "" {
		h.drawBanner(screen, state.Announcement, h.Height*0.3)
	}
	if len(state.Rewards) > 0 {
		h.drawRewardMenu(screen, state.Rewards)
	}
	if state.GameOver {
		h.drawBanner(screen, "GAME OVER", h.Height*0.4)
		msg := fmt.Sprintf("final score %d - press R to restart", state.Score)
		drawText(screen, msg, int(h.Width/2)-textWidth(msg)/2, int(h.Height*0.4)+40, colornames.White)
	}
}

func (h *HUD) drawGauges(screen *ebiten.Image, state game.HUDState) {
	x := float32(h.Width/2 - gaugeWidth/2)

	ratio := 0.0
	if state.MaxHP > 0 {
		ratio = max(0, state.HP/state.MaxHP)
	}
	vector.DrawFilledRect(screen, x, gaugeTop, gaugeWidth, gaugeHeight, colorGaugeBack, false)
	vector.DrawFilledRect(screen, x, gaugeTop, float32(gaugeWidth*ratio), gaugeHeight, hpColor(ratio), false)
	vector.StrokeRect(screen, x, gaugeTop, gaugeWidth, gaugeHeight, 2, colorGaugeFrame, false)

	power := 0.0
	if state.MaxLaserPower > 0 {
		power = max(0, state.LaserPower/state.MaxLaserPower)
	}
	powerColor := colornames.Deepskyblue
	if state.Overheated {
		powerColor = colornames.Orangered
	}
	py := float32(gaugeTop + gaugeHeight + 4)
	vector.DrawFilledRect(screen, x, py, gaugeWidth, powerGaugeHeight, colorGaugeBack, false)
	vector.DrawFilledRect(screen, x, py, float32(gaugeWidth*power), powerGaugeHeight, powerColor, false)

	label := "LASER"
	if state.Overheated {
		label = "OVERHEAT"
	}
	drawText(screen, label, int(x)+gaugeWidth+8, int(py)+8, powerColor)

	if state.BoostCooldown > 0 {
		drawText(screen, "BOOST --", int(x)-64, int(py)+8, colornames.Gray)
	} else {
		drawText(screen, "BOOST OK", int(x)-64, int(py)+8, colornames.Cyan)
	}
}

// drawBanner draws large centred text by scaling a cached image
func (h *HUD) drawBanner(screen *ebiten.Image, msg string, y float64) {
	if h.banner == nil || h.bannerText != msg {
		w := textWidth(msg) + 4
		h.banner = ebiten.NewImage(w, 16)
		drawText(h.banner, msg, 2, 12, colornames.White)
		h.bannerText = msg
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	w := float64(h.banner.Bounds().Dx()) * bannerScale
	op.GeoM.Translate(h.Width/2-w/2, y)
	screen.DrawImage(h.banner, op)
}

func (h *HUD) drawRewardMenu(screen *ebiten.Image, rewards []game.RewardOption) {
	top := h.Height/2 - float64(len(rewards))*menuRowHeight/2
	left := h.Width/2 - menuWidth/2

	title := "CHOOSE A POWER-UP"
	drawText(screen, title, int(h.Width/2)-textWidth(title)/2, int(top)-12, colornames.Gold)

	for i, r := range rewards {
		y := top + float64(i)*menuRowHeight
		vector.DrawFilledRect(screen, float32(left), float32(y), menuWidth, menuRowHeight-6, color.RGBA{20, 30, 60, 220}, false)
		vector.StrokeRect(screen, float32(left), float32(y), menuWidth, menuRowHeight-6, 1, colornames.Steelblue, false)
		drawText(screen, fmt.Sprintf("[%d] %s", i+1, r.Name), int(left)+10, int(y)+16, colornames.White)
		drawText(screen, r.Description, int(left)+30, int(y)+32, colornames.Lightgray)
	}
}
