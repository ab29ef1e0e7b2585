package view

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"wrapfighter/game"
)

// sprite is the display state mirrored from one simulation object
type sprite struct {
	obj      game.Object
	x, y     float64
	rotation float64
}

// Renderer keeps one sprite per live simulation object and draws them
// relative to the screen centre. It implements game.Renderer.
type Renderer struct {
	Width  float64
	Height float64

	sprites map[game.Object]*sprite
	order   []*sprite
}

// NewRenderer creates a renderer for a width x height screen
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:   float64(width),
		Height:  float64(height),
		sprites: make(map[game.Object]*sprite),
	}
}

// Sync implements game.Renderer
func (r *Renderer) Sync(obj game.Object, x, y, rotation float64) {
	s, ok := r.sprites[obj]
	if !ok {
		s = &sprite{obj: obj}
		r.sprites[obj] = s
	}
	s.x, s.y, s.rotation = x, y, rotation
}

// Release implements game.Renderer
func (r *Renderer) Release(obj game.Object) {
	delete(r.sprites, obj)
}

// Len returns the number of sprites held
func (r *Renderer) Len() int { return len(r.sprites) }

// layer orders drawing back to front
func layer(k game.Kind) int {
	switch k {
	case game.KindBackground:
		return 0
	case game.KindHomingExplosion, game.KindExplosion:
		return 1
	case game.KindLaser:
		return 2
	case game.KindBullet, game.KindHomingMissile:
		return 3
	case game.KindParticle:
		return 5
	default:
		return 4
	}
}

// Draw renders every sprite shifted by the shake offset
func (r *Renderer) Draw(screen *ebiten.Image, offX, offY float64) {
	r.order = r.order[:0]
	for _, s := range r.sprites {
		r.order = append(r.order, s)
	}
	sort.Slice(r.order, func(i, j int) bool {
		li, lj := layer(r.order[i].obj.Kind()), layer(r.order[j].obj.Kind())
		if li != lj {
			return li < lj
		}
		return r.order[i].obj.Body().ID < r.order[j].obj.Body().ID
	})

	cx := r.Width/2 + offX
	cy := r.Height/2 + offY
	for _, s := range r.order {
		r.drawSprite(screen, s, cx+s.x, cy+s.y)
	}
}

func (r *Renderer) visible(sx, sy, margin float64) bool {
	return sx >= -margin && sx <= r.Width+margin && sy >= -margin && sy <= r.Height+margin
}

func (r *Renderer) drawSprite(screen *ebiten.Image, s *sprite, sx, sy float64) {
	body := s.obj.Body()

	switch o := s.obj.(type) {
	case *game.Laser:
		r.drawLaser(screen, o, sx, sy)

	case *game.Background:
		if !r.visible(sx, sy, o.Size) {
			return
		}
		half := o.Size / 2
		vector.DrawFilledRect(screen, float32(sx-half), float32(sy-half), float32(o.Size), float32(o.Size), withAlpha(tintColor(o.Tint), o.Alpha*0.5), false)

	case *game.Particle:
		if !r.visible(sx, sy, o.Size) {
			return
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(o.Size), withAlpha(tintColor(o.Tint), o.Alpha()), true)

	case *game.Explosion:
		size := o.MaxSize * (0.3 + 0.7*o.Progress())
		if !r.visible(sx, sy, size) {
			return
		}
		fade := 1 - o.Progress()
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(size), withAlpha(tintColor(o.Tint), fade*0.6), true)
		if o.Flashy && o.Progress() < 0.3 {
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(size*0.5), withAlpha(colornames.White, 1-o.Progress()/0.3), true)
		}

	case *game.HomingExplosion:
		if !r.visible(sx, sy, body.Radius) {
			return
		}
		fade := 1 - o.Progress()
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(body.Radius), withAlpha(colornames.Darkorange, fade*0.5), true)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(body.Radius), 2, withAlpha(colornames.Yellow, fade), true)

	case *game.Bullet:
		if !r.visible(sx, sy, body.Radius) {
			return
		}
		clr := colorPlayerBullet
		if body.Side == game.SideEnemy {
			clr = colorEnemyBullet
		}
		tail := game.Forward(body.Rotation).Scale(-body.Radius * 3)
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(sx+tail.X), float32(sy+tail.Y), float32(body.Radius), clr, true)

	case *game.Player:
		drawShip(screen, GetShipStyle(game.KindPlayer), sx, sy, body.Radius, s.rotation)
		if o.Boosting {
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(body.Radius*1.6), 1, colornames.Cyan, true)
		}

	case game.Enemy:
		if !r.visible(sx, sy, body.Radius*2) {
			return
		}
		drawShip(screen, GetShipStyle(o.Kind()), sx, sy, body.Radius, s.rotation)
		drawHealthBar(screen, sx, sy, body.Radius, o.Health()/game.GetEnemyTypeConfig(o.Kind()).HP)

	default:
		if !r.visible(sx, sy, body.Radius) {
			return
		}
		drawShip(screen, GetShipStyle(s.obj.Kind()), sx, sy, body.Radius, s.rotation)
	}
}

// drawLaser draws the charge glow, the beam and its fading afterimages
func (r *Renderer) drawLaser(screen *ebiten.Image, l *game.Laser, sx, sy float64) {
	clr := colorBeam
	if l.Side == game.SideEnemy {
		clr = colorEnemyBeam
	}

	switch l.State {
	case game.LaserCharging:
		tip := game.Forward(l.Rotation).Scale(20)
		radius := 2 + 8*l.ChargeProgress
		vector.DrawFilledCircle(screen, float32(sx+tip.X), float32(sy+tip.Y), float32(radius), withAlpha(clr, 0.4+0.6*l.ChargeProgress), true)

	case game.LaserFiring:
		width := math.Max(1, l.HalfWidth()*2)
		for i, rot := range l.History() {
			if i == 0 {
				continue
			}
			end := game.Forward(rot).Scale(l.MaxLength)
			alpha := 0.4 * (1 - float64(i)/float64(len(l.History())))
			vector.StrokeLine(screen, float32(sx), float32(sy), float32(sx+end.X), float32(sy+end.Y), float32(width), withAlpha(clr, alpha), true)
		}
		end := game.Forward(l.Rotation).Scale(l.MaxLength)
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(sx+end.X), float32(sy+end.Y), float32(width*2.5), withAlpha(clr, 0.35), true)
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(sx+end.X), float32(sy+end.Y), float32(width), colornames.White, true)
	}
}
