package game

// Scoring and contact constants
const (
	ScoreBulletHit    = 10
	ScoreBeamHit      = 1
	ContactDamage     = 2.0 // to the player
	ContactSelfDamage = 1.0 // to the enemy
	BounceForce       = 20.0
)

// CollisionResolver runs the per-frame hit tests and applies damage, score,
// knockback and feedback effects. Phases run in a fixed order and each one
// looks at the objects that are still alive when it starts.
type CollisionResolver struct {
	grid      *SpatialGrid
	spawn     *Spawner
	worldSize float64

	// OnScore receives points as they are earned
	OnScore func(points int)

	// OnShake asks the view to shake for at least frames
	OnShake func(frames float64)
}

// NewCollisionResolver creates a resolver using its own broad-phase grid
func NewCollisionResolver(config Config, spawn *Spawner) *CollisionResolver {
	return &CollisionResolver{
		grid:      NewSpatialGrid(config),
		spawn:     spawn,
		worldSize: config.WorldSize,
	}
}

// circlesOverlap is the strict circle test on the torus
func circlesOverlap(a, b *Entity, worldSize float64) bool {
	if a.Radius <= 0 || b.Radius <= 0 || a.Position.IsNaN() || b.Position.IsNaN() {
		return false
	}
	d := WrapDelta(a.Position, b.Position, worldSize)
	r := a.Radius + b.Radius
	return d.LenSq() < r*r
}

func (c *CollisionResolver) score(points int) {
	if c.OnScore != nil && points != 0 {
		c.OnScore(points)
	}
}

func (c *CollisionResolver) shake(frames float64) {
	if c.OnShake != nil {
		c.OnShake(frames)
	}
}

// liveOf returns the live objects of objs that match keep
func liveOf(objs []Object, keep func(Object) bool) []Object {
	var out []Object
	for _, o := range objs {
		if o.Body().alive && keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func isEnemy(o Object) bool     { return o.Kind().IsEnemy() }
func isBullet(o Object) bool    { return o.Kind() == KindBullet }
func isMissile(o Object) bool   { return o.Kind() == KindHomingMissile }
func isExplosion(o Object) bool { return o.Kind() == KindHomingExplosion }

// damageEnemy applies damage and handles the kill bookkeeping
func (c *CollisionResolver) damageEnemy(e Enemy, amount float64, hitScore int, tint Tint, hitAt, hitVel Vec) {
	body := e.Body()
	e.TakeDamage(amount)
	c.spawn.hit(hitAt, tint, hitVel)
	c.score(hitScore)
	if !body.alive {
		c.spawn.destruction(body.Position, body.Velocity)
		c.score(e.KillScore())
	}
}

// Resolve runs every phase against objs, which must only contain objects
// that existed when the frame began.
func (c *CollisionResolver) Resolve(player *Player, laser *Laser, objs []Object) {
	c.beamVsEnemies(player, laser, objs)
	c.enemyBeamsVsPlayer(player, objs)
	c.bulletsVsTargets(player, objs)
	c.bodyContact(player, objs)
	c.missiles(player, laser, objs)
	c.explosions(player, objs)
}

// phase 1: the player's beam against every live enemy
func (c *CollisionResolver) beamVsEnemies(player *Player, laser *Laser, objs []Object) {
	if laser == nil || !laser.IsFiring() {
		return
	}
	damage := laser.Damage * player.DamageMultiplier
	for _, o := range liveOf(objs, isEnemy) {
		e := o.(Enemy)
		body := e.Body()
		if !body.alive || !laser.BeamHits(body) {
			continue
		}
		c.damageEnemy(e, damage, ScoreBeamHit, TintWhite, body.Position, body.Velocity)
	}
}

// phase 1b: enemy lasers against the player
func (c *CollisionResolver) enemyBeamsVsPlayer(player *Player, objs []Object) {
	for _, o := range liveOf(objs, func(o Object) bool { return o.Kind() == KindAceOrbiter }) {
		beam := o.(*AceOrbiter).Beam()
		if !player.alive || beam == nil || !beam.IsFiring() {
			continue
		}
		if beam.BeamHits(&player.Entity) && beam.canHit(player.ID) {
			player.TakeDamage(beam.Damage)
			c.spawn.hit(player.Position, TintRed, player.Velocity)
			c.shake(10)
		}
	}
}

// phase 2: bullets against enemies (player side) or the player (enemy side)
func (c *CollisionResolver) bulletsVsTargets(player *Player, objs []Object) {
	c.grid.Rebuild(liveOf(objs, isEnemy))

	for _, o := range liveOf(objs, isBullet) {
		b := o.(*Bullet)
		if GetOppositeSide(b.Side) == SidePlayer {
			if player.alive && Hostile(b.Side, player.Side) && circlesOverlap(&b.Entity, &player.Entity, c.worldSize) {
				b.Kill()
				player.TakeDamage(b.Damage)
				c.spawn.hit(b.Position, TintYellow, b.Velocity)
				c.shake(10)
			}
			continue
		}

		for _, cand := range c.grid.Query(b.Position, b.Radius) {
			e, ok := cand.(Enemy)
			if !ok || !e.Body().alive || !Hostile(b.Side, e.Body().Side) || !circlesOverlap(&b.Entity, e.Body(), c.worldSize) {
				continue
			}
			if b.Piercing && !b.markHit(e.Body().ID) {
				continue
			}
			c.damageEnemy(e, b.Damage, ScoreBulletHit, TintWhite, b.Position, b.Velocity)
			if !b.Piercing {
				b.Kill()
				break
			}
		}
	}
}

// phase 3: the player rams enemies; both take damage and bounce apart
func (c *CollisionResolver) bodyContact(player *Player, objs []Object) {
	for _, o := range liveOf(objs, isEnemy) {
		if !player.alive {
			return
		}
		e := o.(Enemy)
		body := e.Body()
		if !body.alive || !circlesOverlap(&player.Entity, body, c.worldSize) {
			continue
		}

		player.TakeDamage(ContactDamage)
		c.shake(15)

		d := WrapDelta(player.Position, body.Position, c.worldSize)
		dist := d.Len()
		if dist > 0 {
			n := d.Scale(1 / dist)
			player.Velocity = player.Velocity.Add(n.Scale(BounceForce))
			body.Velocity = body.Velocity.Sub(n.Scale(BounceForce))

			if overlap := player.Radius + body.Radius - dist; overlap > 0 {
				push := n.Scale(overlap * 0.5)
				player.Position = WrapPosition(player.Position.Add(push), c.worldSize)
				body.Position = WrapPosition(body.Position.Sub(push), c.worldSize)
			}
		}

		mid := WrapPosition(body.Position.Add(WrapDelta(player.Position, body.Position, c.worldSize).Scale(0.5)), c.worldSize)
		c.spawn.hit(mid, TintOrange, player.Velocity.Add(body.Velocity).Scale(0.5))

		e.TakeDamage(ContactSelfDamage)
		if !body.alive {
			c.spawn.destruction(body.Position, body.Velocity)
			c.score(e.KillScore())
		}
	}
}

// phase 4: homing missiles against the beam, player bullets and the player
func (c *CollisionResolver) missiles(player *Player, laser *Laser, objs []Object) {
	bullets := liveOf(objs, func(o Object) bool {
		return o.Kind() == KindBullet && Hostile(o.Body().Side, SideEnemy)
	})

	for _, o := range liveOf(objs, isMissile) {
		m := o.(*HomingMissile)

		if laser != nil && laser.IsFiring() && laser.BeamHits(&m.Entity) {
			m.Detonate()
			c.spawn.hit(m.Position, TintWhite, m.Velocity)
			c.score(ScoreBeamHit)
			continue
		}

		for _, bo := range bullets {
			b := bo.(*Bullet)
			if !b.alive || !m.alive || !circlesOverlap(&b.Entity, &m.Entity, c.worldSize) {
				continue
			}
			if b.Piercing && !b.markHit(m.ID) {
				continue
			}
			if !b.Piercing {
				b.Kill()
			}
			c.score(ScoreBulletHit)
			m.TakeDamage(b.Damage)
			c.spawn.hit(m.Position, TintWhite, m.Velocity)
		}
		if !m.alive {
			continue
		}

		if player.alive && circlesOverlap(&m.Entity, &player.Entity, c.worldSize) {
			m.Detonate()
		}
	}
}

// phase 5: missile explosions damage everything once
func (c *CollisionResolver) explosions(player *Player, objs []Object) {
	blasts := liveOf(objs, isExplosion)
	if len(blasts) == 0 {
		return
	}
	c.grid.Rebuild(liveOf(objs, func(o Object) bool { return isEnemy(o) || isMissile(o) }))

	for _, o := range blasts {
		ex := o.(*HomingExplosion)

		if player.alive && circlesOverlap(&ex.Entity, &player.Entity, c.worldSize) && ex.CanDealDamage(player.ID) {
			player.TakeDamage(ex.Damage)
			c.spawn.hit(player.Position, TintOrange, player.Velocity)
			c.shake(20)
		}

		for _, cand := range c.grid.Query(ex.Position, ex.Radius) {
			body := cand.Body()
			if !body.alive || !circlesOverlap(&ex.Entity, body, c.worldSize) {
				continue
			}
			switch t := cand.(type) {
			case Enemy:
				if ex.CanDealDamage(body.ID) {
					c.damageEnemy(t, ex.Damage, 0, TintOrange, body.Position, body.Velocity)
				}
			case *HomingMissile:
				if ex.CanDealDamage(body.ID) {
					t.TakeDamage(ex.Damage)
					c.spawn.hit(body.Position, TintOrange, body.Velocity)
				}
			}
		}
	}
}
