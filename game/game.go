package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Game-over sequence timing, in frames
const (
	DeathSequenceFrames = 180.0
	DeathBurstPhase     = 120.0 // explosions keep popping while the timer is above this
	DeathBurstChance    = 0.15
	laserTipOffset      = 20.0
)

// Renderer mirrors simulation objects into a view. Coordinates are camera
// relative with the player at the origin.
type Renderer interface {
	Sync(obj Object, x, y, rotation float64)
	Release(obj Object)
}

type nopRenderer struct{}

func (nopRenderer) Sync(Object, float64, float64, float64) {}
func (nopRenderer) Release(Object)                         {}

// RewardOption is a power-up as shown in the selection menu
type RewardOption struct {
	Name        string
	Description string
}

// HUDState is the read-only snapshot a view needs for its overlay
type HUDState struct {
	Score        int
	Wave         int
	Spawned      int
	Required     int
	EnemiesAlive int
	Phase        WavePhase

	HP            float64
	MaxHP         float64
	LaserPower    float64
	MaxLaserPower float64
	Overheated    bool
	BoostCooldown float64

	Announcement string
	Rewards      []RewardOption
	Shake        float64
	Dying        bool
	GameOver     bool
	ObjectCount  int
}

// Simulation owns every object of a session and advances them one frame at
// a time.
type Simulation struct {
	config   Config
	rng      *rand.Rand
	renderer Renderer

	player    *Player
	laser     *Laser
	objects   []Object
	events    *EventQueue
	spawner   *Spawner
	collision *CollisionResolver
	director  *WaveDirector

	thrust *Emitter
	boost  *Emitter

	offers []Reward
	score  int
	shake  float64

	deathTimer   float64
	dying        bool
	burstDone    bool
	playerHidden bool
	gameOver     bool
}

// NewSimulation creates a session for config. A nil renderer discards
// display updates.
func NewSimulation(config Config, renderer Renderer) *Simulation {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	s := &Simulation{
		config:   config,
		renderer: renderer,
	}
	s.Reset()
	return s
}

// Reset discards every object and starts again from wave 1
func (s *Simulation) Reset() {
	for _, obj := range s.objects {
		if obj.Body().Destroy() {
			s.renderer.Release(obj)
		}
	}
	if s.player != nil && !s.playerHidden {
		s.renderer.Release(s.player)
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))

	s.objects = nil
	s.offers = nil
	s.score = 0
	s.shake = 0
	s.deathTimer = 0
	s.dying = false
	s.burstDone = false
	s.playerHidden = false
	s.gameOver = false

	s.events = &EventQueue{}
	s.spawner = s.newSpawner()

	s.collision = NewCollisionResolver(s.config, s.spawner)
	s.collision.OnScore = func(points int) { s.score += points }
	s.collision.OnShake = s.addShake

	s.player = NewPlayer(0, 0, s.spawner.Bullet, s.config.WorldSize)
	s.laser = NewLaser(SidePlayer, s.config.WorldSize)
	s.add(s.laser)

	for _, bg := range scatterBackground(s.config.BackgroundCount, s.rng, s.config.WorldSize) {
		s.add(bg)
	}

	s.thrust = NewThrustEmitter()
	s.boost = NewBoostEmitter()

	s.director = NewWaveDirector()
	s.director.Spawn = s.spawnEnemy
	s.director.OnClear = func(int) {
		s.player.Heal(BreatherHealFactor)
		s.player.RestorePower()
	}
	s.director.OnOffer = func(int) {
		s.offers = DrawRewards(s.player, s.config.RewardOptionCount, s.rng)
		if len(s.offers) == 0 {
			s.director.Select()
		}
	}

	logDebug("simulation reset (seed %d)", seed)
}

func (s *Simulation) newSpawner() *Spawner {
	ws := s.config.WorldSize
	return &Spawner{
		Bullet: func(x, y, angle float64, side Side) *Bullet {
			b := NewBullet(x, y, angle, side, ws)
			s.add(b)
			return b
		},
		HomingMissile: func(x, y, angle float64) *HomingMissile {
			m := NewHomingMissile(x, y, angle, s.playerTarget, s.events, ws)
			s.add(m)
			return m
		},
		Laser: func(side Side) *Laser {
			l := NewLaser(side, ws)
			s.add(l)
			return l
		},
		Explosion: func(x, y float64, tint Tint, scale, duration float64, flashy bool, vel Vec) {
			s.add(NewExplosion(x, y, tint, scale, duration, flashy, vel, ws))
		},
		HitEffect: func(pos Vec, tint Tint, vel Vec) {
			s.add(NewExplosion(pos.X, pos.Y, tint, 0.3, 10, true, vel, ws))
			sparkBurst(pos, vel, 5+s.rng.Intn(5), 3, 25, tint, s.rng, ws, s.addParticle)
		},
		DestructionEffect: func(pos, vel Vec) {
			s.add(NewExplosion(pos.X, pos.Y, TintOrange, 1.5, 30, true, vel, ws))
			sparkBurst(pos, vel, 20+s.rng.Intn(10), 5.5, 40, TintOrange, s.rng, ws, s.addParticle)
		},
	}
}

// playerTarget is the handle enemies and missiles home on
func (s *Simulation) playerTarget() *Entity {
	if s.player == nil || !s.player.alive {
		return nil
	}
	return &s.player.Entity
}

func (s *Simulation) add(obj Object) {
	s.objects = append(s.objects, obj)
}

func (s *Simulation) addParticle(p *Particle) {
	s.add(p)
}

func (s *Simulation) addShake(frames float64) {
	s.shake = math.Max(s.shake, frames)
}

func (s *Simulation) spawnEnemy(wave int) {
	ws := s.config.WorldSize
	pos := SpawnPoint(s.player.Position, s.rng.Float64()*2*math.Pi, s.rng.Float64(), ws)

	var e Enemy
	switch kind := GetRandomEnemyKind(wave, s.rng); kind {
	case KindMissileFlower:
		e = NewMissileFlower(pos.X, pos.Y, s.playerTarget, s.spawner, s.rng, ws)
	case KindAceFighter:
		e = NewAceFighter(pos.X, pos.Y, s.playerTarget, s.spawner, s.rng, ws)
	case KindAceOrbiter:
		e = NewAceOrbiter(pos.X, pos.Y, s.playerTarget, s.spawner, s.rng, ws)
	default:
		e = NewFighter(pos.X, pos.Y, wave, s.playerTarget, s.spawner, s.rng, ws)
	}
	s.add(e)
}

// EnemiesAlive counts live enemies
func (s *Simulation) EnemiesAlive() int {
	n := 0
	for _, obj := range s.objects {
		if obj.Kind().IsEnemy() && obj.Body().alive {
			n++
		}
	}
	return n
}

// Update advances the session by delta frames using the given input
func (s *Simulation) Update(delta float64, in InputState) {
	if s.gameOver || !validDelta(delta) {
		return
	}

	if !s.player.alive {
		if s.updateDeath(delta) {
			return
		}
	}

	if s.shake > 0 {
		s.shake = math.Max(0, s.shake-delta)
	}

	s.player.UpdateLaserPower(delta, s.laser.IsFiring(), false)
	laserTrigger := in.Laser && s.player.CanUseLaser()

	s.player.SetInput(in)
	s.player.Update(delta)
	s.laser.WidthMultiplier = s.player.BeamWidthMultiplier
	s.laser.UpdateFromWielder(s.player.Position, s.player.Rotation)
	s.laser.SetTrigger(laserTrigger)

	s.updateCosmetics(delta, in)

	if s.player.alive {
		s.director.Update(delta, s.EnemiesAlive())
	}

	frameObjects := s.objects
	s.collision.Resolve(s.player, s.laser, frameObjects)

	for _, obj := range frameObjects {
		if obj.Body().alive {
			obj.Update(delta)
		}
	}

	for _, ev := range s.events.Drain() {
		s.add(newDetonationExplosion(ev, s.config.WorldSize))
	}

	s.cleanup()
	s.sync()
}

// updateDeath runs the game-over sequence and reports whether the session
// has just ended.
func (s *Simulation) updateDeath(delta float64) bool {
	p := s.player
	if !s.dying {
		s.dying = true
		s.deathTimer = DeathSequenceFrames
		s.spawner.hit(p.Position, TintOrange, p.Velocity)
		s.shake = 30
		logDebug("player down, score %d", s.score)
	}

	s.deathTimer -= delta
	ws := s.config.WorldSize
	switch {
	case s.deathTimer > DeathBurstPhase:
		if s.rng.Float64() < DeathBurstChance {
			at := WrapPosition(p.Position.Add(Vec{(s.rng.Float64() - 0.5) * 80, (s.rng.Float64() - 0.5) * 80}), ws)
			tints := []Tint{TintOrange, TintYellow, TintRed, TintWhite}
			tint := tints[s.rng.Intn(len(tints))]
			s.spawner.explosion(at.X, at.Y, tint, 1+s.rng.Float64(), 20+s.rng.Float64()*20, true, Vec{})
			sparkBurst(at, Vec{}, 15, 7.5, 40, tint, s.rng, ws, s.addParticle)
			s.shake = 15
		}
	case s.deathTimer > 0:
		if !s.burstDone {
			s.burstDone = true
			s.spawner.explosion(p.Position.X, p.Position.Y, TintWhite, 4, 40, true, Vec{})
			for i, n := 0, 3+s.rng.Intn(3); i < n; i++ {
				at := WrapPosition(p.Position.Add(Forward(s.rng.Float64()*2*math.Pi).Scale(40+s.rng.Float64()*60)), ws)
				s.spawner.explosion(at.X, at.Y, TintYellow, 2+s.rng.Float64()*2, 30+s.rng.Float64()*20, true, Vec{})
			}
			sparkBurst(p.Position, Vec{}, 80+s.rng.Intn(40), 15, 80, TintWhite, s.rng, ws, s.addParticle)
			s.renderer.Release(p)
			s.playerHidden = true
			s.shake = 60
		}
	default:
		s.gameOver = true
		logDebug("game over, score %d", s.score)
		return true
	}
	return false
}

func (s *Simulation) updateCosmetics(delta float64, in InputState) {
	p := s.player

	if s.laser.State != LaserIdle {
		tip := WrapPosition(p.Position.Add(Forward(p.Rotation).Scale(laserTipOffset)), s.config.WorldSize)
		intensity := 1.0
		if s.laser.State == LaserCharging {
			intensity = s.laser.ChargeProgress
		}
		count := int(intensity * 3)
		if s.rng.Float64() < math.Mod(intensity*3, 1) {
			count++
		}
		for i := 0; i < count; i++ {
			angle := p.Rotation + (s.rng.Float64()-0.5)*1.5
			vel := Forward(angle).Scale(2 + s.rng.Float64()*5)
			s.add(NewParticle(tip.X, tip.Y, vel, 10+s.rng.Float64()*10, TintCyan, 2, s.config.WorldSize))
		}
	}

	s.thrust.SetActive(p.alive && in.Up)
	s.thrust.Update(delta, &p.Entity, s.rng, s.addParticle)

	s.boost.SetActive(p.Boosting)
	s.boost.Update(delta, &p.Entity, s.rng, s.addParticle)
	if p.Boosting {
		s.addShake(2)
	}
}

// cleanup drops dead objects and releases their display state once
func (s *Simulation) cleanup() {
	live := s.objects[:0]
	for _, obj := range s.objects {
		if obj.Body().alive {
			live = append(live, obj)
			continue
		}
		if obj.Body().Destroy() {
			s.renderer.Release(obj)
		}
	}
	for i := len(live); i < len(s.objects); i++ {
		s.objects[i] = nil
	}
	s.objects = live
}

// sync pushes camera-relative transforms to the renderer
func (s *Simulation) sync() {
	center := s.player.Position
	ws := s.config.WorldSize
	for _, obj := range s.objects {
		body := obj.Body()
		rel := WrapDelta(body.Position, center, ws)
		s.renderer.Sync(obj, rel.X, rel.Y, body.Rotation)
	}
	if !s.playerHidden {
		s.renderer.Sync(s.player, 0, 0, s.player.Rotation)
	}
}

// SelectPowerUp applies the i-th offered reward and schedules the next wave
func (s *Simulation) SelectPowerUp(i int) error {
	if s.gameOver || !s.director.AwaitingSelection() || len(s.offers) == 0 {
		return ErrNoRewardPending
	}
	if i < 0 || i >= len(s.offers) {
		return fmt.Errorf("select reward %d of %d: %w", i, len(s.offers), ErrRewardIndex)
	}
	s.offers[i].Apply(s.player)
	s.offers = nil
	s.director.Select()
	return nil
}

// HUD returns a snapshot of the overlay state
func (s *Simulation) HUD() HUDState {
	p := s.player
	h := HUDState{
		Score:         s.score,
		Wave:          s.director.Wave,
		Spawned:       s.director.Spawned,
		Required:      s.director.Required,
		EnemiesAlive:  s.EnemiesAlive(),
		Phase:         s.director.Phase,
		HP:            p.HP,
		MaxHP:         p.MaxHP,
		LaserPower:    p.LaserPower,
		MaxLaserPower: p.MaxLaserPower,
		Overheated:    p.Overheated,
		BoostCooldown: p.BoostCooldown(),
		Announcement:  s.director.Announcement,
		Shake:         s.shake,
		Dying:         s.dying,
		GameOver:      s.gameOver,
		ObjectCount:   len(s.objects),
	}
	for _, r := range s.offers {
		h.Rewards = append(h.Rewards, RewardOption{Name: r.Name, Description: r.Description})
	}
	return h
}

// Objects returns the live object list; callers must not modify it
func (s *Simulation) Objects() []Object { return s.objects }

// Player returns the player
func (s *Simulation) Player() *Player { return s.player }

// Laser returns the player's laser
func (s *Simulation) Laser() *Laser { return s.laser }

// Director returns the wave director
func (s *Simulation) Director() *WaveDirector { return s.director }

// Score returns the current score
func (s *Simulation) Score() int { return s.score }

// GameOver reports whether the session has ended
func (s *Simulation) GameOver() bool { return s.gameOver }

// Config returns the session configuration
func (s *Simulation) Config() Config { return s.config }
