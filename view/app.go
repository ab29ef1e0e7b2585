package view

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wrapfighter/game"
)

// Frame timing
const (
	framesPerSecond = 60.0
	maxFrameTime    = 0.1 // seconds; larger gaps are clamped
	shakeAmplitude  = 10.0
)

var rewardKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// App is the ebiten.Game driving a Simulation from the keyboard
type App struct {
	config game.Config
	sim    *game.Simulation

	input    game.InputProvider
	keyboard *Keyboard
	renderer *Renderer
	hud      *HUD
	minimap  *Minimap
	dust     *Dust
	profiler *Profiler
	fx       *rand.Rand

	lastUpdateTime time.Time
}

// NewApp wires a simulation to its view. profiler may be nil.
func NewApp(config game.Config, profiler *Profiler) *App {
	renderer := NewRenderer(config.ScreenWidth, config.ScreenHeight)
	keyboard := &Keyboard{}
	return &App{
		config:   config,
		sim:      game.NewSimulation(config, renderer),
		input:    keyboard,
		keyboard: keyboard,
		renderer: renderer,
		hud:      NewHUD(config.ScreenWidth, config.ScreenHeight),
		minimap:  NewMinimap(config.ScreenWidth),
		dust:     NewDust(config.ScreenWidth, config.ScreenHeight, rand.New(rand.NewSource(1))),
		profiler: profiler,
		fx:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Simulation returns the driven simulation
func (a *App) Simulation() *game.Simulation { return a.sim }

// frameDelta converts wall time since the last update into frames
func (a *App) frameDelta(now time.Time) (float64, float64) {
	if a.lastUpdateTime.IsZero() {
		a.lastUpdateTime = now
		return 1, 1 / framesPerSecond
	}
	dt := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	if dt > maxFrameTime {
		dt = maxFrameTime
	}
	if dt <= 0 {
		return 0, 0
	}
	return dt * framesPerSecond, dt
}

// Update implements ebiten.Game
func (a *App) Update() error {
	delta, dt := a.frameDelta(time.Now())
	a.keyboard.toggleFullscreen()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := game.GetDebugState()
		debugState.ShowGrid = !debugState.ShowGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		game.SetDebug(!game.GetDebugState().Verbose)
	}

	if a.sim.GameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.sim.Reset()
			a.minimap.Reset()
		}
		return nil
	}

	for i, k := range rewardKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if err := a.sim.SelectPowerUp(i); err != nil && !errors.Is(err, game.ErrNoRewardPending) {
			log.Printf("reward selection: %v", err)
		}
	}

	if delta > 0 {
		a.sim.Update(delta, a.input.Input())
		a.minimap.Update(delta, a.sim.Player())
		a.dust.Update(delta, a.sim.Player().Velocity)
	}

	if a.profiler != nil && dt > 0 {
		a.profiler.Observe(dt, func() string {
			return fmt.Sprintf("wave%d-objects%d", a.sim.Director().Wave, len(a.sim.Objects()))
		})
	}
	return nil
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackdrop)
	state := a.sim.HUD()

	var offX, offY float64
	if state.Shake > 0 {
		offX = (a.fx.Float64() - 0.5) * shakeAmplitude
		offY = (a.fx.Float64() - 0.5) * shakeAmplitude
	}

	cx := float64(a.config.ScreenWidth)/2 + offX
	cy := float64(a.config.ScreenHeight)/2 + offY
	a.dust.Draw(screen, cx, cy)
	if game.GetDebugState().ShowGrid {
		a.drawGrid(screen, cx, cy)
	}
	a.renderer.Draw(screen, offX, offY)
	a.minimap.Draw(screen, a.sim.Player(), a.sim.Objects(), a.config.WorldSize)
	a.hud.Draw(screen, state)

	if game.GetDebugState().ShowGrid {
		msg := fmt.Sprintf("TPS %.0f  FPS %.0f  objects %d  sprites %d  phase %s",
			ebiten.ActualTPS(), ebiten.ActualFPS(), state.ObjectCount, a.renderer.Len(), state.Phase)
		ebitenutil.DebugPrintAt(screen, msg, 20, a.config.ScreenHeight-20)
	}
}

// drawGrid draws the broad-phase cell boundaries around the player
func (a *App) drawGrid(screen *ebiten.Image, cx, cy float64) {
	n := a.config.CellCount()
	cell := a.config.WorldSize / float64(n)
	center := a.sim.Player().Position
	w, h := float64(a.config.ScreenWidth), float64(a.config.ScreenHeight)

	for i := 0; i < n; i++ {
		edge := -a.config.Half() + float64(i)*cell
		rel := game.WrapDelta(game.Vec{X: edge, Y: edge}, center, a.config.WorldSize)
		if x := cx + rel.X; x >= 0 && x <= w {
			vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, colorGrid, false)
		}
		if y := cy + rel.Y; y >= 0 && y <= h {
			vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, colorGrid, false)
		}
	}
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.ScreenWidth, a.config.ScreenHeight
}

var (
	_ ebiten.Game   = (*App)(nil)
	_ game.Renderer = (*Renderer)(nil)
)
