package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"wrapfighter/game"
	"wrapfighter/view"
)

func main() {
	config := game.DefaultConfig()

	flag.Int64Var(&config.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.BoolVar(&config.Debug, "debug", false, "log simulation events")
	flag.IntVar(&config.ScreenWidth, "width", config.ScreenWidth, "screen width")
	flag.IntVar(&config.ScreenHeight, "height", config.ScreenHeight, "screen height")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	profileDir := flag.String("profile", "", "capture CPU profiles into this directory on FPS drops")
	flag.Parse()

	game.SetDebug(config.Debug)

	var profiler *view.Profiler
	if *profileDir != "" {
		p, err := view.NewProfiler(*profileDir)
		if err != nil {
			log.Fatal(err)
		}
		profiler = p
	}

	app := view.NewApp(config, profiler)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wrap Fighter")
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
