package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"raycast-maze/config"
	"raycast-maze/maze"
	"raycast-maze/render"
)

func main() {
	windowed := flag.Bool("windowed", false, "run in a 640x480 window instead of fullscreen")
	winMode := flag.String("win", "both", "win policy: exit, explore or both")
	seed := flag.Int64("seed", 0, "maze generation seed (0 = random)")
	texturePath := flag.String("texture", "", "wall texture image file (default: built-in bricks)")
	mapView := flag.Bool("map-view", false, "run the top-down maze preview instead of the game")
	flag.Parse()

	policy, err := config.ParseWinPolicy(*winMode)
	if err != nil {
		log.Fatal(err)
	}

	generator := maze.NewGenerator()
	if *seed != 0 {
		generator.SetSeed(*seed)
	}

	if *mapView {
		// Run the maze preview mode
		viewer := NewMazeViewer(generator, policy.UsesExit())
		w, h := viewer.WindowSize()
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("Raycast Maze - Map View")
		if err := ebiten.RunGame(viewer); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Wall texture: decoded from a file when given, synthesized otherwise.
	texture := render.BrickTexture()
	if *texturePath != "" {
		texture, err = render.LoadTexture(*texturePath)
		if err != nil {
			log.Fatal(err)
		}
	}

	screenWidth := config.WindowedScreenWidth
	screenHeight := config.WindowedScreenHeight
	planeScale := config.PlaneScaleWindowed
	if !*windowed {
		screenWidth, screenHeight = ebiten.Monitor().Size()
		if screenWidth <= 0 || screenHeight <= 0 {
			screenWidth = config.DefaultScreenWidth
			screenHeight = config.DefaultScreenHeight
		}
		planeScale = config.PlaneScaleFullscreen
		ebiten.SetFullscreen(true)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Raycast Maze - Explore 300 Cells")
	// Capture the cursor for relative mouse look.
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	game := NewGame(generator, policy, texture, screenWidth, screenHeight, planeScale)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
