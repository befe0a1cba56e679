package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raycast-maze/audio"
	"raycast-maze/config"
	"raycast-maze/maze"
	"raycast-maze/render"
	"raycast-maze/session"
)

// Game implements ebiten.Game interface. It turns polled input into
// player movement, steps the session state machine and blits the
// raycaster's pixel buffer each frame. It also acts as the session's
// Notifier, showing the level-complete overlay until the player
// dismisses it.
type Game struct {
	session     *session.Session
	raycaster   *render.Raycaster
	audioSystem *audio.System

	screenWidth  int
	screenHeight int

	// Previous captured-cursor position, for mouse-look deltas.
	lastCursorX int
	lastCursorY int
	cursorReady bool

	overlayMessage string
}

// NewGame creates a new game instance.
func NewGame(generator *maze.Generator, policy config.WinPolicy, texture *render.Texture, screenWidth, screenHeight int, planeScale float64) *Game {
	g := &Game{
		raycaster:    render.NewRaycaster(screenWidth, screenHeight, texture),
		audioSystem:  audio.NewSystem(),
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
	g.session = session.New(generator, policy, planeScale, g)
	return g
}

// Update advances the game by one tick: event intake, input resolution,
// movement and collision, then the win/reset state machine. Phases run
// strictly in this order every frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Mouse look: delta of the captured cursor since the last tick.
	cx, cy := ebiten.CursorPosition()
	mouseDX := cx - g.lastCursorX
	g.lastCursorX, g.lastCursorY = cx, cy
	if !g.cursorReady {
		// First tick has no meaningful delta.
		mouseDX = 0
		g.cursorReady = true
	}

	// Losing focus suspends the world; rendering continues with the
	// last pose. The cursor delta is dropped so regaining focus does
	// not whip the view around.
	if !ebiten.IsFocused() {
		g.cursorReady = false
		return nil
	}

	if g.session.InputEnabled() {
		g.handleInput(float64(mouseDX))
	}
	g.session.Step()
	return nil
}

// handleInput applies look rotation and movement for one tick.
func (g *Game) handleInput(mouseDX float64) {
	dt := 1.0 / float64(ebiten.TPS())

	if mouseDX != 0 {
		g.session.Pose.Rotate(mouseDX * config.MouseSensitivity)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.session.Pose.Rotate(config.RotSpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.session.Pose.Rotate(-config.RotSpeed * dt)
	}

	speed := config.MoveSpeed * dt
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		speed *= config.RunModifier
	}

	var forward, strafe float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe++
	}
	if forward != 0 || strafe != 0 {
		g.session.Pose.Move(forward, strafe, speed, g.session.Grid)
	}
}

// Draw renders the current view and any overlay text.
func (g *Game) Draw(screen *ebiten.Image) {
	g.raycaster.Render(&g.session.Pose, g.session.Grid)
	screen.WritePixels(g.raycaster.Pixels())

	if g.session.State() == session.StateLevelComplete {
		msg := g.overlayMessage + "\nPress Enter to continue."
		x, y := overlayOrigin(msg, g.screenWidth, g.screenHeight)
		ebitenutil.DebugPrintAt(screen, msg, x, y)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  Level: %d  Cells: %d",
		ebiten.ActualFPS(), g.session.Level(), g.session.Tracker.DistinctVisited()))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

// overlayOrigin centers a multi-line debug-font message on a
// screenWidth×screenHeight screen.
func overlayOrigin(message string, screenWidth, screenHeight int) (int, int) {
	lines := strings.Split(message, "\n")
	widest := 0
	for _, line := range lines {
		if len(line) > widest {
			widest = len(line)
		}
	}
	x := screenWidth/2 - widest*debugCharWidth/2
	y := screenHeight/2 - len(lines)*debugLineHeight/2
	return x, y
}

// Notify implements session.Notifier: stores the overlay message and
// fires the jingle. The session freezes the world until Acknowledged
// reports true.
func (g *Game) Notify(message string) {
	g.overlayMessage = message
	g.audioSystem.PlayLevelComplete()
}

// Acknowledged implements session.Notifier.
func (g *Game) Acknowledged() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
