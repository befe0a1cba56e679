// Package session owns the per-level game state: the maze grid, the
// player pose, the exploration tracker and the win/reset state machine
// that ties them together.
package session

import (
	"fmt"

	"raycast-maze/config"
	"raycast-maze/maze"
	"raycast-maze/player"
)

// State identifies where the session is in its level cycle.
type State int

const (
	// StatePlaying is the normal frame loop.
	StatePlaying State = iota
	// StateLevelComplete means a win condition fired and the level-complete
	// notification is waiting to be acknowledged. The world is frozen:
	// no movement, tracking or regeneration happens until the player
	// dismisses the message, so a half-reset level can never be seen.
	StateLevelComplete
)

// Notifier presents a level-complete message and reports when the
// player has acknowledged it. Injected so the state machine can run in
// tests without a display.
type Notifier interface {
	Notify(message string)
	Acknowledged() bool
}

// Session is the game loop controller: sole owner and mutator of the
// grid and tracker, which collaborators borrow read-only per frame.
type Session struct {
	Grid    *maze.Grid
	Pose    player.Pose
	Tracker *maze.Tracker

	generator *maze.Generator
	policy    config.WinPolicy
	notifier  Notifier
	state     State
	level     int
}

// New creates a session with a freshly generated maze and the player at
// the spawn point.
func New(generator *maze.Generator, policy config.WinPolicy, planeScale float64, notifier Notifier) *Session {
	s := &Session{
		Grid:      generator.Generate(config.MapWidth, config.MapHeight, policy.UsesExit()),
		Pose:      player.NewPose(planeScale),
		Tracker:   maze.NewTracker(config.MapWidth, config.MapHeight),
		generator: generator,
		policy:    policy,
		notifier:  notifier,
		state:     StatePlaying,
		level:     1,
	}
	return s
}

// State returns the current state-machine state.
func (s *Session) State() State {
	return s.state
}

// Level returns the 1-based level counter.
func (s *Session) Level() int {
	return s.level
}

// InputEnabled reports whether player input should move the pose this
// frame.
func (s *Session) InputEnabled() bool {
	return s.state == StatePlaying
}

// CheckWin reports whether the pose stands on the exit cell.
func (s *Session) CheckWin() bool {
	return s.Grid.Cell(s.Pose.CellX(), s.Pose.CellY()) == maze.CellExit
}

// Step advances the state machine once per frame, after movement has
// been applied. In StatePlaying it records the visit and checks the
// active win policy; in StateLevelComplete it waits for the notifier's
// acknowledgment and then resets the level.
func (s *Session) Step() {
	switch s.state {
	case StatePlaying:
		s.Tracker.RecordVisit(s.Pose.X, s.Pose.Y)

		if s.policy.UsesExit() && s.CheckWin() {
			s.notifier.Notify("You found the exit! New maze ahead.")
			s.state = StateLevelComplete
			return
		}
		if s.policy.UsesExploration() && s.Tracker.ThresholdReached(config.ExplorationThreshold) {
			s.notifier.Notify(fmt.Sprintf("You explored %d cells! New maze ahead.", s.Tracker.DistinctVisited()))
			s.state = StateLevelComplete
		}

	case StateLevelComplete:
		if s.notifier.Acknowledged() {
			s.resetLevel()
			s.state = StatePlaying
		}
	}
}

// resetLevel swaps in a fresh grid and puts the pose and tracker back to
// their start-of-level state. The grid is replaced wholesale, never
// mutated in place.
func (s *Session) resetLevel() {
	s.Grid = s.generator.Generate(config.MapWidth, config.MapHeight, s.policy.UsesExit())
	s.Pose.Reset()
	s.Tracker.Reset()
	s.level++
}
