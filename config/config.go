package config

import "fmt"

// Map dimensions in cells.
const (
	MapWidth  = 250
	MapHeight = 250
)

// Wall texture dimensions in texels. TexHeight must stay a power of two
// because the renderer wraps texture rows with a bitmask.
const (
	TexWidth  = 64
	TexHeight = 64
)

// Screen dimensions.
const (
	// Fullscreen defaults, used when the desktop size cannot be queried.
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080

	// Windowed mode dimensions (-windowed flag).
	WindowedScreenWidth  = 640
	WindowedScreenHeight = 480
)

// Camera plane magnitude controls the vertical field of view. The windowed
// build uses the classic 0.66 plane; fullscreen widens it to 1.0.
const (
	PlaneScaleFullscreen = 1.0
	PlaneScaleWindowed   = 0.66
)

// Player movement tuning.
const (
	// Spawn point after every maze regeneration, and its grid cell.
	SpawnX     = 1.5
	SpawnY     = 1.5
	SpawnCellX = 1
	SpawnCellY = 1

	// Movement speed in cells per second; holding Shift doubles it.
	MoveSpeed   = 3.0
	RunModifier = 2.0

	// Rotation speed for arrow-key turning, radians per second.
	RotSpeed = 2.0

	// Mouse look sensitivity, radians per pixel of motion.
	MouseSensitivity = 0.003

	// Player hitbox radius in cells. Must stay well under 0.5 so the
	// per-cell collision correction remains a good approximation.
	HitboxRadius = 0.2
)

// ExplorationThreshold is the number of distinct cells that completes a
// level under the exploration win policy.
const ExplorationThreshold = 300

// WinPolicy selects which conditions end a level.
type WinPolicy int

const (
	// WinOnExit completes the level only when the player reaches the exit cell.
	WinOnExit WinPolicy = iota
	// WinOnExploration completes the level once enough distinct cells are visited.
	WinOnExploration
	// WinOnBoth completes the level on whichever condition fires first.
	WinOnBoth
)

// ParseWinPolicy converts a command-line value into a WinPolicy.
func ParseWinPolicy(s string) (WinPolicy, error) {
	switch s {
	case "exit":
		return WinOnExit, nil
	case "explore":
		return WinOnExploration, nil
	case "both":
		return WinOnBoth, nil
	default:
		return WinOnBoth, fmt.Errorf("unknown win policy %q (want exit, explore or both)", s)
	}
}

// UsesExit reports whether the policy checks the exit cell. The maze
// generator only places an exit when this is true.
func (p WinPolicy) UsesExit() bool {
	return p == WinOnExit || p == WinOnBoth
}

// UsesExploration reports whether the policy checks the visit counter.
func (p WinPolicy) UsesExploration() bool {
	return p == WinOnExploration || p == WinOnBoth
}

func (p WinPolicy) String() string {
	switch p {
	case WinOnExit:
		return "exit"
	case WinOnExploration:
		return "explore"
	case WinOnBoth:
		return "both"
	}
	return "unknown"
}
