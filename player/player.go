// Package player maintains the continuous player pose: a fractional
// position in cell units, a unit facing direction and the camera plane
// the renderer casts through.
package player

import (
	"math"

	"raycast-maze/config"
	"raycast-maze/maze"
	"raycast-maze/physics"
)

// Pose is the player's viewpoint. The plane vector stays perpendicular
// to the direction; its magnitude sets the field of view and depends on
// the presentation mode.
type Pose struct {
	X, Y           float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
}

// NewPose returns the spawn pose: position (1.5, 1.5) facing +X, with
// the camera plane scaled for the given presentation mode.
func NewPose(planeScale float64) Pose {
	return Pose{
		X:      config.SpawnX,
		Y:      config.SpawnY,
		DirX:   1.0,
		DirY:   0.0,
		PlaneX: 0.0,
		PlaneY: planeScale,
	}
}

// Reset moves the pose back to the spawn point with the default
// orientation, keeping the plane scale.
func (p *Pose) Reset() {
	scale := math.Hypot(p.PlaneX, p.PlaneY)
	*p = NewPose(scale)
}

// Rotate turns the view by delta radians. Direction and camera plane
// rotate together so the field of view is preserved.
func (p *Pose) Rotate(delta float64) {
	cos, sin := math.Cos(delta), math.Sin(delta)
	oldDirX := p.DirX
	p.DirX = p.DirX*cos - p.DirY*sin
	p.DirY = oldDirX*sin + p.DirY*cos
	oldPlaneX := p.PlaneX
	p.PlaneX = p.PlaneX*cos - p.PlaneY*sin
	p.PlaneY = oldPlaneX*sin + p.PlaneY*cos
}

// Move composes a displacement from forward and strafe input (each in
// [-1, 1]) scaled by speed, then lets the collision resolver correct the
// candidate position against the grid.
func (p *Pose) Move(forward, strafe, speed float64, grid *maze.Grid) {
	dx := p.DirX*forward*speed - p.DirY*strafe*speed
	dy := p.DirY*forward*speed + p.DirX*strafe*speed
	p.X, p.Y = physics.UpdatePosition(p.X, p.Y, dx, dy, config.HitboxRadius, grid)
}

// CellX returns the grid column containing the pose.
func (p *Pose) CellX() int { return int(p.X) }

// CellY returns the grid row containing the pose.
func (p *Pose) CellY() int { return int(p.Y) }
