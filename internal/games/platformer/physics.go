package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Player is the simulated rectangle. Mutated once per step.
type Player struct {
	X, Y          float64 // Top-left corner
	DX, DY        float64 // Velocity per frame
	Width, Height float64
	Speed         float64 // Horizontal speed while a direction is held
	JumpForce     float64 // Vertical velocity set by a jump (negative = up)
	Grounded      bool    // Landed on a platform during the last step
	Current       int     // Index of the platform stood on, or NoPlatform
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Physics holds the per-frame world constants.
type Physics struct {
	Gravity  float64
	Friction float64
}

// Input holds the movement flags read by the simulation.
type Input struct {
	Left, Right, Up bool
}

// integrate advances velocity and position by one frame.
// Horizontal velocity is set instantly (no acceleration ramp); left wins
// over right. Gravity applies every frame after the jump check, and
// position uses explicit Euler without sub-stepping.
func integrate(p *Player, in Input, ph Physics) {
	switch {
	case in.Left:
		p.DX = -p.Speed
	case in.Right:
		p.DX = p.Speed
	default:
		p.DX *= ph.Friction
	}

	if in.Up && p.Grounded {
		p.DY = p.JumpForce
		p.Grounded = false
	}

	p.DY += ph.Gravity

	p.X += p.DX
	p.Y += p.DY
}
