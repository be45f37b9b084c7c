package platformer

// PauseReason is the single active cause suspending the simulation.
type PauseReason int

const (
	PauseNone  PauseReason = iota // Running
	PauseModal                    // A modal is open until dismissed
	PauseGoal                     // Level complete until restart
)

// String returns the name of the pause reason.
func (r PauseReason) String() string {
	switch r {
	case PauseNone:
		return "running"
	case PauseModal:
		return "modal"
	case PauseGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// pause suspends the simulation for reason. Re-entering the active reason is
// a no-op. Pausing zeroes the player's velocity and releases all keys.
func (g *Game) pause(reason PauseReason) {
	if g.reason == reason {
		return
	}

	g.reason = reason
	g.player.DX = 0
	g.player.DY = 0
	g.keys.clear()
}

// resume clears the pause only if reason is the active one.
func (g *Game) resume(reason PauseReason) {
	if g.reason != reason {
		return
	}
	g.reason = PauseNone
}
