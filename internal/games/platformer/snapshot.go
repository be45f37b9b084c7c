package platformer

import "math"

// Snapshot contains the complete mutable game state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   uint64
	Frames int
	Falls  int

	// Player kinematics
	X, Y     float64
	DX, DY   float64
	Grounded bool
	Current  int

	Score     int
	Collected []bool // One entry per coin, in level order
	Pause     int

	// Held keys (release ticks)
	LeftUntil  uint64
	RightUntil uint64
	UpUntil    uint64

	// Overlay
	Message           string
	MessageVisible    bool
	MessagePersistent bool
	HideArmed         bool
	HideDeadline      uint64
	Modal             string
	ModalOpen         bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	collected := make([]bool, len(g.coins))
	for i, c := range g.coins {
		collected[i] = c.Collected
	}

	return Snapshot{
		Tick:   g.tick,
		Frames: g.frames,
		Falls:  g.falls,

		X:        g.player.X,
		Y:        g.player.Y,
		DX:       g.player.DX,
		DY:       g.player.DY,
		Grounded: g.player.Grounded,
		Current:  g.player.Current,

		Score:     g.score,
		Collected: collected,
		Pause:     int(g.reason),

		LeftUntil:  g.keys.left,
		RightUntil: g.keys.right,
		UpUntil:    g.keys.up,

		Message:           g.overlay.message,
		MessageVisible:    g.overlay.visible,
		MessagePersistent: g.overlay.persistent,
		HideArmed:         g.overlay.timer.armed,
		HideDeadline:      g.overlay.timer.deadline,
		Modal:             g.overlay.modal,
		ModalOpen:         g.overlay.modalOpen,
	}
}

// ApplySnapshot restores game state from a snapshot taken on the same level.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.frames = snap.Frames
	g.falls = snap.Falls

	g.player.X = snap.X
	g.player.Y = snap.Y
	g.player.DX = snap.DX
	g.player.DY = snap.DY
	g.player.Grounded = snap.Grounded
	g.player.Current = snap.Current

	g.score = snap.Score
	if len(snap.Collected) == len(g.coins) {
		for i := range g.coins {
			g.coins[i].Collected = snap.Collected[i]
		}
	}
	g.reason = PauseReason(snap.Pause)

	g.keys.left = snap.LeftUntil
	g.keys.right = snap.RightUntil
	g.keys.up = snap.UpUntil

	g.overlay.message = snap.Message
	g.overlay.visible = snap.MessageVisible
	g.overlay.persistent = snap.MessagePersistent
	g.overlay.timer = hideTimer{armed: snap.HideArmed, deadline: snap.HideDeadline}
	g.overlay.modal = snap.Modal
	g.overlay.modalOpen = snap.ModalOpen

	g.events = nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Frames) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Falls)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.X)
	h = h*31 + math.Float64bits(snap.Y)
	h = h*31 + math.Float64bits(snap.DX)
	h = h*31 + math.Float64bits(snap.DY)
	h = h*31 + boolBit(snap.Grounded)
	h = h*31 + uint64(snap.Current+1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	for _, c := range snap.Collected {
		h = h*31 + boolBit(c)
	}
	h = h*31 + uint64(snap.Pause) //#nosec G115 -- hash computation
	h = h*31 + snap.LeftUntil
	h = h*31 + snap.RightUntil
	h = h*31 + snap.UpUntil
	h = h*31 + boolBit(snap.MessageVisible)
	h = h*31 + boolBit(snap.MessagePersistent)
	h = h*31 + boolBit(snap.HideArmed)
	h = h*31 + snap.HideDeadline
	h = h*31 + boolBit(snap.ModalOpen)
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
