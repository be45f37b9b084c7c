// Package platformer implements a single-level side-view platformer:
// gravity and jump physics, top-only platform landings, collectible coins,
// per-platform reach behavior and a pause/overlay state machine.
//
// The game is pure logic driven one tick at a time through Step. It never
// touches the terminal; the platform layer maps keys to actions and draws
// the screen produced by Render.
package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// StepResult is what one tick produced.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Game owns all mutable state of one play session.
type Game struct {
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig

	// Fixed layout
	level   Level
	physics Physics
	worldW  float64
	worldH  float64
	startX  float64
	startY  float64

	// Simulation state
	player Player
	coins  []Coin
	score  int
	keys   heldKeys
	reason PauseReason

	overlay Overlay

	// Clock and run stats
	tick   uint64 // Advances every Step, paused or not
	frames int    // Simulated frames in the current run
	falls  int    // Fall resets in the current run

	events []Event // Pending events, flushed by Step
}

// New creates a game for the given configuration.
// The configuration is validated; the simulation itself never fails.
func New(cfg config.PlatformerConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("platformer: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		level:   LevelFromConfig(cfg.Level),
		physics: Physics{Gravity: cfg.Physics.Gravity, Friction: cfg.Physics.Friction},
		worldW:  cfg.World.Width,
		worldH:  cfg.World.Height,
		startX:  cfg.Player.StartX,
		startY:  cfg.Player.StartY,
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// Reset applies the runtime configuration and starts a fresh run.
// Durations are converted to ticks at the runtime tick rate.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tick = 0
	g.keys = newHeldKeys(runtime.TicksFor(g.cfg.Input.HoldMS))
	g.overlay = newOverlay(runtime.TicksFor(g.cfg.Overlay.MessageMS))
	g.restart()
	g.events = nil
}

// Step advances the game by one tick.
// Discrete commands are routed by the current pause reason; the physics
// only runs while nothing pauses the game.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.tick++

	if g.overlay.Advance(g.tick) {
		g.emit(EventMessageHidden, NoPlatform, "")
	}

	for _, action := range in.Ordered() {
		g.handleAction(action)
	}

	if g.reason == PauseNone {
		g.simulate()
	}

	res := StepResult{State: g.State(), Events: g.events}
	g.events = nil
	return res
}

// handleAction applies one input action.
// While a modal is open, R restarts and confirm/back dismiss it. While the
// goal is shown, confirm or R restarts. Movement keys only count while running.
func (g *Game) handleAction(action core.Action) {
	switch g.reason {
	case PauseModal:
		switch action {
		case core.ActionRestart:
			g.Restart()
		case core.ActionConfirm, core.ActionBack:
			g.DismissModal()
		}

	case PauseGoal:
		switch action {
		case core.ActionRestart, core.ActionConfirm:
			g.Restart()
		}

	default:
		switch action {
		case core.ActionLeft:
			g.keys.pressLeft(g.tick)
		case core.ActionRight:
			g.keys.pressRight(g.tick)
		case core.ActionJump:
			g.keys.pressUp(g.tick)
		}
	}
}

// simulate runs one physics frame.
func (g *Game) simulate() {
	g.frames++
	p := &g.player

	integrate(p, g.keys.input(g.tick), g.physics)

	prev := p.Current
	landed := resolveLandings(p, g.level.Platforms)
	p.Current = landed
	if reach, ok := reachChange(prev, landed, g.level.Platforms); ok {
		if landed != NoPlatform {
			g.emit(EventPlatformReached, landed, "")
		} else {
			g.emit(EventPlatformLeft, prev, "")
		}
		g.applyReach(reach)
	}

	clampHorizontal(p, g.worldW)
	if p.Y > g.worldH {
		g.fallReset()
	}

	for _, i := range collectCoins(p, g.coins) {
		g.score++
		g.emit(EventCoinCollected, i, "")
	}
}

// applyReach runs a platform's reach behavior.
func (g *Game) applyReach(reach Reach) {
	switch reach.Kind {
	case ReachGoal:
		g.reachGoal()
	case ReachModal:
		g.hideMessage()
		g.openModal(reach.Text)
	case ReachMessage:
		g.showMessage(reach.Text)
	case ReachNone:
		g.hideMessage()
	}
}

// reachGoal completes the level. Idempotent while the goal pause is active.
func (g *Game) reachGoal() {
	if g.reason == PauseGoal {
		return
	}

	g.pause(PauseGoal)
	g.overlay.ShowPersistent(g.cfg.Overlay.GoalMessage)
	g.emit(EventGoalReached, g.player.Current, g.cfg.Overlay.GoalMessage)
}

func (g *Game) openModal(text string) {
	g.overlay.OpenModal(text)
	g.pause(PauseModal)
	g.emit(EventModalOpened, NoPlatform, text)
}

func (g *Game) showMessage(text string) {
	if text == "" {
		g.hideMessage()
		return
	}
	g.overlay.ShowMessage(text, g.tick)
	g.emit(EventMessageShown, NoPlatform, text)
}

func (g *Game) hideMessage() {
	if g.overlay.HideMessage() {
		g.emit(EventMessageHidden, NoPlatform, "")
	}
}

// DismissModal closes the modal and resumes if the modal was the pause reason.
// Does nothing when no modal is open.
func (g *Game) DismissModal() {
	if !g.overlay.CloseModal() {
		return
	}
	g.resume(PauseModal)
	g.emit(EventModalClosed, NoPlatform, "")
}

// Restart fully resets the level regardless of the pause reason: overlays
// closed, keys released, player at start, coins uncollected, score zero.
// It also starts a new run for the leaderboard stats.
func (g *Game) Restart() {
	g.restart()
	g.emit(EventRestarted, NoPlatform, "")
}

func (g *Game) restart() {
	g.DismissModal()
	g.hideMessage()
	g.reason = PauseNone
	g.keys.clear()
	g.placeAtStart()
	g.resetCoins()
	g.frames = 0
	g.falls = 0
}

// fallReset returns the player to start after falling out of the world.
// Held keys survive so the player can keep moving.
func (g *Game) fallReset() {
	g.placeAtStart()
	g.hideMessage()
	g.DismissModal()
	g.resetCoins()
	g.falls++
	g.emit(EventFellOff, NoPlatform, "")
}

func (g *Game) placeAtStart() {
	g.player = Player{
		X:         g.startX,
		Y:         g.startY,
		Width:     g.cfg.Player.Width,
		Height:    g.cfg.Player.Height,
		Speed:     g.cfg.Player.Speed,
		JumpForce: g.cfg.Player.JumpForce,
		Current:   NoPlatform,
	}
}

func (g *Game) resetCoins() {
	g.coins = make([]Coin, len(g.level.Coins))
	copy(g.coins, g.level.Coins)
	g.score = 0
}

func (g *Game) emit(kind EventKind, index int, text string) {
	g.events = append(g.events, Event{Kind: kind, Index: index, Text: text})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Completed: g.reason == PauseGoal,
		Paused:    g.reason != PauseNone,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Level returns the fixed layout.
func (g *Game) Level() Level {
	return g.level
}

// Coins returns a copy of the coins with their collected state.
func (g *Game) Coins() []Coin {
	out := make([]Coin, len(g.coins))
	copy(out, g.coins)
	return out
}

// Score returns the number of collected coins.
func (g *Game) Score() int {
	return g.score
}

// PauseReason returns the active pause reason.
func (g *Game) PauseReason() PauseReason {
	return g.reason
}

// Overlay returns the overlay state for rendering.
func (g *Game) Overlay() Overlay {
	return g.overlay
}

// Tick returns the number of steps since the last Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Frames returns the simulated frames in the current run.
func (g *Game) Frames() int {
	return g.frames
}

// Falls returns how often the player fell out of the world in the current run.
func (g *Game) Falls() int {
	return g.falls
}

// WorldSize returns the world bounds in world units.
func (g *Game) WorldSize() (float64, float64) {
	return g.worldW, g.worldH
}
