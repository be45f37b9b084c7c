package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// NoPlatform marks the absence of a current or landed platform.
const NoPlatform = -1

// ReachKind identifies what happens when the player lands on a platform.
type ReachKind int

const (
	ReachNone    ReachKind = iota // Clears any visible message
	ReachMessage                  // Shows a transient message
	ReachModal                    // Opens a modal and pauses the game
	ReachGoal                     // Completes the level
)

// String returns the name of the reach kind.
func (k ReachKind) String() string {
	switch k {
	case ReachNone:
		return "none"
	case ReachMessage:
		return "message"
	case ReachModal:
		return "modal"
	case ReachGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Reach is the behavior fired once per landing on a platform.
type Reach struct {
	Kind ReachKind
	Text string // Message or modal text; empty for None and Goal
}

// Platform is a static axis-aligned rectangle in world units.
type Platform struct {
	X, Y          float64
	Width, Height float64
	Reach         Reach
}

// Rect returns the platform's collision box.
func (p Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// IsGoal reports whether reaching this platform completes the level.
func (p Platform) IsGoal() bool {
	return p.Reach.Kind == ReachGoal
}

// Coin is a collectible circle.
type Coin struct {
	X, Y      float64 // Center
	Radius    float64
	Collected bool
}

// Level is the fixed layout. Platforms are read-only during simulation;
// Coins hold the initial (uncollected) state.
type Level struct {
	Name      string
	Platforms []Platform
	Coins     []Coin
}

// LevelFromConfig builds a level from its configuration.
// Reach priority follows the dispatcher: goal, then modal, then message.
func LevelFromConfig(cfg config.LevelConfig) Level {
	lvl := Level{
		Name:      cfg.Name,
		Platforms: make([]Platform, len(cfg.Platforms)),
		Coins:     make([]Coin, len(cfg.Coins)),
	}

	for i, p := range cfg.Platforms {
		var reach Reach
		switch {
		case p.Goal:
			reach = Reach{Kind: ReachGoal}
		case p.Modal != "":
			reach = Reach{Kind: ReachModal, Text: p.Modal}
		case p.Message != "":
			reach = Reach{Kind: ReachMessage, Text: p.Message}
		}
		lvl.Platforms[i] = Platform{
			X:      p.X,
			Y:      p.Y,
			Width:  p.Width,
			Height: p.Height,
			Reach:  reach,
		}
	}

	for i, c := range cfg.Coins {
		lvl.Coins[i] = Coin{X: c.X, Y: c.Y, Radius: c.Radius}
	}

	return lvl
}
