package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in configuration.
// It mirrors defaults/platformer.yaml and is used when the embedded file
// cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			Width:  800,
			Height: 450,
		},
		Physics: PhysicsConfig{
			Gravity:  0.6,
			Friction: 0.8,
		},
		Player: PlayerConfig{
			StartX:    50,
			StartY:    0,
			Width:     30,
			Height:    30,
			Speed:     4,
			JumpForce: -12,
		},
		Overlay: OverlayConfig{
			MessageMS:   3000,
			GoalMessage: "You cleared the level!",
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Level: LevelConfig{
			Name: "Meadow",
			Platforms: []PlatformConfig{
				{X: 0, Y: 400, Width: 800, Height: 50, Modal: "Welcome to the course!"},
				{X: 200, Y: 320, Width: 100, Height: 20, Modal: "Nice jump!"},
				{X: 400, Y: 260, Width: 100, Height: 20, Modal: "You're halfway there."},
				{X: 600, Y: 200, Width: 100, Height: 20, Modal: "Almost at the goal!"},
				{X: 720, Y: 160, Width: 60, Height: 20, Goal: true},
			},
			Coins: []CoinConfig{
				{X: 250, Y: 290, Radius: 10},
				{X: 450, Y: 230, Radius: 10},
				{X: 630, Y: 170, Radius: 10},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
