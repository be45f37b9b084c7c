// Package config provides YAML/TOML-based game configuration loading
// for the platformer.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	World   WorldConfig   `yaml:"world" toml:"world"`
	Physics PhysicsConfig `yaml:"physics" toml:"physics"`
	Player  PlayerConfig  `yaml:"player" toml:"player"`
	Overlay OverlayConfig `yaml:"overlay" toml:"overlay"`
	Input   InputConfig   `yaml:"input" toml:"input"`
	Level   LevelConfig   `yaml:"level" toml:"level"`
}

// WorldConfig defines the world bounds in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PhysicsConfig defines per-frame physics constants.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity" toml:"gravity"`   // Added to dy every frame
	Friction float64 `yaml:"friction" toml:"friction"` // dx multiplier with no horizontal input
}

// PlayerConfig defines the player's start position, size and movement.
type PlayerConfig struct {
	StartX    float64 `yaml:"start_x" toml:"start_x"`
	StartY    float64 `yaml:"start_y" toml:"start_y"`
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Speed     float64 `yaml:"speed" toml:"speed"`
	JumpForce float64 `yaml:"jump_force" toml:"jump_force"` // Negative = up
}

// OverlayConfig defines transient UI behavior.
type OverlayConfig struct {
	MessageMS   int    `yaml:"message_ms" toml:"message_ms"`     // Auto-hide delay for platform messages
	GoalMessage string `yaml:"goal_message" toml:"goal_message"` // Text of the persistent goal banner
}

// InputConfig defines how key presses become held movement flags.
type InputConfig struct {
	// HoldMS is how long a movement key counts as held after its last press.
	// Terminals report presses and auto-repeats, never releases.
	HoldMS int `yaml:"hold_ms" toml:"hold_ms"`
}

// LevelConfig is the fixed level layout.
type LevelConfig struct {
	Name      string           `yaml:"name" toml:"name"`
	Platforms []PlatformConfig `yaml:"platforms" toml:"platforms"`
	Coins     []CoinConfig     `yaml:"coins" toml:"coins"`
}

// PlatformConfig describes one static platform.
// When several reach fields are set, goal wins over modal, and modal over message.
type PlatformConfig struct {
	X       float64 `yaml:"x" toml:"x"`
	Y       float64 `yaml:"y" toml:"y"`
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	Message string  `yaml:"message,omitempty" toml:"message,omitempty"`
	Modal   string  `yaml:"modal,omitempty" toml:"modal,omitempty"`
	Goal    bool    `yaml:"goal,omitempty" toml:"goal,omitempty"`
}

// CoinConfig describes one collectible coin.
type CoinConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Radius float64 `yaml:"radius" toml:"radius"`
}
