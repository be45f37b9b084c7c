package config

import (
	"errors"
	"fmt"
)

// Validate checks that the configuration describes a playable level.
func (c PlatformerConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("player width %v exceeds world width %v", c.Player.Width, c.World.Width))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %v", c.Player.Speed))
	}
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("physics friction must be within [0, 1], got %v", c.Physics.Friction))
	}
	if c.Overlay.MessageMS < 0 {
		errs = append(errs, fmt.Errorf("overlay message_ms must not be negative, got %d", c.Overlay.MessageMS))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("input hold_ms must not be negative, got %d", c.Input.HoldMS))
	}

	if len(c.Level.Platforms) == 0 {
		errs = append(errs, errors.New("level needs at least one platform"))
	}
	goals := 0
	for i, p := range c.Level.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Errorf("platform %d: size must be positive, got %vx%v", i, p.Width, p.Height))
		}
		if p.Goal {
			goals++
		}
	}
	if goals > 1 {
		errs = append(errs, fmt.Errorf("level has %d goal platforms, at most one allowed", goals))
	}
	for i, coin := range c.Level.Coins {
		if coin.Radius <= 0 {
			errs = append(errs, fmt.Errorf("coin %d: radius must be positive, got %v", i, coin.Radius))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
