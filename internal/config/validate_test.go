package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PlatformerConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *PlatformerConfig) {},
		},
		{
			name:    "zero world",
			mutate:  func(c *PlatformerConfig) { c.World.Height = 0 },
			wantErr: "world size",
		},
		{
			name:    "player wider than world",
			mutate:  func(c *PlatformerConfig) { c.Player.Width = 1000 },
			wantErr: "exceeds world width",
		},
		{
			name:    "friction above one",
			mutate:  func(c *PlatformerConfig) { c.Physics.Friction = 1.5 },
			wantErr: "friction",
		},
		{
			name:    "no platforms",
			mutate:  func(c *PlatformerConfig) { c.Level.Platforms = nil },
			wantErr: "at least one platform",
		},
		{
			name: "two goals",
			mutate: func(c *PlatformerConfig) {
				c.Level.Platforms[0].Goal = true
			},
			wantErr: "2 goal platforms",
		},
		{
			name:    "flat platform",
			mutate:  func(c *PlatformerConfig) { c.Level.Platforms[2].Height = 0 },
			wantErr: "platform 2",
		},
		{
			name:    "coin without radius",
			mutate:  func(c *PlatformerConfig) { c.Level.Coins[1].Radius = 0 },
			wantErr: "coin 1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected it to contain %q", err, tc.wantErr)
			}
		})
	}
}
