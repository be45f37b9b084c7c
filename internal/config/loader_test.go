package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), ".yaml")
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("embedded YAML and DefaultPlatformerConfig() differ:\n%+v\n%+v", cfg, DefaultPlatformerConfig())
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultPlatformerConfig()

	if cfg.Physics.Gravity != 0.6 || cfg.Physics.Friction != 0.8 {
		t.Errorf("physics = %+v, expected gravity 0.6 friction 0.8", cfg.Physics)
	}
	if cfg.Player.Speed != 4 || cfg.Player.JumpForce != -12 {
		t.Errorf("player movement = %+v, expected speed 4 jump -12", cfg.Player)
	}
	if cfg.Player.StartX != 50 || cfg.Player.StartY != 0 {
		t.Errorf("start = (%v, %v), expected (50, 0)", cfg.Player.StartX, cfg.Player.StartY)
	}
	if cfg.Overlay.MessageMS != 3000 {
		t.Errorf("message_ms = %d, expected 3000", cfg.Overlay.MessageMS)
	}

	goals := 0
	for _, p := range cfg.Level.Platforms {
		if p.Goal {
			goals++
		}
	}
	if goals != 1 {
		t.Errorf("default level has %d goals, expected 1", goals)
	}
}

func TestParsePartialYAMLKeepsDefaults(t *testing.T) {
	data := []byte(`
physics:
  gravity: 0.5
`)

	cfg, err := Parse(data, ".yaml")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.Friction != 0.8 {
		t.Errorf("friction = %v, expected default 0.8", cfg.Physics.Friction)
	}
	if len(cfg.Level.Platforms) != 5 {
		t.Errorf("platforms = %d, expected the 5 defaults", len(cfg.Level.Platforms))
	}
}

func TestParseTOMLReplacesLevel(t *testing.T) {
	data := []byte(`
[world]
width = 400
height = 300

[[level.platforms]]
x = 0
y = 250
width = 400
height = 50

[[level.platforms]]
x = 300
y = 200
width = 50
height = 10
goal = true
`)

	cfg, err := Parse(data, ".toml")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.World.Width != 400 || cfg.World.Height != 300 {
		t.Errorf("world = %+v, expected 400x300", cfg.World)
	}
	if len(cfg.Level.Platforms) != 2 {
		t.Fatalf("platforms = %d, expected 2", len(cfg.Level.Platforms))
	}
	if cfg.Level.Platforms[0].Modal != "" {
		t.Errorf("platform 0 modal = %q, default text leaked into file platform", cfg.Level.Platforms[0].Modal)
	}
	if !cfg.Level.Platforms[1].Goal {
		t.Error("platform 1 should be the goal")
	}
	if len(cfg.Level.Coins) != 3 {
		t.Errorf("coins = %d, expected the 3 defaults when the file omits them", len(cfg.Level.Coins))
	}
}

func TestEncodeTOMLParsesBack(t *testing.T) {
	want := DefaultPlatformerConfig()
	want.Level.Name = "Custom"

	data, err := Encode(want, "toml")
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	got, err := Parse(data, ".toml")
	if err != nil {
		t.Fatalf("Parse(encoded) failed: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("toml round trip changed config:\n%+v\n%+v", got, want)
	}
}

func TestParseRejectsUnknownExtension(t *testing.T) {
	if _, err := Parse([]byte("{}"), ".json"); err == nil {
		t.Error("expected error for .json config")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	if err := os.WriteFile(path, []byte("overlay:\n  message_ms: 1000\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Overlay.MessageMS != 1000 {
		t.Errorf("message_ms = %d, expected 1000", cfg.Overlay.MessageMS)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.Contains(err.Error(), "config:") {
		t.Errorf("error %q should carry the config: prefix", err)
	}
}

func TestLoadInvalidCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: -1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for negative world width")
	}
}
