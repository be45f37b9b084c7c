package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func newTestModel(t *testing.T, cfg config.PlatformerConfig) (Model, *storage.Store) {
	t.Helper()

	game, err := platformer.New(cfg)
	if err != nil {
		t.Fatalf("platformer.New() failed: %v", err)
	}
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := log.New(io.Discard)
	m := NewModel(game, store, core.DefaultConfig(), "tester", logger)
	m.Init()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func goalConfig() config.PlatformerConfig {
	cfg := config.DefaultPlatformerConfig()
	cfg.Level.Platforms = []config.PlatformConfig{
		{X: 0, Y: 400, Width: 800, Height: 50, Goal: true},
	}
	cfg.Level.Coins = nil
	return cfg
}

func TestModelSavesRunOnGoal(t *testing.T) {
	m, store := newTestModel(t, goalConfig())

	for range 120 {
		m = update(t, m, TickMsg{})
	}

	if !m.gameState.Completed {
		t.Fatal("expected the goal to be reached")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(runs))
	}
	if runs[0].Player != "tester" || runs[0].Frames == 0 {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestModelKeysReachGame(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPlatformerConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg{})

	if p := m.game.Player(); p.X <= 50 {
		t.Errorf("player X = %v, expected movement to the right", p.X)
	}
	if len(m.inputFrame.Ordered()) != 0 {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelLeaderboardFreezesGame(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPlatformerConfig())
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.ShowingLeaderboard() {
		t.Fatal("tab should open the leaderboard")
	}

	tick := m.game.Tick()
	for range 10 {
		m = update(t, m, TickMsg{})
	}
	if m.game.Tick() != tick {
		t.Error("game advanced while the leaderboard was open")
	}
	if !strings.Contains(m.View(), "BEST RUNS") {
		t.Error("leaderboard view not shown")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ShowingLeaderboard() {
		t.Error("esc should close the leaderboard")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPlatformerConfig())

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if nm := next.(Model); nm.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPlatformerConfig())
	for range 5 {
		m = update(t, m, TickMsg{})
	}
	tick := m.game.Tick()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.game.Tick() != tick {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestLeaderboardShowsRuns(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.RunEntry{
		{Player: "ann", Coins: 1, Frames: 600},
		{Player: "bob", Coins: 3, Frames: 900},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	lb := NewLeaderboardModel(store, "ann", 60, 100, 30)
	runs := lb.Runs()
	if len(runs) != 2 || runs[0].Player != "bob" {
		t.Fatalf("runs = %+v, expected bob first", runs)
	}

	view := lb.View()
	if !strings.Contains(view, "bob") || !strings.Contains(view, "15.00s") {
		t.Errorf("view missing run data:\n%s", view)
	}

	lb, _ = lb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !lb.Closed() {
		t.Error("esc should close the leaderboard")
	}
}

func TestFormatFrames(t *testing.T) {
	tests := []struct {
		frames, rate int
		want         string
	}{
		{60, 60, "1.00s"},
		{90, 60, "1.50s"},
		{45, 30, "1.50s"},
		{30, 0, "0.50s"},
	}
	for _, tc := range tests {
		if got := formatFrames(tc.frames, tc.rate); got != tc.want {
			t.Errorf("formatFrames(%d, %d) = %q, expected %q", tc.frames, tc.rate, got, tc.want)
		}
	}
}
