package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Model is the Bubble Tea model for one play session.
type Model struct {
	game       *platformer.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	player     string

	board     LeaderboardModel
	showBoard bool

	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case runs are not recorded.
func NewModel(game *platformer.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		player:     player,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "player", m.player, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showBoard {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionLeaderboard:
		m.board = NewLeaderboardModel(m.store, m.player, m.config.TickRate, m.config.ScreenW, m.config.ScreenH)
		m.showBoard = true
		m.inputFrame.Clear()
		return m, nil

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// updateBoard routes messages to the open leaderboard.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.Closed() {
		m.showBoard = false
	}
	return m, cmd
}

// handleResize processes window resize events.
// The world scales to the new size, so the game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.showBoard {
		m.board, _ = m.board.Update(msg)
	}

	return m, nil
}

// handleTick processes simulation ticks. The game is frozen while the
// leaderboard is open.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showBoard {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvent logs game events and records finished runs.
func (m Model) handleEvent(ev platformer.Event) {
	switch ev.Kind {
	case platformer.EventGoalReached:
		m.logger.Info("goal reached",
			"player", m.player,
			"coins", m.game.Score(),
			"frames", m.game.Frames(),
			"falls", m.game.Falls(),
		)
		m.saveRun()

	case platformer.EventFellOff:
		m.logger.Debug("fell off", "player", m.player, "falls", m.game.Falls())

	case platformer.EventRestarted:
		m.logger.Debug("restarted", "player", m.player)

	default:
		m.logger.Debug("event", "kind", ev.Kind, "index", ev.Index, "text", ev.Text)
	}
}

// saveRun records the finished run. Best-effort: the game goes on regardless.
func (m Model) saveRun() {
	if m.store == nil {
		return
	}

	_, err := m.store.SaveRun(storage.RunEntry{
		Player: m.player,
		Coins:  m.game.Score(),
		Frames: m.game.Frames(),
		Falls:  m.game.Falls(),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showBoard {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// ShowingLeaderboard reports whether the leaderboard is open.
func (m Model) ShowingLeaderboard() bool {
	return m.showBoard
}

// Run starts the Bubble Tea program with the given model.
func Run(game *platformer.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(game, store, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
