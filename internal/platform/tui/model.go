package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/railroad-bartender/internal/core"
	"github.com/vovakirdan/railroad-bartender/internal/registry"
	"github.com/vovakirdan/railroad-bartender/internal/storage"
)

// SoundPlayer plays sounds for game events.
type SoundPlayer interface {
	Play(events ...core.Event)
}

// spawnCounter is implemented by games that report how many targets a run
// has produced. The count is stored next to the score.
type spawnCounter interface {
	Spawned() int
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithStore records scores on game over.
func WithStore(store *storage.Store) ModelOption {
	return func(m *Model) {
		m.store = store
	}
}

// WithSound plays event sounds through p.
func WithSound(p SoundPlayer) ModelOption {
	return func(m *Model) {
		m.sound = p
	}
}

// WithPlayer sets the name scores are recorded under.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		if name != "" {
			m.player = name
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Model is the Bubble Tea model that drives one game.
// Keys are queued in arrival order and handed to the game on the next tick.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      SoundPlayer
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:     log.New(io.Discard),
		player:     storage.LocalPlayer,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	// Init has a value receiver; the game must be reset before the first View
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys.MapKeyToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.BlurMsg:
		if fh, ok := m.game.(registry.FocusHandler); ok {
			fh.FocusLost()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation step with the queued actions.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.sound != nil && len(result.Events) > 0 {
		m.sound.Play(result.Events...)
	}

	if m.gameState.GameOver {
		m.recordScore()
	} else {
		m.scoreSaved = false
	}

	if m.gameState.Exiting {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore saves the final score once per game over.
func (m *Model) recordScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	spawned := 0
	if sc, ok := m.game.(spawnCounter); ok {
		spawned = sc.Spawned()
	}

	id, err := m.store.SaveScore(m.game.ID(), m.player, m.gameState.Score, spawned)
	if err != nil {
		m.logger.Warn("could not record score", "err", err)
		return
	}
	m.logger.Info("score recorded", "id", id, "player", m.player, "score", m.gameState.Score)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the game asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
