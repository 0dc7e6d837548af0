// Package bartender implements Railroad Bartender: a dragon tends four bars
// and serves walking customers shot glasses and bandits fireballs.
//
// The Game type is the controller. It owns one engine.State, applies the
// actions of each tick in arrival order, steps the simulation while playing
// and handles the single save slot.
package bartender

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/railroad-bartender/internal/config"
	"github.com/vovakirdan/railroad-bartender/internal/core"
	"github.com/vovakirdan/railroad-bartender/internal/games/bartender/engine"
	"github.com/vovakirdan/railroad-bartender/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "bartender"

// Mode is the controller state.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeInstructions
	ModePlaying
	ModePaused
	ModeGameOver
	ModeExiting
)

// String returns the mode name used in logs and snapshots.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main_menu"
	case ModeInstructions:
		return "instructions"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	case ModeExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Main menu entries, top to bottom.
const (
	MenuStart = iota
	MenuContinue
	MenuInstructions
	numMenuEntries
)

// Package-level defaults set from the CLI before games are created.
var (
	defaultConfig = config.DefaultBartenderConfig()
	defaultLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.BartenderConfig) {
	defaultConfig = cfg
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Option customizes a Game.
type Option func(*Game)

// WithConfig overrides the package default configuration.
func WithConfig(cfg config.BartenderConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithSlot sets the save slot. Without it the slot at cfg.Save.Path is used.
func WithSlot(s engine.Slot) Option {
	return func(g *Game) {
		g.slot = s
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game implements the Railroad Bartender controller.
type Game struct {
	cfg    config.BartenderConfig
	slot   engine.Slot
	logger *log.Logger
	rng    *rand.Rand

	run  *engine.State
	mode Mode
	tick uint64

	cursor     int  // Main menu selection
	loadError  bool // Last Continue failed
	saved      bool // A save was attempted during this pause
	saveError  bool // That save failed
	invincible bool

	events []core.Event // Collected during the current Step
}

// New creates a game at the main menu.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    defaultConfig,
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.slot == nil {
		slot, err := engine.NewFileSlot(g.cfg.Save.Path)
		if err != nil {
			g.logger.Warn("save slot unavailable", "path", g.cfg.Save.Path, "err", err)
		} else {
			g.slot = slot
		}
	}
	g.rng = rand.New(rand.NewSource(1))
	g.run = engine.NewState(g.cfg.Gameplay.Lives)
	g.invincible = g.cfg.Gameplay.Invincible
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Railroad Bartender"
}

// Reset returns to the main menu with a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.run.Reset(g.cfg.Gameplay.Lives)
	g.mode = ModeMainMenu
	g.tick = 0
	g.cursor = MenuStart
	g.loadError = false
	g.saved = false
	g.saveError = false
	g.invincible = g.cfg.Gameplay.Invincible
	g.events = g.events[:0]
}

// Step applies the tick's actions in order, then advances the simulation
// once if the game is still playing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	for _, a := range in.Actions {
		if g.mode == ModeExiting {
			break
		}
		g.apply(a)
	}

	if g.mode == ModePlaying {
		g.simulate()
	}
	g.tick++

	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

// FocusLost pauses a running game when the window or terminal loses focus.
func (g *Game) FocusLost() {
	if g.mode == ModePlaying {
		g.enterPaused()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.run.Score,
		GameOver: g.mode == ModeGameOver,
		Paused:   g.mode == ModePaused,
		Exiting:  g.mode == ModeExiting,
	}
}

// Mode returns the controller state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Spawned returns the number of figures spawned in the current run.
func (g *Game) Spawned() int {
	return g.run.Spawned
}

// simulate runs one engine step and maps its events.
func (g *Game) simulate() {
	res := g.run.Step(g.rng, engine.StepOptions{
		AdversaryOdds: g.cfg.Gameplay.AdversaryOdds,
		Invincible:    g.invincible,
	})

	for _, ev := range res.Events {
		switch ev.Kind {
		case engine.EventSpawn:
			g.emit(core.EventSpawn)
		case engine.EventGoodShot:
			g.emit(core.EventHit)
		case engine.EventBadShot:
			g.emit(core.EventMiss)
		case engine.EventLifeLost:
			g.emit(core.EventLifeLost)
		case engine.EventGameOver:
			g.emit(core.EventGameOver)
		}
	}

	if res.GameOver {
		g.mode = ModeGameOver
		g.logger.Info("game over", "score", g.run.Score, "spawned", g.run.Spawned, "ticks", g.tick)
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

var (
	_ registry.Game         = (*Game)(nil)
	_ registry.FocusHandler = (*Game)(nil)
)
