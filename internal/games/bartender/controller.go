package bartender

import (
	"errors"

	"github.com/vovakirdan/railroad-bartender/internal/core"
	"github.com/vovakirdan/railroad-bartender/internal/games/bartender/engine"
)

var errNoSlot = errors.New("bartender: no save slot configured")

// apply handles one action in the current mode.
func (g *Game) apply(a core.Action) {
	if a == core.ActionQuit {
		g.mode = ModeExiting
		g.logger.Debug("exiting")
		return
	}

	switch g.mode {
	case ModeMainMenu:
		g.applyMainMenu(a)
	case ModeInstructions:
		g.applyInstructions(a)
	case ModePlaying:
		g.applyPlaying(a)
	case ModePaused:
		g.applyPaused(a)
	case ModeGameOver:
		g.applyGameOver(a)
	}
}

func (g *Game) applyMainMenu(a core.Action) {
	switch a {
	case core.ActionUp:
		g.cursor = (g.cursor + numMenuEntries - 1) % numMenuEntries
		g.emit(core.EventSelect)
	case core.ActionDown:
		g.cursor = (g.cursor + 1) % numMenuEntries
		g.emit(core.EventSelect)
	case core.ActionConfirm:
		g.emit(core.EventSelect)
		switch g.cursor {
		case MenuStart:
			g.run.Reset(g.cfg.Gameplay.Lives)
			g.mode = ModePlaying
		case MenuContinue:
			g.run.Reset(g.cfg.Gameplay.Lives)
			g.continueRun()
		case MenuInstructions:
			g.mode = ModeInstructions
		}
	}
}

// continueRun loads the save slot. The live run is replaced only when the
// whole save validates.
func (g *Game) continueRun() {
	s, err := g.load()
	if err != nil {
		g.loadError = true
		g.emit(core.EventError)

		var fe *engine.FieldError
		switch {
		case errors.Is(err, engine.ErrNoSave):
			g.logger.Info("no saved game to continue")
		case errors.As(err, &fe):
			g.logger.Warn("rejected saved game", "field", fe.Field, "value", fe.Value, "reason", fe.Reason)
		default:
			g.logger.Error("load failed", "err", err)
		}
		return
	}

	g.run = s
	g.loadError = false
	g.enterPaused()
	g.logger.Info("continued saved game", "score", s.Score, "lives", s.Lives, "figures", len(s.Figures))
}

func (g *Game) load() (*engine.State, error) {
	if g.slot == nil {
		return nil, errNoSlot
	}
	return g.slot.Load()
}

func (g *Game) applyInstructions(a core.Action) {
	switch a {
	case core.ActionConfirm:
		g.loadError = false
		g.mode = ModeMainMenu
	case core.ActionPause, core.ActionBack:
		g.mode = ModeMainMenu
	}
}

func (g *Game) applyPlaying(a core.Action) {
	switch a {
	case core.ActionUp:
		g.run.MoveUp()
	case core.ActionDown:
		g.run.MoveDown()
	case core.ActionFireA:
		g.run.Fire(engine.Slow)
		g.emit(core.EventFire)
	case core.ActionFireB:
		g.run.Fire(engine.Fast)
		g.emit(core.EventFire)
	case core.ActionPause, core.ActionConfirm:
		g.enterPaused()
	case core.ActionMenu:
		g.mode = ModeMainMenu
	case core.ActionInvincible:
		if g.cfg.Gameplay.AllowCheats {
			g.invincible = !g.invincible
			g.logger.Info("invincibility toggled", "on", g.invincible)
		}
	}
}

func (g *Game) applyPaused(a core.Action) {
	switch a {
	case core.ActionPause, core.ActionConfirm:
		g.mode = ModePlaying
	case core.ActionSave:
		g.save()
	case core.ActionMenu:
		g.mode = ModeMainMenu
	}
}

// save writes the run once per pause. Later requests are ignored until the
// game is paused again.
func (g *Game) save() {
	if g.saved {
		return
	}
	g.saved = true

	err := errNoSlot
	if g.slot != nil {
		err = g.slot.Save(g.run)
	}
	g.saveError = err != nil

	if err != nil {
		g.emit(core.EventError)
		g.logger.Error("save failed", "err", err)
		return
	}
	g.emit(core.EventSaved)
	g.logger.Info("game saved", "score", g.run.Score, "figures", len(g.run.Figures), "projectiles", len(g.run.Projectiles))
}

func (g *Game) applyGameOver(a core.Action) {
	switch a {
	case core.ActionConfirm, core.ActionPause, core.ActionBack:
		g.run.Reset(g.cfg.Gameplay.Lives)
		g.loadError = false
		g.mode = ModeMainMenu
		g.emit(core.EventSelect)
	}
}

// enterPaused switches to Paused and re-arms the save request.
func (g *Game) enterPaused() {
	g.mode = ModePaused
	g.saved = false
	g.saveError = false
}
