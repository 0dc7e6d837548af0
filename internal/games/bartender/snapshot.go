package bartender

import "github.com/vovakirdan/railroad-bartender/internal/games/bartender/engine"

// Snapshot is a read-only copy of everything a presentation layer or test
// needs. Slices are copies and may be kept by the caller.
type Snapshot struct {
	Tick       uint64
	Mode       Mode
	Cursor     int
	LoadError  bool
	Saved      bool
	SaveError  bool
	Invincible bool

	Score      int
	Multiplier int
	Hits       int
	Threshold  int
	Remaining  int // Good shots until the next multiplier
	Lives      int
	Lane       int
	Spawned    int
	Backdrop   [engine.NumLayers]float64

	Figures     []engine.Figure
	Projectiles []engine.Projectile
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	run := g.run.Clone()
	return Snapshot{
		Tick:        g.tick,
		Mode:        g.mode,
		Cursor:      g.cursor,
		LoadError:   g.loadError,
		Saved:       g.saved,
		SaveError:   g.saveError,
		Invincible:  g.invincible,
		Score:       run.Score,
		Multiplier:  run.Multiplier,
		Hits:        run.Hits,
		Threshold:   run.Threshold,
		Remaining:   run.Remaining(),
		Lives:       run.Lives,
		Lane:        run.Lane,
		Spawned:     run.Spawned,
		Backdrop:    run.Backdrop,
		Figures:     run.Figures,
		Projectiles: run.Projectiles,
	}
}
