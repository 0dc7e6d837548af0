// Package engine holds the pure simulation of Railroad Bartender: the run
// state, entity motion, spawning, collision scoring and the save format.
// It has no terminal or I/O dependencies beyond io.Reader/io.Writer so it
// can be driven tick by tick from tests.
package engine

import (
	"math"
	"math/rand"
)

// Playfield geometry, in an 800x600 virtual pixel space.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	NumLanes     = 4
)

// Shooter position.
const (
	ShooterX = 535.0 // Fixed x of the dragon; projectiles start here
)

// Figure motion constants.
const (
	FigureStartX    = -50.0        // Spawn position, just off-screen left
	FigureSpeed     = 2.5          // Pixels per tick, rightward
	PhaseIncrement  = math.Pi / 20 // Bob phase advance per tick
	BobAmplitude    = 5.0          // Vertical bob in pixels
	FigureWidth     = 60.0         // Sprite width, also the hit window
	RightBoundary   = 545.0        // A figure past this reaches the bar
	LeftBoundary    = -10.0        // A projectile past this is gone
	DefaultAdvOdds  = 4            // One in DefaultAdvOdds figures is an adversary
	MaxSavedFigures = 50
)

// Projectile speeds, negative = toward the left edge.
const (
	SlowSpeed           = -6.0
	FastSpeed           = -10.0
	MaxSavedProjectiles = 100
)

// FigureKind distinguishes the two figure types. Values are the save-file encoding.
type FigureKind int

const (
	Ordinary  FigureKind = iota // Customer: wants a shot glass
	Adversary                   // Bandit: wants a fireball
)

// String returns a human-readable name for the kind.
func (k FigureKind) String() string {
	switch k {
	case Ordinary:
		return "ordinary"
	case Adversary:
		return "adversary"
	default:
		return "unknown"
	}
}

// ProjectileKind distinguishes the two weapons. Values are the save-file encoding.
type ProjectileKind int

const (
	Slow ProjectileKind = iota // Shot glass: slow, wide
	Fast                       // Fireball: fast, narrow
)

// String returns a human-readable name for the kind.
func (k ProjectileKind) String() string {
	switch k {
	case Slow:
		return "slow"
	case Fast:
		return "fast"
	default:
		return "unknown"
	}
}

// Speed returns the signed per-tick displacement for this kind.
func (k ProjectileKind) Speed() float64 {
	if k == Fast {
		return FastSpeed
	}
	return SlowSpeed
}

// Figure is a spawned character walking along a lane toward the bar.
type Figure struct {
	Kind  FigureKind
	X     float64 // Left edge
	Lane  int     // 0..NumLanes-1
	Phase float64 // Bob phase in [0, π]
}

// NewFigure spawns a figure at the left edge. One in advOdds figures is an
// adversary; advOdds < 1 falls back to DefaultAdvOdds.
func NewFigure(rng *rand.Rand, advOdds int) Figure {
	if advOdds < 1 {
		advOdds = DefaultAdvOdds
	}
	kind := Ordinary
	if rng.Intn(advOdds) == 0 {
		kind = Adversary
	}
	return Figure{
		Kind:  kind,
		X:     FigureStartX,
		Lane:  rng.Intn(NumLanes),
		Phase: math.Pi * rng.Float64(),
	}
}

// Walk advances the figure by one tick.
// The phase wraps by π, not 2π, so the bob stays on one side of the lane.
func (f *Figure) Walk() {
	f.X += FigureSpeed
	f.Phase += PhaseIncrement
	for f.Phase > math.Pi {
		f.Phase -= math.Pi
	}
}

// Bob returns the current vertical draw offset in pixels.
func (f Figure) Bob() float64 {
	return math.Sin(f.Phase) * BobAmplitude
}

// Wants reports whether a projectile of kind k is the correct serve for this figure.
func (f Figure) Wants(k ProjectileKind) bool {
	switch f.Kind {
	case Ordinary:
		return k == Slow
	case Adversary:
		return k == Fast
	default:
		return false
	}
}

// Overlaps reports whether a projectile at x lies strictly inside the
// figure's hit window.
func (f Figure) Overlaps(x float64) bool {
	return x > f.X && x < f.X+FigureWidth
}

// Projectile is a drink or fireball travelling from the shooter toward the door.
type Projectile struct {
	Kind ProjectileKind
	X    float64
	Lane int
}

// NewProjectile creates a projectile at the shooter position in the given lane.
func NewProjectile(kind ProjectileKind, lane int) Projectile {
	return Projectile{
		Kind: kind,
		X:    ShooterX,
		Lane: lane,
	}
}

// Move advances the projectile by one tick.
func (p *Projectile) Move() {
	p.X += p.Kind.Speed()
}
