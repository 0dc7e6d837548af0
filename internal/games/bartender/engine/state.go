package engine

// Background layer indices, nearest first. Each layer scrolls at its own speed.
const (
	LayerCactus = iota
	LayerSmallCactus
	LayerTinyCactus
	NumLayers
)

// DefaultLives is the number of figures allowed to reach the bar.
const DefaultLives = 3

// Scroll speed and sprite width of each cactus layer.
var (
	layerSpeed = [NumLayers]float64{-5, -3, -1.5}
	LayerWidth = [NumLayers]float64{140, 70, 35}
)

// State is the complete state of one run. It is owned by a single
// controller and mutated only from the tick thread.
type State struct {
	Scorer

	Spawned   int                // Total figures spawned this run, drives the spawn rate
	Lives     int                // Remaining lives, 0 = game over
	Lane      int                // Shooter lane
	Backdrop  [NumLayers]float64 // Cactus layer x offsets
	Countdown int                // Ticks until the next spawn

	Figures     []Figure
	Projectiles []Projectile
}

// NewState returns a fresh run with the given number of lives.
func NewState(lives int) *State {
	s := &State{}
	s.Reset(lives)
	return s
}

// Reset returns the run to its starting values. lives <= 0 uses DefaultLives.
func (s *State) Reset(lives int) {
	if lives <= 0 {
		lives = DefaultLives
	}
	s.Scorer.Reset()
	s.Spawned = 0
	s.Lives = lives
	s.Lane = 0
	s.Backdrop = [NumLayers]float64{}
	s.Countdown = 0
	s.Figures = s.Figures[:0]
	s.Projectiles = s.Projectiles[:0]
}

// MoveUp moves the shooter one lane up, stopping at the top lane.
func (s *State) MoveUp() {
	if s.Lane > 0 {
		s.Lane--
	}
}

// MoveDown moves the shooter one lane down, stopping at the bottom lane.
func (s *State) MoveDown() {
	if s.Lane < NumLanes-1 {
		s.Lane++
	}
}

// Fire launches a projectile of the given kind from the shooter's lane.
func (s *State) Fire(kind ProjectileKind) {
	s.Projectiles = append(s.Projectiles, NewProjectile(kind, s.Lane))
}

// Clone returns a deep copy, safe to hand to renderers.
func (s *State) Clone() *State {
	c := *s
	c.Figures = append([]Figure(nil), s.Figures...)
	c.Projectiles = append([]Projectile(nil), s.Projectiles...)
	return &c
}

// scrollBackdrop advances each cactus layer, wrapping it to the right edge
// once it has fully left the screen.
func (s *State) scrollBackdrop() {
	for i := range s.Backdrop {
		s.Backdrop[i] += layerSpeed[i]
		if s.Backdrop[i]+LayerWidth[i] < 0 {
			s.Backdrop[i] = ScreenWidth
		}
	}
}
