package engine

import "math/rand"

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventSpawn    EventKind = iota // A figure entered a lane
	EventGoodShot                  // Matching projectile hit a figure
	EventBadShot                   // Wrong projectile hit a figure
	EventLifeLost                  // A figure reached the bar
	EventGameOver                  // Lives ran out
)

// Event records one occurrence during a step, in the order it happened.
type Event struct {
	Kind EventKind
	Lane int
}

// StepOptions tunes a single step.
type StepOptions struct {
	AdversaryOdds int  // One in N spawned figures is an adversary (0 = default)
	Invincible    bool // Figures reaching the bar cost no life
}

// StepResult describes what a step did.
type StepResult struct {
	Events   []Event
	GameOver bool // Lives reached zero during this step
}

// Step advances the run by one tick.
//
// Order within a tick:
//  1. Scroll the cactus layers
//  2. Spawn a figure when the countdown has elapsed
//  3. Walk every figure; those past the bar cost a life
//  4. Move every projectile, resolving the first same-lane figure it overlaps
//
// Reaching zero lives does not cut the tick short; the caller decides what
// to do with GameOver once the step returns.
func (s *State) Step(rng *rand.Rand, opts StepOptions) StepResult {
	var res StepResult

	s.scrollBackdrop()
	s.spawn(rng, opts, &res)
	s.walkFigures(opts, &res)
	s.moveProjectiles(&res)

	return res
}

// spawn runs the spawn countdown.
func (s *State) spawn(rng *rand.Rand, opts StepOptions, res *StepResult) {
	if s.Countdown > 0 {
		s.Countdown--
		return
	}

	f := NewFigure(rng, opts.AdversaryOdds)
	s.Figures = append(s.Figures, f)
	s.Spawned++
	s.Countdown = SpawnInterval(s.Spawned)
	res.Events = append(res.Events, Event{Kind: EventSpawn, Lane: f.Lane})
}

// walkFigures moves figures and drops the ones that reached the bar.
func (s *State) walkFigures(opts StepOptions, res *StepResult) {
	kept := s.Figures[:0]
	for _, f := range s.Figures {
		f.Walk()
		if f.X <= RightBoundary {
			kept = append(kept, f)
			continue
		}

		if opts.Invincible || s.Lives == 0 {
			continue
		}
		s.Lives--
		res.Events = append(res.Events, Event{Kind: EventLifeLost, Lane: f.Lane})
		if s.Lives == 0 {
			res.GameOver = true
			res.Events = append(res.Events, Event{Kind: EventGameOver, Lane: f.Lane})
		}
	}
	s.Figures = kept
}

// moveProjectiles moves projectiles and resolves collisions. A projectile
// strikes the first figure in collection order that shares its lane and
// overlaps it; both are removed and the shot is scored.
func (s *State) moveProjectiles(res *StepResult) {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		p.Move()

		if i := s.firstOverlap(p); i >= 0 {
			good := s.Figures[i].Wants(p.Kind)
			s.RecordShot(good)
			s.removeFigure(i)

			kind := EventBadShot
			if good {
				kind = EventGoodShot
			}
			res.Events = append(res.Events, Event{Kind: kind, Lane: p.Lane})
			continue
		}

		if p.X < LeftBoundary {
			continue
		}
		kept = append(kept, p)
	}
	s.Projectiles = kept
}

// firstOverlap returns the index of the first figure hit by p, or -1.
func (s *State) firstOverlap(p Projectile) int {
	for i, f := range s.Figures {
		if f.Lane == p.Lane && f.Overlaps(p.X) {
			return i
		}
	}
	return -1
}

// removeFigure deletes the figure at i, keeping the others in order.
func (s *State) removeFigure(i int) {
	copy(s.Figures[i:], s.Figures[i+1:])
	s.Figures = s.Figures[:len(s.Figures)-1]
}
