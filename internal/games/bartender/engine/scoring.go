package engine

// Primes is the multiplier progression table: the first 169 primes.
// A streak must reach Primes[PrimeIndex] consecutive good shots before the
// multiplier goes up.
var Primes = [...]int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
	233, 239, 241, 251, 257, 263, 269, 271, 277, 281,
	283, 293, 307, 311, 313, 317, 331, 337, 347, 349,
	353, 359, 367, 373, 379, 383, 389, 397, 401, 409,
	419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541,
	547, 557, 563, 569, 571, 577, 587, 593, 599, 601,
	607, 613, 617, 619, 631, 641, 643, 647, 653, 659,
	661, 673, 677, 683, 691, 701, 709, 719, 727, 733,
	739, 743, 751, 757, 761, 769, 773, 787, 797, 809,
	811, 821, 823, 827, 829, 839, 853, 857, 859, 863,
	877, 881, 883, 887, 907, 911, 919, 929, 937, 941,
	947, 953, 967, 971, 977, 983, 991, 997, 1009,
}

// Multiplier progression constants.
const (
	StartPrimeIndex = 3 // Primes[3] = 7 hits for the first increase
	PrimeIndexStep  = 2 // Index advance per multiplier increase
)

// Scorer tracks score, multiplier and the current hit streak.
type Scorer struct {
	Score      int // Accumulated points
	Multiplier int // Points per good shot, >= 1
	Hits       int // Consecutive good shots since the last increase or miss
	Threshold  int // Hits needed for the next multiplier increase
	PrimeIndex int // Index into Primes the threshold was drawn from
}

// NewScorer returns a scorer at the start of a run.
func NewScorer() Scorer {
	s := Scorer{}
	s.Reset()
	return s
}

// Reset clears score and streak back to their starting values.
func (s *Scorer) Reset() {
	s.Score = 0
	s.resetStreak()
}

// RecordShot applies the outcome of a projectile striking a figure.
// A good shot scores the current multiplier and extends the streak;
// anything else drops the multiplier back to 1.
func (s *Scorer) RecordShot(good bool) {
	if !good {
		s.resetStreak()
		return
	}

	s.Score += s.Multiplier
	s.Hits++
	if s.Hits >= s.Threshold {
		s.Multiplier++
		s.PrimeIndex += PrimeIndexStep
		if s.PrimeIndex > len(Primes)-1 {
			s.PrimeIndex = len(Primes) - 1
		}
		s.Hits = 0
		s.Threshold = Primes[s.PrimeIndex]
	}
}

// Remaining returns how many more good shots raise the multiplier.
func (s Scorer) Remaining() int {
	return s.Threshold - s.Hits
}

func (s *Scorer) resetStreak() {
	s.Multiplier = 1
	s.Hits = 0
	s.PrimeIndex = StartPrimeIndex
	s.Threshold = Primes[StartPrimeIndex]
}
