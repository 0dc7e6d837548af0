package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Bounds enforced when reading a save.
const (
	MinSavedPosition = -100.0
	MaxSavedPosition = ScreenWidth
	MinBackdrop      = -ScreenWidth
	MaxBackdrop      = ScreenWidth
)

// ErrInvalidSave is wrapped by every error caused by save contents, as
// opposed to I/O failures.
var ErrInvalidSave = errors.New("engine: invalid save")

// FieldError reports the first save field that failed validation.
type FieldError struct {
	Field  string // e.g. "multiplier", "figure[3].lane"
	Value  string // Raw token, empty when missing
	Reason string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("engine: save field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("engine: save field %s=%q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidSave) hold for field errors.
func (e *FieldError) Unwrap() error {
	return ErrInvalidSave
}

// Encode writes s in the save format:
//
//	score
//	multiplier
//	spawned
//	hits
//	threshold
//	prime index
//	lives
//	shooter lane
//	three backdrop offsets, one per line
//	figure count, then "kind x lane phase" per figure
//	projectile count, then "kind x lane" per projectile
func Encode(w io.Writer, s *State) error {
	bw := bufio.NewWriter(w)

	for _, v := range []int{
		s.Score,
		s.Multiplier,
		s.Spawned,
		s.Hits,
		s.Threshold,
		s.PrimeIndex,
		s.Lives,
		s.Lane,
	} {
		fmt.Fprintln(bw, v)
	}
	for _, x := range s.Backdrop {
		fmt.Fprintln(bw, formatFloat(x))
	}

	fmt.Fprintln(bw, len(s.Figures))
	for _, f := range s.Figures {
		fmt.Fprintln(bw, int(f.Kind), formatFloat(f.X), f.Lane, formatFloat(f.Phase))
	}

	fmt.Fprintln(bw, len(s.Projectiles))
	for _, p := range s.Projectiles {
		fmt.Fprintln(bw, int(p.Kind), formatFloat(p.X), p.Lane)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("engine: write save: %w", err)
	}
	return nil
}

// Decode reads a save written by Encode into a new State. Every field is
// range-checked; the first bad field stops decoding and is returned as a
// *FieldError. On error the returned state is nil, so nothing half-read can
// be adopted by the caller.
func Decode(r io.Reader) (*State, error) {
	d := newDecoder(r)
	s := &State{}

	s.Score = d.readInt("score", 0, math.MaxInt)
	s.Multiplier = d.readInt("multiplier", 1, math.MaxInt)
	s.Spawned = d.readInt("spawned", 0, math.MaxInt)
	s.Hits = d.readInt("hits", 0, math.MaxInt)
	s.Threshold = d.readInt("threshold", 1, math.MaxInt)
	s.PrimeIndex = d.readInt("prime_index", 0, len(Primes)-1)
	s.Lives = d.readInt("lives", 1, math.MaxInt)
	s.Lane = d.readInt("lane", 0, NumLanes-1)
	for i := range s.Backdrop {
		s.Backdrop[i] = d.readFloat(fmt.Sprintf("backdrop[%d]", i), MinBackdrop, MaxBackdrop)
	}

	n := d.readInt("figure_count", 0, MaxSavedFigures)
	for i := 0; i < n && d.err == nil; i++ {
		field := fmt.Sprintf("figure[%d]", i)
		f := Figure{
			Kind:  FigureKind(d.readInt(field+".kind", int(Ordinary), int(Adversary))),
			X:     d.readFloat(field+".x", MinSavedPosition, MaxSavedPosition),
			Lane:  d.readInt(field+".lane", 0, NumLanes-1),
			Phase: d.readFloat(field+".phase", 0, math.Pi),
		}
		s.Figures = append(s.Figures, f)
	}

	n = d.readInt("projectile_count", 0, MaxSavedProjectiles)
	for i := 0; i < n && d.err == nil; i++ {
		field := fmt.Sprintf("projectile[%d]", i)
		p := Projectile{
			Kind: ProjectileKind(d.readInt(field+".kind", int(Slow), int(Fast))),
			X:    d.readFloat(field+".x", MinSavedPosition, MaxSavedPosition),
			Lane: d.readInt(field+".lane", 0, NumLanes-1),
		}
		s.Projectiles = append(s.Projectiles, p)
	}

	if d.err != nil {
		return nil, d.err
	}
	return s, nil
}

// decoder reads whitespace-separated tokens. The first failure sticks and
// turns every later read into a no-op.
type decoder struct {
	sc  *bufio.Scanner
	err error
}

func newDecoder(r io.Reader) *decoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &decoder{sc: sc}
}

// token returns the next token for field, or "" after recording an error.
func (d *decoder) token(field string) string {
	if d.err != nil {
		return ""
	}
	if d.sc.Scan() {
		return d.sc.Text()
	}
	if err := d.sc.Err(); err != nil {
		d.err = fmt.Errorf("engine: read save field %s: %w", field, err)
	} else {
		d.err = &FieldError{Field: field, Reason: "missing"}
	}
	return ""
}

// readInt reads an integer field and checks it lies in [lo, hi].
func (d *decoder) readInt(field string, lo, hi int) int {
	tok := d.token(field)
	if d.err != nil {
		return 0
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		d.err = &FieldError{Field: field, Value: tok, Reason: "not an integer"}
		return 0
	}
	if v < lo || v > hi {
		d.err = &FieldError{Field: field, Value: tok, Reason: rangeReason(lo, hi)}
		return 0
	}
	return v
}

// readFloat reads a real field and checks it is finite and lies in [lo, hi].
func (d *decoder) readFloat(field string, lo, hi float64) float64 {
	tok := d.token(field)
	if d.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		d.err = &FieldError{Field: field, Value: tok, Reason: "not a finite number"}
		return 0
	}
	if v < lo || v > hi {
		d.err = &FieldError{Field: field, Value: tok, Reason: fmt.Sprintf("out of range [%g, %g]", lo, hi)}
		return 0
	}
	return v
}

func rangeReason(lo, hi int) string {
	if hi == math.MaxInt {
		return fmt.Sprintf("must be >= %d", lo)
	}
	return fmt.Sprintf("out of range [%d, %d]", lo, hi)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
