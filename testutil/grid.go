package testutil

import (
	"iter"
)

// Goal is the solution cell of the unbounded grid.
var Goal = Pos{5, 5}

// Pos is a cell on an unbounded grid.
type Pos struct {
	X, Y int
}

// NextStates yields the four axis neighbours in the order
// left, down, right, up.
func (p Pos) NextStates() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for _, n := range [...]Pos{
			{p.X - 1, p.Y},
			{p.X, p.Y - 1},
			{p.X + 1, p.Y},
			{p.X, p.Y + 1},
		} {
			if !yield(n) {
				return
			}
		}
	}
}

// NextStatesWithCosts yields the neighbours at unit cost.
func (p Pos) NextStatesWithCosts() iter.Seq2[Pos, int] {
	return func(yield func(Pos, int) bool) {
		for n := range p.NextStates() {
			if !yield(n, 1) {
				return
			}
		}
	}
}

// IsSolution reports whether p is Goal.
func (p Pos) IsSolution() bool { return p == Goal }

// Score is the Manhattan distance to Goal.
func (p Pos) Score() int { return Abs(p.X-Goal.X) + Abs(p.Y-Goal.Y) }

// Abs returns the absolute value of v.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// IsNeighbor reports whether b is one axis step from a.
func IsNeighbor(a, b Pos) bool {
	return Abs(a.X-b.X)+Abs(a.Y-b.Y) == 1
}

// Counter is a state whose successors are n+1, n+2, ... without end.
// It is a solution when it equals Target.
type Counter struct {
	N      int
	Target int
}

// NextStates yields an infinite ascending sequence.
func (c Counter) NextStates() iter.Seq[Counter] {
	return func(yield func(Counter) bool) {
		for i := c.N + 1; ; i++ {
			if !yield(Counter{N: i, Target: c.Target}) {
				return
			}
		}
	}
}

// IsSolution reports whether the counter reached its target.
func (c Counter) IsSolution() bool { return c.N == c.Target }

// Word is a string over a small alphabet; successors append one letter
// until MaxLen. Any word ending in Suffix is a solution, so the space holds
// many solutions and no cycles.
type Word struct {
	S        string
	Alphabet string
	MaxLen   int
	Suffix   string
}

// NextStates appends each letter of the alphabet in order.
func (w Word) NextStates() iter.Seq[Word] {
	return func(yield func(Word) bool) {
		if len(w.S) >= w.MaxLen {
			return
		}
		for _, r := range w.Alphabet {
			next := w
			next.S = w.S + string(r)
			if !yield(next) {
				return
			}
		}
	}
}

// IsSolution reports whether the word ends with the suffix.
func (w Word) IsSolution() bool {
	return len(w.S) >= len(w.Suffix) && w.S[len(w.S)-len(w.Suffix):] == w.Suffix
}

// Score prefers longer matches of the suffix's prefix at the end of the word.
func (w Word) Score() int {
	for k := len(w.Suffix); k > 0; k-- {
		if len(w.S) >= k && w.S[len(w.S)-k:] == w.Suffix[:k] {
			return len(w.Suffix) - k
		}
	}
	return len(w.Suffix)
}
