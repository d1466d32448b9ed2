// Package stats measures how fair a bag-drawn sequence is. Values are
// represented by their catalogue index so the same tables serve shapes,
// colors or any other catalogue.
package stats

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
)

var ErrCycleLength = errors.New("cycle length does not match catalogue size")

// Indexer maps catalogue values to their position in the catalogue.
type Indexer[T comparable] struct {
	index map[T]int
}

func NewIndexer[T comparable](catalogue []T) *Indexer[T] {
	idx := make(map[T]int, len(catalogue))
	for i, v := range catalogue {
		idx[v] = i
	}
	return &Indexer[T]{index: idx}
}

// Index returns the catalogue index of v, or -1 if v is not in the catalogue.
func (x *Indexer[T]) Index(v T) int {
	if i, ok := x.index[v]; ok {
		return i
	}
	return -1
}

// Indices converts a value sequence into catalogue indices.
func (x *Indexer[T]) Indices(seq []T) []int {
	out := make([]int, len(seq))
	for i, v := range seq {
		out[i] = x.Index(v)
	}
	return out
}

// PositionTable counts how often each value lands in each slot of a shuffled
// cycle. With a uniform shuffle every cell converges to cycles/n.
type PositionTable struct {
	n      int
	cycles int
	counts *intmap.Map[int, int]
}

func NewPositionTable(n int) *PositionTable {
	return &PositionTable{
		n:      n,
		counts: intmap.New[int, int](n * n),
	}
}

// Record adds one full cycle. Every entry must be a catalogue index.
func (t *PositionTable) Record(cycle []int) error {
	if len(cycle) != t.n {
		return fmt.Errorf("%w: got %d, want %d", ErrCycleLength, len(cycle), t.n)
	}
	for _, v := range cycle {
		if v < 0 || v >= t.n {
			return fmt.Errorf("value index %d out of range [0,%d)", v, t.n)
		}
	}
	for pos, v := range cycle {
		key := v*t.n + pos
		c, _ := t.counts.Get(key)
		t.counts.Put(key, c+1)
	}
	t.cycles++
	return nil
}

// Count returns how many recorded cycles had value at pos.
func (t *PositionTable) Count(value, pos int) int {
	c, _ := t.counts.Get(value*t.n + pos)
	return c
}

func (t *PositionTable) Cycles() int {
	return t.cycles
}

func (t *PositionTable) Size() int {
	return t.n
}

// ChiSquare returns Pearson's statistic for every position against the
// uniform distribution. Each has n-1 degrees of freedom.
func (t *PositionTable) ChiSquare() []float64 {
	out := make([]float64, t.n)
	if t.cycles == 0 {
		return out
	}
	expected := float64(t.cycles) / float64(t.n)
	for pos := 0; pos < t.n; pos++ {
		var sum float64
		for v := 0; v < t.n; v++ {
			d := float64(t.Count(v, pos)) - expected
			sum += d * d / expected
		}
		out[pos] = sum
	}
	return out
}

// Tally counts plain value frequencies.
type Tally struct {
	total  int
	counts *intmap.Map[int, int]
}

func NewTally() *Tally {
	return &Tally{counts: intmap.New[int, int](16)}
}

func (t *Tally) Add(value int) {
	c, _ := t.counts.Get(value)
	t.counts.Put(value, c+1)
	t.total++
}

func (t *Tally) Count(value int) int {
	c, _ := t.counts.Get(value)
	return c
}

func (t *Tally) Total() int {
	return t.total
}

// Distinct returns how many different values were added.
func (t *Tally) Distinct() int {
	return t.counts.Len()
}

// SplitCycles cuts seq into consecutive chunks of n. A trailing partial chunk
// is dropped.
func SplitCycles(seq []int, n int) [][]int {
	if n <= 0 {
		return nil
	}
	out := make([][]int, 0, len(seq)/n)
	for i := 0; i+n <= len(seq); i += n {
		out = append(out, seq[i:i+n])
	}
	return out
}

// RepeatsInCycle reports whether any n-aligned chunk of seq contains a value twice.
func RepeatsInCycle(seq []int, n int) bool {
	for _, cycle := range SplitCycles(seq, n) {
		seen := make(map[int]struct{}, n)
		for _, v := range cycle {
			if _, ok := seen[v]; ok {
				return true
			}
			seen[v] = struct{}{}
		}
	}
	return false
}

// MaxGap returns the largest distance between two consecutive occurrences of
// the same value. A bag over n values never exceeds 2n-1.
func MaxGap(seq []int) int {
	last := make(map[int]int)
	maxGap := 0
	for i, v := range seq {
		if j, ok := last[v]; ok && i-j > maxGap {
			maxGap = i - j
		}
		last[v] = i
	}
	return maxGap
}
