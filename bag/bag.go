package bag

import "fmt"

// Bag draws values from a fixed catalogue without replacement. Once every
// value has been drawn the bag is refilled with a freshly shuffled copy, so no
// value repeats within a cycle.
//
// The bag keeps a single slice the size of the catalogue and a read cursor;
// drawing advances the cursor instead of shifting elements.
type Bag[T comparable] struct {
	catalogue []T
	items     []T
	cursor    int
	cycles    int
	shuffler  Shuffler
}

// NewBag creates an empty bag over a copy of catalogue. The first Draw fills it.
func NewBag[T comparable](catalogue []T, shuffler Shuffler) (*Bag[T], error) {
	if len(catalogue) == 0 {
		return nil, &ConfigError{Err: ErrEmptyCatalogue}
	}

	seen := make(map[T]struct{}, len(catalogue))
	for _, v := range catalogue {
		if _, dup := seen[v]; dup {
			return nil, &ConfigError{Err: fmt.Errorf("%w: %v", ErrDuplicateEntry, v)}
		}
		seen[v] = struct{}{}
	}

	if shuffler == nil {
		shuffler = NewShuffler()
	}

	cat := make([]T, len(catalogue))
	copy(cat, catalogue)

	return &Bag[T]{
		catalogue: cat,
		items:     make([]T, len(cat)),
		cursor:    len(cat),
		shuffler:  shuffler,
	}, nil
}

// Draw removes and returns the front value, refilling first if the bag is empty.
func (b *Bag[T]) Draw() T {
	if b.cursor == len(b.items) {
		b.refill()
	}
	v := b.items[b.cursor]
	b.cursor++
	return v
}

func (b *Bag[T]) refill() {
	copy(b.items, b.catalogue)
	b.shuffler.Shuffle(len(b.items), func(i, j int) {
		b.items[i], b.items[j] = b.items[j], b.items[i]
	})
	b.cursor = 0
	b.cycles++
}

// Remaining returns how many values are left in the current cycle.
func (b *Bag[T]) Remaining() int {
	return len(b.items) - b.cursor
}

// Cycles returns how many times the bag has been filled.
func (b *Bag[T]) Cycles() int {
	return b.cycles
}

// Len returns the catalogue size.
func (b *Bag[T]) Len() int {
	return len(b.catalogue)
}

// Catalogue returns a copy of the values this bag draws from.
func (b *Bag[T]) Catalogue() []T {
	out := make([]T, len(b.catalogue))
	copy(out, b.catalogue)
	return out
}
