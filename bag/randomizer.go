package bag

import (
	"errors"
	"fmt"
)

// Pair is one generated piece: a shape and a color drawn from separate bags.
type Pair[S, C comparable] struct {
	Shape S
	Color C
}

// State is the lifecycle stage of a Randomizer.
type State int

const (
	// StateUninitialized: the lookahead is populated but nothing has been
	// promoted to current yet.
	StateUninitialized State = iota
	// StateReady: current and next are both populated.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Observer receives draw and refill notifications. Implementations must not
// call back into the Randomizer.
type Observer interface {
	ObserveDraw(attr Attribute, value string)
	ObserveRefill(attr Attribute, cycle int)
}

// Randomizer produces an endless sequence of shape/color pairs. Shapes and
// colors come from two independent bags, and the next pair is always drawn
// one step ahead of the current one so it can be previewed.
//
// A Randomizer is not safe for concurrent use; callers that share one between
// goroutines must serialize access.
type Randomizer[S, C comparable] struct {
	shapes   *Bag[S]
	colors   *Bag[C]
	observer Observer

	current Pair[S, C]
	next    Pair[S, C]
	state   State
	draws   uint64
}

type options struct {
	shapeShuffler Shuffler
	colorShuffler Shuffler
	observer      Observer
}

// Option configures a Randomizer.
type Option func(*options)

// WithSeed makes both bags deterministic. Shapes and colors use separate PCG
// streams of the same seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.shapeShuffler = NewSeededShuffler(seed, 1)
		o.colorShuffler = NewSeededShuffler(seed, 2)
	}
}

// WithShufflers sets the shuffler of each bag. A nil argument keeps the default.
func WithShufflers(shape, color Shuffler) Option {
	return func(o *options) {
		if shape != nil {
			o.shapeShuffler = shape
		}
		if color != nil {
			o.colorShuffler = color
		}
	}
}

// WithObserver registers an observer for draws and refills.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// NewRandomizer builds both bags and pre-draws the first lookahead pair.
// An empty or duplicated catalogue yields a *ConfigError.
func NewRandomizer[S, C comparable](shapes []S, colors []C, opts ...Option) (*Randomizer[S, C], error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	shapeBag, err := NewBag(shapes, o.shapeShuffler)
	if err != nil {
		return nil, withAttribute(err, AttributeShape)
	}
	colorBag, err := NewBag(colors, o.colorShuffler)
	if err != nil {
		return nil, withAttribute(err, AttributeColor)
	}

	r := &Randomizer[S, C]{
		shapes:   shapeBag,
		colors:   colorBag,
		observer: o.observer,
	}
	r.fillNext()
	return r, nil
}

func withAttribute(err error, attr Attribute) error {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		cfgErr.Attribute = attr
	}
	return err
}

// PeekCurrent returns the pair most recently returned by Advance. ok is false
// until Advance has been called once.
func (r *Randomizer[S, C]) PeekCurrent() (Pair[S, C], bool) {
	if r.state == StateUninitialized {
		return Pair[S, C]{}, false
	}
	return r.current, true
}

// PeekNext returns the lookahead pair without drawing.
func (r *Randomizer[S, C]) PeekNext() Pair[S, C] {
	return r.next
}

// Advance promotes the lookahead pair to current, draws a new lookahead and
// returns the new current pair.
func (r *Randomizer[S, C]) Advance() Pair[S, C] {
	r.current = r.next
	r.state = StateReady
	r.draws++
	r.fillNext()
	return r.current
}

// State returns the lifecycle stage.
func (r *Randomizer[S, C]) State() State {
	return r.state
}

// Draws returns how many times Advance has been called.
func (r *Randomizer[S, C]) Draws() uint64 {
	return r.draws
}

// ShapeCycles and ColorCycles return how many times each bag has been filled.
func (r *Randomizer[S, C]) ShapeCycles() int { return r.shapes.Cycles() }
func (r *Randomizer[S, C]) ColorCycles() int { return r.colors.Cycles() }

func (r *Randomizer[S, C]) fillNext() {
	r.next = Pair[S, C]{
		Shape: drawObserved(r.shapes, AttributeShape, r.observer),
		Color: drawObserved(r.colors, AttributeColor, r.observer),
	}
}

func drawObserved[T comparable](b *Bag[T], attr Attribute, obs Observer) T {
	if obs == nil {
		return b.Draw()
	}
	before := b.Cycles()
	v := b.Draw()
	if b.Cycles() != before {
		obs.ObserveRefill(attr, b.Cycles())
	}
	obs.ObserveDraw(attr, fmt.Sprint(v))
	return v
}
