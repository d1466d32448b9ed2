// Package piece defines the tetromino shape and color catalogues and wires
// them into a bag randomizer.
package piece

import (
	"fmt"
	"strings"

	"github.com/plus3/piecebag/bag"
)

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	O Shape = iota
	I
	T
	L
	J
	S
	Z
)

var shapeNames = [...]string{"O", "I", "T", "L", "J", "S", "Z"}

// Color identifies a block color.
type Color uint8

const (
	Green Color = iota
	Yellow
	Brown
	Pink
	Purple
	Blue
)

var colorNames = [...]string{"green", "yellow", "brown", "pink", "purple", "blue"}

// Piece is one spawned tetromino.
type Piece = bag.Pair[Shape, Color]

// Randomizer draws pieces from the standard catalogues.
type Randomizer = bag.Randomizer[Shape, Color]

// Shapes returns the shape catalogue in canonical order.
func Shapes() []Shape {
	return []Shape{O, I, T, L, J, S, Z}
}

// Colors returns the color catalogue in canonical order.
func Colors() []Color {
	return []Color{Green, Yellow, Brown, Pink, Purple, Blue}
}

// NewRandomizer builds a randomizer over the full shape and color catalogues.
func NewRandomizer(opts ...bag.Option) (*Randomizer, error) {
	return bag.NewRandomizer(Shapes(), Colors(), opts...)
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", s)
}

func (s Shape) MarshalText() ([]byte, error) {
	if int(s) >= len(shapeNames) {
		return nil, fmt.Errorf("unknown shape %d", s)
	}
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseShape accepts a letter ("T") or a block name ("T_block"), in any case.
func ParseShape(name string) (Shape, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, "_BLOCK")
	for i, s := range shapeNames {
		if n == s {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", c)
}

func (c Color) MarshalText() ([]byte, error) {
	if int(c) >= len(colorNames) {
		return nil, fmt.Errorf("unknown color %d", c)
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor accepts a color name ("pink") or a block name ("pinkBlock"), in any case.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, "block")
	for i, c := range colorNames {
		if n == c {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}
