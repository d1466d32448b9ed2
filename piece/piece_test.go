package piece_test

import (
	"testing"

	"github.com/plus3/piecebag/bag"
	"github.com/plus3/piecebag/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCatalogues(t *testing.T) {
	assert.Len(t, piece.Shapes(), 7)
	assert.Len(t, piece.Colors(), 6)

	shapes := piece.Shapes()
	shapes[0] = piece.Z
	assert.Equal(t, piece.O, piece.Shapes()[0])
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want piece.Shape
	}{
		{"O", piece.O},
		{"t", piece.T},
		{"L_block", piece.L},
		{" z_BLOCK ", piece.Z},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := piece.ParseShape(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := piece.ParseShape("Q")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want piece.Color
	}{
		{"green", piece.Green},
		{"Purple", piece.Purple},
		{"pinkBlock", piece.Pink},
		{"BLUEBLOCK", piece.Blue},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := piece.ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := piece.ParseColor("red")
	assert.Error(t, err)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "J", piece.J.String())
	assert.Equal(t, "brown", piece.Brown.String())
	assert.Equal(t, "Shape(9)", piece.Shape(9).String())
	assert.Equal(t, "Color(9)", piece.Color(9).String())

	_, err := piece.Shape(9).MarshalText()
	assert.Error(t, err)
	_, err = piece.Color(9).MarshalText()
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	type catalogue struct {
		Shapes []piece.Shape `yaml:"shapes"`
		Colors []piece.Color `yaml:"colors"`
	}

	var c catalogue
	err := yaml.Unmarshal([]byte("shapes: [T, S_block]\ncolors: [yellowBlock, blue]\n"), &c)
	require.NoError(t, err)
	assert.Equal(t, []piece.Shape{piece.T, piece.S}, c.Shapes)
	assert.Equal(t, []piece.Color{piece.Yellow, piece.Blue}, c.Colors)

	err = yaml.Unmarshal([]byte("shapes: [X]\n"), &c)
	assert.Error(t, err)
}

func TestNewRandomizerUsesFullCatalogues(t *testing.T) {
	r, err := piece.NewRandomizer(bag.WithSeed(8))
	require.NoError(t, err)

	var shapes []piece.Shape
	var colors []piece.Color
	for range 42 {
		p := r.Advance()
		shapes = append(shapes, p.Shape)
		colors = append(colors, p.Color)
	}

	for i := 0; i < len(shapes); i += 7 {
		assert.ElementsMatch(t, piece.Shapes(), shapes[i:i+7])
	}
	for i := 0; i < len(colors); i += 6 {
		assert.ElementsMatch(t, piece.Colors(), colors[i:i+6])
	}
}
