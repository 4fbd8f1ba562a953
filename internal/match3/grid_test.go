package match3

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(5, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	for _, c := range g.Coords() {
		k, err := g.Get(c)
		require.NoError(t, err)
		assert.Equal(t, Empty, k, "new grid should be empty at %v", c)
	}
}

func TestNewGridInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"negative", -1, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.w, tc.h)
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}

func TestNewGridFromRowsRagged(t *testing.T) {
	_, err := NewGridFromRows([][]PieceKind{
		{Red, Blue, Green},
		{Red, Blue},
	})
	assert.ErrorIs(t, err, ErrRaggedRows)
}

func TestGridInBounds(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	tests := []struct {
		coord    Coord
		expected bool
	}{
		{C(0, 0), true},
		{C(4, 4), true},
		{C(2, 2), true},
		{C(-1, 0), false},
		{C(0, -1), false},
		{C(5, 0), false},
		{C(0, 5), false},
		{C(5, 5), false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, g.InBounds(tc.coord), "InBounds(%v)", tc.coord)
	}
}

func TestGridSetGet(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(C(1, 2), Teal))
	k, err := g.Get(C(1, 2))
	require.NoError(t, err)
	assert.Equal(t, Teal, k)

	// Overwrite touches only the one slot
	require.NoError(t, g.Set(C(1, 2), Red))
	k, _ = g.Get(C(1, 2))
	assert.Equal(t, Red, k)
	k, _ = g.Get(C(1, 1))
	assert.Equal(t, Empty, k)
}

func TestGridOutOfBounds(t *testing.T) {
	g := board(t, "RGB", "GBR")

	_, err := g.Get(C(3, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	err = g.Set(C(0, -1), Red)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	before := g.Clone()
	err = g.Swap(C(0, 0), C(0, 2))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.True(t, g.Equal(before), "failed swap must not modify the grid")
}

func TestGridSwap(t *testing.T) {
	g := board(t, "RGB", "GBR")

	require.NoError(t, g.Swap(C(0, 0), C(2, 1)))
	a, _ := g.Get(C(0, 0))
	b, _ := g.Get(C(2, 1))
	assert.Equal(t, Red, a)
	assert.Equal(t, Red, b)

	require.NoError(t, g.Swap(C(0, 0), C(1, 0)))
	a, _ = g.Get(C(0, 0))
	b, _ = g.Get(C(1, 0))
	assert.Equal(t, Green, a)
	assert.Equal(t, Red, b)
}

func TestGridSwapIsItsOwnInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := NewGrid(6, 5)
	require.NoError(t, err)
	g.Fill(RandomGenerator(rng, nil))

	original := g.Clone()
	coords := g.Coords()
	for i := 0; i < 50; i++ {
		a := coords[rng.Intn(len(coords))]
		b := coords[rng.Intn(len(coords))]

		require.NoError(t, g.Swap(a, b))
		require.NoError(t, g.Swap(a, b))
		require.True(t, g.Equal(original), "double swap %v<->%v changed the grid", a, b)
	}
}

func TestGridClone(t *testing.T) {
	g := board(t, "RGB")
	clone := g.Clone()

	require.NoError(t, clone.Set(C(0, 0), Cyan))

	k, _ := g.Get(C(0, 0))
	assert.Equal(t, Red, k, "original should be unaffected by clone mutation")
	assert.False(t, g.Equal(clone))
}

func TestGridFill(t *testing.T) {
	g, err := NewGrid(3, 2)
	require.NoError(t, err)

	g.Fill(GeneratorFunc(func(c Coord) PieceKind {
		if c.Y == 0 {
			return Yellow
		}
		return Indigo
	}))

	assert.Equal(t, "III\nYYY", g.String())
}

func TestRandomGeneratorUsesGivenKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, err := NewGrid(8, 8)
	require.NoError(t, err)

	g.Fill(RandomGenerator(rng, []PieceKind{Red, Blue}))

	for _, c := range g.Coords() {
		k, _ := g.Get(c)
		assert.Contains(t, []PieceKind{Red, Blue}, k)
	}
}

func TestGridRows(t *testing.T) {
	g := board(t, "RG", "BY")
	rows := g.Rows()

	assert.Equal(t, [][]PieceKind{{Red, Green}, {Blue, Yellow}}, rows)

	rows[0][0] = Cyan
	k, _ := g.Get(C(0, 0))
	assert.Equal(t, Red, k, "Rows must return a copy")
}

func TestParseKindRoundTrip(t *testing.T) {
	all := append([]PieceKind{Empty, Wild}, PlayableKinds()...)
	for _, k := range all {
		byChar, ok := ParseKind(string(k.Char()))
		require.True(t, ok, "ParseKind(%q)", k.Char())
		assert.Equal(t, k, byChar)

		byName, ok := ParseKind(k.String())
		require.True(t, ok, "ParseKind(%q)", k.String())
		assert.Equal(t, k, byName)
	}

	_, ok := ParseKind("purple")
	assert.False(t, ok)
}

func TestPieceKindMatches(t *testing.T) {
	assert.True(t, Red.Matches(Red))
	assert.False(t, Red.Matches(Blue))
	assert.True(t, Wild.Matches(Wild))
	assert.False(t, Wild.Matches(Red), "wild only matches wild")
	assert.False(t, Red.Matches(Wild))
	assert.False(t, Empty.Matches(Empty), "empty never matches")
}
