package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapFixture has exactly one productive swap: (2,0)<->(3,0) completes a red row.
func swapFixture(t *testing.T) *Grid {
	return board(t,
		"RRBR",
		"GYGY",
	)
}

func TestEvaluateSwapWithMatch(t *testing.T) {
	g := swapFixture(t)
	before := g.Clone()

	res, err := EvaluateSwap(g, C(2, 0), C(3, 0))
	require.NoError(t, err)

	assert.True(t, res.HasMatch())
	assert.Equal(t, []Coord{C(0, 0), C(1, 0), C(2, 0)}, res.MatchA.Sorted())
	assert.Nil(t, res.MatchB)
	assert.Equal(t, 3, res.Matched.Len())
	assert.Equal(t, "GYGY\nRRRB", res.Grid.String())

	assert.True(t, g.Equal(before), "EvaluateSwap must work on a copy")
}

func TestEvaluateSwapWithoutMatch(t *testing.T) {
	g := swapFixture(t)

	res, err := EvaluateSwap(g, C(0, 0), C(0, 1))
	require.NoError(t, err)

	assert.False(t, res.HasMatch())
	assert.Nil(t, res.MatchA)
	assert.Nil(t, res.MatchB)
	assert.Equal(t, 0, res.Matched.Len())
}

func TestEvaluateSwapRejected(t *testing.T) {
	g := swapFixture(t)

	_, err := EvaluateSwap(g, C(0, 0), C(2, 0))
	assert.ErrorIs(t, err, ErrInvalidSwap)

	_, err = EvaluateSwap(g, C(3, 0), C(4, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFindValidSwaps(t *testing.T) {
	g := swapFixture(t)

	got := FindValidSwaps(g)
	assert.Equal(t, []Swap{{A: C(2, 0), B: C(3, 0)}}, got)
}

func TestFindValidSwapsNone(t *testing.T) {
	g := board(t,
		"RGBY",
		"BYRG",
	)

	assert.Empty(t, FindValidSwaps(g))
}

func TestFindValidSwapsVertical(t *testing.T) {
	// Swapping (1,0) with (1,1) lines up three greens in column 1.
	g := board(t,
		"RGY",
		"YBR",
		"BGY",
		"RGB",
	)

	got := FindValidSwaps(g)
	assert.Contains(t, got, Swap{A: C(1, 0), B: C(1, 1)})
}

func TestSwapString(t *testing.T) {
	assert.Equal(t, "(0,1)<->(1,1)", Swap{A: C(0, 1), B: C(1, 1)}.String())
}
