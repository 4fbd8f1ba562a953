package match3

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAdjacent(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coord
		expected bool
	}{
		{"right neighbour", C(1, 1), C(2, 1), true},
		{"left neighbour", C(1, 1), C(0, 1), true},
		{"upper neighbour", C(1, 1), C(1, 2), true},
		{"lower neighbour", C(1, 1), C(1, 0), true},
		{"same cell", C(1, 1), C(1, 1), false},
		{"diagonal", C(1, 1), C(2, 2), false},
		{"two apart", C(0, 0), C(2, 0), false},
		{"knight move", C(0, 0), C(1, 2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsAdjacent(tc.a, tc.b))
			assert.Equal(t, tc.expected, IsAdjacent(tc.b, tc.a), "adjacency must be symmetric")
		})
	}
}

func TestIsAdjacentProperties(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)

	for _, a := range g.Coords() {
		assert.False(t, IsAdjacent(a, a), "%v adjacent to itself", a)
		for _, b := range g.Coords() {
			assert.Equal(t, IsAdjacent(a, b), IsAdjacent(b, a), "symmetry for %v, %v", a, b)
		}
	}
}

func TestScanDirection(t *testing.T) {
	g := board(t,
		"RR.RBBB",
		"GYRCMIT",
	)

	tests := []struct {
		name      string
		start     Coord
		dir       Direction
		minLength int
		expected  []Coord
	}{
		{"isolated piece, min 1", C(3, 0), Right, 1, []Coord{C(3, 0)}},
		{"stops at gap", C(0, 0), Right, 1, []Coord{C(0, 0), C(1, 0)}},
		{"stops at other kind", C(1, 0), Left, 1, []Coord{C(1, 0), C(0, 0)}},
		{"stops at edge", C(4, 0), Right, 3, []Coord{C(4, 0), C(5, 0), C(6, 0)}},
		{"below min length", C(0, 0), Right, 3, nil},
		{"magnitude is normalized", C(4, 0), Direction{DX: 7}, 1, []Coord{C(4, 0), C(5, 0), C(6, 0)}},
		{"vertical run too short", C(2, 1), Down, 2, nil},
		{"empty start", C(2, 0), Right, 1, nil},
		{"out of bounds start", C(7, 0), Left, 1, nil},
		{"negative start", C(-1, 0), Right, 1, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ScanDirection(g, tc.start, tc.dir, tc.minLength)
			if tc.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.expected, got.Coords())
		})
	}
}

func TestScanDirectionRejectsDiagonals(t *testing.T) {
	g := board(t,
		"..R",
		".R.",
		"R..",
	)

	for _, dir := range []Direction{{DX: 1, DY: 1}, {DX: -1, DY: -1}, {DX: 3, DY: -2}} {
		assert.Nil(t, ScanDirection(g, C(1, 1), dir, 1), "dir %v", dir)
	}
	assert.True(t, ComputeAllMatches(g).Empty(), "a diagonal line is not a match")
}

func TestScanDirectionEmptyStartAfterEmptyNeighbour(t *testing.T) {
	g := board(t, "R..R")

	assert.Nil(t, ScanDirection(g, C(1, 0), Left, 1), "scanning from an empty cell yields nothing")
	got := ScanDirection(g, C(0, 0), Right, 1)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.Len(), "empty cell breaks the run")
}

func TestScanDirectionWildIsExactMatch(t *testing.T) {
	g := board(t, "**RR*")

	wild := ScanDirection(g, C(0, 0), Right, 1)
	require.NotNil(t, wild)
	assert.Equal(t, []Coord{C(0, 0), C(1, 0)}, wild.Coords())

	red := ScanDirection(g, C(3, 0), Left, 1)
	require.NotNil(t, red)
	assert.Equal(t, []Coord{C(3, 0), C(2, 0)}, red.Coords(), "wild does not extend a red run")
}

func TestScanDirectionStaysInBoundsWithoutDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, err := NewGrid(7, 5)
	require.NoError(t, err)
	g.Fill(RandomGenerator(rng, []PieceKind{Red, Blue}))

	for _, start := range g.Coords() {
		for _, dir := range []Direction{Right, Left, Up, Down} {
			run := ScanDirection(g, start, dir, 1)
			require.NotNil(t, run)

			seen := make(map[Coord]bool)
			for _, c := range run.Coords() {
				assert.True(t, g.InBounds(c), "scan from %v %v left the board at %v", start, dir, c)
				assert.False(t, seen[c], "scan from %v %v repeated %v", start, dir, c)
				seen[c] = true
			}
			assert.LessOrEqual(t, run.Len(), max(g.Width(), g.Height()))
		}
	}
}

// rowFixture has a red triple and a blue pair on row 0; no other run reaches three.
func rowFixture(t *testing.T) *Grid {
	return board(t,
		"RRRBB",
		"GTYMI",
		"CIGTY",
	)
}

func TestFindHorizontalMatches(t *testing.T) {
	g := rowFixture(t)
	want := []Coord{C(0, 0), C(1, 0), C(2, 0)}

	for _, start := range []Coord{C(0, 0), C(1, 0), C(2, 0)} {
		got := FindHorizontalMatches(g, start, MinMatch)
		require.NotNil(t, got, "expected a match through %v", start)
		assert.Equal(t, want, got.Sorted())
		assert.True(t, got.Contains(start))
	}

	assert.Nil(t, FindHorizontalMatches(g, C(3, 0), MinMatch), "two blues are below the threshold")
	assert.Nil(t, FindHorizontalMatches(g, C(4, 0), MinMatch))
	assert.Nil(t, FindHorizontalMatches(g, C(2, 1), MinMatch))
}

func TestFindHorizontalMatchesCombinesSingleNeighbours(t *testing.T) {
	// Each direction from the middle sees only one matching neighbour.
	g := board(t, "GRRRG")

	got := FindHorizontalMatches(g, C(2, 0), MinMatch)
	require.NotNil(t, got)
	assert.Equal(t, []Coord{C(1, 0), C(2, 0), C(3, 0)}, got.Sorted())
	assert.Equal(t, 3, got.Len(), "start is counted once")
}

func TestFindHorizontalMatchesCustomMinLength(t *testing.T) {
	g := rowFixture(t)

	got := FindHorizontalMatches(g, C(3, 0), 2)
	require.NotNil(t, got)
	assert.Equal(t, []Coord{C(3, 0), C(4, 0)}, got.Sorted())

	assert.Nil(t, FindHorizontalMatches(g, C(0, 0), 4))
}

func TestFindVerticalMatches(t *testing.T) {
	g := board(t,
		"RGB",
		"RBG",
		"RGB",
		"YBG",
	)

	for y := 0; y < 3; y++ {
		got := FindVerticalMatches(g, C(0, y), MinMatch)
		require.NotNil(t, got, "expected a match through (0,%d)", y)
		assert.Equal(t, []Coord{C(0, 0), C(0, 1), C(0, 2)}, got.Sorted())
	}

	assert.Nil(t, FindVerticalMatches(g, C(0, 3), MinMatch))
	assert.Nil(t, FindVerticalMatches(g, C(1, 0), MinMatch))
	assert.Nil(t, FindHorizontalMatches(g, C(0, 0), MinMatch), "column run is not a row match")
}

func TestFindMatchesAtUnionsAxes(t *testing.T) {
	g := board(t,
		"RRR",
		"RBG",
		"RGB",
	)

	got := FindMatchesAt(g, C(0, 0))
	require.NotNil(t, got)
	assert.Equal(t, []Coord{C(0, 0), C(1, 0), C(2, 0), C(0, 1), C(0, 2)}, got.Sorted())

	assert.Nil(t, FindMatchesAt(g, C(1, 1)))
}

func TestComputeAllMatchesSaturatedBoard(t *testing.T) {
	g := board(t, "RRR", "RRR", "RRR")

	got := ComputeAllMatches(g)
	assert.Equal(t, 9, got.Len())
	for _, c := range g.Coords() {
		assert.True(t, got.Contains(c), "%v should be matched", c)
		k, ok := got.Kind(c)
		assert.True(t, ok)
		assert.Equal(t, Red, k)
	}
}

func TestComputeAllMatchesNoRuns(t *testing.T) {
	g := board(t,
		"RGB",
		"GBR",
		"BRG",
	)

	got := ComputeAllMatches(g)
	assert.True(t, got.Empty())
	assert.Empty(t, got.Coords())
}

func TestComputeAllMatchesTagsKinds(t *testing.T) {
	g := board(t,
		"RRRBB",
		"GTYMB",
		"CIGTB",
	)

	got := ComputeAllMatches(g)
	assert.Equal(t, []Coord{C(0, 0), C(1, 0), C(2, 0), C(4, 0), C(4, 1), C(4, 2)}, got.Coords())

	k, _ := got.Kind(C(1, 0))
	assert.Equal(t, Red, k)
	k, _ = got.Kind(C(4, 2))
	assert.Equal(t, Blue, k)

	_, ok := got.Kind(C(3, 0))
	assert.False(t, ok)
}

func TestComputeAllMatchesNonSquare(t *testing.T) {
	g := rowFixture(t)

	got := ComputeAllMatches(g)
	assert.Equal(t, []Coord{C(0, 0), C(1, 0), C(2, 0)}, got.Coords())
}

func TestComputeAllMatchesIgnoresEmptyAndWildMix(t *testing.T) {
	g := board(t,
		"R*R.R",
		"..*..",
		"..*..",
		"..*..",
	)

	got := ComputeAllMatches(g)
	assert.Equal(t, []Coord{C(2, 1), C(2, 2), C(2, 3)}, got.Coords())
	assert.False(t, got.Contains(C(1, 0)), "wild only pairs with wild")

	k, _ := got.Kind(C(2, 2))
	assert.Equal(t, Wild, k)
}

func TestComputeAllMatchesDoesNotMutate(t *testing.T) {
	g := rowFixture(t)
	before := g.Clone()

	ComputeAllMatches(g)
	FindHorizontalMatches(g, C(0, 0), MinMatch)
	ScanDirection(g, C(0, 0), Right, 1)

	assert.True(t, g.Equal(before))
}

func TestComputeAllMatchesConcurrentSnapshots(t *testing.T) {
	g := board(t, "RRR", "GBY", "RRR")

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		snapshot := g.Clone()
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ComputeAllMatches(snapshot).Len()
		}(i)
	}
	wg.Wait()

	for _, n := range results {
		assert.Equal(t, 6, n)
	}
}

func TestCanSwap(t *testing.T) {
	g := board(t,
		"RG.",
		"BYC",
	)

	tests := []struct {
		name     string
		a, b     Coord
		expected bool
	}{
		{"adjacent pieces", C(0, 0), C(1, 0), true},
		{"adjacent vertical", C(0, 0), C(0, 1), true},
		{"result irrelevant", C(1, 1), C(2, 1), true},
		{"two apart", C(0, 0), C(2, 0), false},
		{"diagonal", C(0, 0), C(1, 1), false},
		{"same cell", C(0, 0), C(0, 0), false},
		{"empty target", C(1, 0), C(2, 0), false},
		{"out of bounds", C(2, 1), C(3, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanSwap(g, tc.a, tc.b))
		})
	}
}
