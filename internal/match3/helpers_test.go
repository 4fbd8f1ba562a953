package match3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// board builds a grid from compact rows such as "RRRBB".
// rows[0] is y=0, the bottom row.
func board(t *testing.T, rows ...string) *Grid {
	t.Helper()

	kinds := make([][]PieceKind, len(rows))
	for y, row := range rows {
		for _, r := range row {
			k, ok := ParseKind(string(r))
			require.Truef(t, ok, "unknown piece %q in row %d", r, y)
			kinds[y] = append(kinds[y], k)
		}
	}

	g, err := NewGridFromRows(kinds)
	require.NoError(t, err)
	return g
}
