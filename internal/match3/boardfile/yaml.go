// Package boardfile loads fixed board layouts from YAML files.
// Boards are used for scripted game starts, the check command and tests.
package boardfile

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DeXoteric/MatchThreeGame/internal/match3"
)

// ErrNoRows is returned for a board file without any rows.
var ErrNoRows = errors.New("boardfile: board has no rows")

// YAMLBoard represents the YAML structure for a board file.
//
//	id: corner
//	name: Corner triple
//	rows:            # top row first, as it is displayed
//	  - "G B Y"
//	  - "R B G"
//	  - "R R R"
type YAMLBoard struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Board represents a parsed board ready for use.
type Board struct {
	ID       string
	Name     string
	Grid     *match3.Grid
	Metadata map[string]string
	FilePath string
}

// ParseYAML parses a YAML board file.
func ParseYAML(data []byte) (Board, error) {
	var yb YAMLBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	grid, err := ParseRows(yb.Rows)
	if err != nil {
		return Board{}, fmt.Errorf("board %q: %w", yb.ID, err)
	}

	return Board{
		ID:       yb.ID,
		Name:     yb.Name,
		Grid:     grid,
		Metadata: yb.Metadata,
	}, nil
}

// ParseRows converts display rows (top row first) into a grid.
// A row is either space separated tokens ("R B wild") or one character per piece ("RB*").
func ParseRows(rows []string) (*match3.Grid, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	kinds := make([][]match3.PieceKind, len(rows))
	for i, row := range rows {
		y := len(rows) - 1 - i
		for _, tok := range tokens(row) {
			k, ok := match3.ParseKind(tok)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown piece %q", i+1, tok)
			}
			kinds[y] = append(kinds[y], k)
		}
	}

	return match3.NewGridFromRows(kinds)
}

// tokens splits a row into piece tokens. A lone field is one piece when it
// names a kind ("red" on a one-column board) and compact characters otherwise.
func tokens(row string) []string {
	fields := strings.Fields(row)
	if len(fields) > 1 {
		return fields
	}
	if len(fields) == 1 {
		if _, ok := match3.ParseKind(fields[0]); ok {
			return fields
		}
	}
	row = strings.TrimSpace(row)
	out := make([]string, 0, len(row))
	for _, r := range row {
		out = append(out, string(r))
	}
	return out
}

// FormatRows renders a grid back to display rows, top row first.
func FormatRows(g *match3.Grid) []string {
	return strings.Split(g.String(), "\n")
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
