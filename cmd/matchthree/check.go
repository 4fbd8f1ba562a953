package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DeXoteric/MatchThreeGame/internal/match3"
	"github.com/DeXoteric/MatchThreeGame/internal/match3/boardfile"
)

var flagBoardID string

var checkCmd = &cobra.Command{
	Use:   "check <board.yaml|dir>",
	Short: "Report matches and valid swaps on board files",
	Long: `Load a board file, or every board file under a directory, and report
the cells that already form a run of three or more and every swap that
would create one.

Examples:
  matchthree check boards/corner.yaml
  matchthree check boards/
  matchthree check boards/ --id corner`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagBoardID, "id", "", "Only check the board with this ID (directory mode)")
}

func runCheck(_ *cobra.Command, args []string) error {
	logger := newLogger("check")

	boards, err := loadBoards(args[0])
	if err != nil {
		return err
	}
	logger.Debug("boards loaded", "count", len(boards), "path", args[0])

	for i, b := range boards {
		if i > 0 {
			fmt.Println()
		}
		checkBoard(logger, b)
	}
	return nil
}

// loadBoards loads a single file, or all boards under a directory.
func loadBoards(path string) ([]boardfile.Board, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		b, err := boardfile.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return []boardfile.Board{b}, nil
	}

	loader := boardfile.NewLoader(path)
	if flagBoardID != "" {
		b, err := loader.LoadByID(flagBoardID)
		if err != nil {
			return nil, err
		}
		return []boardfile.Board{b}, nil
	}

	boards, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, fmt.Errorf("no board files under %s", path)
	}
	return boards, nil
}

// checkBoard prints the board with its current runs and productive swaps.
func checkBoard(logger *log.Logger, b boardfile.Board) {
	title := b.ID
	if b.Name != "" {
		title = fmt.Sprintf("%s (%s)", b.ID, b.Name)
	}
	fmt.Println(title)
	for _, row := range boardfile.FormatRows(b.Grid) {
		fmt.Println("  " + row)
	}
	fmt.Println()

	highlights := match3.ComputeAllMatches(b.Grid)
	if highlights.Empty() {
		fmt.Println("Runs: none")
	} else {
		cells := make([]string, 0, highlights.Len())
		for _, c := range highlights.Coords() {
			kind, _ := highlights.Kind(c)
			cells = append(cells, fmt.Sprintf("%v=%c", c, kind.Char()))
		}
		fmt.Printf("Runs: %d cells %s\n", highlights.Len(), strings.Join(cells, " "))
	}

	swaps := match3.FindValidSwaps(b.Grid)
	if len(swaps) == 0 {
		fmt.Println("Swaps: none")
	} else {
		fmt.Printf("Swaps: %d\n", len(swaps))
		for _, s := range swaps {
			res, err := match3.EvaluateSwap(b.Grid, s.A, s.B)
			if err != nil {
				continue
			}
			fmt.Printf("  %v clears %d\n", s, res.Matched.Len())
		}
	}

	logger.Info("board checked",
		"id", b.ID,
		"size", fmt.Sprintf("%dx%d", b.Grid.Width(), b.Grid.Height()),
		"runs", highlights.Len(),
		"swaps", len(swaps),
	)
}
