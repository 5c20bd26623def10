package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Placed is one piece read from a diagram.
type Placed struct {
	Kind   chess.Kind
	Colour chess.Colour
	Square chess.Square
}

// ParseDiagram reads a board diagram written rank 8 first, ranks separated
// by '/', upper case for White, lower case for Black and digits for runs of
// empty squares, e.g. "4k3/8/8/8/8/8/8/4K2R".
func ParseDiagram(diagram string) ([]Placed, error) {
	ranks := strings.Split(diagram, "/")
	if len(ranks) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d ranks, want %d", len(ranks), chess.BoardSize)
	}

	var placed []Placed
	for i, row := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col(chess.FirstCol)
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				col += chess.Col(c - '0')
				continue
			}
			kind, ok := chess.KindFromLetter(c)
			if !ok {
				return nil, fmt.Errorf("rank %c: unexpected %q", rank, c)
			}
			if col > chess.LastCol {
				return nil, fmt.Errorf("rank %c: too many squares", rank)
			}
			colour := chess.White
			if c >= 'a' {
				colour = chess.Black
			}
			placed = append(placed, Placed{Kind: kind, Colour: colour, Square: chess.SquareOf(col, rank)})
			col++
		}
		if col != chess.LastCol+1 {
			return nil, fmt.Errorf("rank %c: %d squares, want %d", rank, col-chess.FirstCol, chess.BoardSize)
		}
	}
	return placed, nil
}

// MustParseDiagram is ParseDiagram that fails the test on error.
func MustParseDiagram(t testing.TB, diagram string) []Placed {
	t.Helper()
	placed, err := ParseDiagram(diagram)
	if err != nil {
		t.Fatalf("ParseDiagram(%q): %v", diagram, err)
	}
	return placed
}

// Squares converts coordinate names to squares, panicking on bad input.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		out = append(out, chess.MustSquare(n))
	}
	return out
}

// SortedSquares converts names to squares in ascending board order, the
// order chess.SquareSet.Squares returns.
func SortedSquares(names ...string) []chess.Square {
	return chess.SetOf(Squares(names...)...).Squares()
}
