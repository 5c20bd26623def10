package main

import (
	"errors"
	"regexp"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// moveInput matches coordinate moves such as "e2-e4" or "e7-e8=Q", with
// optional spaces and in either case.
var moveInput = regexp.MustCompile(`(?i)^\s*([a-h])\s*([1-8])\s*-\s*([a-h])\s*([1-8])\s*(?:=\s*([qrbn]))?\s*$`)

var errBadInput = errors.New("expected a move like e2-e4 or e7-e8=Q")

// enteredMove is one move read from the player.
type enteredMove struct {
	from, to  chess.Square
	promotion chess.Kind
}

// parseMove reads a coordinate move.
func parseMove(s string) (enteredMove, error) {
	m := moveInput.FindStringSubmatch(s)
	if m == nil {
		return enteredMove{}, errBadInput
	}

	move := enteredMove{
		from:      squareOf(m[1], m[2]),
		to:        squareOf(m[3], m[4]),
		promotion: chess.NoKind,
	}
	if m[5] != "" {
		move.promotion, _ = chess.KindFromLetter(m[5][0])
	}
	return move, nil
}

func squareOf(col, rank string) chess.Square {
	return chess.SquareOf(chess.Col(strings.ToLower(col)[0]), chess.Rank(rank[0]))
}
