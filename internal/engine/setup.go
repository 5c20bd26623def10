package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Placement puts one piece on the board when building a position.
type Placement struct {
	Kind   chess.Kind
	Colour chess.Colour
	Square chess.Square
	Moves  int // prior moves made by the piece; non-zero rules out castling
}

// backRank is the standard order of pieces from the a-file to the h-file.
var backRank = []chess.Kind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}

// StandardPlacements returns the standard chess starting position.
func StandardPlacements() []Placement {
	placements := make([]Placement, 0, 32)
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRank(colour)
		pawns := chess.PawnRank(colour)
		for i, kind := range backRank {
			col := chess.Col(chess.FirstCol + i)
			placements = append(placements, Placement{Kind: kind, Colour: colour, Square: chess.SquareOf(col, home)})
		}
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			placements = append(placements, Placement{Kind: chess.Pawn, Colour: colour, Square: chess.SquareOf(col, pawns)})
		}
	}
	return placements
}

// validatePlacements checks squares, kinds and the one-king-per-side rule.
func validatePlacements(placements []Placement) error {
	var occupied chess.SquareSet
	kings := [2]int{}

	for _, pl := range placements {
		if !pl.Square.Valid() {
			return &errors.SetupError{Err: errors.ErrInvalidSetup, Reason: fmt.Sprintf("%v off the board", pl.Kind)}
		}
		if pl.Kind < chess.Pawn || pl.Kind > chess.King {
			return &errors.SetupError{Err: errors.ErrInvalidSetup, Square: pl.Square.String(), Reason: "unknown piece kind"}
		}
		if pl.Colour != chess.White && pl.Colour != chess.Black {
			return &errors.SetupError{Err: errors.ErrInvalidSetup, Square: pl.Square.String(), Reason: "unknown colour"}
		}
		if occupied.Has(pl.Square) {
			return &errors.SetupError{Err: errors.ErrInvalidSetup, Square: pl.Square.String(), Reason: "square occupied twice"}
		}
		occupied = occupied.Add(pl.Square)

		if pl.Kind == chess.Pawn {
			if r := pl.Square.Rank(); r == chess.FirstRank || r == chess.LastRank {
				return &errors.SetupError{Err: errors.ErrInvalidSetup, Square: pl.Square.String(), Reason: "pawn on first or last rank"}
			}
		}
		if pl.Kind == chess.King {
			kings[pl.Colour]++
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return &errors.SetupError{
				Err:    errors.ErrInvalidSetup,
				Reason: fmt.Sprintf("%s has %d kings, want exactly 1", colour, kings[colour]),
			}
		}
	}
	return nil
}

// place fills the arena, board and players from validated placements.
func (g *Game) place(placements []Placement) {
	g.pieces = make([]Piece, 0, len(placements))
	for _, pl := range placements {
		id := chess.PieceID(len(g.pieces))
		g.pieces = append(g.pieces, Piece{
			ID:     id,
			Kind:   pl.Kind,
			Colour: pl.Colour,
			Square: pl.Square,
			Moves:  pl.Moves,
		})
		g.board.Place(pl.Square, id)

		player := g.players[pl.Colour]
		player.active = append(player.active, id)
		if pl.Kind == chess.King {
			player.king = id
		}
	}
}
