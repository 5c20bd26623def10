package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// controlledSquares returns the union of the control squares of colour's
// active pieces. excludeKing leaves out the king's own contribution, which
// every king-safety computation needs to avoid referring back to itself.
func (g *Game) controlledSquares(colour chess.Colour, excludeKing bool) chess.SquareSet {
	var squares chess.SquareSet
	for _, id := range g.players[colour].active {
		if excludeKing && g.pieces[id].Kind == chess.King {
			continue
		}
		squares |= g.possibleMoves(id, true)
	}
	return squares
}

// inCheck returns true if the given colour's king stands on a square the
// opponent controls.
func (g *Game) inCheck(colour chess.Colour) bool {
	king := g.king(colour)
	if !king.OnBoard() {
		return false // No king found
	}
	return g.controlledSquares(colour.Opposite(), true).Has(king.Square)
}

// king returns the given colour's king.
func (g *Game) king(colour chess.Colour) *Piece {
	id := g.players[colour].king
	if id == chess.NoPiece {
		return &Piece{ID: chess.NoPiece, Square: chess.NoSquare}
	}
	return &g.pieces[id]
}
