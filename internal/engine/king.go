package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// kingMoves generates king steps that do not walk next to the opponent king
// or onto a square the opponent controls, plus castling outside control mode.
func (g *Game) kingMoves(k *Piece, control bool) chess.SquareSet {
	opponent := k.Colour.Opposite()

	moves := g.leap(k, kingMoves, control)
	moves &^= g.kingZone(opponent)
	moves &^= g.attackedPast(k, opponent)

	if !control {
		moves |= g.castlingMoves(k)
	}
	return moves
}

// kingZone returns the squares adjacent to the given colour's king.
func (g *Game) kingZone(colour chess.Colour) chess.SquareSet {
	king := g.king(colour)
	var zone chess.SquareSet
	if !king.OnBoard() {
		return zone
	}
	for _, off := range kingMoves {
		if sq, ok := king.Square.Offset(off[0], off[1]); ok {
			zone = zone.Add(sq)
		}
	}
	return zone
}

// attackedPast returns the squares controlled by colour by, leaving out by's
// own king, computed with king k lifted off its square so that a checking
// ray is not stopped by the king it attacks.
func (g *Game) attackedPast(k *Piece, by chess.Colour) chess.SquareSet {
	from := k.Square
	g.board.Clear(from)
	attacked := g.controlledSquares(by, true)
	g.board.Place(from, k.ID)
	return attacked
}
