package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pushes, diagonal captures and en passant.
// Pushes and en passant never count as control; diagonals always do.
func (g *Game) pawnMoves(p *Piece, control bool) chess.SquareSet {
	dir := chess.ColourOffset(p.Colour)
	var moves chess.SquareSet

	if !control {
		if one, ok := p.Square.Offset(0, dir); ok && g.board.Empty(one) {
			moves = moves.Add(one)
			// Double push from the pawn rank
			if p.Square.Rank() == chess.PawnRank(p.Colour) {
				if two, ok := one.Offset(0, dir); ok && g.board.Empty(two) {
					moves = moves.Add(two)
				}
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		sq, ok := p.Square.Offset(dc, dir)
		if !ok {
			continue
		}
		if control {
			moves = moves.Add(sq)
			continue
		}
		if id := g.board.At(sq); id != chess.NoPiece {
			if add, _ := g.target(p.Colour, sq, false); add {
				moves = moves.Add(sq)
			}
		}
	}

	if !control {
		if sq, ok := g.enPassantTarget(p); ok {
			moves = moves.Add(sq)
		}
	}
	return moves
}

// enPassantTarget returns the square behind an enemy pawn that has just
// advanced two squares to stand beside p.
func (g *Game) enPassantTarget(p *Piece) (chess.Square, bool) {
	last, ok := g.LastMove()
	if !ok || last.Kind != chess.Pawn || last.Colour == p.Colour {
		return chess.NoSquare, false
	}
	if abs(int(last.To.Rank())-int(last.From.Rank())) != 2 {
		return chess.NoSquare, false
	}
	if g.pieces[last.Piece].Square != last.To {
		return chess.NoSquare, false
	}
	if last.To.Rank() != p.Square.Rank() || abs(int(last.To.Col())-int(p.Square.Col())) != 1 {
		return chess.NoSquare, false
	}
	behind, ok := last.To.Offset(0, chess.ColourOffset(p.Colour))
	if !ok || !g.board.Empty(behind) {
		return chess.NoSquare, false
	}
	return behind, true
}

// isEnPassant reports whether pawn p moving to dest is an en passant capture,
// returning the square of the pawn taken.
func (g *Game) isEnPassant(p *Piece, dest chess.Square) (chess.Square, bool) {
	if p.Kind != chess.Pawn || dest.Col() == p.Square.Col() || !g.board.Empty(dest) {
		return chess.NoSquare, false
	}
	return chess.SquareOf(dest.Col(), p.Square.Rank()), true
}
