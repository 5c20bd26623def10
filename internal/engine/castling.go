package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingSide describes one castling option on the king's home rank.
type castlingSide struct {
	rookCol    chess.Col
	kingToCol  chess.Col
	rookToCol  chess.Col
	transitCol chess.Col // square the king crosses on its way to kingToCol
}

var castlingSides = []castlingSide{
	{rookCol: 'h', kingToCol: 'g', rookToCol: 'f', transitCol: 'f'},
	{rookCol: 'a', kingToCol: 'c', rookToCol: 'd', transitCol: 'd'},
}

// kingStartCol is the only file a king may castle from.
const kingStartCol chess.Col = 'e'

// castlingMoves returns the castling destinations currently open to king k.
func (g *Game) castlingMoves(k *Piece) chess.SquareSet {
	home := chess.HomeRank(k.Colour)
	if k.Moves != 0 || k.Square != chess.SquareOf(kingStartCol, home) {
		return 0
	}
	if g.inCheck(k.Colour) {
		return 0
	}

	opponent := k.Colour.Opposite()
	var attacked chess.SquareSet
	attackedKnown := false

	var moves chess.SquareSet
	for _, side := range castlingSides {
		rookSq := chess.SquareOf(side.rookCol, home)
		rid := g.board.At(rookSq)
		if rid == chess.NoPiece {
			continue
		}
		rook := &g.pieces[rid]
		if rook.Kind != chess.Rook || rook.Colour != k.Colour || rook.Moves != 0 {
			continue
		}

		// Every square strictly between king and rook, including the
		// knight square on the queen side, must be empty.
		if !g.isRankClear(k.Square, rookSq) {
			continue
		}

		if !attackedKnown {
			attacked = g.controlledSquares(opponent, true)
			attackedKnown = true
		}
		transit := chess.SquareOf(side.transitCol, home)
		landing := chess.SquareOf(side.kingToCol, home)
		if attacked.Has(transit) || attacked.Has(landing) {
			continue
		}
		if g.kingZone(opponent).Has(landing) {
			continue
		}
		moves = moves.Add(landing)
	}
	return moves
}

// isRankClear checks that every square strictly between from and to on one rank is empty.
func (g *Game) isRankClear(from, to chess.Square) bool {
	dir := sign(int(to) - int(from))
	for sq := from + chess.Square(dir); sq != to; sq += chess.Square(dir) {
		if !g.board.Empty(sq) {
			return false
		}
	}
	return true
}

// castlingRook returns the rook relocation implied by king k moving to dest,
// or false when the move is not a castling move.
func castlingRook(k *Piece, dest chess.Square) (from, to chess.Square, ok bool) {
	if k.Kind != chess.King || dest.Rank() != k.Square.Rank() {
		return chess.NoSquare, chess.NoSquare, false
	}
	if abs(int(dest.Col())-int(k.Square.Col())) != 2 {
		return chess.NoSquare, chess.NoSquare, false
	}
	for _, side := range castlingSides {
		if dest.Col() == side.kingToCol {
			rank := dest.Rank()
			return chess.SquareOf(side.rookCol, rank), chess.SquareOf(side.rookToCol, rank), true
		}
	}
	return chess.NoSquare, chess.NoSquare, false
}
