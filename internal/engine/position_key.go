package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// WithPerftCache shares c between Perft calls and the clones PerftDivide
// hands to its workers.
func WithPerftCache(c *hashing.PerftCache) Option {
	return func(g *Game) {
		g.perftCache = c
	}
}

// PositionKey returns a Zobrist key of everything that decides the legal
// moves of the side to move: piece placement, side to move, castling
// rights and any pawn just open to en passant.
func (g *Game) PositionKey() uint64 {
	return g.positionKey(g.toMove)
}

func (g *Game) positionKey(colour chess.Colour) uint64 {
	z := hashing.Default
	key := z.SideToMove(colour)

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, id := range g.players[c].active {
			p := &g.pieces[id]
			key ^= z.Piece(p.Colour, p.Kind, p.Square)
		}
		key ^= g.castlingKey(c)
	}

	if col, ok := g.enPassantFile(colour); ok {
		key ^= z.EnPassant(col)
	}
	return key
}

// enPassantFile returns the file of a pawn that a pawn of colour may take
// en passant right now. A double push nobody can answer leaves no file.
func (g *Game) enPassantFile(colour chess.Colour) (chess.Col, bool) {
	for _, id := range g.players[colour].active {
		p := &g.pieces[id]
		if p.Kind != chess.Pawn {
			continue
		}
		if sq, ok := g.enPassantTarget(p); ok {
			return sq.Col(), true
		}
	}
	return 0, false
}

// castlingKey mixes in the castling rights colour keeps: an unmoved king on
// the e-file and an unmoved rook of its colour in the corner.
func (g *Game) castlingKey(colour chess.Colour) uint64 {
	k := g.king(colour)
	home := chess.HomeRank(colour)
	if k.Moves != 0 || k.Square != chess.SquareOf(kingStartCol, home) {
		return 0
	}

	var key uint64
	for _, side := range castlingSides {
		rid := g.board.At(chess.SquareOf(side.rookCol, home))
		if rid == chess.NoPiece {
			continue
		}
		rook := &g.pieces[rid]
		if rook.Kind == chess.Rook && rook.Colour == colour && rook.Moves == 0 {
			key ^= hashing.Default.Castling(colour, side.rookCol == 'h')
		}
	}
	return key
}
