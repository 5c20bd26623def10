package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// binding records one piece relocation and any capture it made, so that
// it can be undone exactly.
type binding struct {
	piece      chess.PieceID
	from, to   chess.Square
	captured   chess.PieceID
	capturedAt chess.Square
	listIndex  int // index of the captured piece in its player's active list
	counted    bool
}

// undoToken holds the bindings touched by one move: the mover and, when
// castling, the rook.
type undoToken struct {
	steps [2]binding
	n     int
}

func (t *undoToken) push(b binding) {
	t.steps[t.n] = b
	t.n++
}

// castled reports whether the move relocated a rook as well.
func (t undoToken) castled() bool {
	return t.n == 2
}

// captured returns the piece taken by the move, or NoPiece.
func (t undoToken) captured() chess.PieceID {
	return t.steps[0].captured
}

// relocate moves id to dest, capturing whatever stands on captureAt.
// Move counters are incremented only when count is set.
func (g *Game) relocate(id chess.PieceID, dest, captureAt chess.Square, count bool) binding {
	p := &g.pieces[id]
	b := binding{
		piece:      id,
		from:       p.Square,
		to:         dest,
		captured:   chess.NoPiece,
		capturedAt: captureAt,
		listIndex:  -1,
		counted:    count,
	}

	if victim := g.board.At(captureAt); victim != chess.NoPiece && victim != id {
		b.captured = victim
		b.listIndex = g.players[g.pieces[victim].Colour].remove(victim)
		g.pieces[victim].Square = chess.NoSquare
		g.board.Clear(captureAt)
	}

	g.board.Clear(b.from)
	g.board.Place(dest, id)
	p.Square = dest
	if count {
		p.Moves++
	}
	return b
}

// unbind reverses a single relocation.
func (g *Game) unbind(b binding) {
	p := &g.pieces[b.piece]
	if b.counted {
		p.Moves--
	}
	g.board.Clear(b.to)
	g.board.Place(b.from, b.piece)
	p.Square = b.from

	if b.captured != chess.NoPiece {
		victim := &g.pieces[b.captured]
		victim.Square = b.capturedAt
		g.board.Place(b.capturedAt, b.captured)
		g.players[victim.Colour].cancelRemove(b.captured, b.listIndex)
	}
}

// apply performs the move of id to dest, including the castling rook and the
// en passant capture, and returns the token that undoes it.
func (g *Game) apply(id chess.PieceID, dest chess.Square, trial bool) undoToken {
	p := &g.pieces[id]
	var tok undoToken

	captureAt := dest
	if sq, ok := g.isEnPassant(p, dest); ok {
		captureAt = sq
	}
	rookFrom, rookTo, castling := castlingRook(p, dest)

	tok.push(g.relocate(id, dest, captureAt, !trial))
	if castling {
		if rid := g.board.At(rookFrom); rid != chess.NoPiece {
			tok.push(g.relocate(rid, rookTo, rookTo, !trial))
		}
	}
	return tok
}

// revert undoes every binding of tok in reverse order.
func (g *Game) revert(tok undoToken) {
	for i := tok.n - 1; i >= 0; i-- {
		g.unbind(tok.steps[i])
	}
}

// moveTo moves piece id to dest.
//
// With validate set, dest must be one of the piece's possible moves or the
// call fails without touching anything. After the move the mover's own king
// is tested; a move that leaves it in check is rolled back and reported as
// a failure. A trial call is always rolled back and reports whether the move
// would have been safe.
func (g *Game) moveTo(id chess.PieceID, dest chess.Square, validate, trial bool) bool {
	_, ok := g.play(id, dest, validate, trial)
	return ok
}

// play is moveTo returning the undo token of a committed move.
func (g *Game) play(id chess.PieceID, dest chess.Square, validate, trial bool) (undoToken, bool) {
	if validate && !g.possibleMoves(id, false).Has(dest) {
		return undoToken{}, false
	}

	colour := g.pieces[id].Colour
	tok := g.apply(id, dest, trial)
	safe := !g.inCheck(colour)
	if !safe || trial {
		g.revert(tok)
		return undoToken{}, safe
	}

	p := &g.pieces[id]
	if p.Kind == chess.Pawn && p.Square.Rank() == chess.PromotionRank(p.Colour) {
		g.promoting = id
	}
	return tok, true
}
