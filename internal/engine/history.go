package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveKey identifies a committed move by move number and the side that played it.
type MoveKey struct {
	Number int
	Colour chess.Colour
}

// MoveRecord is one committed move.
type MoveRecord struct {
	Key    MoveKey
	Piece  chess.PieceID
	Kind   chess.Kind // kind of the mover before any promotion
	Colour chess.Colour
	From   chess.Square
	To     chess.Square

	// The kind captured (NoKind if no capture).
	Captured chess.Kind

	Castling  bool
	EnPassant bool

	// The kind promoted to (NoKind if not a promotion).
	Promotion chess.Kind
}

// String renders the record in coordinate form, e.g. "1. White e2-e4".
func (m MoveRecord) String() string {
	s := fmt.Sprintf("%d. %s %v-%v", m.Key.Number, m.Key.Colour, m.From, m.To)
	if m.Promotion != chess.NoKind {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}

// IsCapture returns true if this move took a piece.
func (m MoveRecord) IsCapture() bool {
	return m.Captured != chess.NoKind
}

// LastMove returns the most recent committed move; false at game start.
func (g *Game) LastMove() (MoveRecord, bool) {
	if len(g.history) == 0 {
		return MoveRecord{}, false
	}
	return g.history[len(g.history)-1], true
}

// History returns every committed move in order.
func (g *Game) History() []MoveRecord {
	out := make([]MoveRecord, len(g.history))
	copy(out, g.history)
	return out
}

// HistoryAt returns the move played under key.
func (g *Game) HistoryAt(key MoveKey) (MoveRecord, bool) {
	i, ok := g.historyIndex[key]
	if !ok {
		return MoveRecord{}, false
	}
	return g.history[i], true
}

// record builds the history entry for a committed move.
func (g *Game) record(id chess.PieceID, kind chess.Kind, from, to chess.Square, tok undoToken) MoveRecord {
	rec := MoveRecord{
		Key:       MoveKey{Number: g.moveNumber, Colour: g.pieces[id].Colour},
		Piece:     id,
		Kind:      kind,
		Colour:    g.pieces[id].Colour,
		From:      from,
		To:        to,
		Captured:  chess.NoKind,
		Castling:  tok.castled(),
		Promotion: chess.NoKind,
	}
	if victim := tok.captured(); victim != chess.NoPiece {
		rec.Captured = g.pieces[victim].Kind
		rec.EnPassant = tok.steps[0].capturedAt != to
	}
	return rec
}
