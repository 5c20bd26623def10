package chess

// PieceID is a stable handle to a piece held in a game's piece arena.
type PieceID int16

// NoPiece is the occupant of an empty square.
const NoPiece PieceID = -1

// Board tracks which piece occupies each of the 64 squares.
// It does not own pieces; occupants are handles into the game's arena.
type Board struct {
	Squares [NumSquares]PieceID
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset empties every square.
func (b *Board) Reset() {
	for i := range b.Squares {
		b.Squares[i] = NoPiece
	}
}

// At returns the occupant of sq, or NoPiece.
func (b *Board) At(sq Square) PieceID {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq]
}

// Empty reports whether sq has no occupant.
func (b *Board) Empty(sq Square) bool {
	return b.At(sq) == NoPiece
}

// Place binds id to sq, replacing any previous occupant.
func (b *Board) Place(sq Square, id PieceID) {
	if sq.Valid() {
		b.Squares[sq] = id
	}
}

// Clear unbinds sq.
func (b *Board) Clear(sq Square) {
	b.Place(sq, NoPiece)
}
