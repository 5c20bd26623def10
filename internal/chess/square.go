package chess

import "math/bits"

// Square is an index into the 8x8 board: a1 = 0, b1 = 1, ..., h8 = 63.
type Square int8

// NoSquare marks a piece that is not on the board.
const NoSquare Square = -1

// SquareOf converts character coordinates into a square.
// It returns NoSquare for coordinates outside a-h / 1-8.
func SquareOf(col Col, rank Rank) Square {
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return NoSquare
	}
	return Square(int(rank-RankBase)*BoardSize + int(col-ColBase))
}

// ParseSquare parses a two character coordinate such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	col := Col(s[0] | 0x20) // lower case
	sq := SquareOf(col, Rank(s[1]))
	return sq, sq != NoSquare
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic("chess: invalid square " + s)
	}
	return sq
}

// Valid reports whether sq addresses one of the 64 board squares.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// Col returns the file of the square.
func (sq Square) Col() Col {
	return Col(int(sq)%BoardSize + ColBase)
}

// Rank returns the rank of the square.
func (sq Square) Rank() Rank {
	return Rank(int(sq)/BoardSize + RankBase)
}

// Offset returns the square dc files and dr ranks away, or false when that
// leaves the board.
func (sq Square) Offset(dc, dr int) (Square, bool) {
	c := int(sq)%BoardSize + dc
	r := int(sq)/BoardSize + dr
	if c < 0 || c >= BoardSize || r < 0 || r >= BoardSize {
		return NoSquare, false
	}
	return Square(r*BoardSize + c), true
}

// IsLight returns true if the square is a light square (h1 is light).
func (sq Square) IsLight() bool {
	colNum := int(sq) % BoardSize
	rankNum := int(sq) / BoardSize
	return (colNum+rankNum)%2 == 1
}

// String returns the coordinate form of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte(sq.Col()), byte(sq.Rank())})
}

// SquareSet is a set of squares stored as a 64-bit mask.
type SquareSet uint64

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<uint(sq)
}

// Remove returns the set with sq excluded.
func (s SquareSet) Remove(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s &^ (1 << uint(sq))
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq)) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether the set holds no squares.
func (s SquareSet) Empty() bool {
	return s == 0
}

// Squares lists the set in ascending square order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		out = append(out, Square(bits.TrailingZeros64(m)))
	}
	return out
}

// SetOf builds a set from the given squares.
func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}
