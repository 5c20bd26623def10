// Package engine implements chess rules: move generation, check detection,
// castling, en passant, promotion and turn handling for a single game.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Piece is one piece held in a game's piece arena.
// A captured piece keeps its handle and has Square == chess.NoSquare.
type Piece struct {
	ID     chess.PieceID
	Kind   chess.Kind
	Colour chess.Colour
	Square chess.Square
	Moves  int // committed moves made by this piece
}

// OnBoard reports whether the piece still occupies a square.
func (p Piece) OnBoard() bool {
	return p.Square != chess.NoSquare
}

// Offset tables for leaping pieces and ray directions for sliders.
var (
	knightMoves  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingMoves    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs    = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// possibleMoves returns the destinations of a piece.
//
// With control set it returns the squares the piece threatens or defends:
// friendly-occupied squares are included and pawn pushes are not.
// Without control it returns the squares the piece could move to this turn,
// before the self-check test done by moveTo.
func (g *Game) possibleMoves(id chess.PieceID, control bool) chess.SquareSet {
	p := &g.pieces[id]
	if !p.OnBoard() {
		return 0
	}

	switch p.Kind {
	case chess.Pawn:
		return g.pawnMoves(p, control)
	case chess.Knight:
		return g.leap(p, knightMoves, control)
	case chess.Bishop:
		return g.slide(p, diagonalDirs, control)
	case chess.Rook:
		return g.slide(p, straightDirs, control)
	case chess.Queen:
		return g.slide(p, queenDirs, control)
	case chess.King:
		return g.kingMoves(p, control)
	}
	return 0
}

// target applies the occupancy rule to sq for a piece of the given colour.
// add reports whether sq is a destination; blocked whether a ray stops there.
// Outside control mode an enemy king is never a destination.
func (g *Game) target(colour chess.Colour, sq chess.Square, control bool) (add, blocked bool) {
	id := g.board.At(sq)
	if id == chess.NoPiece {
		return true, false
	}
	if control {
		return true, true
	}
	occupant := &g.pieces[id]
	if occupant.Colour == colour || occupant.Kind == chess.King {
		return false, true
	}
	return true, true
}

// slide casts a ray along each direction until it leaves the board or is blocked.
func (g *Game) slide(p *Piece, dirs [][2]int, control bool) chess.SquareSet {
	var moves chess.SquareSet
	for _, dir := range dirs {
		sq, ok := p.Square.Offset(dir[0], dir[1])
		for ok {
			add, blocked := g.target(p.Colour, sq, control)
			if add {
				moves = moves.Add(sq)
			}
			if blocked {
				break
			}
			sq, ok = sq.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// leap tries each fixed offset once.
func (g *Game) leap(p *Piece, offsets [][2]int, control bool) chess.SquareSet {
	var moves chess.SquareSet
	for _, off := range offsets {
		sq, ok := p.Square.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if add, _ := g.target(p.Colour, sq, control); add {
			moves = moves.Add(sq)
		}
	}
	return moves
}
