// Package hashing provides position keys and a shared cache of perft counts.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Fixed seeds so keys are stable across runs.
const (
	zobristSeed1 = 0x9E3779B97F4A7C15
	zobristSeed2 = 0xD1B54A32D192ED03
)

// numKinds covers Pawn through King; NoKind has no entry.
const numKinds = int(chess.King)

// Zobrist holds the random values XORed together to form a position key.
type Zobrist struct {
	pieces    [2][numKinds][chess.NumSquares]uint64
	blackMove uint64
	castling  [2][2]uint64 // colour, then 0 king side / 1 queen side
	enPassant [chess.BoardSize]uint64
}

// NewZobrist fills a table from the given seeds.
func NewZobrist(seed1, seed2 uint64) *Zobrist {
	r := rand.New(rand.NewPCG(seed1, seed2))
	z := &Zobrist{}
	for c := range z.pieces {
		for k := range z.pieces[c] {
			for sq := range z.pieces[c][k] {
				z.pieces[c][k][sq] = r.Uint64()
			}
		}
	}
	z.blackMove = r.Uint64()
	for c := range z.castling {
		for side := range z.castling[c] {
			z.castling[c][side] = r.Uint64()
		}
	}
	for f := range z.enPassant {
		z.enPassant[f] = r.Uint64()
	}
	return z
}

// Default is the table used by the engine.
var Default = NewZobrist(zobristSeed1, zobristSeed2)

// Piece returns the value for a piece of kind k and colour c on sq.
func (z *Zobrist) Piece(c chess.Colour, k chess.Kind, sq chess.Square) uint64 {
	if k < chess.Pawn || k > chess.King || !sq.Valid() {
		return 0
	}
	return z.pieces[c][k-1][sq]
}

// SideToMove returns the value mixed in when Black is to move.
func (z *Zobrist) SideToMove(c chess.Colour) uint64 {
	if c == chess.Black {
		return z.blackMove
	}
	return 0
}

// Castling returns the value for one castling right.
func (z *Zobrist) Castling(c chess.Colour, kingSide bool) uint64 {
	if kingSide {
		return z.castling[c][0]
	}
	return z.castling[c][1]
}

// EnPassant returns the value for an en passant capture on the given file.
func (z *Zobrist) EnPassant(col chess.Col) uint64 {
	if col < chess.FirstCol || col > chess.LastCol {
		return 0
	}
	return z.enPassant[col-chess.FirstCol]
}
