package engine

import (
	"slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Status summarises the position for the side to move.
type Status int

const (
	Playing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Playing", "Check", "Checkmate", "Stalemate"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsOver reports whether the game has ended.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// hasLegalMoves returns true if the given colour has at least one legal move,
// found by trial-moving every piece to every one of its candidate destinations.
func (g *Game) hasLegalMoves(colour chess.Colour) bool {
	for _, id := range slices.Clone(g.players[colour].active) {
		for _, dest := range g.possibleMoves(id, false).Squares() {
			if g.moveTo(id, dest, false, true) {
				return true
			}
		}
	}
	return false
}

// legalMoves filters a piece's possible moves down to those that keep its king safe.
func (g *Game) legalMoves(id chess.PieceID) chess.SquareSet {
	var legal chess.SquareSet
	for _, dest := range g.possibleMoves(id, false).Squares() {
		if g.moveTo(id, dest, false, true) {
			legal = legal.Add(dest)
		}
	}
	return legal
}

// checkmated returns true if colour is in check and has no legal move.
func (g *Game) checkmated(colour chess.Colour) bool {
	return g.inCheck(colour) && !g.hasLegalMoves(colour)
}

// stalemated returns true if colour is not in check but has no legal move.
func (g *Game) stalemated(colour chess.Colour) bool {
	return !g.inCheck(colour) && !g.hasLegalMoves(colour)
}

// status classifies the position for colour.
func (g *Game) status(colour chess.Colour) Status {
	check := g.inCheck(colour)
	if g.hasLegalMoves(colour) {
		if check {
			return Check
		}
		return Playing
	}
	if check {
		return Checkmate
	}
	return Stalemate
}
