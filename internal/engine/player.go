package engine

import (
	"slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Player owns one side's pieces.
// The removed list exists so that captures made by trial moves can be undone exactly.
type Player struct {
	Colour   chess.Colour
	HomeRank chess.Rank
	PawnRank chess.Rank

	king    chess.PieceID
	active  []chess.PieceID
	removed []chess.PieceID
}

func newPlayer(colour chess.Colour) *Player {
	return &Player{
		Colour:   colour,
		HomeRank: chess.HomeRank(colour),
		PawnRank: chess.PawnRank(colour),
		king:     chess.NoPiece,
	}
}

// remove moves id from the active list to the removed list and returns the
// index it held, or -1 if it was not active.
func (p *Player) remove(id chess.PieceID) int {
	i := slices.Index(p.active, id)
	if i < 0 {
		return -1
	}
	p.active = slices.Delete(p.active, i, i+1)
	p.removed = append(p.removed, id)
	return i
}

// cancelRemove puts id back into the active list at index at.
func (p *Player) cancelRemove(id chess.PieceID, at int) {
	if i := slices.Index(p.removed, id); i >= 0 {
		p.removed = slices.Delete(p.removed, i, i+1)
	}
	if at < 0 || at > len(p.active) {
		at = len(p.active)
	}
	p.active = slices.Insert(p.active, at, id)
}

// Active returns the handles of the player's pieces on the board.
func (p *Player) Active() []chess.PieceID {
	return slices.Clone(p.active)
}

// Removed returns the handles of the player's captured pieces, oldest first.
func (p *Player) Removed() []chess.PieceID {
	return slices.Clone(p.removed)
}

func (p *Player) clone() *Player {
	c := *p
	c.active = slices.Clone(p.active)
	c.removed = slices.Clone(p.removed)
	return &c
}
