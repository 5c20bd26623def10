package engine

import (
	"io"
	"log/slog"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// quietLogger discards move diagnostics during tests.
var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// sq is shorthand for chess.MustSquare.
func sq(name string) chess.Square {
	return chess.MustSquare(name)
}

// placementsFromDiagram converts a board diagram to placements.
func placementsFromDiagram(t testing.TB, diagram string) []Placement {
	t.Helper()
	var placements []Placement
	for _, p := range testutil.MustParseDiagram(t, diagram) {
		placements = append(placements, Placement{Kind: p.Kind, Colour: p.Colour, Square: p.Square})
	}
	return placements
}

// gameFromDiagram builds a game from a board diagram with toMove to play.
func gameFromDiagram(t *testing.T, toMove chess.Colour, diagram string) *Game {
	t.Helper()
	g, err := NewGameFromPlacements(toMove, placementsFromDiagram(t, diagram), WithLogger(quietLogger))
	if err != nil {
		t.Fatalf("NewGameFromPlacements(%q) failed: %v", diagram, err)
	}
	return g
}

// playMoves plays coordinate moves such as "e2e4" or "e7e8n", handing the
// turn over after each one.
func playMoves(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		promotion := chess.NoKind
		if len(m) == 5 {
			promotion, _ = chess.KindFromLetter(m[4])
		}
		if err := g.Move(sq(m[0:2]), sq(m[2:4]), promotion); err != nil {
			t.Fatalf("Move(%s) failed: %v", m, err)
		}
		g.OpponentToPlay()
	}
}

// snapshot is the observable state that a rolled back move must restore.
type snapshot struct {
	Board   chess.Board
	Pieces  []Piece
	Active  [2][]chess.PieceID
	Removed [2][]chess.PieceID
	History int
}

func takeSnapshot(g *Game) snapshot {
	s := snapshot{
		Board:   g.board,
		Pieces:  append([]Piece(nil), g.pieces...),
		History: len(g.history),
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		s.Active[c] = g.players[c].Active()
		s.Removed[c] = g.players[c].Removed()
	}
	return s
}
