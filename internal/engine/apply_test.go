package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestMoveTo_TrialRestoresState(t *testing.T) {
	for _, pos := range perftPositions {
		t.Run(pos.name, func(t *testing.T) {
			g := gameFromDiagram(t, pos.toMove, pos.diagram)
			before := takeSnapshot(g)

			for _, p := range g.Pieces(pos.toMove) {
				for _, dest := range g.possibleMoves(p.ID, false).Squares() {
					g.moveTo(p.ID, dest, false, true)
					testutil.AssertEqual(t, takeSnapshot(g), before, "after trial %v %v-%v", p.Kind, p.Square, dest)
				}
			}
		})
	}
}

func TestPlay_RevertRestoresState(t *testing.T) {
	for _, pos := range perftPositions {
		t.Run(pos.name, func(t *testing.T) {
			g := gameFromDiagram(t, pos.toMove, pos.diagram)
			before := takeSnapshot(g)

			for _, p := range g.Pieces(pos.toMove) {
				for _, dest := range g.possibleMoves(p.ID, false).Squares() {
					tok, ok := g.play(p.ID, dest, false, false)
					if ok {
						g.promoting = chess.NoPiece
						g.revert(tok)
					}
					testutil.AssertEqual(t, takeSnapshot(g), before, "after %v %v-%v (committed %v)", p.Kind, p.Square, dest, ok)
				}
			}
		})
	}
}

func TestMoveTo_Validate(t *testing.T) {
	g := NewGame(WithLogger(quietLogger))
	pawn := g.board.At(sq("e2"))
	before := takeSnapshot(g)

	if g.moveTo(pawn, sq("e5"), true, false) {
		t.Error("moveTo(e2, e5, validate) = true, want false")
	}
	testutil.AssertEqual(t, takeSnapshot(g), before)

	if !g.moveTo(pawn, sq("e4"), true, true) {
		t.Error("moveTo(e2, e4, trial) = false, want true")
	}
	testutil.AssertEqual(t, takeSnapshot(g), before)

	if !g.moveTo(pawn, sq("e4"), true, false) {
		t.Fatal("moveTo(e2, e4) = false, want true")
	}
	if p, _ := g.PieceByID(pawn); p.Square != sq("e4") || p.Moves != 1 {
		t.Errorf("pawn = %+v, want on e4 with one move", p)
	}
}

func TestCapture_RestoresListOrder(t *testing.T) {
	// Black's list is king, d5, e5; taking d5 removes the middle entry.
	g := gameFromDiagram(t, chess.White, "4k3/8/8/3pp3/4P3/8/8/4K3")
	taker := g.board.At(sq("e4"))
	victim := g.board.At(sq("d5"))
	want := g.Player(chess.Black).Active()

	if !g.moveTo(taker, sq("d5"), true, true) {
		t.Fatal("trial e4-d5 = false, want true")
	}
	testutil.AssertEqual(t, g.Player(chess.Black).Active(), want, "active list after trial capture")
	testutil.AssertEqual(t, g.Player(chess.Black).Removed(), []chess.PieceID(nil), "removed list after trial capture")

	tok, ok := g.play(taker, sq("d5"), true, false)
	if !ok {
		t.Fatal("play(e4-d5) = false, want true")
	}
	if tok.captured() != victim {
		t.Errorf("captured() = %d, want %d", tok.captured(), victim)
	}
	testutil.AssertEqual(t, g.Player(chess.Black).Removed(), []chess.PieceID{victim})

	g.revert(tok)
	testutil.AssertEqual(t, g.Player(chess.Black).Active(), want, "active list after revert")
	if p, _ := g.PieceByID(victim); p.Square != sq("d5") {
		t.Errorf("victim on %v after revert, want d5", p.Square)
	}
}

func TestPlayer_RemoveAndCancel(t *testing.T) {
	p := newPlayer(chess.White)
	p.active = []chess.PieceID{4, 7, 9}

	tests := []struct {
		id        chess.PieceID
		wantIndex int
	}{
		{7, 1},
		{9, 1},
		{5, -1},
	}
	var indexes []int
	for _, tt := range tests {
		got := p.remove(tt.id)
		if got != tt.wantIndex {
			t.Errorf("remove(%d) = %d, want %d", tt.id, got, tt.wantIndex)
		}
		indexes = append(indexes, got)
	}
	testutil.AssertEqual(t, p.Active(), []chess.PieceID{4})
	testutil.AssertEqual(t, p.Removed(), []chess.PieceID{7, 9})

	p.cancelRemove(9, indexes[1])
	p.cancelRemove(7, indexes[0])
	testutil.AssertEqual(t, p.Active(), []chess.PieceID{4, 7, 9})
	testutil.AssertEqual(t, p.Removed(), []chess.PieceID(nil))
}
