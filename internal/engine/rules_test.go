package engine

import (
	"slices"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
		toMove  chess.Colour
		want    Status
	}{
		{"start position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", chess.White, Playing},
		{"rook check", "4r1k1/8/8/8/8/8/8/4K3", chess.White, Check},
		{"defended queen mates", "4r1k1/8/8/8/8/8/4q3/4K3", chess.White, Checkmate},
		{"undefended queen can be taken", "6k1/8/8/8/8/8/4q3/4K3", chess.White, Check},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/4K3", chess.Black, Checkmate},
		{"back rank with luft", "R5k1/5pp1/8/8/8/8/8/4K3", chess.Black, Check},
		{"queen and king stalemate", "7k/5Q2/6K1/8/8/8/8/8", chess.Black, Stalemate},
		{"queen in the corner stalemate", "k7/8/1Q6/8/8/8/8/7K", chess.Black, Stalemate},
		{"stalemate broken by pawn move", "k7/8/1Q6/8/8/8/7p/4K3", chess.Black, Playing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameFromDiagram(t, tt.toMove, tt.diagram)
			if got := g.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
			if got, want := g.CurrentPlayerInCheck(), tt.want == Check || tt.want == Checkmate; got != want {
				t.Errorf("CurrentPlayerInCheck() = %v, want %v", got, want)
			}
			if got := g.CurrentPlayerCheckmated(); got != (tt.want == Checkmate) {
				t.Errorf("CurrentPlayerCheckmated() = %v, want %v", got, tt.want == Checkmate)
			}
			if got := g.CurrentPlayerStalemated(); got != (tt.want == Stalemate) {
				t.Errorf("CurrentPlayerStalemated() = %v, want %v", got, tt.want == Stalemate)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
		over   bool
	}{
		{Playing, "Playing", false},
		{Check, "Check", false},
		{Checkmate, "Checkmate", true},
		{Stalemate, "Stalemate", true},
		{Status(42), "Unknown", false},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
		if got := tt.status.IsOver(); got != tt.over {
			t.Errorf("%v.IsOver() = %v, want %v", tt.status, got, tt.over)
		}
	}
}

func TestCheckmate_PlayedOut(t *testing.T) {
	t.Run("fool's mate", func(t *testing.T) {
		g := NewGame(WithLogger(quietLogger))
		playMoves(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

		if got := g.Status(); got != Checkmate {
			t.Fatalf("Status() = %v, want Checkmate", got)
		}
		err := g.Move(sq("e2"), sq("e3"), chess.NoKind)
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	})

	t.Run("scholar's mate", func(t *testing.T) {
		g := NewGame(WithLogger(quietLogger))
		playMoves(t, g, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")

		if g.ToMove() != chess.Black {
			t.Fatalf("ToMove() = %v, want Black", g.ToMove())
		}
		if !g.CurrentPlayerCheckmated() {
			t.Error("CurrentPlayerCheckmated() = false, want true")
		}
	})
}

func TestCheckmate_RemovingAttacker(t *testing.T) {
	mate := "4r1k1/8/8/8/8/8/4q3/4K3"
	g := gameFromDiagram(t, chess.White, mate)
	if !g.CurrentPlayerCheckmated() {
		t.Fatalf("CurrentPlayerCheckmated() = false, want true")
	}

	// Without the rook the queen is undefended and the king takes it.
	g = gameFromDiagram(t, chess.White, "6k1/8/8/8/8/8/4q3/4K3")
	if g.CurrentPlayerCheckmated() {
		t.Error("CurrentPlayerCheckmated() = true without the rook, want false")
	}
	testutil.AssertEqual(t, g.LegalMoves(sq("e1")), testutil.Squares("e2"))
}

func TestPinnedPiece(t *testing.T) {
	g := gameFromDiagram(t, chess.White, "4r1k1/8/8/8/8/8/4B3/4K3")

	if possible := g.PossibleMoves(sq("e2")); !slices.Contains(possible, sq("d3")) {
		t.Errorf("PossibleMoves(e2) = %v, want d3 included", possible)
	}
	testutil.AssertEqual(t, g.LegalMoves(sq("e2")), []chess.Square(nil), "pinned bishop")

	err := g.Move(sq("e2"), sq("d3"), chess.NoKind)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name       string
		kingTo     string
		rookFrom   string
		rookTo     string
		blackReply string
	}{
		{"king side", "g1", "h1", "f1", "e8c8"},
		{"queen side", "c1", "a1", "d1", "e8g8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameFromDiagram(t, chess.White, "r3k2r/8/8/8/8/8/8/R3K2R")

			legal := g.LegalMoves(sq("e1"))
			if !slices.Contains(legal, sq(tt.kingTo)) {
				t.Fatalf("LegalMoves(e1) = %v, want %s included", legal, tt.kingTo)
			}
			playMoves(t, g, "e1"+tt.kingTo)

			king, ok := g.SquareAt(sq(tt.kingTo))
			if !ok || king.Kind != chess.King {
				t.Errorf("SquareAt(%s) = %v, want king", tt.kingTo, king)
			}
			rook, ok := g.SquareAt(sq(tt.rookTo))
			if !ok || rook.Kind != chess.Rook || rook.Moves != 1 {
				t.Errorf("SquareAt(%s) = %+v, want rook with one move", tt.rookTo, rook)
			}
			if _, ok := g.SquareAt(sq(tt.rookFrom)); ok {
				t.Errorf("SquareAt(%s) occupied after castling", tt.rookFrom)
			}
			last, _ := g.LastMove()
			if !last.Castling {
				t.Errorf("LastMove().Castling = false, want true")
			}

			// Black castles on the side the new rook square does not cover.
			playMoves(t, g, tt.blackReply)
			last, _ = g.LastMove()
			if !last.Castling || last.Colour != chess.Black {
				t.Errorf("LastMove() = %+v, want black castling", last)
			}
		})
	}
}

func TestCastling_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
		absent  []string
		present []string
	}{
		{"knight between king and rook", "r3k2r/8/8/8/8/8/8/RN2K2R", []string{"c1"}, []string{"g1"}},
		{"transit square attacked", "4kr2/8/8/8/8/8/8/4K2R", []string{"g1"}, nil},
		{"landing square attacked", "4k1r1/8/8/8/8/8/8/4K2R", []string{"g1"}, nil},
		{"king in check", "4r1k1/8/8/8/8/8/8/R3K2R", []string{"c1", "g1"}, nil},
		{"attacked knight square is allowed", "1r2k3/8/8/8/8/8/8/R3K3", nil, []string{"c1"}},
		{"no rook in the corner", "4k3/8/8/8/8/8/8/4K2B", []string{"g1"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameFromDiagram(t, chess.White, tt.diagram)
			legal := g.LegalMoves(sq("e1"))
			for _, s := range tt.absent {
				if slices.Contains(legal, sq(s)) {
					t.Errorf("LegalMoves(e1) = %v, want %s absent", legal, s)
				}
			}
			for _, s := range tt.present {
				if !slices.Contains(legal, sq(s)) {
					t.Errorf("LegalMoves(e1) = %v, want %s present", legal, s)
				}
			}
		})
	}
}

func TestCastling_AfterMoving(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
	}{
		{"king went and came back", []string{"e1f1", "e8d8", "f1e1", "d8e8"}},
		{"rook went and came back", []string{"h1h2", "e8d8", "h2h1", "d8e8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameFromDiagram(t, chess.White, "4k3/8/8/8/8/8/8/4K2R")
			playMoves(t, g, tt.moves...)
			if legal := g.LegalMoves(sq("e1")); slices.Contains(legal, sq("g1")) {
				t.Errorf("LegalMoves(e1) = %v, want g1 absent", legal)
			}
		})
	}

	t.Run("placement with prior moves", func(t *testing.T) {
		placements := placementsFromDiagram(t, "4k3/8/8/8/8/8/8/4K2R")
		for i := range placements {
			if placements[i].Kind == chess.Rook {
				placements[i].Moves = 3
			}
		}
		g, err := NewGameFromPlacements(chess.White, placements, WithLogger(quietLogger))
		testutil.AssertNoError(t, err)
		if legal := g.LegalMoves(sq("e1")); slices.Contains(legal, sq("g1")) {
			t.Errorf("LegalMoves(e1) = %v, want g1 absent", legal)
		}
	})
}

func TestEnPassant(t *testing.T) {
	g := NewGame(WithLogger(quietLogger))
	playMoves(t, g, "e2e4", "a7a6", "e4e5", "f7f5")

	victim, ok := g.SquareAt(sq("f5"))
	if !ok {
		t.Fatal("SquareAt(f5) empty, want black pawn")
	}
	if legal := g.LegalMoves(sq("e5")); !slices.Contains(legal, sq("f6")) {
		t.Fatalf("LegalMoves(e5) = %v, want f6 included", legal)
	}

	playMoves(t, g, "e5f6")

	if _, ok := g.SquareAt(sq("f5")); ok {
		t.Error("SquareAt(f5) occupied after en passant")
	}
	if p, ok := g.SquareAt(sq("f6")); !ok || p.Kind != chess.Pawn || p.Colour != chess.White {
		t.Errorf("SquareAt(f6) = %+v, want white pawn", p)
	}
	last, _ := g.LastMove()
	if !last.EnPassant || last.Captured != chess.Pawn {
		t.Errorf("LastMove() = %+v, want en passant capture of a pawn", last)
	}
	testutil.AssertEqual(t, g.Player(chess.Black).Removed(), []chess.PieceID{victim.ID})
	if got := len(g.Pieces(chess.Black)); got != 15 {
		t.Errorf("len(Pieces(Black)) = %d, want 15", got)
	}
	if p, _ := g.PieceByID(victim.ID); p.OnBoard() {
		t.Errorf("captured pawn still on %v", p.Square)
	}
}

func TestEnPassant_Black(t *testing.T) {
	g := NewGame(WithLogger(quietLogger))
	playMoves(t, g, "a2a3", "d7d5", "a3a4", "d5d4", "e2e4")

	if legal := g.LegalMoves(sq("d4")); !slices.Contains(legal, sq("e3")) {
		t.Fatalf("LegalMoves(d4) = %v, want e3 included", legal)
	}
	playMoves(t, g, "d4e3")
	if _, ok := g.SquareAt(sq("e4")); ok {
		t.Error("SquareAt(e4) occupied after en passant")
	}
}

func TestEnPassant_Expires(t *testing.T) {
	g := NewGame(WithLogger(quietLogger))
	playMoves(t, g, "e2e4", "a7a6", "e4e5", "f7f5", "h2h3", "a6a5")

	if legal := g.LegalMoves(sq("e5")); slices.Contains(legal, sq("f6")) {
		t.Errorf("LegalMoves(e5) = %v, want f6 absent", legal)
	}
	err := g.Move(sq("e5"), sq("f6"), chess.NoKind)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name      string
		promotion chess.Kind
		want      chess.Kind
		wantStr   string
	}{
		{"default is queen", chess.NoKind, chess.Queen, "1. White e7-e8=Q"},
		{"queen", chess.Queen, chess.Queen, "1. White e7-e8=Q"},
		{"rook", chess.Rook, chess.Rook, "1. White e7-e8=R"},
		{"bishop", chess.Bishop, chess.Bishop, "1. White e7-e8=B"},
		{"knight", chess.Knight, chess.Knight, "1. White e7-e8=N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameFromDiagram(t, chess.White, "8/4P3/8/8/8/8/k7/4K3")
			pawn, _ := g.SquareAt(sq("e7"))

			if err := g.Move(sq("e7"), sq("e8"), tt.promotion); err != nil {
				t.Fatalf("Move(e7, e8, %v) failed: %v", tt.promotion, err)
			}

			p, ok := g.SquareAt(sq("e8"))
			if !ok || p.Kind != tt.want || p.Colour != chess.White {
				t.Errorf("SquareAt(e8) = %+v, want white %v", p, tt.want)
			}
			if p.ID != pawn.ID || p.Moves != 0 {
				t.Errorf("promoted piece = %+v, want id %d with zero moves", p, pawn.ID)
			}
			last, _ := g.LastMove()
			if last.Promotion != tt.want || last.Kind != chess.Pawn {
				t.Errorf("LastMove() = %+v, want pawn promoted to %v", last, tt.want)
			}
			if got := last.String(); got != tt.wantStr {
				t.Errorf("LastMove().String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPromotion_Capture(t *testing.T) {
	g := gameFromDiagram(t, chess.White, "3rk3/4P3/8/8/8/8/8/4K3")
	if err := g.Move(sq("e7"), sq("d8"), chess.Knight); err != nil {
		t.Fatalf("Move(e7, d8, Knight) failed: %v", err)
	}
	last, _ := g.LastMove()
	if last.Captured != chess.Rook || last.Promotion != chess.Knight || !last.IsCapture() {
		t.Errorf("LastMove() = %+v, want rook captured and knight promotion", last)
	}
}

func TestPromotion_Invalid(t *testing.T) {
	for _, kind := range []chess.Kind{chess.King, chess.Pawn, chess.Kind(99)} {
		g := gameFromDiagram(t, chess.White, "8/4P3/8/8/8/8/k7/4K3")
		before := takeSnapshot(g)

		err := g.Move(sq("e7"), sq("e8"), kind)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion, "promotion to %v", kind)
		testutil.AssertEqual(t, takeSnapshot(g), before, "state after rejected promotion")
		if g.HasMoved() {
			t.Errorf("HasMoved() = true after rejected promotion to %v", kind)
		}
	}
}

func TestPromotion_IgnoredOnOrdinaryMove(t *testing.T) {
	g := NewGame(WithLogger(quietLogger))
	if err := g.Move(sq("e2"), sq("e4"), chess.Knight); err != nil {
		t.Fatalf("Move(e2, e4, Knight) failed: %v", err)
	}
	p, _ := g.SquareAt(sq("e4"))
	last, _ := g.LastMove()
	if p.Kind != chess.Pawn || last.Promotion != chess.NoKind {
		t.Errorf("SquareAt(e4) = %v with promotion %v, want unpromoted pawn", p.Kind, last.Promotion)
	}
}
