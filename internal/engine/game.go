package engine

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Game holds one game: board, piece arena, the two players, turn state and history.
// A Game is not safe for concurrent use; hand other goroutines a Clone.
type Game struct {
	board   chess.Board
	pieces  []Piece
	players [2]*Player

	// Who has the next move.
	toMove chess.Colour

	// The current move number, incremented when control returns to White.
	moveNumber int

	// Set once the side to move has committed its move for this turn.
	moved bool

	// Pawn that reached the last rank in the move being committed.
	promoting chess.PieceID

	history      []MoveRecord
	historyIndex map[MoveKey]int

	// Shared with clones; nil disables caching.
	perftCache *hashing.PerftCache

	logger *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

func newGame(toMove chess.Colour, opts []Option) *Game {
	g := &Game{
		toMove:       toMove,
		moveNumber:   1,
		promoting:    chess.NoPiece,
		historyIndex: make(map[MoveKey]int),
		logger:       slog.Default(),
	}
	g.board.Reset()
	g.players[chess.White] = newPlayer(chess.White)
	g.players[chess.Black] = newPlayer(chess.Black)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGame creates a game in the standard starting position with White to move.
func NewGame(opts ...Option) *Game {
	g := newGame(chess.White, opts)
	g.place(StandardPlacements())
	return g
}

// NewGameFromPlacements creates a game from explicit placements on an empty board.
// The position must have exactly one king per side, the kings may not stand
// next to each other and the side not to move must not be in check.
func NewGameFromPlacements(toMove chess.Colour, placements []Placement, opts ...Option) (*Game, error) {
	if err := validatePlacements(placements); err != nil {
		return nil, err
	}
	g := newGame(toMove, opts)
	g.place(placements)

	if bk := g.king(chess.Black); g.kingZone(chess.White).Has(bk.Square) {
		return nil, &errors.SetupError{
			Err:    errors.ErrInvalidSetup,
			Square: bk.Square.String(),
			Reason: "kings on adjacent squares",
		}
	}
	if g.inCheck(toMove.Opposite()) {
		return nil, &errors.SetupError{
			Err:    errors.ErrInvalidSetup,
			Square: g.king(toMove.Opposite()).Square.String(),
			Reason: toMove.Opposite().String() + " is in check but not to move",
		}
	}
	return g, nil
}

// Move plays the piece on from to to for the side to move.
// promotion selects the kind a pawn reaching the last rank becomes; NoKind means Queen.
// It is ignored for other moves. On failure nothing is changed.
func (g *Game) Move(from, to chess.Square, promotion chess.Kind) error {
	fail := func(err error) error {
		g.logger.Debug("move rejected", "colour", g.toMove, "from", from, "to", to, "error", err)
		return &errors.MoveError{Err: err, From: from.String(), To: to.String(), Colour: g.toMove.String()}
	}

	id := g.board.At(from)
	if id == chess.NoPiece {
		return fail(errors.ErrEmptySquare)
	}
	p := &g.pieces[id]
	if p.Colour != g.toMove {
		return fail(errors.ErrWrongColor)
	}
	if g.moved {
		return fail(errors.ErrTurnComplete)
	}
	if promotion != chess.NoKind && !promotion.IsPromotionTarget() {
		return fail(errors.ErrInvalidPromotion)
	}

	kind := p.Kind
	tok, ok := g.play(id, to, true, false)
	if !ok {
		return fail(errors.ErrIllegalMove)
	}

	rec := g.record(id, kind, from, to, tok)
	rec.Promotion = g.promote(promotion)

	g.historyIndex[rec.Key] = len(g.history)
	g.history = append(g.history, rec)
	g.moved = true

	g.logger.Debug("move committed", "move", rec.String(), "capture", rec.Captured, "castling", rec.Castling, "en_passant", rec.EnPassant)
	return nil
}

// promote substitutes the pawn flagged by the last committed move, keeping
// its square and colour and resetting its move count. It returns the kind
// chosen, or NoKind when no pawn was flagged.
func (g *Game) promote(kind chess.Kind) chess.Kind {
	if g.promoting == chess.NoPiece {
		return chess.NoKind
	}
	if kind == chess.NoKind {
		kind = chess.Queen
	}
	p := &g.pieces[g.promoting]
	p.Kind = kind
	p.Moves = 0
	g.promoting = chess.NoPiece
	return kind
}

// OpponentToPlay hands the turn to the other side.
func (g *Game) OpponentToPlay() {
	g.toMove = g.toMove.Opposite()
	g.moved = false
	if g.toMove == chess.White {
		g.moveNumber++
	}
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// MoveNumber returns the current move number, starting at 1.
func (g *Game) MoveNumber() int {
	return g.moveNumber
}

// HasMoved reports whether the side to move has already played this turn.
func (g *Game) HasMoved() bool {
	return g.moved
}

// CurrentPlayerInCheck reports whether the side to move is in check.
func (g *Game) CurrentPlayerInCheck() bool {
	return g.inCheck(g.toMove)
}

// CurrentPlayerCheckmated reports whether the side to move is checkmated.
func (g *Game) CurrentPlayerCheckmated() bool {
	return g.checkmated(g.toMove)
}

// CurrentPlayerStalemated reports whether the side to move has no legal move
// while not in check.
func (g *Game) CurrentPlayerStalemated() bool {
	return g.stalemated(g.toMove)
}

// Status classifies the position for the side to move.
func (g *Game) Status() Status {
	s := g.status(g.toMove)
	if s.IsOver() {
		g.logger.Debug("game over", "status", s, "colour", g.toMove, "move", g.moveNumber)
	}
	return s
}

// SquareAt returns the piece on sq, or false when the square is empty.
func (g *Game) SquareAt(sq chess.Square) (Piece, bool) {
	id := g.board.At(sq)
	if id == chess.NoPiece {
		return Piece{}, false
	}
	return g.pieces[id], true
}

// PieceByID returns a piece from the arena, captured or not.
func (g *Game) PieceByID(id chess.PieceID) (Piece, bool) {
	if id < 0 || int(id) >= len(g.pieces) {
		return Piece{}, false
	}
	return g.pieces[id], true
}

// Player returns the player of the given colour.
func (g *Game) Player(colour chess.Colour) *Player {
	return g.players[colour]
}

// Pieces returns the given colour's pieces on the board.
func (g *Game) Pieces(colour chess.Colour) []Piece {
	active := g.players[colour].active
	out := make([]Piece, 0, len(active))
	for _, id := range active {
		out = append(out, g.pieces[id])
	}
	return out
}

// PossibleMoves returns the candidate destinations of the piece on sq, before
// the test for leaving its own king in check.
func (g *Game) PossibleMoves(sq chess.Square) []chess.Square {
	id := g.board.At(sq)
	if id == chess.NoPiece {
		return nil
	}
	return g.possibleMoves(id, false).Squares()
}

// LegalMoves returns the destinations the piece on sq may actually move to.
func (g *Game) LegalMoves(sq chess.Square) []chess.Square {
	id := g.board.At(sq)
	if id == chess.NoPiece {
		return nil
	}
	return g.legalMoves(id).Squares()
}

// ControlledSquares returns every square the given colour threatens or defends.
func (g *Game) ControlledSquares(colour chess.Colour) []chess.Square {
	return g.controlledSquares(colour, false).Squares()
}

// Clone returns an independent deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.pieces = slices.Clone(g.pieces)
	c.players = [2]*Player{g.players[chess.White].clone(), g.players[chess.Black].clone()}
	c.history = slices.Clone(g.history)
	c.historyIndex = maps.Clone(g.historyIndex)
	return &c
}
