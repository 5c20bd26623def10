package engine

import (
	"slices"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// promotionKinds are the kinds a pawn may become, each counted as its own move.
var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// legalMove is one fully specified legal move.
type legalMove struct {
	from, to  chess.Square
	promotion chess.Kind
}

// String renders the move in coordinate form, e.g. "e7e8q".
func (m legalMove) String() string {
	s := m.from.String() + m.to.String()
	if m.promotion != chess.NoKind {
		s += strings.ToLower(string(m.promotion.Letter()))
	}
	return s
}

// push commits id to dest without validation against possibleMoves and
// records it in history. It fails, leaving nothing changed, when the move
// would leave the mover in check.
func (g *Game) push(id chess.PieceID, dest chess.Square, promotion chess.Kind) (undoToken, chess.Kind, bool) {
	from, kind := g.pieces[id].Square, g.pieces[id].Kind
	tok, ok := g.play(id, dest, false, false)
	if !ok {
		return undoToken{}, kind, false
	}
	rec := g.record(id, kind, from, dest, tok)
	if g.promoting != chess.NoPiece {
		g.promoting = chess.NoPiece
		if promotion == chess.NoKind {
			promotion = chess.Queen
		}
		g.pieces[id].Kind = promotion
		rec.Promotion = promotion
	}
	g.history = append(g.history, rec)
	return tok, kind, true
}

// pop takes back a move made by push.
func (g *Game) pop(id chess.PieceID, kind chess.Kind, tok undoToken) {
	g.history = g.history[:len(g.history)-1]
	g.pieces[id].Kind = kind
	g.revert(tok)
}

// forEachLegalMove plays every legal move of colour in turn, calls visit
// with the move on the board and takes it back.
func (g *Game) forEachLegalMove(colour chess.Colour, visit func(m legalMove)) {
	for _, id := range slices.Clone(g.players[colour].active) {
		p := &g.pieces[id]
		from := p.Square
		promotes := p.Kind == chess.Pawn
		for _, dest := range g.possibleMoves(id, false).Squares() {
			kinds := []chess.Kind{chess.NoKind}
			if promotes && dest.Rank() == chess.PromotionRank(colour) {
				kinds = promotionKinds
			}
			for _, promotion := range kinds {
				tok, kind, ok := g.push(id, dest, promotion)
				if !ok {
					break
				}
				visit(legalMove{from: from, to: dest, promotion: promotion})
				g.pop(id, kind, tok)
			}
		}
	}
}

// Perft counts the leaf nodes of the legal move tree of the given depth,
// with the side to move playing first. Each promotion choice is a separate move.
func (g *Game) Perft(depth int) uint64 {
	return g.perft(g.toMove, depth)
}

func (g *Game) perft(colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	// Leaf counts are cheaper to take than to look up.
	cached := g.perftCache != nil && depth > 1
	var key uint64
	if cached {
		key = g.positionKey(colour)
		if nodes, ok := g.perftCache.Lookup(key, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	g.forEachLegalMove(colour, func(legalMove) {
		if depth == 1 {
			nodes++
			return
		}
		nodes += g.perft(colour.Opposite(), depth-1)
	})

	if cached {
		g.perftCache.Store(key, depth, nodes)
	}
	return nodes
}

// DivideResult is the perft count below one root move.
type DivideResult struct {
	Move  string // coordinate form, e.g. "e2e4" or "e7e8q"
	Nodes uint64
}

// divideJob is a root move already played on a game owned by one worker.
type divideJob struct {
	game   *Game
	colour chess.Colour
	depth  int
}

// PerftDivide splits Perft(depth) by root move. Each root move is played on
// its own clone of the game and counted by the worker pool, so the receiver
// is only read, never shared. Results are sorted by move.
func (g *Game) PerftDivide(depth, workers int) []DivideResult {
	if depth < 1 {
		return nil
	}

	var roots []legalMove
	g.forEachLegalMove(g.toMove, func(m legalMove) {
		roots = append(roots, m)
	})

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		job := item.Payload.(divideJob)
		return worker.ProcessResult{
			Index: item.Index,
			Label: item.Label,
			Value: job.game.perft(job.colour, job.depth),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(roots)+1))
	pool.Start()

	for i, m := range roots {
		c := g.Clone()
		id := c.board.At(m.from)
		c.push(id, m.to, m.promotion)
		pool.Submit(worker.WorkItem{
			Index:   i,
			Label:   m.String(),
			Payload: divideJob{game: c, colour: g.toMove.Opposite(), depth: depth - 1},
		})
	}
	go pool.Close()

	results := make([]DivideResult, 0, len(roots))
	for r := range pool.Results() {
		results = append(results, DivideResult{Move: r.Label, Nodes: r.Value.(uint64)})
	}
	slices.SortFunc(results, func(a, b DivideResult) int {
		return strings.Compare(a.Move, b.Move)
	})

	if g.perftCache != nil {
		g.logger.Debug("perft divide", "depth", depth, "roots", len(roots), "workers", pool.NumWorkers(),
			"cache_entries", g.perftCache.Len(), "cache_hits", g.perftCache.Hits())
	} else {
		g.logger.Debug("perft divide", "depth", depth, "roots", len(roots), "workers", pool.NumWorkers())
	}
	return results
}
