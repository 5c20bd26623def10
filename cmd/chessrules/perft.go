package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// runPerft prints the node count below each root move and the total.
func runPerft(w io.Writer, g *engine.Game, p config.PerftConfig, logger *slog.Logger) uint64 {
	start := time.Now()
	results := g.PerftDivide(p.Depth, p.Workers)

	var total uint64
	for _, r := range results {
		fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
		total += r.Nodes
	}
	fmt.Fprintf(w, "\nMoves: %d\nNodes: %d\n", len(results), total)

	logger.Info("perft finished", "depth", p.Depth, "workers", p.Workers, "nodes", total, "elapsed", time.Since(start))
	return total
}
