// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// General
	help    = flag.Bool("h", false, "Show usage")
	version = flag.Bool("version", false, "Print version and exit")
	quiet   = flag.Bool("s", false, "Silent mode: warnings and errors only")
	verbose = flag.Bool("v", false, "Log every move and rejected move")

	// Log and output files
	logFile    = flag.String("l", "", "Write log records to this file (default: stderr)")
	appendLog  = flag.String("L", "", "Append log records to this file")
	outputFile = flag.String("o", "", "Write the board and messages to this file (default: stdout)")

	// Board rendering
	noCoords  = flag.Bool("nocoords", false, "Don't draw file and rank labels")
	emptyChar = flag.String("empty", ".", "Character drawn for an empty square")
	noHints   = flag.Bool("nohints", false, "Don't list legal destinations after a rejected move")
	flipBoard = flag.Bool("flip", false, "Draw the board from the side to move")

	// Move counting
	perftDepth = flag.Int("perft", 0, "Count legal move paths of this depth from the start position and exit")
	workers    = flag.Int("workers", 1, "Goroutines used by -perft")
	hashSize   = flag.Int("hash", 0, "Perft cache entries shared by the workers (0 off, -1 unlimited)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyVerbosityFlags(cfg)
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)
}

// applyVerbosityFlags sets the verbosity; -s wins over -v.
func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}

// applyOutputFlags configures board rendering.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.ShowMoves = !*noHints
	cfg.Output.FlipForBlack = *flipBoard
	if len(*emptyChar) == 1 {
		cfg.Output.EmptySquare = (*emptyChar)[0]
	}
}

// applyPerftFlags configures a move counting run.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Workers = *workers
	cfg.Perft.CacheSize = *hashSize
}
