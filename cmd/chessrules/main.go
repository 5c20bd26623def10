// chessrules plays a two-player game of chess on the terminal, checking every
// move against the rules, and counts move paths for testing move generation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := cfg.NewLogger()

	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.Perft.Enabled() && cfg.Perft.CacheEnabled() {
		opts = append(opts, engine.WithPerftCache(hashing.NewPerftCache(cfg.Perft.CacheCapacity())))
	}
	game := engine.NewGame(opts...)

	if cfg.Perft.Enabled() {
		runPerft(cfg.OutputFile, game, cfg.Perft, logger)
		return
	}

	s := newSession(game, cfg, logger, os.Stdin)
	if err := s.run(); err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players enter moves in turn; every move is checked against the rules.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove input:\n")
	fmt.Fprintf(os.Stderr, "  e2-e4     move the piece on e2 to e4\n")
	fmt.Fprintf(os.Stderr, "  e7-e8=N   promote to a knight (Q, R, B or N; default Q)\n")
	fmt.Fprintf(os.Stderr, "  e1-g1     castle by moving the king two squares\n")
	fmt.Fprintf(os.Stderr, "  history   list the moves played so far\n")
	fmt.Fprintf(os.Stderr, "  quit      end the game\n")
}
