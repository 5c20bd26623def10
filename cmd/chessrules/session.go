package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// session runs one game between two players sharing a terminal.
type session struct {
	game   *engine.Game
	cfg    *config.Config
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
}

func newSession(game *engine.Game, cfg *config.Config, logger *slog.Logger, r io.Reader) *session {
	return &session{
		game:   game,
		cfg:    cfg,
		logger: logger,
		in:     bufio.NewScanner(r),
		out:    cfg.OutputFile,
	}
}

// run plays until checkmate, stalemate, quit or end of input.
func (s *session) run() error {
	s.logger.Info("game started")
	for {
		fmt.Fprintln(s.out)
		renderBoard(s.out, s.game, s.cfg.Output)
		fmt.Fprintln(s.out)

		toMove := s.game.ToMove()
		switch s.game.Status() {
		case engine.Checkmate:
			fmt.Fprintf(s.out, "%v player is checkmated!\n", toMove)
			fmt.Fprintf(s.out, "%v player wins!\n", toMove.Opposite())
			s.logger.Info("game over", "result", "checkmate", "winner", toMove.Opposite(), "moves", len(s.game.History()))
			return nil
		case engine.Stalemate:
			fmt.Fprintf(s.out, "%v player is stalemated!\n", toMove)
			fmt.Fprintln(s.out, "The game is drawn.")
			s.logger.Info("game over", "result", "stalemate", "moves", len(s.game.History()))
			return nil
		case engine.Check:
			fmt.Fprintf(s.out, "%v player in check!\n", toMove)
		}

		done, err := s.readMove()
		if err != nil {
			return chesserrors.Wrap(err, "reading move")
		}
		if done {
			s.logger.Info("game stopped", "moves", len(s.game.History()))
			return nil
		}
		s.game.OpponentToPlay()
	}
}

// readMove prompts until the side to move plays a legal move. It returns
// true when the players quit or the input ends.
func (s *session) readMove() (bool, error) {
	for {
		fmt.Fprintf(s.out, "%v to move, enter move: ", s.game.ToMove())
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return true, s.in.Err()
		}

		line := strings.TrimSpace(s.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return true, nil
		case "history":
			s.printHistory()
			continue
		}

		m, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		if err := s.game.Move(m.from, m.to, m.promotion); err != nil {
			fmt.Fprintln(s.out, err)
			if s.cfg.Output.ShowMoves && errors.Is(err, chesserrors.ErrIllegalMove) {
				s.printLegalMoves(m.from)
			}
			continue
		}
		return false, nil
	}
}

// printLegalMoves lists where the piece on from may go.
func (s *session) printLegalMoves(from chess.Square) {
	legal := s.game.LegalMoves(from)
	if len(legal) == 0 {
		fmt.Fprintf(s.out, "The piece on %v has no legal move.\n", from)
		return
	}
	names := make([]string, len(legal))
	for i, sq := range legal {
		names[i] = sq.String()
	}
	fmt.Fprintf(s.out, "Legal moves from %v: %s\n", from, strings.Join(names, " "))
}

func (s *session) printHistory() {
	history := s.game.History()
	if len(history) == 0 {
		fmt.Fprintln(s.out, "No moves played yet.")
		return
	}
	for _, rec := range history {
		fmt.Fprintln(s.out, rec.String())
	}
}
