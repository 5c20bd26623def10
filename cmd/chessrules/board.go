package main

import (
	"io"
	"slices"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// renderBoard draws the board with rank 8 at the top, upper case for White
// and lower case for Black. With FlipForBlack set and Black to move, rank 1
// is at the top and the h-file on the left.
func renderBoard(w io.Writer, g *engine.Game, out config.OutputConfig) {
	ranks := make([]chess.Rank, 0, chess.BoardSize)
	for r := chess.Rank(chess.LastRank); r >= chess.FirstRank; r-- {
		ranks = append(ranks, r)
	}
	cols := make([]chess.Col, 0, chess.BoardSize)
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		cols = append(cols, c)
	}
	if out.FlipForBlack && g.ToMove() == chess.Black {
		slices.Reverse(ranks)
		slices.Reverse(cols)
	}

	var sb strings.Builder
	for _, r := range ranks {
		if out.Coordinates {
			sb.WriteByte(byte(r))
			sb.WriteByte(' ')
		}
		for i, c := range cols {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(squareLetter(g, chess.SquareOf(c, r), out.EmptySquare))
		}
		sb.WriteByte('\n')
	}
	if out.Coordinates {
		sb.WriteString("  ")
		for i, c := range cols {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(c))
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// squareLetter returns the letter drawn for sq.
func squareLetter(g *engine.Game, sq chess.Square, empty byte) byte {
	p, ok := g.SquareAt(sq)
	if !ok {
		return empty
	}
	letter := p.Kind.Letter()
	if p.Colour == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}
