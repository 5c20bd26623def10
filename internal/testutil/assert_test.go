package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, []int(nil), []int{}, "nil and empty slices are equal")
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
	AssertNoError(t, nil)
}

func TestAssertBooleans_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "value should be %v", false)
	AssertContains(t, "hello world", "world")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"message"}, "message"},
		{"format string", []interface{}{"value %d", 42}, "value 42"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDiagram(t *testing.T) {
	placed := MustParseDiagram(t, "4k3/8/8/8/8/8/4P3/4K2R")
	want := []Placed{
		{Kind: chess.King, Colour: chess.Black, Square: chess.MustSquare("e8")},
		{Kind: chess.Pawn, Colour: chess.White, Square: chess.MustSquare("e2")},
		{Kind: chess.King, Colour: chess.White, Square: chess.MustSquare("e1")},
		{Kind: chess.Rook, Colour: chess.White, Square: chess.MustSquare("h1")},
	}
	AssertEqual(t, placed, want)

	for _, bad := range []string{
		"8/8/8",
		"9/8/8/8/8/8/8/8",
		"4k4/8/8/8/8/8/8/4K3",
		"4x3/8/8/8/8/8/8/4K3",
		"4k2/8/8/8/8/8/8/4K3",
	} {
		if _, err := ParseDiagram(bad); err == nil {
			t.Errorf("ParseDiagram(%q) error = nil, want error", bad)
		}
	}
}

func TestSortedSquares(t *testing.T) {
	AssertEqual(t, SortedSquares("h8", "a1", "e4"), Squares("a1", "e4", "h8"))
}
