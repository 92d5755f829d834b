package testutil

import (
	"testing"

	"github.com/lgbarn/boardstate-go/internal/chess"
)

func TestSq(t *testing.T) {
	AssertEqual(t, Sq("a1"), chess.Position{Row: 0, Column: 0})
	AssertEqual(t, Sq("e4"), chess.Position{Row: 3, Column: 4})
}

func TestBoardWith(t *testing.T) {
	b := BoardWith(t, "Ke1", "qd8", "pa7")

	AssertEqual(t, len(b.Pieces), 3)
	p, ok := b.PieceAt(Sq("d8"))
	AssertTrue(t, ok, "queen on d8")
	AssertEqual(t, p.Piece, chess.Queen)
	AssertEqual(t, p.Colour, chess.Black)
	AssertEqual(t, b.ToMove, chess.White)
}

func TestMustMove(t *testing.T) {
	b := chess.NewInitialBoard()
	m := MustMove(t, b, "g1f3")

	AssertEqual(t, m.Piece, chess.Knight)
	AssertEqual(t, m.Colour, chess.White)
	AssertEqual(t, m.To, Sq("f3"))
}
