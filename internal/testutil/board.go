package testutil

import (
	"testing"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/notation"
)

// Sq returns the position named by an algebraic square such as "e4".
// It panics on a bad name, so use it only with constant squares.
func Sq(name string) chess.Position {
	pos, err := chess.ParsePosition(name)
	if err != nil {
		panic(err)
	}
	return pos
}

// MustMove resolves long algebraic text against the piece standing on the
// source square of board. It calls t.Fatal if the text is malformed or the
// square is empty.
func MustMove(t *testing.T, board *chess.Board, text string) chess.Move {
	t.Helper()
	m, err := notation.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	move, err := notation.Resolve(board, m)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", text, err)
	}
	return move
}

// BoardWith builds a board holding exactly the given pieces, White to move.
// Pieces are written as colour-and-kind letters plus a square, e.g. "Ke1"
// for a white king or "qd8" for a black queen.
func BoardWith(t *testing.T, pieces ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for _, desc := range pieces {
		if len(desc) != 3 {
			t.Fatalf("bad piece description %q", desc)
		}
		piece, colour := pieceFromLetter(desc[0])
		if piece == chess.Empty {
			t.Fatalf("bad piece letter in %q", desc)
		}
		pos, err := chess.ParsePosition(desc[1:])
		if err != nil {
			t.Fatalf("bad square in %q: %v", desc, err)
		}
		if err := board.Place(piece, colour, pos); err != nil {
			t.Fatalf("Place(%q): %v", desc, err)
		}
	}
	return board
}

// pieceFromLetter maps a FEN-style letter to piece and colour.
func pieceFromLetter(c byte) (chess.Piece, chess.Colour) {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	for _, p := range []chess.Piece{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King} {
		if p.Letter() == c {
			return p, colour
		}
	}
	return chess.Empty, colour
}
