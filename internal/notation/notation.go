// Package notation reads and writes moves in long algebraic (UCI) form,
// e.g. "e2e4", "e1g1" or "e7e8q".
package notation

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// UCIMove is a move as written in text: two squares and an optional
// promotion piece. It does not yet know which piece moves.
type UCIMove struct {
	From      chess.Position
	To        chess.Position
	Promotion chess.Piece
}

// String returns the move in long algebraic form.
func (m UCIMove) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.Empty {
		s += string(promotionLetter(m.Promotion))
	}
	return s
}

// ParseMove parses a single move such as "g1f3" or "b7b8n".
func ParseMove(text string) (UCIMove, error) {
	if len(text) != 4 && len(text) != 5 {
		return UCIMove{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}

	from, err := chess.ParsePosition(text[0:2])
	if err != nil {
		return UCIMove{}, fmt.Errorf("%q: %v: %w", text, err, errors.ErrInvalidMoveText)
	}
	to, err := chess.ParsePosition(text[2:4])
	if err != nil {
		return UCIMove{}, fmt.Errorf("%q: %v: %w", text, err, errors.ErrInvalidMoveText)
	}

	m := UCIMove{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = promotionFromLetter(text[4])
		if m.Promotion == chess.Empty {
			return UCIMove{}, fmt.Errorf("%q: bad promotion piece %q: %w", text, text[4], errors.ErrInvalidMoveText)
		}
	}
	return m, nil
}

// ParseLine parses a whitespace-separated list of moves. Every malformed
// token is reported, not only the first.
func ParseLine(line string) ([]UCIMove, error) {
	fields := strings.Fields(line)
	moves := make([]UCIMove, 0, len(fields))

	var errs error
	for i, field := range fields {
		m, err := ParseMove(field)
		if err != nil {
			errs = multierror.Append(errs, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: field})
			continue
		}
		moves = append(moves, m)
	}
	if errs != nil {
		return nil, errs
	}
	return moves, nil
}

// Resolve turns a text move into a board move by reading the piece that
// stands on the source square. An empty source square is ErrIllegalMove.
func Resolve(board *chess.Board, m UCIMove) (chess.Move, error) {
	piece, ok := board.PieceAt(m.From)
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", m.From)
	}
	return chess.Move{
		From:      m.From,
		To:        m.To,
		Piece:     piece.Piece,
		Colour:    piece.Colour,
		Promotion: m.Promotion,
	}, nil
}

// FormatMove writes a board move in long algebraic form.
func FormatMove(m chess.Move) string {
	return UCIMove{From: m.From, To: m.To, Promotion: m.Promotion}.String()
}

// promotionFromLetter maps a lowercase promotion letter to a piece.
func promotionFromLetter(c byte) chess.Piece {
	switch c {
	case 'q':
		return chess.Queen
	case 'r':
		return chess.Rook
	case 'b':
		return chess.Bishop
	case 'n':
		return chess.Knight
	}
	return chess.Empty
}

// promotionLetter is the inverse of promotionFromLetter.
func promotionLetter(p chess.Piece) byte {
	return p.Letter() + ('a' - 'A')
}
