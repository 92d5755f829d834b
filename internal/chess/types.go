// Package chess provides core chess types and board state.
package chess

import (
	"fmt"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "Unknown"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRow returns the back row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PromotionRow returns the row on which the colour's pawns promote.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// PawnStartRow returns the row the colour's pawns start on.
func PawnStartRow(colour Colour) int {
	return HomeRow(colour) + ColourOffset(colour)
}

// Piece represents a chess piece type.
// Empty is the zero value and stands for "no piece", e.g. no promotion.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	switch p {
	case Empty:
		return "Empty"
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	switch p {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may promote to p.
func (p Piece) IsPromotionChoice() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// Position is a square on the board. Row 0 is rank 1 (White's back rank)
// and Column 0 is the a-file.
type Position struct {
	Row    int
	Column int
}

// NewPosition returns the position at (row, column), rejecting coordinates
// outside the board.
func NewPosition(row, column int) (Position, error) {
	p := Position{Row: row, Column: column}
	if !p.Valid() {
		return Position{}, fmt.Errorf("row %d, column %d: %w", row, column, errors.ErrInvalidCoordinate)
	}
	return p, nil
}

// MustPosition is like NewPosition but panics on invalid coordinates.
// It is intended for tables and tests with constant coordinates.
func MustPosition(row, column int) Position {
	p, err := NewPosition(row, column)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether both coordinates are within 0..7.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Column >= 0 && p.Column < BoardSize
}

// String renders the position in algebraic notation, e.g. "a1".
func (p Position) String() string {
	return string([]byte{byte(ColBase + p.Column), byte(RankBase + p.Row)})
}

// ParsePosition parses a square name such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	return NewPosition(int(s[1])-RankBase, int(s[0])-ColBase)
}
