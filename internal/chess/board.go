package chess

import (
	"fmt"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// PositionedPiece is a piece standing on a square.
type PositionedPiece struct {
	Piece    Piece
	Colour   Colour
	Position Position
}

// CastlingRights records which castling pieces of one side have moved.
// Flags only ever go from false to true.
type CastlingRights struct {
	KingMoved  bool
	RookAMoved bool
	RookHMoved bool
}

// CanCastleKingside reports whether kingside castling is still available.
func (cr CastlingRights) CanCastleKingside() bool {
	return !cr.KingMoved && !cr.RookHMoved
}

// CanCastleQueenside reports whether queenside castling is still available.
func (cr CastlingRights) CanCastleQueenside() bool {
	return !cr.KingMoved && !cr.RookAMoved
}

// Board represents a chess position with all state needed for the game.
type Board struct {
	// Pieces on the board, in no particular order. At most one per square.
	Pieces []PositionedPiece

	// Who has the next move.
	ToMove Colour

	// Castling rights for each side.
	WhiteCastling CastlingRights
	BlackCastling CastlingRights

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The move counter. It starts at 1 and increases with every committed move.
	MoveNumber uint

	// Every committed move, oldest first.
	History []Move

	// En-passant target taken from a FEN string; only consulted while
	// History is empty.
	SetupEnPassant bool
	SetupEPSquare  Position
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// PieceAt returns the piece standing on pos, if any.
func (b *Board) PieceAt(pos Position) (PositionedPiece, bool) {
	for _, p := range b.Pieces {
		if p.Position == pos {
			return p, true
		}
	}
	return PositionedPiece{}, false
}

// KingPosition returns the square of the king of the given colour.
// A missing king is reported as ErrInvariantViolation.
func (b *Board) KingPosition(colour Colour) (Position, error) {
	for _, p := range b.Pieces {
		if p.Piece == King && p.Colour == colour {
			return p.Position, nil
		}
	}
	return Position{}, fmt.Errorf("no %s king on the board: %w", colour, errors.ErrInvariantViolation)
}

// IsPathClear reports whether no piece stands strictly between from and to
// when they share a row, a column or a diagonal. For any other pair it
// returns true; callers check piece geometry separately.
func (b *Board) IsPathClear(from, to Position) bool {
	rowDiff := to.Row - from.Row
	colDiff := to.Column - from.Column
	if rowDiff != 0 && colDiff != 0 && Abs(rowDiff) != Abs(colDiff) {
		return true
	}

	rowDir := Sign(rowDiff)
	colDir := Sign(colDiff)
	sq := Position{Row: from.Row + rowDir, Column: from.Column + colDir}
	for sq != to {
		if _, occupied := b.PieceAt(sq); occupied {
			return false
		}
		sq = Position{Row: sq.Row + rowDir, Column: sq.Column + colDir}
	}
	return true
}

// Castling returns the castling rights record of the given colour.
func (b *Board) Castling(colour Colour) *CastlingRights {
	if colour == White {
		return &b.WhiteCastling
	}
	return &b.BlackCastling
}

// Place puts a piece on an empty square.
func (b *Board) Place(piece Piece, colour Colour, pos Position) error {
	if !pos.Valid() {
		return fmt.Errorf("placing %s %s: %w", colour, piece, errors.ErrInvalidCoordinate)
	}
	if occupant, ok := b.PieceAt(pos); ok {
		return fmt.Errorf("%s already holds a %s %s: %w", pos, occupant.Colour, occupant.Piece, errors.ErrInvariantViolation)
	}
	b.Pieces = append(b.Pieces, PositionedPiece{Piece: piece, Colour: colour, Position: pos})
	return nil
}

// RemovePiece takes the piece off pos and returns it.
func (b *Board) RemovePiece(pos Position) (PositionedPiece, bool) {
	for i, p := range b.Pieces {
		if p.Position == pos {
			b.Pieces = append(b.Pieces[:i], b.Pieces[i+1:]...)
			return p, true
		}
	}
	return PositionedPiece{}, false
}

// MovePiece relocates the piece on from to to. The destination must be empty.
func (b *Board) MovePiece(from, to Position) bool {
	for i := range b.Pieces {
		if b.Pieces[i].Position == from {
			b.Pieces[i].Position = to
			return true
		}
	}
	return false
}

// SetPiece changes the kind of the piece on pos, e.g. on promotion.
func (b *Board) SetPiece(pos Position, piece Piece) bool {
	for i := range b.Pieces {
		if b.Pieces[i].Position == pos {
			b.Pieces[i].Piece = piece
			return true
		}
	}
	return false
}

// EnPassantTarget returns the square a pawn skipped over with a two-square
// advance on the previous move.
func (b *Board) EnPassantTarget() (Position, bool) {
	if len(b.History) == 0 {
		return b.SetupEPSquare, b.SetupEnPassant
	}
	last := b.History[len(b.History)-1]
	if !last.IsDoublePawnPush() {
		return Position{}, false
	}
	return Position{Row: (last.From.Row + last.To.Row) / 2, Column: last.To.Column}, true
}

// Copy creates a deep copy of the board. The copy shares no memory with b.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	if b.Pieces != nil {
		newBoard.Pieces = make([]PositionedPiece, len(b.Pieces))
		copy(newBoard.Pieces, b.Pieces)
	}
	if b.History != nil {
		newBoard.History = make([]Move, len(b.History))
		copy(newBoard.History, b.History)
	}
	return newBoard
}

// CountPieces returns how many pieces of the given kind and colour are on the board.
func (b *Board) CountPieces(piece Piece, colour Colour) int {
	n := 0
	for _, p := range b.Pieces {
		if p.Piece == piece && p.Colour == colour {
			n++
		}
	}
	return n
}
