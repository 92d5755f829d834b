package engine

import "github.com/lgbarn/boardstate-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked by any
// opposing piece. It does not consider whose turn it is, so it answers
// equally for real and hypothetical boards. A board without a king of that
// colour yields ErrInvariantViolation.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingPos, err := board.KingPosition(colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(board, kingPos, colour.Opposite()), nil
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, target chess.Position, byColour chess.Colour) bool {
	for _, piece := range board.Pieces {
		if piece.Colour != byColour {
			continue
		}
		if attacks(board, piece, target) {
			return true
		}
	}
	return false
}

// attacks reports whether piece attacks target according to its kind.
func attacks(board *chess.Board, piece chess.PositionedPiece, target chess.Position) bool {
	if piece.Position == target {
		return false
	}
	rowDiff := target.Row - piece.Position.Row
	colDiff := target.Column - piece.Position.Column

	switch piece.Piece {
	case chess.King:
		return chess.Abs(rowDiff) <= 1 && chess.Abs(colDiff) <= 1

	case chess.Knight:
		return isKnightStep(rowDiff, colDiff)

	case chess.Pawn:
		// Pawns attack diagonally forward only.
		return rowDiff == chess.ColourOffset(piece.Colour) && chess.Abs(colDiff) == 1

	case chess.Bishop:
		return isDiagonal(rowDiff, colDiff) && board.IsPathClear(piece.Position, target)

	case chess.Rook:
		return isStraight(rowDiff, colDiff) && board.IsPathClear(piece.Position, target)

	case chess.Queen:
		return (isDiagonal(rowDiff, colDiff) || isStraight(rowDiff, colDiff)) &&
			board.IsPathClear(piece.Position, target)
	}

	return false
}

// isKnightStep reports whether the offset is one of the eight knight jumps.
func isKnightStep(rowDiff, colDiff int) bool {
	r, c := chess.Abs(rowDiff), chess.Abs(colDiff)
	return (r == 1 && c == 2) || (r == 2 && c == 1)
}

// isDiagonal reports whether the offset lies on a diagonal.
func isDiagonal(rowDiff, colDiff int) bool {
	return rowDiff != 0 && chess.Abs(rowDiff) == chess.Abs(colDiff)
}

// isStraight reports whether the offset lies on a row or column.
func isStraight(rowDiff, colDiff int) bool {
	return (rowDiff == 0) != (colDiff == 0)
}
