package engine

import "github.com/lgbarn/boardstate-go/internal/chess"

// canPawnMove checks pawn geometry: a push onto an empty square, a double
// push from the start row, or a diagonal capture of an opposing piece or
// of the pawn that just passed the en-passant target.
func canPawnMove(board *chess.Board, pawn chess.PositionedPiece, to chess.Position) bool {
	from := pawn.Position
	dir := chess.ColourOffset(pawn.Colour)
	rowDiff := to.Row - from.Row
	colDiff := to.Column - from.Column

	_, occupied := board.PieceAt(to)

	switch {
	case colDiff == 0 && rowDiff == dir:
		return !occupied

	case colDiff == 0 && rowDiff == 2*dir:
		if from.Row != chess.PawnStartRow(pawn.Colour) || occupied {
			return false
		}
		return board.IsPathClear(from, to)

	case chess.Abs(colDiff) == 1 && rowDiff == dir:
		if occupied {
			// Same-colour and king targets are rejected by the caller.
			return true
		}
		return isEnPassantCapture(board, pawn, to)
	}

	return false
}

// isEnPassantCapture reports whether a diagonal pawn step onto the empty
// square to captures en passant.
func isEnPassantCapture(board *chess.Board, pawn chess.PositionedPiece, to chess.Position) bool {
	target, ok := board.EnPassantTarget()
	if !ok || target != to {
		return false
	}
	victim, ok := board.PieceAt(enPassantVictim(pawn.Position, to))
	return ok && victim.Piece == chess.Pawn && victim.Colour != pawn.Colour
}

// enPassantVictim returns the square of the pawn removed by an en-passant
// capture from from to to.
func enPassantVictim(from, to chess.Position) chess.Position {
	return chess.Position{Row: from.Row, Column: to.Column}
}

// promotionPiece returns the piece a pawn becomes on its last row.
func promotionPiece(move chess.Move) chess.Piece {
	if move.Promotion == chess.Empty {
		return chess.Queen // Default to queen
	}
	return move.Promotion
}
