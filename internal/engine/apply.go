package engine

import (
	"github.com/lgbarn/boardstate-go/internal/chess"
)

// ApplyMove validates move and, if it is legal, commits it to the board:
// the captured piece is removed, the mover relocated and promoted, the move
// counter and half-move clock updated, castling rights recorded, the move
// appended to the history and the turn passed. A rejected move returns the
// validation error and leaves the board untouched.
func ApplyMove(board *chess.Board, move chess.Move) error {
	if err := ValidateMove(board, move); err != nil {
		return err
	}

	captured, didCapture := applyPlacement(board, move)

	board.MoveNumber++
	board.ToMove = move.Colour.Opposite()
	board.History = append(board.History, move)

	// Update halfmove clock
	if move.Piece == chess.Pawn || didCapture {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	updateCastlingRights(board, move, captured, didCapture)
	board.SetupEnPassant = false

	return nil
}

// ApplyMoves applies moves in order and stops at the first rejected one,
// returning its index alongside the error.
func ApplyMoves(board *chess.Board, moves []chess.Move) (int, error) {
	for i, move := range moves {
		if err := ApplyMove(board, move); err != nil {
			return i, err
		}
	}
	return len(moves), nil
}
