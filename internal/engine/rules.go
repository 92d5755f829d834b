// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// ValidateMove checks a candidate move against the board without changing it.
// It returns nil for a legal move, an error wrapping ErrIllegalMove for a
// rejected one, and ErrInvariantViolation if the board itself is broken.
//
// A move is legal when the stated piece of the stated colour stands on the
// source square, that colour is to move, the displacement matches the
// piece's geometry (including castling and en passant), the destination does
// not hold a friendly piece or a king, and the mover's king is not in check
// on the board that results.
func ValidateMove(board *chess.Board, move chess.Move) error {
	if !move.From.Valid() || !move.To.Valid() {
		return errors.Wrapf(errors.ErrInvalidCoordinate, "move %v -> %v", move.From, move.To)
	}

	piece, ok := board.PieceAt(move.From)
	if !ok || piece.Piece != move.Piece || piece.Colour != move.Colour {
		return errors.Wrapf(errors.ErrIllegalMove, "no %s %s on %s", move.Colour, move.Piece, move.From)
	}
	if move.Colour != board.ToMove {
		return errors.Wrapf(errors.ErrIllegalMove, "%s is not to move", move.Colour)
	}
	if move.From == move.To {
		return errors.Wrapf(errors.ErrIllegalMove, "%s does not move", move.From)
	}

	if target, occupied := board.PieceAt(move.To); occupied {
		if target.Colour == move.Colour {
			return errors.Wrapf(errors.ErrIllegalMove, "%s is occupied by a %s piece", move.To, target.Colour)
		}
		if target.Piece == chess.King {
			return errors.Wrapf(errors.ErrIllegalMove, "the king on %s cannot be captured", move.To)
		}
	}

	if move.IsCastle() {
		if err := checkCastle(board, move); err != nil {
			return err
		}
	} else if !canPieceMove(board, piece, move.To) {
		return errors.Wrapf(errors.ErrIllegalMove, "%s cannot move from %s to %s", move.Piece, move.From, move.To)
	}

	if move.Promotion != chess.Empty {
		if !move.IsPromotion() {
			return errors.Wrapf(errors.ErrIllegalMove, "promotion on %s", move.To)
		}
		if !move.Promotion.IsPromotionChoice() {
			return errors.Wrapf(errors.ErrIllegalMove, "cannot promote to %s", move.Promotion)
		}
	}

	inCheck, err := IsInCheck(simulate(board, move), move.Colour)
	if err != nil {
		return err
	}
	if inCheck {
		return errors.Wrapf(errors.ErrIllegalMove, "%s king would be in check", move.Colour)
	}
	return nil
}

// IsValidMove reports whether move is legal on board. Use ValidateMove to
// tell an illegal move apart from a broken board.
func IsValidMove(board *chess.Board, move chess.Move) bool {
	return ValidateMove(board, move) == nil
}

// simulate returns a copy of board with move's pieces relocated. The original
// board is not modified and the copy shares no state with it.
func simulate(board *chess.Board, move chess.Move) *chess.Board {
	hypothetical := board.Copy()
	applyPlacement(hypothetical, move)
	return hypothetical
}
