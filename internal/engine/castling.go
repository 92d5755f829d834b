package engine

import (
	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// Columns of the castling pieces.
const (
	kingHomeCol      = 4
	rookACol         = 0
	rookHCol         = chess.BoardSize - 1
	kingsideRookCol  = 5 // f-file
	queensideRookCol = 3 // d-file
)

// castleRookSquares returns where the rook starts and lands for a castling move.
func castleRookSquares(move chess.Move) (from, to chess.Position) {
	row := move.From.Row
	if move.To.Column > move.From.Column {
		return chess.Position{Row: row, Column: rookHCol}, chess.Position{Row: row, Column: kingsideRookCol}
	}
	return chess.Position{Row: row, Column: rookACol}, chess.Position{Row: row, Column: queensideRookCol}
}

// checkCastle validates a king move of two columns. The landing square is
// covered by the general king-safety check.
func checkCastle(board *chess.Board, move chess.Move) error {
	home := chess.Position{Row: chess.HomeRow(move.Colour), Column: kingHomeCol}
	if move.From != home {
		return errors.Wrapf(errors.ErrIllegalMove, "king on %s cannot castle", move.From)
	}

	rights := board.Castling(move.Colour)
	kingside := move.To.Column > move.From.Column
	if kingside && !rights.CanCastleKingside() {
		return errors.Wrapf(errors.ErrIllegalMove, "%s has lost kingside castling", move.Colour)
	}
	if !kingside && !rights.CanCastleQueenside() {
		return errors.Wrapf(errors.ErrIllegalMove, "%s has lost queenside castling", move.Colour)
	}

	rookFrom, _ := castleRookSquares(move)
	rook, ok := board.PieceAt(rookFrom)
	if !ok || rook.Piece != chess.Rook || rook.Colour != move.Colour {
		return errors.Wrapf(errors.ErrIllegalMove, "no %s rook on %s", move.Colour, rookFrom)
	}
	if !board.IsPathClear(move.From, rookFrom) {
		return errors.Wrapf(errors.ErrIllegalMove, "pieces between king and rook on %s", rookFrom)
	}

	inCheck, err := IsInCheck(board, move.Colour)
	if err != nil {
		return err
	}
	if inCheck {
		return errors.Wrapf(errors.ErrIllegalMove, "%s cannot castle out of check", move.Colour)
	}

	passing := chess.Position{Row: home.Row, Column: home.Column + chess.Sign(move.To.Column-move.From.Column)}
	if IsSquareAttacked(board, passing, move.Colour.Opposite()) {
		return errors.Wrapf(errors.ErrIllegalMove, "king would pass through attacked square %s", passing)
	}
	return nil
}

// updateCastlingRights marks the king or rook of the mover as moved, and a
// rook captured on its home square as gone. Flags are never cleared.
func updateCastlingRights(board *chess.Board, move chess.Move, captured chess.PositionedPiece, didCapture bool) {
	rights := board.Castling(move.Colour)
	switch move.Piece {
	case chess.King:
		rights.KingMoved = true
	case chess.Rook:
		markRookMoved(rights, move.Colour, move.From)
	}

	if didCapture && captured.Piece == chess.Rook {
		markRookMoved(board.Castling(captured.Colour), captured.Colour, captured.Position)
	}
}

// markRookMoved sets the rook flag matching a home corner square.
func markRookMoved(rights *chess.CastlingRights, colour chess.Colour, pos chess.Position) {
	if pos.Row != chess.HomeRow(colour) {
		return
	}
	switch pos.Column {
	case rookACol:
		rights.RookAMoved = true
	case rookHCol:
		rights.RookHMoved = true
	}
}
