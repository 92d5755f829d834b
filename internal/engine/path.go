package engine

import "github.com/lgbarn/boardstate-go/internal/chess"

// canPieceMove checks if a piece can move from its square to another,
// ignoring castling and king safety.
func canPieceMove(board *chess.Board, piece chess.PositionedPiece, to chess.Position) bool {
	switch piece.Piece {
	case chess.Pawn:
		return canPawnMove(board, piece, to)

	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King:
		// Apart from pawns, every piece moves the way it attacks.
		return attacks(board, piece, to)
	}

	return false
}

// applyPlacement moves pieces on the board for a validated move: it removes
// the captured piece, relocates the mover and, for castling, the rook, and
// promotes a pawn reaching its last row. It returns the captured piece.
// No counters, rights or history are touched.
func applyPlacement(board *chess.Board, move chess.Move) (chess.PositionedPiece, bool) {
	captured, didCapture := board.RemovePiece(move.To)

	if move.Piece == chess.Pawn && !didCapture && move.From.Column != move.To.Column {
		// A diagonal pawn step onto an empty square is en passant.
		captured, didCapture = board.RemovePiece(enPassantVictim(move.From, move.To))
	}

	board.MovePiece(move.From, move.To)

	if move.IsCastle() {
		rookFrom, rookTo := castleRookSquares(move)
		board.MovePiece(rookFrom, rookTo)
	}

	if move.IsPromotion() {
		board.SetPiece(move.To, promotionPiece(move))
	}

	return captured, didCapture
}
