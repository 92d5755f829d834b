package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// PieceToFENChar returns the FEN letter for a piece: uppercase for White,
// lowercase for Black.
func PieceToFENChar(piece chess.Piece, colour chess.Colour) byte {
	letter := piece.Letter()
	if colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.PieceAt(chess.Position{Row: row, Column: col})
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENChar(piece.Piece, piece.Colour))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.WhiteCastling.CanCastleKingside() {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.WhiteCastling.CanCastleQueenside() {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.BlackCastling.CanCastleKingside() {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.BlackCastling.CanCastleQueenside() {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if target, ok := board.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewBoardFromFEN creates a board from a FEN string. Missing trailing fields
// take their starting-position defaults.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("%d fields: %w", len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		prevDigit := false
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				if prevDigit {
					return fmt.Errorf("rank %d has adjacent digits: %w", row+1, errors.ErrInvalidFEN)
				}
				col += int(c - '0')
				prevDigit = true
			default:
				prevDigit = false
				piece := ConvertFENCharToPiece(byte(c))
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if err := board.Place(piece, colour, chess.Position{Row: row, Column: col}); err != nil {
					return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
				}
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", row+1, col, errors.ErrInvalidFEN)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.CountPieces(chess.King, colour); n != 1 {
			return fmt.Errorf("%d %s kings: %w", n, colour, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A missing
// letter marks the corresponding rook as moved.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 {
		return nil
	}

	board.WhiteCastling = chess.CastlingRights{RookAMoved: true, RookHMoved: true}
	board.BlackCastling = chess.CastlingRights{RookAMoved: true, RookHMoved: true}
	if parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.WhiteCastling.RookHMoved = false
		case 'Q':
			board.WhiteCastling.RookAMoved = false
		case 'k':
			board.BlackCastling.RookHMoved = false
		case 'q':
			board.BlackCastling.RookAMoved = false
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	pos, err := chess.ParsePosition(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square: %v: %w", err, errors.ErrInvalidFEN)
	}

	// The target is the square skipped by the last two-square pawn advance.
	mover := board.ToMove
	if pos.Row != chess.PawnStartRow(mover.Opposite())+chess.ColourOffset(mover.Opposite()) {
		return fmt.Errorf("en passant square %s on the wrong rank: %w", pos, errors.ErrInvalidFEN)
	}
	if _, occupied := board.PieceAt(pos); occupied {
		return fmt.Errorf("en passant square %s is occupied: %w", pos, errors.ErrInvalidFEN)
	}
	pawnSquare := chess.Position{Row: pos.Row - chess.ColourOffset(mover), Column: pos.Column}
	if p, ok := board.PieceAt(pawnSquare); !ok || p.Piece != chess.Pawn || p.Colour == mover {
		return fmt.Errorf("no %s pawn in front of en passant square %s: %w", mover.Opposite(), pos, errors.ErrInvalidFEN)
	}
	board.SetupEnPassant = true
	board.SetupEPSquare = pos
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("move number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.MoveNumber = uint(n)
	}
	return nil
}
