package engine

import (
	"testing"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/testutil"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(board)
			}
		})
	}
}

func BenchmarkFEN_RoundTrip(b *testing.B) {
	fen := benchFENs["Midgame"]
	for i := 0; i < b.N; i++ {
		board, _ := NewBoardFromFEN(fen)
		BoardToFEN(board)
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move chess.Move
	}{
		{
			name: "PawnMove",
			fen:  benchFENs["Initial"],
			move: chess.Move{From: testutil.Sq("e2"), To: testutil.Sq("e4"), Piece: chess.Pawn, Colour: chess.White},
		},
		{
			name: "PieceMove",
			fen:  benchFENs["Initial"],
			move: chess.Move{From: testutil.Sq("g1"), To: testutil.Sq("f3"), Piece: chess.Knight, Colour: chess.White},
		},
		{
			name: "KingsideCastle",
			fen:  benchFENs["Castling"],
			move: chess.Move{From: testutil.Sq("e1"), To: testutil.Sq("g1"), Piece: chess.King, Colour: chess.White},
		},
		{
			name: "QueensideCastle",
			fen:  benchFENs["Castling"],
			move: chess.Move{From: testutil.Sq("e1"), To: testutil.Sq("c1"), Piece: chess.King, Colour: chess.White},
		},
		{
			name: "EnPassant",
			fen:  benchFENs["EnPassant"],
			move: chess.Move{From: testutil.Sq("f5"), To: testutil.Sq("e6"), Piece: chess.Pawn, Colour: chess.White},
		},
		{
			name: "Promotion",
			fen:  "8/P7/8/8/8/8/8/4K2k w - - 0 1",
			move: chess.Move{From: testutil.Sq("a7"), To: testutil.Sq("a8"), Piece: chess.Pawn, Colour: chess.White, Promotion: chess.Queen},
		},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(tt.fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				boardCopy := board.Copy()
				ApplyMove(boardCopy, tt.move)
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := []chess.Move{
		{From: testutil.Sq("e2"), To: testutil.Sq("e4"), Piece: chess.Pawn, Colour: chess.White},
		{From: testutil.Sq("e7"), To: testutil.Sq("e5"), Piece: chess.Pawn, Colour: chess.Black},
		{From: testutil.Sq("g1"), To: testutil.Sq("f3"), Piece: chess.Knight, Colour: chess.White},
		{From: testutil.Sq("b8"), To: testutil.Sq("c6"), Piece: chess.Knight, Colour: chess.Black},
		{From: testutil.Sq("f1"), To: testutil.Sq("c4"), Piece: chess.Bishop, Colour: chess.White},
		{From: testutil.Sq("f8"), To: testutil.Sq("c5"), Piece: chess.Bishop, Colour: chess.Black},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := chess.NewInitialBoard()
		ApplyMoves(board, moves)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		board, _ := NewBoardFromFEN(benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board, _ := NewBoardFromFEN(checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})
}

func BenchmarkValidateMove(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Complex"}
	move := chess.Move{From: testutil.Sq("e1"), To: testutil.Sq("f1"), Piece: chess.King, Colour: chess.White}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ValidateMove(board, move)
			}
		})
	}
}

func BenchmarkBoardCopy(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Copy()
	}
}
