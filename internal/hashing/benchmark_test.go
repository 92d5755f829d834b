package hashing

import (
	"testing"

	"github.com/lgbarn/boardstate-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkPositionKey(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			board, _ := engine.NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				PositionKey(board)
			}
		})
	}
}

func BenchmarkMaterialSignature(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board, _ := engine.NewBoardFromFEN(benchFENPositions[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				MaterialSignature(board)
			}
		})
	}
}

func BenchmarkDuplicateDetector(b *testing.B) {
	board, _ := engine.NewBoardFromFEN(benchFENPositions["Midgame"])
	detector := NewDuplicateDetector(false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector.CheckAndAdd(i, 0, board)
	}
}
