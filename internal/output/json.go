package output

import (
	"strings"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/notation"
	"github.com/lgbarn/boardstate-go/internal/worker"
)

// JSONGame represents one replayed game in JSON format.
type JSONGame struct {
	Game           int        `json:"game"`
	Moves          []JSONMove `json:"moves,omitempty"`
	PlyCount       int        `json:"plyCount"`
	FinalFEN       string     `json:"finalFEN,omitempty"`
	InCheck        *bool      `json:"inCheck,omitempty"`
	Draws          []string   `json:"draws,omitempty"`
	Underpromotion bool       `json:"underpromotion,omitempty"`
	Error          string     `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Promotion string `json:"promotion,omitempty"`
	FEN       string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// ResultToJSON converts a replay result to JSON format. Games are numbered
// from 1 in input order.
func ResultToJSON(r worker.ProcessResult, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Game:     r.Index + 1,
		PlyCount: r.Plies,
	}
	if r.Error != nil {
		jg.Error = r.Error.Error()
	}
	if r.Board == nil {
		return jg
	}

	jg.FinalFEN = finalFEN(r)
	if cfg.Output.ReportCheck {
		inCheck := r.InCheck
		jg.InCheck = &inCheck
	}
	if r.Analysis != nil {
		if cfg.Output.ReportDraws {
			jg.Draws = r.Analysis.Claims()
		}
		jg.Underpromotion = r.Analysis.Underpromotion
	}
	if cfg.Output.ShowHistory || cfg.Output.FENEachMove {
		jg.Moves = convertMoves(r, cfg.Output.FENEachMove)
	}
	return jg
}

// convertMoves lists the moves of the game, with the position after each
// when includeFEN is set.
func convertMoves(r worker.ProcessResult, includeFEN bool) []JSONMove {
	moves := make([]JSONMove, 0, len(r.Board.History))
	for i, m := range r.Board.History {
		jm := JSONMove{
			Ply:   i + 1,
			Color: strings.ToLower(m.Colour.String()),
			UCI:   notation.FormatMove(m),
			From:  m.From.String(),
			To:    m.To.String(),
			Piece: pieceTypeName(m.Piece),
		}
		if m.IsPromotion() {
			promo := m.Promotion
			if promo == chess.Empty {
				promo = chess.Queen
			}
			jm.Promotion = pieceTypeName(promo)
		}
		if includeFEN && i < len(r.Positions) {
			jm.FEN = r.Positions[i]
		}
		moves = append(moves, jm)
	}
	return moves
}

// pieceTypeName returns the lowercase name of a piece type.
func pieceTypeName(p chess.Piece) string {
	return strings.ToLower(p.String())
}
