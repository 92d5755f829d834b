package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/engine"
	"github.com/lgbarn/boardstate-go/internal/notation"
	"github.com/lgbarn/boardstate-go/internal/worker"
)

// OutputResult writes one replayed game as text:
//
//	game 1: <final FEN>
//	  1. e2e4 <FEN>       (with FENEachMove)
//	  moves: e2e4 e7e5    (with ShowHistory)
//	  check: yes          (with ReportCheck)
//	  draws: threefold    (with ReportDraws)
//	  error: ...          (if the game stopped early)
func OutputResult(w io.Writer, r worker.ProcessResult, cfg *config.Config) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "game %d:", r.Index+1)
	if r.Board != nil {
		sb.WriteByte(' ')
		sb.WriteString(finalFEN(r))
	}
	sb.WriteByte('\n')

	if r.Board != nil {
		if cfg.Output.FENEachMove {
			for i, m := range r.Board.History {
				if i >= len(r.Positions) {
					break
				}
				fmt.Fprintf(&sb, "  %d. %s %s\n", i+1, notation.FormatMove(m), r.Positions[i])
			}
		}
		if cfg.Output.ShowHistory {
			moves := make([]string, len(r.Board.History))
			for i, m := range r.Board.History {
				moves[i] = notation.FormatMove(m)
			}
			fmt.Fprintf(&sb, "  moves: %s\n", strings.Join(moves, " "))
		}
		if cfg.Output.ReportCheck {
			fmt.Fprintf(&sb, "  check: %s\n", yesNo(r.InCheck))
		}
		if cfg.Output.ReportDraws && r.Analysis != nil {
			fmt.Fprintf(&sb, "  draws: %s\n", drawList(r.Analysis.Claims()))
		}
	}
	if r.Error != nil {
		fmt.Fprintf(&sb, "  error: %v\n", r.Error)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// finalFEN returns the last position of a result.
func finalFEN(r worker.ProcessResult) string {
	return engine.BoardToFEN(r.Board)
}

func drawList(claims []string) string {
	if len(claims) == 0 {
		return "none"
	}
	return strings.Join(claims, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
