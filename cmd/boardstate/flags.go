// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/boardstate-go/internal/config"
)

// Command-line flags
var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwriting")
	jsonOutput   = flag.Bool("J", false, "Output results in JSON format")
	jsonLines    = flag.Bool("Jl", false, "Output one JSON object per game, one per line")

	// Report content
	fenEachMove = flag.Bool("fenall", false, "Report the FEN after every move")
	reportCheck = flag.Bool("check", false, "Report whether the side to move is in check")
	showHistory = flag.Bool("history", false, "List the moves that were applied")
	reportDraws = flag.Bool("draws", false, "Report draw claims (fifty-move, repetition, insufficient material)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games ending in a position already output")

	// Replay options
	startFEN    = flag.String("fen", "", "Start every game from this FEN (default: standard position)")
	plyLimit    = flag.Int("plylimit", 0, "Stop each game after this many plies (0 = no limit)")
	stopOnError = flag.Bool("stoponerror", false, "Stop the run at the first illegal move")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log every applied move")

	// Modes
	interactive = flag.Bool("i", false, "Interactive mode: read commands from stdin")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyReplayFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}

	cfg.Workers = *workers
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	cfg.InputFiles = flag.Args()
	cfg.OutputFilename = *outputFile
}

// applyOutputFlags configures what is reported for each game.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.JSONLines = *jsonLines
	cfg.Output.FENEachMove = *fenEachMove
	cfg.Output.ReportCheck = *reportCheck
	cfg.Output.ShowHistory = *showHistory
	cfg.Output.ReportDraws = *reportDraws
	cfg.Output.SuppressDuplicates = *suppressDuplicates
}

// applyReplayFlags configures how games are replayed.
func applyReplayFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.Replay.StartFEN = *startFEN
	}
	cfg.Replay.MaxPlies = *plyLimit
	cfg.Replay.StopOnError = *stopOnError
}
