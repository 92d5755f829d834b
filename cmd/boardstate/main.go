// boardstate replays chess games given as long algebraic move lists and
// reports the resulting positions in FEN.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/boardstate-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("boardstate-go version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run())
}

// run replays the inputs and returns the exit status. Files opened for the
// log and the output are closed before it returns.
func run() int {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Set up logging and output files
	logOut, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFile(logOut)

	outFile, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFile(outFile)

	if *interactive {
		if err := runREPL(os.Stdin, cfg.OutputFile, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	stats, err := processAllInputs(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Report statistics
	reportStatistics(cfg, stats)
	if stats.failed > 0 && cfg.Replay.StopOnError {
		return 2
	}
	return 0
}

// setupLogFile opens the log file named by -l or -L, if any. The caller
// closes the returned file.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	var file *os.File
	var err error

	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", *appendLog, err)
		}
	case *logFile != "":
		file, err = os.Create(*logFile)
		if err != nil {
			return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
	default:
		return nil, nil
	}

	cfg.SetLog(file)
	return file, nil
}

// setupOutputFile opens the output file named by -o, if any. The caller
// closes the returned file.
func setupOutputFile(cfg *config.Config) (*os.File, error) {
	if cfg.OutputFilename == "" {
		return nil, nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", cfg.OutputFilename, err)
	}
	cfg.SetOutput(file)
	return file, nil
}

// closeFile flushes and closes a file opened by the setup functions.
func closeFile(file *os.File) {
	if file == nil {
		return
	}
	if err := file.Sync(); err != nil {
		fmt.Fprintf(os.Stderr, "Error syncing %s: %v\n", file.Name(), err)
	}
	if err := file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %s: %v\n", file.Name(), err)
	}
}

// processAllInputs replays the games in every input file, or stdin when no
// files are named. Games are numbered across all inputs.
func processAllInputs(cfg *config.Config) (runStats, error) {
	var lines []string

	if len(cfg.InputFiles) == 0 {
		read, err := readLines(os.Stdin)
		if err != nil {
			return runStats{}, fmt.Errorf("reading stdin: %w", err)
		}
		lines = read
	} else {
		for _, filename := range cfg.InputFiles {
			file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
				continue
			}

			read, err := readLines(file)
			file.Close() //nolint:errcheck,gosec // G104: read-only file
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
				continue
			}
			cfg.Logf(2, "%s: %d game(s)\n", filename, len(read))
			lines = append(lines, read...)
		}
	}

	return replayAndWrite(lines, cfg)
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats runStats) {
	if stats.duplicates > 0 {
		cfg.Logf(1, "%d duplicate(s) suppressed, %d distinct final position(s).\n", stats.duplicates, stats.unique)
	}
	if stats.failed > 0 {
		cfg.Logf(1, "%d game(s) replayed, %d with errors, out of %d.\n", stats.replayed, stats.failed, stats.total)
	} else {
		cfg.Logf(1, "%d game(s) replayed out of %d.\n", stats.replayed, stats.total)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: boardstate [options] [input-files...]\n\n")
	fmt.Fprintf(out, "Replays chess games and reports the final position in FEN.\n")
	fmt.Fprintf(out, "Each input line is one game: moves in long algebraic form, e.g.\n\n")
	fmt.Fprintf(out, "    e2e4 e7e5 g1f3 b8c6 f1b5\n\n")
	fmt.Fprintf(out, "Blank lines and lines starting with # are ignored.\n\n")
	fmt.Fprintf(out, "Options:\n")
	flag.PrintDefaults()
	printREPLHelp(out)
}

// printREPLHelp lists the interactive commands.
func printREPLHelp(w io.Writer) {
	fmt.Fprintf(w, "\nInteractive commands (-i):\n")
	for _, c := range replCommands {
		fmt.Fprintf(w, "  %-14s %s\n", c.usage, c.help)
	}
}
