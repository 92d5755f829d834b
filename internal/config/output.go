package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// JSONLines writes one compact JSON object per game as it is replayed
	JSONLines bool

	// FENEachMove prints the position after every ply, not only the last
	FENEachMove bool

	// ReportCheck adds whether the side to move is in check
	ReportCheck bool

	// ShowHistory includes the applied moves in long algebraic form
	ShowHistory bool

	// ReportDraws lists the draw rules each game reached
	ReportDraws bool

	// SuppressDuplicates drops games ending in a position already output
	SuppressDuplicates bool
}

// NewOutputConfig creates an OutputConfig with default values.
// Only the final position is printed by default.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
