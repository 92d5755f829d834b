package config

import (
	"fmt"

	"github.com/lgbarn/boardstate-go/internal/engine"
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// ReplayConfig holds settings for replaying move lists.
type ReplayConfig struct {
	// StartFEN is the position every game starts from.
	StartFEN string

	// MaxPlies stops each game after this many moves (0 = no limit).
	MaxPlies int

	// StopOnError aborts the whole run at the first illegal move.
	StopOnError bool
}

// NewReplayConfig creates a ReplayConfig starting from the standard position.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{StartFEN: engine.InitialFEN}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.MaxPlies < 0 {
		return fmt.Errorf("ply limit (%d) is negative: %w", r.MaxPlies, errors.ErrInvalidConfig)
	}
	if _, err := engine.NewBoardFromFEN(r.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
