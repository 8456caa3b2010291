package arena

import (
	"github.com/automoto/versus/shared/fsm"
	"github.com/automoto/versus/shared/hitbox"
	"github.com/automoto/versus/shared/stats"
)

// MatchConfig holds round rules. Times are in seconds.
type MatchConfig struct {
	RoundsToWin   int
	MaxRounds     int // a match of draws ends here
	RoundTime     float64
	CountdownTime float64
	RoundOverTime float64
}

// Config bundles every tuning value an arena hands to its fighters.
type Config struct {
	Fighter fsm.Config
	Stats   stats.Config
	Hitbox  hitbox.Config
	Match   MatchConfig

	CellSize     int
	MaxFallSpeed float64

	// Tint timings for the hit flash and the dizzy pulse.
	FlashTime float64
	PulseTime float64
}

func DefaultConfig() Config {
	return Config{
		Fighter: fsm.DefaultConfig(),
		Stats:   stats.DefaultConfig(),
		Hitbox:  hitbox.DefaultConfig(),
		Match: MatchConfig{
			RoundsToWin:   2,
			MaxRounds:     5,
			RoundTime:     99,
			CountdownTime: 1.5,
			RoundOverTime: 2,
		},
		CellSize:     16,
		MaxFallSpeed: 900,
		FlashTime:    0.2,
		PulseTime:    0.3,
	}
}
