package ai

import "fmt"

// Difficulty affects reaction time and decision quality.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty maps a name from config or the command line to a preset.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "normal", "":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q", s)
}

// Weights are relative odds for each action in a decision roll. An action
// that is not viable this think is left out of the roll.
type Weights struct {
	Approach float64
	Retreat  float64
	Jump     float64
	Block    float64
	Light    float64
	Heavy    float64
	Special  float64
	Super    float64
}

// Config holds tuning values for one difficulty.
type Config struct {
	ThinkInterval    float64 // seconds between decisions
	AttackCooldown   float64 // seconds after an attack before the next one
	HoldTime         float64 // seconds movement and block are held
	AttackRange      float64 // melee reach
	SpecialRange     float64 // specials are thrown from beyond melee range
	ThreatRange      float64 // an attacking opponent inside this is a threat
	RetreatThreshold float64 // health ratio below which retreat is favored
	Weights          Weights
}

// Preset returns the tuning for d. Unknown values get Normal.
func Preset(d Difficulty) Config {
	if c, ok := presets[d]; ok {
		return c
	}
	return presets[DifficultyNormal]
}

var presets = map[Difficulty]Config{
	DifficultyEasy: {
		ThinkInterval:    0.5,
		AttackCooldown:   0.9,
		HoldTime:         0.4,
		AttackRange:      70,
		SpecialRange:     160,
		ThreatRange:      90,
		RetreatThreshold: 0.2,
		Weights: Weights{
			Approach: 3,
			Retreat:  1,
			Jump:     0.5,
			Block:    0.5,
			Light:    3,
			Heavy:    1,
			Special:  0.3,
			Super:    0.1,
		},
	},
	DifficultyNormal: {
		ThinkInterval:    0.25,
		AttackCooldown:   0.5,
		HoldTime:         0.3,
		AttackRange:      80,
		SpecialRange:     180,
		ThreatRange:      100,
		RetreatThreshold: 0.3,
		Weights: Weights{
			Approach: 3,
			Retreat:  1,
			Jump:     0.5,
			Block:    2,
			Light:    4,
			Heavy:    2,
			Special:  1,
			Super:    0.5,
		},
	},
	DifficultyHard: {
		ThinkInterval:    0.1,
		AttackCooldown:   0.25,
		HoldTime:         0.2,
		AttackRange:      90,
		SpecialRange:     200,
		ThreatRange:      110,
		RetreatThreshold: 0.15,
		Weights: Weights{
			Approach: 3,
			Retreat:  1,
			Jump:     0.5,
			Block:    5,
			Light:    5,
			Heavy:    3,
			Special:  2,
			Super:    2,
		},
	},
}
