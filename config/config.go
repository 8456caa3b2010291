package config

import (
	"image/color"

	"github.com/automoto/versus/shared/ai"
	"github.com/automoto/versus/shared/arena"
)

type Config struct {
	Width  int
	Height int
	Title  string
}

// FighterConfig contains how fighters and their boxes are drawn
type FighterConfig struct {
	SlotColors     [2]color.RGBA
	BodyWidth      float32 // Online fighters are drawn at this size
	BodyHeight     float32
	HitboxColor    color.RGBA
	FacingMarker   float32 // Size of the facing square in pixels
	ProjectileSize float32 // Minimum drawn projectile size
}

// MatchConfig contains the local versus setup
type MatchConfig struct {
	Stage            string
	DefaultCharacter string // Used when the profile has none saved
}

// BotConfig contains the local opponent
type BotConfig struct {
	Character  string
	Difficulty ai.Difficulty
	Seed       int64
}

// HUDConfig contains the debug overlay layout
type HUDConfig struct {
	BarWidth   float32
	BarHeight  float32
	Margin     float32
	HealthFill color.RGBA
	HyperFill  color.RGBA
	StunFill   color.RGBA
	BarBack    color.RGBA
}

type DebugConfig struct {
	ShowBoxes  bool // Draw hurtboxes and hitboxes
	ShowStates bool // Print state names above fighters
	ShowBars   bool // Meter bars and round status overlay
	LogCombat  bool // Forwarded to fsm and hitbox Debug
}

// NetworkConfig contains the online client settings
type NetworkConfig struct {
	Version    string
	PlayerName string
	SendRate   int // Input messages per second when held input is unchanged
}

var C *Config
var Combat arena.Config
var Fighter FighterConfig
var Match MatchConfig
var Bot BotConfig
var HUD HUDConfig
var Debug DebugConfig
var Network NetworkConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	Background   = color.RGBA{R: 15, G: 20, B: 35, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 384,
		Title:  "versus",
	}

	// Combat starts from the shared defaults so the local arena plays like
	// the dedicated server.
	Combat = arena.DefaultConfig()
	Combat.Match.RoundsToWin = 2
	Combat.Match.RoundTime = 60
	Combat.Match.CountdownTime = 2

	Fighter = FighterConfig{
		SlotColors: [2]color.RGBA{
			{R: 80, G: 160, B: 255, A: 255},
			{R: 255, G: 110, B: 80, A: 255},
		},
		BodyWidth:      32,
		BodyHeight:     80,
		HitboxColor:    color.RGBA{R: 255, G: 40, B: 40, A: 160},
		FacingMarker:   6,
		ProjectileSize: 8,
	}

	Match = MatchConfig{
		Stage:            "dojo",
		DefaultCharacter: "gojo",
	}

	Bot = BotConfig{
		Character:  "sukuna",
		Difficulty: ai.DifficultyNormal,
		Seed:       1,
	}

	HUD = HUDConfig{
		BarWidth:   300,
		BarHeight:  10,
		Margin:     12,
		HealthFill: LightGreen,
		HyperFill:  LightBlue,
		StunFill:   Orange,
		BarBack:    BlackOverlay,
	}

	Debug = DebugConfig{
		ShowBoxes:  true,
		ShowStates: true,
		ShowBars:   true,
		LogCombat:  false,
	}

	Network = NetworkConfig{
		Version:    "0.1.0",
		PlayerName: "player",
		SendRate:   20,
	}
}
