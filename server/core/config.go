package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/automoto/versus/shared/ai"
	"github.com/spf13/viper"
)

// Config is the dedicated server's configuration, read from server.yaml and
// overridable with VERSUS_ environment variables (VERSUS_SERVER_PORT).
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Match  MatchConfig  `mapstructure:"match"`
	Bot    BotConfig    `mapstructure:"bot"`
}

type ServerConfig struct {
	Port     uint   `mapstructure:"port"`
	TickRate int    `mapstructure:"tick_rate"`
	Name     string `mapstructure:"name"`
	Version  string `mapstructure:"version"` // required client version, empty accepts any
	Debug    bool   `mapstructure:"debug"`
}

type MatchConfig struct {
	Stage            string  `mapstructure:"stage"`
	DefaultCharacter string  `mapstructure:"default_character"`
	RoundsToWin      int     `mapstructure:"rounds_to_win"`
	RoundTime        float64 `mapstructure:"round_time"`
	RestartDelay     float64 `mapstructure:"restart_delay"`
}

type BotConfig struct {
	// Fill gives an empty or abandoned slot to the AI.
	Fill       bool   `mapstructure:"fill"`
	Difficulty string `mapstructure:"difficulty"`
	Character  string `mapstructure:"character"`
	Seed       int64  `mapstructure:"seed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 7373)
	v.SetDefault("server.tick_rate", 30)
	v.SetDefault("server.name", "Versus Server")
	v.SetDefault("server.version", "")
	v.SetDefault("server.debug", false)
	v.SetDefault("match.stage", "dojo")
	v.SetDefault("match.default_character", "gojo")
	v.SetDefault("match.rounds_to_win", 2)
	v.SetDefault("match.round_time", 99)
	v.SetDefault("match.restart_delay", 5)
	v.SetDefault("bot.fill", true)
	v.SetDefault("bot.difficulty", "normal")
	v.SetDefault("bot.character", "sukuna")
	v.SetDefault("bot.seed", 1)
}

// LoadConfig reads path when it is set. A missing file is not an error;
// defaults and the environment still apply.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("VERSUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
			log.Printf("[server] no config at %s, using defaults", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the loop cannot run with.
func (c Config) Validate() error {
	if c.Server.TickRate <= 0 || c.Server.TickRate > 60 {
		return fmt.Errorf("tick_rate %d out of range 1-60", c.Server.TickRate)
	}
	if c.Match.RoundsToWin <= 0 {
		return fmt.Errorf("rounds_to_win must be positive, got %d", c.Match.RoundsToWin)
	}
	if c.Match.RoundTime <= 0 {
		return fmt.Errorf("round_time must be positive, got %v", c.Match.RoundTime)
	}
	if _, err := ai.ParseDifficulty(c.Bot.Difficulty); err != nil {
		return fmt.Errorf("bot: %w", err)
	}
	return nil
}

// BotPreset returns the AI tuning for the configured difficulty.
func (c Config) BotPreset() ai.Config {
	d, err := ai.ParseDifficulty(c.Bot.Difficulty)
	if err != nil {
		d = ai.DifficultyNormal
	}
	return ai.Preset(d)
}
