package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Engine EngineConfig
	Tiers  TierConfig
}

type EngineConfig struct {
	MaxProfiles     int
	JobSlotsPerTier int
	CooldownSeconds int
	MaxTiers        int
}

type TierConfig struct {
	DefaultLadder []int // kbps, lowest tier first
}

// DefaultLadder is the stock adaptive-bitrate ladder, truncated to
// engine.max_tiers at construction.
var DefaultLadder = []int{400, 800, 1200, 2400, 4800, 8000, 12000, 18000, 22000, 25000}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("engine.max_profiles", 64)
	viper.SetDefault("engine.job_slots_per_tier", 89)
	viper.SetDefault("engine.cooldown_seconds", 1123)
	viper.SetDefault("engine.max_tiers", 12)
	viper.SetDefault("tiers.default_ladder", DefaultLadder)

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Engine: EngineConfig{
			MaxProfiles:     viper.GetInt("engine.max_profiles"),
			JobSlotsPerTier: viper.GetInt("engine.job_slots_per_tier"),
			CooldownSeconds: viper.GetInt("engine.cooldown_seconds"),
			MaxTiers:        viper.GetInt("engine.max_tiers"),
		},
		Tiers: TierConfig{
			DefaultLadder: viper.GetIntSlice("tiers.default_ladder"),
		},
	}

	return cfg, nil
}
