// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	Semantic SemanticConfig `mapstructure:"semantic"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ScoringConfig holds the weighted-score composition settings.
//
// Weights are configuration, not hard-coded invariants; they must sum to 1.
type ScoringConfig struct {
	Weights    WeightsConfig    `mapstructure:"weights"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`
}

// WeightsConfig holds the relative weight of each sub-score.
type WeightsConfig struct {
	Skills     float64 `mapstructure:"skills"`
	Experience float64 `mapstructure:"experience"`
	Semantic   float64 `mapstructure:"semantic"`
}

// ThresholdsConfig holds the coarse 3-tier fit thresholds used by the
// outward-facing summary layer. The detailed 4-tier category mapping
// (85/70/50) belongs to the score package itself.
type ThresholdsConfig struct {
	StrongFit   float64 `mapstructure:"strong_fit"`
	ModerateFit float64 `mapstructure:"moderate_fit"`
}

// SemanticConfig identifies the external embedding collaborator.
type SemanticConfig struct {
	ModelName string `mapstructure:"model_name"`
	Timeout   int    `mapstructure:"timeout"` // milliseconds
}

// CacheConfig holds settings for the optional score memoization cache.
type CacheConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	TTL     int         `mapstructure:"ttl"` // seconds
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Sum returns the total of the three sub-score weights.
func (w WeightsConfig) Sum() float64 {
	return w.Skills + w.Experience + w.Semantic
}

// String renders the weights for log output.
func (w WeightsConfig) String() string {
	return fmt.Sprintf("skills=%.2f experience=%.2f semantic=%.2f", w.Skills, w.Experience, w.Semantic)
}
