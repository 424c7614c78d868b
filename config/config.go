// Package config loads the runtime knobs for puzzle construction and
// solving from defaults, an optional config file, and JIGSOLVER_*
// environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// PatchSize is the side length, in samples, of every piece.
	PatchSize int
	// Seed drives every random source (shuffle, segment trials, placement).
	Seed uint64
	// Trials is the segment-search budget per round; 0 derives it from the
	// board size.
	Trials int
	// MaxRounds bounds the place/segment/prune loop.
	MaxRounds int
	Debug     bool
}

func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("patch_size", 100)
	v.SetDefault("seed", 0)
	v.SetDefault("trials", 0)
	v.SetDefault("max_rounds", 50)
	v.SetDefault("debug", false)
	v.SetEnvPrefix("jigsolver")
	v.AutomaticEnv()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	cfg := &Config{
		PatchSize: v.GetInt("patch_size"),
		Seed:      v.GetUint64("seed"),
		Trials:    v.GetInt("trials"),
		MaxRounds: v.GetInt("max_rounds"),
		Debug:     v.GetBool("debug"),
	}
	if cfg.PatchSize < 1 {
		return nil, fmt.Errorf("patch_size %d out of range", cfg.PatchSize)
	}
	if cfg.MaxRounds < 1 {
		return nil, fmt.Errorf("max_rounds %d out of range", cfg.MaxRounds)
	}
	return cfg, nil
}
