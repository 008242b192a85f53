package config

import (
	"github.com/kelseyhightower/envconfig"
)

// GameConfig is read from GAME_* variables. HouseHitsUntil 0 or below means
// the house default of 16, so GAME_HOUSE_HITS_UNTIL=0 is the same as leaving
// it unset. ReshuffleBelow 0 never reshuffles and Seed 0 seeds from the clock.
type GameConfig struct {
	MaxPlayers     int    `split_words:"true" default:"7"`
	HouseName      string `split_words:"true" default:"House"`
	HouseHitsUntil int    `split_words:"true" default:"16"`
	BotHitsUntil   int    `split_words:"true" default:"16"`
	ReshuffleBelow int    `split_words:"true" default:"0"`
	Seed           int64  `default:"0"`
}

func ReadGameConfig() (GameConfig, error) {
	var cfg GameConfig
	err := envconfig.Process("GAME", &cfg)
	return cfg, err
}

func MustReadGameConfig() GameConfig {
	var cfg GameConfig
	envconfig.MustProcess("GAME", &cfg)
	return cfg
}
