package config

import (
	_ "embed"
)

//go:embed defaults/2048.yaml
var defaultGame2048YAML []byte

//go:embed defaults/fifteen.yaml
var defaultFifteenYAML []byte

// DefaultGame2048Config returns the default 2048 configuration.
func DefaultGame2048Config() Game2048Config {
	return Game2048Config{
		Target: 2048,
		Spawn: SpawnConfig{
			InitialTiles:    2,
			FourProbability: 0.10,
		},
	}
}

// DefaultFifteenConfig returns the default 15-puzzle configuration.
func DefaultFifteenConfig() FifteenConfig {
	return FifteenConfig{
		Shuffle: true,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "2048":
		return defaultGame2048YAML
	case "fifteen":
		return defaultFifteenYAML
	default:
		return nil
	}
}
