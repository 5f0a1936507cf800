// Package config provides YAML-based game configuration loading and
// difficulty presets for the puzzle games.
package config

// Game2048Config contains all configuration for the 2048 game.
type Game2048Config struct {
	Target int         `yaml:"target"` // Tile value that wins the game
	Spawn  SpawnConfig `yaml:"spawn"`
}

// SpawnConfig defines how new tiles appear on the 2048 board.
type SpawnConfig struct {
	InitialTiles    int     `yaml:"initial_tiles"`    // Tiles placed by Initialize
	FourProbability float64 `yaml:"four_probability"` // Chance of a 4 instead of a 2 (0.0-1.0)
}

// FifteenConfig contains all configuration for the 15-puzzle.
type FifteenConfig struct {
	Shuffle bool `yaml:"shuffle"` // false starts from a fixed, solvable layout
}

// Validate fills zero or out-of-range values with defaults.
func (c *Game2048Config) Validate() {
	def := DefaultGame2048Config()
	if c.Target <= 0 {
		c.Target = def.Target
	}
	if c.Spawn.InitialTiles <= 0 {
		c.Spawn.InitialTiles = def.Spawn.InitialTiles
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		c.Spawn.FourProbability = def.Spawn.FourProbability
	}
}
