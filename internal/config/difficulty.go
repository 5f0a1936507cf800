package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// FourProbabilityForPreset returns the 2048 spawn-four probability for a preset.
// Unknown presets return ok == false.
func FourProbabilityForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 0.05, true
	case DifficultyNormal:
		return 0.10, true
	case DifficultyHard:
		return 0.25, true
	default:
		return 0, false
	}
}

// ApplyGame2048Preset modifies the config based on a difficulty preset.
// An empty or unknown preset leaves the config unchanged.
func ApplyGame2048Preset(cfg *Game2048Config, preset DifficultyPreset) {
	if p, ok := FourProbabilityForPreset(preset); ok {
		cfg.Spawn.FourProbability = p
	}
}
