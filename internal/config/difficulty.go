package config

// ApplyDinoPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyDinoPreset(cfg *DinoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = 4
		cfg.Ground.MinSpawnInterval = 50
		cfg.Ground.MaxSpawnInterval = 120
		cfg.Aerial.UnlockScore = 1500
	case DifficultyNormal:
		// Shipped defaults already describe normal play.
	case DifficultyHard:
		cfg.Speed.Base = 6
		cfg.Ground.MinSpawnInterval = 35
		cfg.Ground.MaxSpawnInterval = 80
		cfg.Aerial.UnlockScore = 500
	case DifficultyFixed:
		// No progression: constant speed and spawn bounds for the whole run.
		cfg.Speed.IncrementAmount = 0
		cfg.Ground.MinIntervalDecrement = 0
		cfg.Ground.MaxIntervalDecrement = 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
