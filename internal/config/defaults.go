package config

import (
	_ "embed"
)

//go:embed defaults/skyraid.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// Mirrors defaults/skyraid.yaml and backs it up if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
		},
		Player: PlayerConfig{
			StartX:    400,
			StartY:    500, // 100 above the bottom edge
			Width:     50,
			Height:    50,
			Speed:     5,
			MaxHealth: 100,
		},
		Enemy: EnemyConfig{
			Width:         40,
			Height:        40,
			SpeedMin:      2,
			SpeedMax:      5,
			Health:        20,
			ContactDamage: 20,
			SpawnRate:     60, // one enemy per second at 60fps
			SpawnMargin:   20,
			SpawnY:        -50,
		},
		Bullet: BulletConfig{
			Width:    6,
			Height:   16,
			Speed:    10,
			Cooldown: 15,
			Damage:   10,
		},
		Scoring: ScoringConfig{
			KillBonus: 100,
		},
		Debug: DebugConfig{
			ShowFPS: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
