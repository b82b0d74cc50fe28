// Package config provides YAML-based game configuration loading and
// validation. A Config is loaded once at start and never mutated afterwards.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all tunable constants of the game.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Scoring ScoringConfig `yaml:"scoring"`
	Debug   DebugConfig   `yaml:"debug"`
}

// ScreenConfig defines the world size and frame rate.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	StartX    int `yaml:"start_x"` // Centre of the ship at the start of a run
	StartY    int `yaml:"start_y"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Speed     int `yaml:"speed"` // Pixels per tick per axis
	MaxHealth int `yaml:"max_health"`
}

// EnemyConfig defines enemy ships and how they spawn.
type EnemyConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	SpeedMin      int `yaml:"speed_min"` // Inclusive range for per-enemy speed
	SpeedMax      int `yaml:"speed_max"`
	Health        int `yaml:"health"`
	ContactDamage int `yaml:"contact_damage"` // Flat damage per tick the player is rammed
	SpawnRate     int `yaml:"spawn_rate"`     // Ticks between spawns
	SpawnMargin   int `yaml:"spawn_margin"`   // Spawn x is kept this far from the side edges
	SpawnY        int `yaml:"spawn_y"`        // Centre y of a new enemy, above the screen
}

// BulletConfig defines player bullets.
type BulletConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Speed    int `yaml:"speed"`
	Cooldown int `yaml:"cooldown"` // Minimum ticks between shots
	Damage   int `yaml:"damage"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	KillBonus int `yaml:"kill_bonus"`
}

// DebugConfig defines debug readouts.
type DebugConfig struct {
	ShowFPS bool `yaml:"show_fps"` // Only shown when the game runs with --debug
}

// Validate checks every rule and reports all violations at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	check(c.Screen.FPS > 0, "screen.fps %d must be positive", c.Screen.FPS)

	check(c.Player.Width > 0 && c.Player.Height > 0, "player size %dx%d must be positive", c.Player.Width, c.Player.Height)
	check(c.Player.Speed >= 0, "player.speed %d must not be negative", c.Player.Speed)
	check(c.Player.MaxHealth > 0, "player.max_health %d must be positive", c.Player.MaxHealth)

	check(c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size %dx%d must be positive", c.Enemy.Width, c.Enemy.Height)
	check(c.Enemy.SpeedMin >= 0, "enemy.speed_min %d must not be negative", c.Enemy.SpeedMin)
	check(c.Enemy.SpeedMin <= c.Enemy.SpeedMax, "enemy.speed_min %d exceeds speed_max %d", c.Enemy.SpeedMin, c.Enemy.SpeedMax)
	check(c.Enemy.Health > 0, "enemy.health %d must be positive", c.Enemy.Health)
	check(c.Enemy.ContactDamage >= 0, "enemy.contact_damage %d must not be negative", c.Enemy.ContactDamage)
	check(c.Enemy.SpawnRate > 0, "enemy.spawn_rate %d must be positive", c.Enemy.SpawnRate)
	check(c.Enemy.SpawnMargin >= 0 && 2*c.Enemy.SpawnMargin <= c.Screen.Width,
		"enemy.spawn_margin %d does not fit screen width %d", c.Enemy.SpawnMargin, c.Screen.Width)

	check(c.Bullet.Width > 0 && c.Bullet.Height > 0, "bullet size %dx%d must be positive", c.Bullet.Width, c.Bullet.Height)
	check(c.Bullet.Speed > 0, "bullet.speed %d must be positive", c.Bullet.Speed)
	check(c.Bullet.Cooldown >= 0, "bullet.cooldown %d must not be negative", c.Bullet.Cooldown)
	check(c.Bullet.Damage > 0, "bullet.damage %d must be positive", c.Bullet.Damage)

	check(c.Scoring.KillBonus >= 0, "scoring.kill_bonus %d must not be negative", c.Scoring.KillBonus)

	return errors.Join(errs...)
}
