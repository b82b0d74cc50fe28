package skyraid

import (
	"math/rand"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// EnemySpawner releases one enemy every SpawnRate ticks above the screen.
type EnemySpawner struct {
	timer   int
	cfg     config.EnemyConfig
	screenW int
	rng     *rand.Rand
}

// NewEnemySpawner creates a spawner with its own RNG seeded from seed.
func NewEnemySpawner(cfg config.EnemyConfig, screenW int, seed int64) *EnemySpawner {
	return &EnemySpawner{
		cfg:     cfg,
		screenW: screenW,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Update advances the timer and spawns into enemies when it expires.
// Returns true if an enemy was spawned this tick.
func (s *EnemySpawner) Update(enemies *Arena[Enemy]) bool {
	s.timer++
	if s.timer < s.cfg.SpawnRate {
		return false
	}
	s.timer = 0
	enemies.Add(s.spawn())
	return true
}

// spawn builds an enemy centred at a random x inside the margins, at SpawnY.
func (s *EnemySpawner) spawn() Enemy {
	lo, hi := s.cfg.SpawnMargin, s.screenW-s.cfg.SpawnMargin
	x := lo + s.rng.Intn(core.Max(hi-lo, 0)+1)
	speed := s.cfg.SpeedMin + s.rng.Intn(s.cfg.SpeedMax-s.cfg.SpeedMin+1)

	return Enemy{
		Rect:   core.NewRectCentered(x, s.cfg.SpawnY, s.cfg.Width, s.cfg.Height),
		Speed:  speed,
		Health: s.cfg.Health,
		Damage: s.cfg.ContactDamage,
	}
}

// Reset restarts the spawn timer. The RNG stream continues so successive
// runs in one session differ.
func (s *EnemySpawner) Reset() {
	s.timer = 0
}

// Timer returns the ticks elapsed since the last spawn.
func (s *EnemySpawner) Timer() int {
	return s.timer
}
