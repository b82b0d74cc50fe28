package skyraid

import (
	"github.com/vovakirdan/skyraid/internal/config"
)

// BulletManager gates firing with a cooldown. Shots requested during the
// cooldown are dropped, not queued.
type BulletManager struct {
	timer int
	cfg   config.BulletConfig
}

// NewBulletManager creates a manager that is ready to fire.
func NewBulletManager(cfg config.BulletConfig) *BulletManager {
	return &BulletManager{cfg: cfg}
}

// CanShoot reports whether the cooldown has elapsed.
func (m *BulletManager) CanShoot() bool {
	return m.timer == 0
}

// Update counts the cooldown down by one tick.
func (m *BulletManager) Update() {
	if m.timer > 0 {
		m.timer--
	}
}

// Shoot fires a bullet from (x, y) into bullets if the cooldown allows it.
func (m *BulletManager) Shoot(x, y int, bullets *Arena[Bullet]) bool {
	if !m.CanShoot() {
		return false
	}
	bullets.Add(NewBullet(x, y, m.cfg))
	m.timer = m.cfg.Cooldown
	return true
}

// Reset makes the manager ready to fire again.
func (m *BulletManager) Reset() {
	m.timer = 0
}

// Timer returns the remaining cooldown ticks.
func (m *BulletManager) Timer() int {
	return m.timer
}
