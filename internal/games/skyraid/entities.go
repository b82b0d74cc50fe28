package skyraid

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Player is the ship controlled by the user.
type Player struct {
	Rect      core.Rect
	Speed     int
	Health    int
	MaxHealth int
	Score     int

	bounds core.Rect // Movement is clamped to this rectangle
}

// NewPlayer creates a player centred on the configured start position.
func NewPlayer(cfg config.PlayerConfig, bounds core.Rect) *Player {
	rect := core.NewRectCentered(cfg.StartX, cfg.StartY, cfg.Width, cfg.Height)
	return &Player{
		Rect:      rect.ClampInside(bounds),
		Speed:     cfg.Speed,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		bounds:    bounds,
	}
}

// Move shifts the ship by Speed along each held direction, then clamps it to
// the screen. Opposite directions cancel out.
func (p *Player) Move(in core.InputFrame) {
	dx, dy := 0, 0
	if in.IsHeld(core.ActionLeft) {
		dx -= p.Speed
	}
	if in.IsHeld(core.ActionRight) {
		dx += p.Speed
	}
	if in.IsHeld(core.ActionUp) {
		dy -= p.Speed
	}
	if in.IsHeld(core.ActionDown) {
		dy += p.Speed
	}
	p.Rect = p.Rect.Translate(dx, dy).ClampInside(p.bounds)
}

// TakeDamage lowers health, never below zero.
func (p *Player) TakeDamage(amount int) {
	p.Health = core.Max(p.Health-amount, 0)
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Muzzle returns the point bullets are fired from: the top centre of the ship.
func (p *Player) Muzzle() (int, int) {
	return p.Rect.CenterX(), p.Rect.Y
}

// Enemy is a hostile ship falling down the screen.
type Enemy struct {
	Rect   core.Rect
	Speed  int // Fixed at spawn
	Health int
	Damage int // Contact damage dealt to the player
}

// Update moves the enemy down. Returns false once it has left the screen.
func (e *Enemy) Update(screenH int) bool {
	e.Rect.Y += e.Speed
	return e.Rect.Y <= screenH
}

// TakeDamage lowers health. Returns true if the enemy is destroyed.
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	return e.Health <= 0
}

// Bullet is a player projectile travelling up the screen.
type Bullet struct {
	Rect   core.Rect
	Speed  int
	Damage int
}

// NewBullet creates a bullet whose bottom edge sits at y, centred on x.
func NewBullet(x, y int, cfg config.BulletConfig) Bullet {
	return Bullet{
		Rect:   core.NewRect(x-cfg.Width/2, y-cfg.Height, cfg.Width, cfg.Height),
		Speed:  cfg.Speed,
		Damage: cfg.Damage,
	}
}

// Update moves the bullet up. Returns false once it has left the screen.
func (b *Bullet) Update() bool {
	b.Rect.Y -= b.Speed
	return b.Rect.Bottom() >= 0
}
