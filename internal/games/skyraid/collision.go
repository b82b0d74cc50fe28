package skyraid

// Result summarizes the collisions found in one tick.
type Result struct {
	Hits      int  // Bullets consumed by hitting an enemy
	Killed    int  // Enemies destroyed by bullets
	Rammed    int  // Enemies destroyed by touching the player
	PlayerHit bool // At least one enemy touched the player
}

// Resolve runs bullet-enemy and then player-enemy checks, marking destroyed
// entities dead in their arenas. Callers apply score and damage from the
// result and sweep the arenas afterwards.
//
// A bullet is consumed by the first enemy it overlaps. An enemy may absorb
// several bullets in one tick.
func Resolve(player *Player, enemies *Arena[Enemy], bullets *Arena[Bullet]) Result {
	var res Result

	enemies.Each(func(ei int, e *Enemy) {
		destroyed := false
		bullets.Each(func(bi int, b *Bullet) {
			if !b.Rect.Intersects(e.Rect) {
				return
			}
			bullets.Kill(bi)
			res.Hits++
			if e.TakeDamage(b.Damage) {
				destroyed = true
			}
		})
		if destroyed {
			enemies.Kill(ei)
			res.Killed++
		}
	})

	enemies.Each(func(ei int, e *Enemy) {
		if !e.Rect.Intersects(player.Rect) {
			return
		}
		enemies.Kill(ei)
		res.Rammed++
		res.PlayerHit = true
	})

	return res
}
