package skyraid

// Snapshot contains the game state that matters for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Active     int
	PlayerX    int
	PlayerY    int
	Health     int
	Score      int
	Kills      int
	SpawnTimer int
	Cooldown   int

	// Each enemy is 4 ints: X, Y, Speed, Health
	EnemyCount int
	EnemyData  []int

	// Each bullet is 2 ints: X, Y
	BulletCount int
	BulletData  []int
}

// Snapshot returns the current state of the run.
func (g *Game) Snapshot() Snapshot {
	r := g.machine.Running()

	enemyData := make([]int, 0, r.enemies.Len()*4)
	r.enemies.Each(func(_ int, e *Enemy) {
		enemyData = append(enemyData, e.Rect.X, e.Rect.Y, e.Speed, e.Health)
	})

	bulletData := make([]int, 0, r.bullets.Len()*2)
	r.bullets.Each(func(_ int, b *Bullet) {
		bulletData = append(bulletData, b.Rect.X, b.Rect.Y)
	})

	return Snapshot{
		Tick:       uint64(r.ticks), //#nosec G115 -- tick count is always positive
		Active:     int(g.machine.Active()),
		PlayerX:    r.player.Rect.X,
		PlayerY:    r.player.Rect.Y,
		Health:     r.player.Health,
		Score:      r.player.Score,
		Kills:      r.kills,
		SpawnTimer: r.spawner.Timer(),
		Cooldown:   r.gun.Timer(),

		EnemyCount:  r.enemies.Len(),
		EnemyData:   enemyData,
		BulletCount: r.bullets.Len(),
		BulletData:  bulletData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Active)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnTimer)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cooldown)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
