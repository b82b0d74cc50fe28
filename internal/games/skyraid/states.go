package skyraid

import (
	"fmt"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// StateID names one of the game screens.
type StateID int

const (
	StateMenu StateID = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns the lowercase screen name.
func (id StateID) String() string {
	switch id {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("state(%d)", int(id))
	}
}

// Payload carries data from the state that requests a transition to the
// state that is entered.
type Payload struct {
	Resume bool // Running: continue the current run instead of starting a new one
	Score  int  // GameOver: final score
	Kills  int  // GameOver: enemies destroyed by bullets
	Ticks  int  // GameOver: ticks survived
}

// TransitionRequest asks the machine to switch screens.
type TransitionRequest struct {
	Target  StateID
	Payload Payload
}

// State is one screen of the game. Exactly one state is active at a time.
type State interface {
	ID() StateID
	// Enter is called when the machine switches to this state.
	Enter(p Payload)
	HandleInput(in core.InputFrame)
	Update()
	Render(c core.Canvas)
	// Pending returns and clears the transition requested since the last call.
	Pending() (TransitionRequest, bool)
}

// transitions embeds the pending-request bookkeeping shared by all states.
type transitions struct {
	next    TransitionRequest
	pending bool
}

func (t *transitions) request(target StateID, p Payload) {
	t.next = TransitionRequest{Target: target, Payload: p}
	t.pending = true
}

func (t *transitions) Pending() (TransitionRequest, bool) {
	if !t.pending {
		return TransitionRequest{}, false
	}
	t.pending = false
	return t.next, true
}

// Menu is the title screen.
type Menu struct {
	transitions
}

func (s *Menu) ID() StateID { return StateMenu }
func (s *Menu) Enter(Payload) {}
func (s *Menu) Update() {}

func (s *Menu) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		s.request(StateRunning, Payload{})
	}
}

func (s *Menu) Render(c core.Canvas) {
	c.Clear(core.ColorBlack)
	CenteredText(c, "SKY RAID", -100, core.ColorBrightYellow)
	CenteredText(c, "Press ENTER to start", 0, core.ColorWhite)
	CenteredText(c, "WASD/Arrows move  SPACE fire  ESC pause", 60, core.ColorGray)
}

// Running is an active run. It owns the player and every entity collection.
type Running struct {
	transitions

	cfg     config.Config
	bounds  core.Rect
	hud     *HUD
	player  *Player
	enemies *Arena[Enemy]
	bullets *Arena[Bullet]
	spawner *EnemySpawner
	gun     *BulletManager

	input core.InputFrame // Held keys for the next Update
	ticks int
	kills int
}

// NewRunning creates the running state. Entities are created on Enter.
func NewRunning(cfg config.Config, seed int64, hud *HUD) *Running {
	bounds := core.NewRect(0, 0, cfg.Screen.Width, cfg.Screen.Height)
	r := &Running{
		cfg:     cfg,
		bounds:  bounds,
		hud:     hud,
		enemies: NewArena[Enemy](32),
		bullets: NewArena[Bullet](32),
		spawner: NewEnemySpawner(cfg.Enemy, cfg.Screen.Width, seed),
		gun:     NewBulletManager(cfg.Bullet),
	}
	r.reset()
	return r
}

func (s *Running) ID() StateID { return StateRunning }

// Enter starts a fresh run unless the payload asks to resume.
func (s *Running) Enter(p Payload) {
	if !p.Resume {
		s.reset()
	}
	s.input = core.InputFrame{}
}

// reset discards the current run and sets up a new one.
func (s *Running) reset() {
	s.player = NewPlayer(s.cfg.Player, s.bounds)
	s.enemies.Reset()
	s.bullets.Reset()
	s.spawner.Reset()
	s.gun.Reset()
	s.ticks = 0
	s.kills = 0
}

func (s *Running) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionCancel) {
		s.request(StatePaused, Payload{})
		return
	}
	s.input = in
}

// Update advances the run by one tick.
func (s *Running) Update() {
	in := s.input
	s.input = core.InputFrame{}

	// A dead player ends the run before anything else moves
	if !s.player.Alive() {
		s.request(StateGameOver, Payload{Score: s.player.Score, Kills: s.kills, Ticks: s.ticks})
		return
	}
	s.ticks++

	// Movement and firing
	s.player.Move(in)
	if in.IsHeld(core.ActionFire) {
		x, y := s.player.Muzzle()
		s.gun.Shoot(x, y, s.bullets)
	}
	s.enemies.Each(func(i int, e *Enemy) {
		if !e.Update(s.bounds.H) {
			s.enemies.Kill(i)
		}
	})
	s.bullets.Each(func(i int, b *Bullet) {
		if !b.Update() {
			s.bullets.Kill(i)
		}
	})

	// Timers
	s.spawner.Update(s.enemies)
	s.gun.Update()

	// Collisions, score and damage
	res := Resolve(s.player, s.enemies, s.bullets)
	s.kills += res.Killed
	s.player.Score += res.Killed * s.cfg.Scoring.KillBonus
	if res.PlayerHit {
		s.player.TakeDamage(s.cfg.Enemy.ContactDamage)
	}

	s.enemies.Sweep()
	s.bullets.Sweep()
}

func (s *Running) Render(c core.Canvas) {
	c.Clear(core.ColorBlue)

	s.enemies.Each(func(_ int, e *Enemy) {
		c.FillRect(e.Rect, core.ColorRed)
	})
	s.bullets.Each(func(_ int, b *Bullet) {
		c.FillRect(b.Rect, core.ColorYellow)
	})
	c.FillPolygon(shipPolygon(s.player.Rect), core.ColorGreen)

	s.hud.Draw(c, s.player.Health, s.player.MaxHealth, s.player.Score)
}

// Player returns the current player.
func (s *Running) Player() *Player { return s.player }

// Enemies returns the enemy arena.
func (s *Running) Enemies() *Arena[Enemy] { return s.enemies }

// Bullets returns the bullet arena.
func (s *Running) Bullets() *Arena[Bullet] { return s.bullets }

// Spawner returns the enemy spawner.
func (s *Running) Spawner() *EnemySpawner { return s.spawner }

// Gun returns the bullet manager.
func (s *Running) Gun() *BulletManager { return s.gun }

// Ticks returns the ticks survived in the current run.
func (s *Running) Ticks() int { return s.ticks }

// Kills returns the enemies destroyed in the current run.
func (s *Running) Kills() int { return s.kills }

// Paused freezes a run and draws it under an overlay.
type Paused struct {
	transitions
	scene *Running
}

func (s *Paused) ID() StateID { return StatePaused }
func (s *Paused) Enter(Payload) {}
func (s *Paused) Update() {}

func (s *Paused) HandleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionCancel):
		s.request(StateRunning, Payload{Resume: true})
	case in.Has(core.ActionQuitToMenu):
		s.request(StateMenu, Payload{})
	}
}

func (s *Paused) Render(c core.Canvas) {
	s.scene.Render(c)

	w, h := c.Size()
	box := core.NewRectCentered(w/2, h/2, w/2, h/4)
	c.FillRect(box, core.ColorDarkGray)
	c.StrokeRect(box, core.ColorWhite)
	CenteredText(c, "PAUSED", -20, core.ColorBrightWhite)
	CenteredText(c, "ESC resume  Q menu", 20, core.ColorGray)
}

// GameOver shows the result of the last run.
type GameOver struct {
	transitions
	result Payload
	fps    int
}

func (s *GameOver) ID() StateID { return StateGameOver }
func (s *GameOver) Update() {}

// Enter records the finished run.
func (s *GameOver) Enter(p Payload) {
	s.result = p
}

func (s *GameOver) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		s.request(StateMenu, Payload{})
	}
}

func (s *GameOver) Render(c core.Canvas) {
	c.Clear(core.ColorRed)
	CenteredText(c, "GAME OVER", -80, core.ColorBrightWhite)
	CenteredText(c, fmt.Sprintf("Score: %d", s.result.Score), -20, core.ColorWhite)
	CenteredText(c, fmt.Sprintf("Kills: %d  Time: %s", s.result.Kills, formatTicks(s.result.Ticks, s.fps)), 10, core.ColorWhite)
	CenteredText(c, "Press ENTER for menu", 60, core.ColorBrightYellow)
}

// Result returns the payload of the run being shown.
func (s *GameOver) Result() Payload { return s.result }

// shipPolygon returns the triangle drawn for the player ship.
func shipPolygon(r core.Rect) []core.Point {
	return []core.Point{
		{X: r.CenterX(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}

// formatTicks renders a tick count as m:ss at the given tick rate.
func formatTicks(ticks, fps int) string {
	secs := ticks / core.Max(fps, 1)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
