package skyraid

import (
	"testing"

	"github.com/vovakirdan/skyraid/internal/core"
)

func TestStateIDString(t *testing.T) {
	tests := []struct {
		id   StateID
		want string
	}{
		{StateMenu, "menu"},
		{StateRunning, "running"},
		{StatePaused, "paused"},
		{StateGameOver, "gameover"},
		{StateID(9), "state(9)"},
	}
	for _, tc := range tests {
		if got := tc.id.String(); got != tc.want {
			t.Errorf("StateID(%d).String() = %q, expected %q", int(tc.id), got, tc.want)
		}
	}
}

func TestMachineStartsOnMenu(t *testing.T) {
	m := NewMachine(testConfig(), 1, nil)
	if m.Active() != StateMenu {
		t.Errorf("initial state = %v, expected menu", m.Active())
	}
}

func TestMachineInputTransitions(t *testing.T) {
	m := NewMachine(testConfig(), 1, nil)

	steps := []struct {
		name  string
		input core.InputFrame
		want  StateID
	}{
		{"menu ignores cancel", press(core.ActionCancel), StateMenu},
		{"menu confirm starts", press(core.ActionConfirm), StateRunning},
		{"running ignores confirm", press(core.ActionConfirm), StateRunning},
		{"running cancel pauses", press(core.ActionCancel), StatePaused},
		{"paused cancel resumes", press(core.ActionCancel), StateRunning},
		{"pause again", press(core.ActionCancel), StatePaused},
		{"paused quit to menu", press(core.ActionQuitToMenu), StateMenu},
	}

	for _, step := range steps {
		m.HandleInput(step.input)
		if m.Active() != step.want {
			t.Fatalf("%s: active = %v, expected %v", step.name, m.Active(), step.want)
		}
	}
}

func TestMachineRejectsIllegalTargets(t *testing.T) {
	tests := []struct {
		name   string
		from   StateID
		target StateID
	}{
		{"menu to gameover", StateMenu, StateGameOver},
		{"menu to paused", StateMenu, StatePaused},
		{"menu to itself", StateMenu, StateMenu},
		{"unknown target", StateMenu, StateID(42)},
		{"running to menu", StateRunning, StateMenu},
		{"paused to gameover", StatePaused, StateGameOver},
		{"gameover to running", StateGameOver, StateRunning},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(testConfig(), 1, nil)
			m.active = tc.from

			if m.Request(TransitionRequest{Target: tc.target}) {
				t.Error("Request() should report false")
			}
			if m.Active() != tc.from {
				t.Errorf("active = %v, expected %v", m.Active(), tc.from)
			}
		})
	}
}

func TestUpdateWithoutRequestKeepsState(t *testing.T) {
	for _, id := range []StateID{StateMenu, StateRunning, StatePaused, StateGameOver} {
		t.Run(id.String(), func(t *testing.T) {
			m := NewMachine(testConfig(), 1, nil)
			m.active = id

			for i := 0; i < 30; i++ {
				m.Update()
				if m.Active() != id {
					t.Fatalf("update %d switched state to %v", i, m.Active())
				}
			}
		})
	}
}

func TestPauseFreezesRun(t *testing.T) {
	m := startRun(5)
	for i := 0; i < 10; i++ {
		m.HandleInput(hold(core.ActionLeft))
		m.Update()
	}
	r := m.Running()
	ticks, x := r.Ticks(), r.Player().Rect.X

	m.HandleInput(press(core.ActionCancel))
	for i := 0; i < 20; i++ {
		m.HandleInput(hold(core.ActionLeft))
		m.Update()
	}
	if r.Ticks() != ticks || r.Player().Rect.X != x {
		t.Error("paused run should not advance")
	}

	m.HandleInput(press(core.ActionCancel))
	if m.Active() != StateRunning {
		t.Fatalf("expected running after resume, got %v", m.Active())
	}
	if r.Ticks() != ticks {
		t.Errorf("resume should keep the run: ticks = %d, expected %d", r.Ticks(), ticks)
	}
}

func TestNewRunAfterMenu(t *testing.T) {
	m := startRun(5)
	r := m.Running()
	for i := 0; i < 100; i++ {
		m.Update()
	}
	r.Player().Score = 500
	r.Player().TakeDamage(40)

	m.HandleInput(press(core.ActionCancel))
	m.HandleInput(press(core.ActionQuitToMenu))
	m.HandleInput(press(core.ActionConfirm))

	if m.Active() != StateRunning {
		t.Fatalf("expected running, got %v", m.Active())
	}
	p := r.Player()
	if p.Score != 0 || p.Health != p.MaxHealth {
		t.Errorf("new run should start fresh, got score %d health %d", p.Score, p.Health)
	}
	if r.Ticks() != 0 || r.Enemies().Len() != 0 || r.Bullets().Len() != 0 {
		t.Error("new run should clear ticks and entities")
	}
	if r.Spawner().Timer() != 0 || !r.Gun().CanShoot() {
		t.Error("new run should reset timers")
	}
}

func TestRunningTickOrder(t *testing.T) {
	m := startRun(5)
	r := m.Running()

	m.HandleInput(hold(core.ActionFire, core.ActionRight))
	m.Update()

	if r.Ticks() != 1 {
		t.Errorf("ticks = %d, expected 1", r.Ticks())
	}
	if r.Player().Rect.X != 380 {
		t.Errorf("player x = %d, expected 380", r.Player().Rect.X)
	}

	// Fired from the muzzle after moving, before bullets advanced
	if r.Bullets().Len() != 1 {
		t.Fatalf("expected one bullet, got %d", r.Bullets().Len())
	}
	b := r.Bullets().Get(0)
	if b.Rect.CenterX() != 405 || b.Rect.Bottom() != 475-10 {
		t.Errorf("bullet rect %+v, expected centre x 405 and bottom 465", b.Rect)
	}
	if r.Gun().Timer() != 14 {
		t.Errorf("cooldown = %d, expected 14", r.Gun().Timer())
	}
	if r.Spawner().Timer() != 1 {
		t.Errorf("spawn timer = %d, expected 1", r.Spawner().Timer())
	}
}

func TestRunningInputIsPerTick(t *testing.T) {
	m := startRun(5)
	r := m.Running()

	m.HandleInput(hold(core.ActionLeft))
	m.Update()
	x := r.Player().Rect.X

	// No new input: the ship stays put
	m.Update()
	if r.Player().Rect.X != x {
		t.Errorf("player moved without input: %d -> %d", x, r.Player().Rect.X)
	}
}

func TestKillScoring(t *testing.T) {
	m := startRun(5)
	r := m.Running()

	r.Enemies().Add(Enemy{Rect: core.NewRect(100, 100, 40, 40), Speed: 0, Health: 20, Damage: 20})
	r.Bullets().Add(bulletAt(105, 130))
	r.Bullets().Add(bulletAt(120, 130))

	m.Update()

	if r.Player().Score != 100 {
		t.Errorf("score = %d, expected 100", r.Player().Score)
	}
	if r.Kills() != 1 {
		t.Errorf("kills = %d, expected 1", r.Kills())
	}
	if r.Enemies().Len() != 0 || r.Bullets().Len() != 0 {
		t.Error("enemy and bullets should be swept")
	}
	if r.Enemies().Slots() != 0 {
		t.Error("dead slots should be compacted at the end of the tick")
	}
}

func TestContactDamageAppliedOnce(t *testing.T) {
	m := startRun(5)
	r := m.Running()
	p := r.Player()
	p.Health = 20

	// Two enemies overlapping the player at once
	r.Enemies().Add(Enemy{Rect: core.NewRect(p.Rect.X, p.Rect.Y, 40, 40), Speed: 1, Health: 20, Damage: 20})
	r.Enemies().Add(Enemy{Rect: core.NewRect(p.Rect.X+10, p.Rect.Y, 40, 40), Speed: 1, Health: 20, Damage: 20})

	m.Update()

	if p.Health != 0 {
		t.Errorf("health = %d, expected 0 after one flat hit of 20", p.Health)
	}
	if r.Enemies().Len() != 0 {
		t.Errorf("both enemies should be removed, %d left", r.Enemies().Len())
	}
	if m.Active() != StateRunning {
		t.Errorf("game over is detected on the next tick, active = %v", m.Active())
	}
}

func TestDeadPlayerEndsRun(t *testing.T) {
	m := startRun(5)
	r := m.Running()
	p := r.Player()

	for i := 0; i < 10; i++ {
		m.Update()
	}
	p.Score = 300
	r.kills = 3
	p.Health = 0

	r.Enemies().Add(Enemy{Rect: core.NewRect(100, 100, 40, 40), Speed: 3, Health: 20})
	m.Update()

	if m.Active() != StateGameOver {
		t.Fatalf("expected game over on the same tick, got %v", m.Active())
	}

	over := m.State(StateGameOver).(*GameOver)
	want := Payload{Score: 300, Kills: 3, Ticks: 10}
	if over.Result() != want {
		t.Errorf("payload = %+v, expected %+v", over.Result(), want)
	}

	// The remaining steps were skipped
	if e := r.Enemies().Get(0); e == nil || e.Rect.Y != 100 {
		t.Error("entities should not move on the tick the run ends")
	}
	if r.Ticks() != 10 {
		t.Errorf("ticks = %d, expected 10", r.Ticks())
	}

	m.HandleInput(press(core.ActionConfirm))
	if m.Active() != StateMenu {
		t.Errorf("confirm on game over should return to menu, got %v", m.Active())
	}
}
