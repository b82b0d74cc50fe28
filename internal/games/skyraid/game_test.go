package skyraid

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyraid/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(testConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// scriptedInput starts a run, then sweeps left and right while firing.
func scriptedInput(n int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		switch {
		case i == 0:
			frames[i] = press(core.ActionConfirm)
		case i%120 < 60:
			frames[i] = hold(core.ActionLeft, core.ActionFire)
		default:
			frames[i] = hold(core.ActionRight, core.ActionFire, core.ActionUp)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	inputs := scriptedInput(1500)

	run := func() Snapshot {
		g := newTestGame(12345)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Tick == 0 {
		t.Error("the scripted run should have advanced")
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(testConfig(), nil)
	if g.ID() != "skyraid" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() != "Sky Raid" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameStepReportsState(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(core.NewInputFrame())
	if res.State.Screen != "menu" || res.Quit {
		t.Errorf("menu step = %+v", res)
	}

	res = g.Step(press(core.ActionConfirm))
	if res.State.Screen != "running" {
		t.Fatalf("screen = %q, expected running", res.State.Screen)
	}
	if res.State.Health != 100 {
		t.Errorf("health = %d, expected 100", res.State.Health)
	}

	res = g.Step(press(core.ActionCancel))
	if !res.State.Paused {
		t.Error("Paused should be set on the pause screen")
	}

	g.Machine().Running().Player().Score = 700
	g.Machine().Running().Player().Health = 0
	g.Step(press(core.ActionCancel))
	res = g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Score != 700 {
		t.Errorf("game over state = %+v, expected score 700", res.State)
	}
}

func TestGameQuit(t *testing.T) {
	tests := []struct {
		name   string
		setup  []core.InputFrame
		input  core.InputFrame
		quit   bool
		screen string
	}{
		{"ctrl+c on menu", nil, press(core.ActionQuit), true, "menu"},
		{"q on menu", nil, press(core.ActionQuitToMenu), true, "menu"},
		{"ctrl+c while running", []core.InputFrame{press(core.ActionConfirm)}, press(core.ActionQuit), true, "running"},
		{"q while running", []core.InputFrame{press(core.ActionConfirm)}, press(core.ActionQuitToMenu), false, "running"},
		{"q while paused", []core.InputFrame{press(core.ActionConfirm), press(core.ActionCancel)}, press(core.ActionQuitToMenu), false, "menu"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1)
			for _, in := range tc.setup {
				g.Step(in)
			}

			res := g.Step(tc.input)
			if res.Quit != tc.quit {
				t.Errorf("Quit = %v, expected %v", res.Quit, tc.quit)
			}
			if res.State.Screen != tc.screen {
				t.Errorf("screen = %q, expected %q", res.State.Screen, tc.screen)
			}
		})
	}
}

func TestGameResetReturnsToMenu(t *testing.T) {
	g := newTestGame(1)
	for _, in := range scriptedInput(100) {
		g.Step(in)
	}
	g.Reset(core.RuntimeConfig{Seed: 1})

	if g.Machine().Active() != StateMenu {
		t.Errorf("Reset should return to the menu, got %v", g.Machine().Active())
	}
	if g.Snapshot().Tick != 0 {
		t.Error("Reset should discard the run")
	}
}

func TestGameRenderScreens(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)
	canvas := core.NewScaledCanvas(screen, 800, 600)

	render := func() string {
		g.Render(canvas)
		return screen.String()
	}

	if out := render(); !strings.Contains(out, "SKY RAID") || !strings.Contains(out, "Press ENTER to start") {
		t.Errorf("menu screen missing title:\n%s", out)
	}

	g.Step(press(core.ActionConfirm))
	out := render()
	if !strings.Contains(out, "HP: 100/100") || !strings.Contains(out, "Score: 0") {
		t.Errorf("running screen missing HUD:\n%s", out)
	}
	if !strings.ContainsRune(out, core.BlockRune) {
		t.Error("running screen should draw the ship")
	}

	g.Step(press(core.ActionCancel))
	if out := render(); !strings.Contains(out, "PAUSED") || !strings.Contains(out, "HP: 100/100") {
		t.Errorf("paused screen should overlay the run:\n%s", out)
	}

	g.Step(press(core.ActionCancel))
	g.Machine().Running().Player().Health = 0
	g.Step(core.NewInputFrame())
	if out := render(); !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 0") {
		t.Errorf("game over screen missing result:\n%s", out)
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks, fps int
		want       string
	}{
		{0, 60, "0:00"},
		{59, 60, "0:00"},
		{60, 60, "0:01"},
		{3600 + 600, 60, "1:10"},
		{10, 0, "0:10"},
	}
	for _, tc := range tests {
		if got := formatTicks(tc.ticks, tc.fps); got != tc.want {
			t.Errorf("formatTicks(%d, %d) = %q, expected %q", tc.ticks, tc.fps, got, tc.want)
		}
	}
}
