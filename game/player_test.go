package game

import "testing"

func testPlayer(lives, scoresToWin int) *Player {
	start := Box{X: 50, Y: 90, W: 10, H: 10}
	return NewPlayer(start, 10, Box{X: 0, Y: 0, W: 100, H: 100}, lives, scoresToWin)
}

func TestPlayerDeathCycleRespawns(t *testing.T) {
	p := testPlayer(3, 5)
	p.MoveUp()
	p.MoveLeft()

	if !p.Kill() {
		t.Fatalf("expected first kill to take")
	}
	if p.Lives != 2 {
		t.Fatalf("lives after kill = %d, want 2", p.Lives)
	}
	if !p.Disabled || p.Frame != 1 {
		t.Fatalf("expected disabled on first death frame, got disabled=%v frame=%d", p.Disabled, p.Frame)
	}

	// A second collision report during the animation must not double-kill.
	if p.Kill() {
		t.Fatalf("kill while dying must be a no-op")
	}
	if p.Lives != 2 {
		t.Fatalf("lives after duplicate kill = %d, want 2", p.Lives)
	}

	// Frames 1..4, then the wrap back to 0 is the respawn: 4 ticks total.
	for i := 0; i < 3; i++ {
		respawned, over := p.AdvanceFrame()
		if respawned || over {
			t.Fatalf("tick %d: unexpected respawn=%v over=%v", i+1, respawned, over)
		}
	}
	respawned, over := p.AdvanceFrame()
	if !respawned || over {
		t.Fatalf("4th tick: respawned=%v over=%v, want respawn", respawned, over)
	}
	if p.Disabled || p.Frame != 0 {
		t.Fatalf("after respawn: disabled=%v frame=%d", p.Disabled, p.Frame)
	}
	if p.X != 50 || p.Y != 90 {
		t.Fatalf("after respawn at (%f,%f), want start (50,90)", p.X, p.Y)
	}
}

func TestPlayerLastLifeIsTerminal(t *testing.T) {
	p := testPlayer(1, 5)
	p.Kill()
	if p.Lives != 0 {
		t.Fatalf("lives = %d, want 0", p.Lives)
	}
	for i := 0; i < 3; i++ {
		p.AdvanceFrame()
	}
	respawned, over := p.AdvanceFrame()
	if respawned || !over {
		t.Fatalf("respawned=%v over=%v, want terminal", respawned, over)
	}
	if p.Frame != DeathFrames {
		t.Fatalf("terminal frame = %d, want %d (stays on final frame)", p.Frame, DeathFrames)
	}
	if !p.Disabled {
		t.Fatalf("terminal player must stay disabled")
	}
	if p.MoveLeft() {
		t.Fatalf("terminal player must not move")
	}
}

func TestPlayerMovementGuards(t *testing.T) {
	p := testPlayer(3, 1)

	if !p.MoveLeft() || p.X != 40 {
		t.Fatalf("expected free hop left, x=%f", p.X)
	}

	// Out of bounds is a silent no-op.
	for i := 0; i < 20; i++ {
		p.MoveLeft()
	}
	if p.X != 0 {
		t.Fatalf("x after hammering left = %f, want 0", p.X)
	}
	p.MoveUp()
	p.MoveUp()

	// Disabled players ignore commands.
	p.Kill()
	x, y := p.X, p.Y
	if p.MoveRight() || p.MoveDown() || p.X != x || p.Y != y {
		t.Fatalf("disabled player moved")
	}

	// A player who already won ignores commands too.
	won := testPlayer(3, 1)
	won.ScoresMade = 1
	if won.MoveUp() {
		t.Fatalf("winning player moved")
	}
}

func TestPlayerCheckWinMutatesOnlyAboveLine(t *testing.T) {
	p := testPlayer(3, 5)
	if p.CheckWin(10) {
		t.Fatalf("check below the line must not score")
	}
	if p.ScoresMade != 0 {
		t.Fatalf("scoresMade mutated on a failed check")
	}
	p.Y = 5
	if !p.CheckWin(10) || p.ScoresMade != 1 {
		t.Fatalf("expected score above the line, got %d", p.ScoresMade)
	}
}
