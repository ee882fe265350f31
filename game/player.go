package game

// Player tracks the crossing actor and its life-cycle. Movement is
// hop-based and gated: a dead, dying or already-winning player ignores
// commands. Frame 0 is the live sprite; during the death animation the
// frame walks through 1..DeathFrames and the wrap back to 0 is the
// respawn point.
type Player struct {
	Box
	Lives       int
	ScoresMade  int
	ScoresToWin int
	Points      int
	Disabled    bool
	Frame       int

	startX, startY float64
	hop            float64
	bounds         Box
}

// NewPlayer places the actor at its start position with full movement
// freedom inside bounds.
func NewPlayer(start Box, hop float64, bounds Box, lives, scoresToWin int) *Player {
	return &Player{
		Box:         start,
		Lives:       lives,
		ScoresToWin: scoresToWin,
		startX:      start.X,
		startY:      start.Y,
		hop:         hop,
		bounds:      bounds,
	}
}

func (p *Player) movable() bool {
	return !p.Disabled && p.Lives > 0 && p.ScoresMade < p.ScoresToWin
}

// tryHop applies the offset when the whole box stays inside bounds.
// Out-of-bounds attempts are silent no-ops.
func (p *Player) tryHop(dx, dy float64) bool {
	if !p.movable() {
		return false
	}
	nx, ny := p.X+dx, p.Y+dy
	if nx < p.bounds.X || nx+p.W > p.bounds.X+p.bounds.W {
		return false
	}
	if ny < p.bounds.Y || ny+p.H > p.bounds.Y+p.bounds.H {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

func (p *Player) MoveLeft() bool  { return p.tryHop(-p.hop, 0) }
func (p *Player) MoveRight() bool { return p.tryHop(p.hop, 0) }
func (p *Player) MoveUp() bool    { return p.tryHop(0, -p.hop) }
func (p *Player) MoveDown() bool  { return p.tryHop(0, p.hop) }

// Kill starts the death sequence: movement locks, a life is spent and
// the first death frame shows. A player already dying or out of lives is
// left alone, so repeated collision reports cannot double-kill.
func (p *Player) Kill() bool {
	if p.Disabled || p.Lives == 0 {
		return false
	}
	p.Disabled = true
	p.Lives--
	p.Frame = 1
	return true
}

// AdvanceFrame plays one death-animation step. At the wrap-back point it
// either respawns the actor (lives remain) or reports the terminal state,
// in which case the final frame stays on screen.
func (p *Player) AdvanceFrame() (respawned, over bool) {
	if !p.Disabled {
		return false, false
	}
	if p.Frame < DeathFrames {
		p.Frame++
		return false, false
	}
	if p.Lives > 0 {
		p.Frame = 0
		p.Disabled = false
		p.Recenter()
		return true, false
	}
	return false, true
}

// Recenter puts the actor back on its start position.
func (p *Player) Recenter() {
	p.X, p.Y = p.startX, p.startY
}

// CheckWin increments the crossing count when the actor has reached the
// win line. Below the line nothing mutates.
func (p *Player) CheckWin(winY float64) bool {
	if p.Y <= winY {
		p.ScoresMade++
		return true
	}
	return false
}
