package game

import "fmt"

// Phase is the top-level session state.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// EventKind enumerates the state-change notifications a session emits.
// Events carry no payload; the host re-queries state through accessors.
type EventKind uint8

const (
	EventLivesChanged EventKind = iota
	EventScoreChanged
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventLivesChanged:
		return "livesChanged"
	case EventScoreChanged:
		return "scoreChanged"
	case EventGameOver:
		return "gameOver"
	}
	return "unknown"
}

// Event is one outbound notification, returned from Step and movement
// commands in the order it occurred.
type Event struct {
	Kind EventKind
}

// Session wires the traffic, the river, the home row, the player and the
// countdown together. It is the single place the three timing signals
// (simulation, death animation, level countdown) are sequenced: all of
// them derive from one tick counter with fixed divisors, dispatched in a
// fixed order inside Step. Nothing here runs concurrently; the caller
// owns the clock.
type Session struct {
	Tick    int
	Phase   Phase
	Traffic *Road
	River   *Road
	Homes   *HomeRow
	Player  *Player
	Timer   *LevelTimer

	Width, Height float64
	winY          float64
}

// NewSession validates the settings and builds the full field. No state
// is created on a validation failure.
func NewSession(st Settings) (*Session, error) {
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	rowH := st.RowHeight
	w := st.FieldWidth
	h := st.FieldHeight()
	size := rowH * playerScale
	off := (rowH - size) / 2 // centers an entity inside its row

	riverRows := len(st.RiverLanes)
	trafficTop := rowH * float64(riverRows+2)

	start := Box{
		X: (w - size) / 2,
		Y: rowH*float64(st.Rows()-1) + off,
		W: size,
		H: size,
	}

	s := &Session{
		Traffic: NewRoad(RoadTraffic, st.TrafficLanes, trafficTop, rowH, w),
		River:   NewRoad(RoadRiver, st.RiverLanes, rowH, rowH, w),
		Homes:   NewHomeRow(st.HomeCount, start.X, off, rowH*homeSpacingHops, size, size),
		Player:  NewPlayer(start, rowH, Box{W: w, H: h}, st.Lives, st.ScoresToWin),
		Timer:   NewLevelTimer(st.TimerMax),
		Width:   w,
		Height:  h,
		winY:    rowH,
	}
	return s, nil
}

// Step advances the session by one simulation tick. Motion always runs
// before collision checks, so collisions are detected against post-move
// positions. Once the session is over, Step is a no-op.
func (s *Session) Step() []Event {
	if s.Phase != PhasePlaying {
		return nil
	}
	s.Tick++
	var events []Event

	// Simulation: lane motion, river push, then collisions. Collision
	// and drown checks are skipped while the death animation plays.
	s.Traffic.Advance(s.Width)
	s.River.Advance(s.Width)
	if !s.Player.Disabled {
		if dx, riding := s.River.PushDelta(s.Player.Box); riding {
			s.Player.X += dx
			if s.Player.X < 0 || s.Player.X+s.Player.W > s.Width {
				// carried off the field edge
				events = append(events, s.kill()...)
			}
		} else if s.River.InBand(s.Player.Box) {
			// in the river without debris underfoot: drowned
			events = append(events, s.kill()...)
		}
	}
	if !s.Player.Disabled && s.Traffic.Collides(s.Player.Box) {
		events = append(events, s.kill()...)
	}

	// Death animation frames, active only while dying.
	if s.Tick%DeathAnimEvery == 0 {
		if respawned, over := s.Player.AdvanceFrame(); respawned {
			s.resetAfterDeath()
		} else if over {
			events = append(events, s.finish())
		}
	}

	// Level countdown; expiry kills like a collision.
	if s.Tick%LevelTickEvery == 0 {
		if s.Timer.Tick() {
			events = append(events, s.kill()...)
		}
	}
	return events
}

// kill starts the death sequence once. The countdown restarts and holds
// until the respawn.
func (s *Session) kill() []Event {
	if !s.Player.Kill() {
		return nil
	}
	s.Timer.Reset()
	s.Timer.Pause()
	return []Event{{Kind: EventLivesChanged}}
}

// resetAfterDeath rebuilds both bands from scratch for the next attempt
// and releases the countdown.
func (s *Session) resetAfterDeath() {
	s.Traffic.SetUpLanes(s.Width)
	s.River.SetUpLanes(s.Width)
	s.Timer.Resume()
}

// finish moves the session into its terminal state and stops the clock
// effects for good.
func (s *Session) finish() Event {
	s.Phase = PhaseGameOver
	s.Timer.Pause()
	return Event{Kind: EventGameOver}
}

// MoveLeft, MoveRight and MoveDown delegate straight to the player; the
// guards there make them no-ops while dying, out of lives or already won.
func (s *Session) MoveLeft() []Event {
	s.Player.MoveLeft()
	return nil
}

func (s *Session) MoveRight() []Event {
	s.Player.MoveRight()
	return nil
}

func (s *Session) MoveDown() []Event {
	s.Player.MoveDown()
	return nil
}

// MoveUp additionally evaluates the two independent win checks: crossing
// the win line always scores, and landing aligned with a free home slot
// banks the crossing. A crossing that matches no free slot is a death
// (the bank outside the home slots is not survivable ground).
func (s *Session) MoveUp() []Event {
	if s.Phase != PhasePlaying {
		return nil
	}
	if !s.Player.MoveUp() {
		return nil
	}
	if !s.Player.CheckWin(s.winY) {
		return nil
	}

	var events []Event
	s.Player.Points += PointsPerCrossing + s.Timer.Remaining()*PointsPerSpareSecond
	events = append(events, Event{Kind: EventScoreChanged})

	if idx := s.Homes.Claim(s.Player.Box); idx == HomeNone {
		events = append(events, s.kill()...)
	} else {
		s.Player.Recenter()
		s.Timer.Reset()
	}

	if s.Player.ScoresMade >= s.Player.ScoresToWin {
		events = append(events, s.finish())
	}
	return events
}

// Accessors for the host; state mutates only inside Step and the move
// commands.

func (s *Session) Lives() int    { return s.Player.Lives }
func (s *Session) Scores() int   { return s.Player.ScoresMade }
func (s *Session) Points() int   { return s.Player.Points }
func (s *Session) TimeLeft() int { return s.Timer.Remaining() }
func (s *Session) Over() bool    { return s.Phase == PhaseGameOver }
