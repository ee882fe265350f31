package game

import "testing"

// riverSettings adds a single right-bound log lane between the median
// and the home row. Rows top to bottom: homes, river, median, traffic,
// start.
func riverSettings() Settings {
	st := testSettings()
	st.RiverLanes = []LanePlan{{Kind: KindLog, Dir: DirRight, Speed: 1, MaxCount: 1}}
	return st
}

// hopToRiver walks the player from the start row up into the river row.
func hopToRiver(s *Session) {
	s.MoveUp() // traffic row
	s.MoveUp() // median
	s.MoveUp() // river row
}

func TestRiverDebrisCarriesThePlayer(t *testing.T) {
	s := mustSession(t, riverSettings())
	hopToRiver(s)

	// Put the log one unit shy of the player so that after this tick's
	// motion it sits exactly underneath.
	log := s.River.Lanes[0].Vehicles[0]
	log.X = s.Player.X - 1

	x0 := s.Player.X
	events := s.Step()
	if hasEvent(events, EventLivesChanged) {
		t.Fatalf("riding player must not die: %v", events)
	}
	if got := s.Player.X; got != x0+1 {
		t.Fatalf("player x after riding one tick = %f, want %f", got, x0+1)
	}
}

func TestRiverWithoutDebrisUnderfootDrowns(t *testing.T) {
	s := mustSession(t, riverSettings())
	hopToRiver(s)

	// Seeded log sits far right of the player's column.
	events := s.Step()
	if !hasEvent(events, EventLivesChanged) {
		t.Fatalf("expected drowning, got %v", events)
	}
	if s.Lives() != 2 || !s.Player.Disabled {
		t.Fatalf("lives=%d disabled=%v after drowning", s.Lives(), s.Player.Disabled)
	}
}

func TestRiverCarriesPlayerOffTheEdge(t *testing.T) {
	s := mustSession(t, riverSettings())
	hopToRiver(s)

	log := s.River.Lanes[0].Vehicles[0]
	// Pin the log under the player right at the field edge.
	s.Player.X = s.Width - s.Player.W - 0.5
	log.X = s.Player.X - 1

	events := s.Step()
	if !hasEvent(events, EventLivesChanged) {
		t.Fatalf("expected death once carried off the field, got %v", events)
	}
}
