package game

// LevelTimer is the per-attempt countdown, advanced once per countdown
// interval by the session scheduler. It never advances while paused.
type LevelTimer struct {
	Current int
	Max     int
	running bool
}

func NewLevelTimer(max int) *LevelTimer {
	return &LevelTimer{Max: max, running: true}
}

// Tick advances the countdown by one second and reports expiry. On
// expiry the count rolls back to zero so the next attempt starts fresh.
func (t *LevelTimer) Tick() bool {
	if !t.running {
		return false
	}
	t.Current++
	if t.Current >= t.Max {
		t.Current = 0
		return true
	}
	return false
}

// Pause freezes the countdown without losing the elapsed time.
func (t *LevelTimer) Pause() { t.running = false }

// Resume continues a paused countdown from where it stopped.
func (t *LevelTimer) Resume() { t.running = true }

// Reset zeroes the countdown unconditionally. Used whenever the player
// scores or dies so the next attempt gets the full window.
func (t *LevelTimer) Reset() { t.Current = 0 }

// Remaining returns the seconds left before expiry.
func (t *LevelTimer) Remaining() int { return t.Max - t.Current }
