package game

import "fmt"

// LanePlan is the externally supplied description of one lane.
type LanePlan struct {
	Kind     VehicleKind
	Dir      Direction
	Speed    float64
	MaxCount int
}

// Settings is the full game setup handed in by the host. The field
// height is derived from the lane plan so the bands always tile the
// field exactly: one home row on top, the river lanes, a median row, the
// traffic lanes and the start row at the bottom.
type Settings struct {
	FieldWidth   float64
	RowHeight    float64
	Lives        int
	ScoresToWin  int
	TimerMax     int
	HomeCount    int
	TrafficLanes []LanePlan
	RiverLanes   []LanePlan
}

// Rows returns the number of rows the field tiles into.
func (s Settings) Rows() int {
	return len(s.RiverLanes) + len(s.TrafficLanes) + 3
}

// FieldHeight is the derived vertical extent of the field.
func (s Settings) FieldHeight() float64 {
	return s.RowHeight * float64(s.Rows())
}

// Validate rejects setups no session can be built from. Anything it
// accepts yields a session whose steady-state operations are total.
func (s Settings) Validate() error {
	if s.FieldWidth <= 0 {
		return fmt.Errorf("field width must be positive, got %v", s.FieldWidth)
	}
	if s.RowHeight <= 0 {
		return fmt.Errorf("row height must be positive, got %v", s.RowHeight)
	}
	if s.Lives <= 0 {
		return fmt.Errorf("lives must be positive, got %d", s.Lives)
	}
	if s.ScoresToWin <= 0 {
		return fmt.Errorf("scores to win must be positive, got %d", s.ScoresToWin)
	}
	if s.TimerMax <= 0 {
		return fmt.Errorf("timer length must be positive, got %d", s.TimerMax)
	}
	if s.HomeCount <= 0 {
		return fmt.Errorf("home count must be positive, got %d", s.HomeCount)
	}
	if len(s.TrafficLanes) == 0 {
		return fmt.Errorf("at least one traffic lane is required")
	}
	for i, p := range append(append([]LanePlan{}, s.TrafficLanes...), s.RiverLanes...) {
		if p.MaxCount < 1 {
			return fmt.Errorf("lane %d: vehicle count must be at least 1, got %d", i, p.MaxCount)
		}
		if p.Speed < 0 {
			return fmt.Errorf("lane %d: speed must not be negative, got %v", i, p.Speed)
		}
	}
	// The outermost home slots have to stay on the field.
	span := s.RowHeight * homeSpacingHops * float64(s.HomeCount-1)
	if span > s.FieldWidth-s.RowHeight*playerScale {
		return fmt.Errorf("%d home slots do not fit a field %v wide", s.HomeCount, s.FieldWidth)
	}
	return nil
}
