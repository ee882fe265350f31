package game

// RoadKind decides whether a band is lethal traffic or a river whose
// debris carries the player.
type RoadKind uint8

const (
	RoadTraffic RoadKind = iota
	RoadRiver
)

// Road is an ordered band of lanes. Lane 0 is the row nearest the player
// start; the lane count is fixed after construction.
type Road struct {
	Kind   RoadKind
	Lanes  []*Lane
	Top    float64
	Height float64
}

// NewRoad builds the band and runs the initial lane setup.
func NewRoad(kind RoadKind, plans []LanePlan, top, rowH, laneLength float64) *Road {
	r := &Road{
		Kind:   kind,
		Top:    top,
		Height: rowH * float64(len(plans)),
	}
	for _, p := range plans {
		r.Lanes = append(r.Lanes, NewLane(p, rowH))
	}
	r.SetUpLanes(laneLength)
	return r
}

// SetUpLanes fully rebuilds the rows: every lane is emptied, pinned to
// its row, seeded with one vehicle and placed. Called at construction and
// again after every player death; the rebuild is total, not incremental.
func (r *Road) SetUpLanes(laneLength float64) {
	n := len(r.Lanes)
	if n == 0 {
		return
	}
	rowH := r.Height / float64(n)
	for i, l := range r.Lanes {
		l.Vehicles = l.Vehicles[:0]
		l.SetY(r.Top + float64(i)*rowH + (rowH-rowH*playerScale)/2)
		l.AddVehicle()
		l.PlaceAll(laneLength)
	}
}

// Advance moves every lane one tick and lets under-capacity lanes feed in
// a fresh vehicle from their entry edge.
func (r *Road) Advance(laneLength float64) {
	for _, l := range r.Lanes {
		l.Advance(laneLength)
		l.AddVehicleSpaced(laneLength)
	}
}

// Collides ORs the per-lane collision queries.
func (r *Road) Collides(b Box) bool {
	for _, l := range r.Lanes {
		if l.Collides(b) {
			return true
		}
	}
	return false
}

// PushDelta returns the river's horizontal push on b and whether b is
// standing on debris at all. Traffic bands never push.
func (r *Road) PushDelta(b Box) (float64, bool) {
	if r.Kind != RoadRiver {
		return 0, false
	}
	for _, l := range r.Lanes {
		if dx, ok := l.RidingDelta(b); ok {
			return dx, true
		}
	}
	return 0, false
}

// InBand reports whether b's center row lies inside this band.
func (r *Road) InBand(b Box) bool {
	cy := b.Y + b.H/2
	return cy >= r.Top && cy < r.Top+r.Height
}
