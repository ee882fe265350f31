package game

// Lane owns one horizontal strip of same-kind entities, all moving in one
// direction at one speed. Slice order is spatial order along the lane.
type Lane struct {
	Kind     VehicleKind
	Dir      Direction
	Speed    float64
	MaxCount int
	Y        float64
	Vehicles []*Vehicle

	rowH float64
}

// NewLane builds an empty lane from its plan. Vehicles are added and
// placed separately so a road can rebuild its rows without reallocating
// lanes.
func NewLane(plan LanePlan, rowH float64) *Lane {
	return &Lane{
		Kind:     plan.Kind,
		Dir:      plan.Dir,
		Speed:    plan.Speed,
		MaxCount: plan.MaxCount,
		rowH:     rowH,
	}
}

func (l *Lane) newVehicle() *Vehicle {
	return &Vehicle{
		Box: Box{
			W: kindWidth(l.Kind, l.rowH),
			H: l.rowH * playerScale,
			Y: l.Y,
		},
		Kind:  l.Kind,
		Dir:   l.Dir,
		Speed: l.Speed,
	}
}

// AddVehicle appends a vehicle of the lane's configured kind. At capacity
// it is a silent no-op: a full lane is steady state, not an error.
func (l *Lane) AddVehicle() {
	if len(l.Vehicles) >= l.MaxCount {
		return
	}
	l.Vehicles = append(l.Vehicles, l.newVehicle())
}

// AddVehicleSpaced appends a vehicle just outside the lane edge it enters
// from, but only while no existing vehicle sits within one body length of
// either edge. That keeps spawns from overlapping traffic already there.
func (l *Lane) AddVehicleSpaced(laneLength float64) {
	if len(l.Vehicles) >= l.MaxCount {
		return
	}
	w := kindWidth(l.Kind, l.rowH)
	for _, v := range l.Vehicles {
		if v.X < w || v.X+v.W > laneLength-w {
			return
		}
	}
	v := l.newVehicle()
	if l.Dir == DirRight {
		v.X = -v.W
	} else {
		v.X = laneLength
	}
	l.Vehicles = append(l.Vehicles, v)
}

// PlaceAll redistributes the lane's vehicles evenly across the lane
// width. The starting edge follows the direction: left-bound lanes fill
// from x=0, right-bound lanes from x=laneLength.
func (l *Lane) PlaceAll(laneLength float64) {
	n := len(l.Vehicles)
	if n == 0 {
		return
	}
	var sum float64
	for _, v := range l.Vehicles {
		sum += v.W
	}
	spacing := (laneLength - sum) / float64(n)
	if l.Dir == DirLeft {
		x := 0.0
		for _, v := range l.Vehicles {
			v.X = x
			x += v.W + spacing
		}
		return
	}
	x := laneLength
	for _, v := range l.Vehicles {
		x -= v.W
		v.X = x
		x -= spacing
	}
}

// SetY pins every vehicle to the lane's canonical row.
func (l *Lane) SetY(y float64) {
	l.Y = y
	for _, v := range l.Vehicles {
		v.Y = y
	}
}

// Advance moves every vehicle one tick and wraps boundary crossers to the
// opposite edge, which is what makes the traffic endless.
func (l *Lane) Advance(laneLength float64) {
	for _, v := range l.Vehicles {
		v.MoveForward()
		if v.X > laneLength {
			v.X = -v.W
		} else if v.X < -v.W {
			v.X = laneLength
		}
	}
}

// Collides reports whether any vehicle overlaps b. First match wins; the
// boolean does not depend on lane order.
func (l *Lane) Collides(b Box) bool {
	for _, v := range l.Vehicles {
		if v.Intersects(b) {
			return true
		}
	}
	return false
}

// RidingDelta returns the horizontal push b receives from debris it is
// standing on, and whether any debris is under it at all.
func (l *Lane) RidingDelta(b Box) (float64, bool) {
	for _, v := range l.Vehicles {
		if v.Intersects(b) {
			return v.Dir.Sign() * v.Speed, true
		}
	}
	return 0, false
}
