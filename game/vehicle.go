package game

import "fmt"

// Direction is the travel direction of a lane and everything in it.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
)

// Sign maps the direction onto the x axis: DirRight increases x,
// DirLeft decreases it. Wraparound is symmetric either way.
func (d Direction) Sign() float64 {
	if d == DirRight {
		return 1
	}
	return -1
}

func (d Direction) String() string {
	if d == DirRight {
		return "right"
	}
	return "left"
}

// ParseDirection reads the config-file spelling of a direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// VehicleKind selects the body shape and whether the entity is rideable
// river debris or lethal traffic.
type VehicleKind uint8

const (
	KindCar VehicleKind = iota
	KindBus
	KindLog
	KindTurtle
)

// Rideable reports whether the kind is river debris the player stands on.
func (k VehicleKind) Rideable() bool {
	return k == KindLog || k == KindTurtle
}

func (k VehicleKind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindBus:
		return "bus"
	case KindLog:
		return "log"
	case KindTurtle:
		return "turtle"
	}
	return "unknown"
}

// ParseKind reads the config-file spelling of a vehicle kind.
func ParseKind(s string) (VehicleKind, error) {
	switch s {
	case "car":
		return KindCar, nil
	case "bus":
		return KindBus, nil
	case "log":
		return KindLog, nil
	case "turtle":
		return KindTurtle, nil
	}
	return 0, fmt.Errorf("unknown vehicle kind %q", s)
}

// kindWidth scales the body length of a kind off the row height.
func kindWidth(k VehicleKind, rowH float64) float64 {
	switch k {
	case KindBus:
		return rowH * busScale
	case KindLog:
		return rowH * logScale
	case KindTurtle:
		return rowH * turtleScale
	}
	return rowH * carScale
}

// Vehicle is one moving lane entity: traffic on a road, debris on the
// river. Kind, Dir and Speed are fixed at construction; only the
// position mutates.
type Vehicle struct {
	Box
	Kind  VehicleKind
	Dir   Direction
	Speed float64 // magnitude per sim tick; Dir supplies the sign
}

// MoveForward advances the vehicle one tick along its direction.
func (v *Vehicle) MoveForward() {
	v.X += v.Dir.Sign() * v.Speed
}
