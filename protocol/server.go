package protocol

// Welcome carries the immutable field geometry so the host can set up
// its rendering once; snapshots afterwards carry only mutable state.
type Welcome struct {
	PlayerID string  `json:"playerId"`
	Room     string  `json:"room"`
	TickHz   int     `json:"tickHz"`
	FieldW   float64 `json:"fieldW"`
	FieldH   float64 `json:"fieldH"`
	RowH     float64 `json:"rowH"`
}

type State struct {
	Tick     int               `json:"tick"`
	Phase    uint8             `json:"phase"` // 0 playing, 1 game over
	Lives    int               `json:"lives"`
	Scores   int               `json:"scores"`
	Points   int               `json:"points"`
	TimeLeft int               `json:"timeLeft"`
	Player   PlayerSnapshot    `json:"player"`
	Vehicles []VehicleSnapshot `json:"vehicles"`
	Homes    []HomeSnapshot    `json:"homes"`
}

type PlayerSnapshot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Frame    int     `json:"frame"` // 0 live, 1..4 death sequence
	Disabled bool    `json:"disabled,omitempty"`
}

type VehicleSnapshot struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
	Kind uint8   `json:"kind"`
	Dir  uint8   `json:"dir"`
}

type HomeSnapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Taken bool    `json:"taken,omitempty"`
}

// EventNote is one state-change notification. No payload beyond the
// kind; the client re-reads the next snapshot for details.
type EventNote struct {
	Kind string `json:"kind"` // livesChanged, scoreChanged, gameOver
}
