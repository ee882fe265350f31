package game

const (
	// Timing divisors relative to the simulation tick (64 Hz, ~15.6ms).
	// Both must divide the sim rate so the three signals stay phase-locked.
	DeathAnimEvery = 16 // one death-animation frame per ~250ms
	LevelTickEvery = 64 // one countdown second per 64 sim ticks

	// Death animation: frame 0 is the live sprite, frames 1..DeathFrames
	// the death sequence. Advancing past the last frame wraps back to 0.
	DeathFrames = 4

	// Home claims require a grid-aligned landing, not mere overlap.
	HomeSnapTolerance = 0.1

	// Scoring: flat award per crossing plus a bonus for every countdown
	// second still on the clock.
	PointsPerCrossing    = 100
	PointsPerSpareSecond = 10

	// Entity sizes as fractions of the row height.
	playerScale = 0.75
	carScale    = 1.25
	busScale    = 2.5
	logScale    = 3.0
	turtleScale = 1.5

	// Home slots sit two hops apart, centered on the start column.
	homeSpacingHops = 2
)
