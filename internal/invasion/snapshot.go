package invasion

import "math"

// Snapshot contains the complete engine state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Phase     int
	PauseLeft int
	Score     int
	HighScore int
	Level     int
	ShipsLeft int

	// Ship: rect X, Y plus the sub-pixel center as float bits
	ShipX       int
	ShipY       int
	ShipCenter  uint64
	MovingLeft  bool
	MovingRight bool

	// Dynamic settings, floats as bits
	ShipSpeed   uint64
	BulletSpeed uint64
	AlienSpeed  uint64
	AlienPoints int
	Direction   int

	// Each alien is 3 values: X, Y, float x bits
	AlienCount int
	AlienData  []uint64

	// Each bullet is 3 values: X, Y, float y bits
	BulletCount int
	BulletData  []uint64
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	aliens := e.fleet.Aliens()
	alienData := make([]uint64, 0, len(aliens)*3)
	for _, a := range aliens {
		alienData = append(alienData,
			uint64(a.rect.X), //#nosec G115 -- hash input
			uint64(a.rect.Y), //#nosec G115 -- hash input
			math.Float64bits(a.x))
	}

	bulletData := make([]uint64, 0, len(e.bullets)*3)
	for _, b := range e.bullets {
		bulletData = append(bulletData,
			uint64(b.rect.X), //#nosec G115 -- hash input
			uint64(b.rect.Y), //#nosec G115 -- hash input
			math.Float64bits(b.y))
	}

	s := e.settings
	return Snapshot{
		Tick:      e.tick,
		Phase:     int(e.phase),
		PauseLeft: e.pauseLeft,
		Score:     e.stats.Score,
		HighScore: e.stats.HighScore,
		Level:     e.stats.Level,
		ShipsLeft: e.stats.ShipsLeft,

		ShipX:       e.ship.rect.X,
		ShipY:       e.ship.rect.Y,
		ShipCenter:  math.Float64bits(e.ship.center),
		MovingLeft:  e.ship.MovingLeft,
		MovingRight: e.ship.MovingRight,

		ShipSpeed:   math.Float64bits(s.ShipSpeed),
		BulletSpeed: math.Float64bits(s.BulletSpeed),
		AlienSpeed:  math.Float64bits(s.AlienSpeed),
		AlienPoints: s.AlienPoints,
		Direction:   s.Fleet.Direction,

		AlienCount:  len(aliens),
		AlienData:   alienData,
		BulletCount: len(e.bullets),
		BulletData:  bulletData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Phase, snap.PauseLeft, snap.Score, snap.HighScore, snap.Level, snap.ShipsLeft,
		snap.ShipX, snap.ShipY, boolInt(snap.MovingLeft), boolInt(snap.MovingRight),
		snap.AlienPoints, snap.Direction, snap.AlienCount, snap.BulletCount,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.ShipCenter
	h = h*31 + snap.ShipSpeed
	h = h*31 + snap.BulletSpeed
	h = h*31 + snap.AlienSpeed

	for _, v := range snap.AlienData {
		h = h*31 + v
	}
	for _, v := range snap.BulletData {
		h = h*31 + v
	}

	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
