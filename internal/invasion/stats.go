package invasion

// Stats tracks score, level, and remaining ships.
// HighScore survives Reset; everything else is per game.
type Stats struct {
	Score     int
	HighScore int
	Level     int
	ShipsLeft int
	Active    bool

	shipLimit int
}

// NewStats creates inactive stats seeded with a persisted high score.
func NewStats(shipLimit, highScore int) *Stats {
	s := &Stats{
		HighScore: highScore,
		shipLimit: shipLimit,
	}
	s.Reset()
	return s
}

// Reset starts a fresh game's counters.
func (s *Stats) Reset() {
	s.ShipsLeft = s.shipLimit
	s.Score = 0
	s.Level = 1
}

// CheckHighScore raises the high score to the current score if it is higher.
// It reports whether the high score changed.
func (s *Stats) CheckHighScore() bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}
