package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Capacity returns the fleet grid for the given settings.
//
//	cols = (W - 2*aw) / (2*aw)
//	rows = (H - 3*ah - shipH) / (2*ah)
//
// Both are truncated and never negative.
func Capacity(s *Settings) (cols, rows int) {
	aw, ah := s.AlienWidth, s.AlienHeight
	if aw <= 0 || ah <= 0 {
		return 0, 0
	}

	cols = (s.ScreenWidth - 2*aw) / (2 * aw)
	rows = (s.ScreenHeight - 3*ah - s.ShipHeight) / (2 * ah)
	return core.Max(cols, 0), core.Max(rows, 0)
}

// Fleet is the set of live aliens.
type Fleet struct {
	aliens   []*Alien
	settings *Settings
}

// NewFleet creates an empty fleet.
func NewFleet(s *Settings) *Fleet {
	return &Fleet{settings: s}
}

// Populate adds a full grid of aliens, column-major within each row.
// It returns the number of aliens created.
func (f *Fleet) Populate() int {
	cols, rows := Capacity(f.settings)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			f.aliens = append(f.aliens, newAlien(f.settings, col, row))
		}
	}
	return cols * rows
}

// Len returns the number of live aliens.
func (f *Fleet) Len() int {
	return len(f.aliens)
}

// Empty reports whether every alien is gone.
func (f *Fleet) Empty() bool {
	return len(f.aliens) == 0
}

// Clear removes every alien.
func (f *Fleet) Clear() {
	f.aliens = nil
}

// Aliens returns the live aliens. The slice must not be modified.
func (f *Fleet) Aliens() []*Alien {
	return f.aliens
}

// CheckFleetEdges changes direction once if any alien touches an edge.
// It reports whether the fleet turned.
func (f *Fleet) CheckFleetEdges(fs *FleetState) bool {
	for _, a := range f.aliens {
		if a.CheckEdges() {
			f.ChangeFleetDirection(fs)
			return true
		}
	}
	return false
}

// ChangeFleetDirection drops every alien by the drop speed and reverses direction.
func (f *Fleet) ChangeFleetDirection(fs *FleetState) {
	for _, a := range f.aliens {
		a.rect.Y += f.settings.FleetDropSpeed
	}
	fs.Reverse()
}

// Update moves every alien horizontally.
func (f *Fleet) Update() {
	for _, a := range f.aliens {
		a.Update()
	}
}

// DestroyOverlapping removes every alien intersecting r and returns how many went.
func (f *Fleet) DestroyOverlapping(r core.Rect) int {
	kept := f.aliens[:0]
	for _, a := range f.aliens {
		if !a.rect.Intersects(r) {
			kept = append(kept, a)
		}
	}
	n := len(f.aliens) - len(kept)
	clear(f.aliens[len(kept):])
	f.aliens = kept
	return n
}

// Collides reports whether any alien intersects r.
func (f *Fleet) Collides(r core.Rect) bool {
	for _, a := range f.aliens {
		if a.rect.Intersects(r) {
			return true
		}
	}
	return false
}

// ReachedBottom reports whether any alien's bottom is at or below y.
func (f *Fleet) ReachedBottom(y int) bool {
	for _, a := range f.aliens {
		if a.rect.Bottom() >= y {
			return true
		}
	}
	return false
}

// Lowest returns the alien with the greatest top edge, ties broken by the
// greatest left edge. ok is false for an empty fleet.
func (f *Fleet) Lowest() (r core.Rect, ok bool) {
	for _, a := range f.aliens {
		if !ok || a.rect.Y > r.Y || (a.rect.Y == r.Y && a.rect.X > r.X) {
			r, ok = a.rect, true
		}
	}
	return r, ok
}
