package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Entity is the capability shared by ships, aliens, and bullets.
// Each keeps a float position and re-derives its integer box on Update.
type Entity interface {
	Bounds() core.Rect
	Update()
}

var (
	_ Entity = (*Ship)(nil)
	_ Entity = (*Alien)(nil)
	_ Entity = (*Bullet)(nil)
)

// Side selects one of the ship's movement intents.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Ship is the player's ship.
// The two intents are independent; holding both moves the ship left and then
// right in the same tick, which cancels out only while both edges allow it.
type Ship struct {
	MovingLeft  bool
	MovingRight bool

	rect     core.Rect
	center   float64 // Sub-pixel horizontal center
	settings *Settings
}

// NewShip creates a ship at the bottom center of the field.
func NewShip(s *Settings) *Ship {
	ship := &Ship{
		rect:     core.NewRect(0, 0, s.ShipWidth, s.ShipHeight),
		settings: s,
	}
	ship.Center()
	return ship
}

// SetMoving sets one movement intent.
func (s *Ship) SetMoving(side Side, on bool) {
	switch side {
	case SideLeft:
		s.MovingLeft = on
	case SideRight:
		s.MovingRight = on
	}
}

// Update moves the ship according to its intents and the field edges.
func (s *Ship) Update() {
	screen := s.settings.ScreenRect()

	if s.MovingLeft && s.rect.Left() > 0 {
		s.center -= s.settings.ShipSpeed
	}
	if s.MovingRight && s.rect.Right() < screen.Right() {
		s.center += s.settings.ShipSpeed
	}

	s.rect.SetCenterX(int(s.center))
}

// Center places the ship at the bottom center and resyncs the accumulator.
func (s *Ship) Center() {
	screen := s.settings.ScreenRect()
	s.rect.SetCenterX(screen.CenterX())
	s.rect.SetBottom(screen.Bottom())
	s.center = float64(s.rect.CenterX())
}

// Bounds returns the ship's bounding box.
func (s *Ship) Bounds() core.Rect {
	return s.rect
}

// Alien is one member of the fleet. Only x is tracked as a float: vertical
// movement happens in whole drop steps.
type Alien struct {
	rect     core.Rect
	x        float64
	settings *Settings
}

func newAlien(s *Settings, col, row int) *Alien {
	w, h := s.AlienWidth, s.AlienHeight
	a := &Alien{
		rect:     core.NewRect(w+2*col*w, h+2*row*h, w, h),
		settings: s,
	}
	a.x = float64(a.rect.X)
	return a
}

// Update moves the alien along the shared fleet direction.
func (a *Alien) Update() {
	a.x += a.settings.AlienSpeed * float64(a.settings.Fleet.Direction)
	a.rect.X = int(a.x)
}

// CheckEdges reports whether the alien touches either side of the field.
func (a *Alien) CheckEdges() bool {
	screen := a.settings.ScreenRect()
	return a.rect.Right() >= screen.Right() || a.rect.Left() <= 0
}

// Bounds returns the alien's bounding box.
func (a *Alien) Bounds() core.Rect {
	return a.rect
}

// Bullet is a projectile travelling straight up.
type Bullet struct {
	Color core.Color

	rect     core.Rect
	y        float64
	settings *Settings
}

// newBullet creates a bullet whose top-center matches the ship's top-center.
func newBullet(s *Settings, ship core.Rect) *Bullet {
	r := core.NewRect(0, 0, s.BulletWidth, s.BulletHeight)
	r.SetMidTop(ship.MidTop())
	return &Bullet{
		Color:    s.BulletColor,
		rect:     r,
		y:        float64(r.Y),
		settings: s,
	}
}

// Update moves the bullet up.
func (b *Bullet) Update() {
	b.y -= b.settings.BulletSpeed
	b.rect.Y = int(b.y)
}

// Spent reports whether the bullet has left the top of the field.
func (b *Bullet) Spent() bool {
	return b.rect.Bottom() <= 0
}

// Bounds returns the bullet's bounding box.
func (b *Bullet) Bounds() core.Rect {
	return b.rect
}
