package invasion

import (
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestCapacity(t *testing.T) {
	tests := []struct {
		name       string
		screenW    int
		screenH    int
		alienW     int
		alienH     int
		shipH      int
		cols, rows int
	}{
		{"defaults", 600, 500, 60, 58, 48, 4, 2},
		{"small aliens", 600, 500, 2, 2, 10, 149, 121},
		{"too small", 50, 50, 60, 58, 48, 0, 0},
		{"one column", 240, 500, 60, 58, 48, 1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultInvasionConfig()
			cfg.Screen.Width, cfg.Screen.Height = tc.screenW, tc.screenH
			cfg.Alien.Width, cfg.Alien.Height = tc.alienW, tc.alienH
			cfg.Ship.Height = tc.shipH

			cols, rows := Capacity(NewSettings(cfg, 60))
			if cols != tc.cols || rows != tc.rows {
				t.Errorf("Capacity() = %d x %d, expected %d x %d", cols, rows, tc.cols, tc.rows)
			}
		})
	}
}

func TestPopulateGrid(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	cfg.Alien.Width, cfg.Alien.Height = 2, 2
	cfg.Ship.Height = 10
	s := NewSettings(cfg, 60)

	f := NewFleet(s)
	if n := f.Populate(); n != 149*121 {
		t.Fatalf("Populate() = %d, expected %d", n, 149*121)
	}
	if f.Len() != 18029 {
		t.Errorf("Len() = %d, expected 18029", f.Len())
	}

	first := f.Aliens()[0].Bounds()
	if first != core.NewRect(2, 2, 2, 2) {
		t.Errorf("first alien = %+v, expected (2,2,2,2)", first)
	}
	last := f.Aliens()[f.Len()-1].Bounds()
	if last.X != 2+2*148*2 || last.Y != 2+2*120*2 {
		t.Errorf("last alien at (%d, %d), expected (%d, %d)", last.X, last.Y, 2+2*148*2, 2+2*120*2)
	}
}

func TestDefaultFleetLayout(t *testing.T) {
	f := NewFleet(DefaultSettings())
	f.Populate()

	want := []core.Rect{
		core.NewRect(60, 58, 60, 58),
		core.NewRect(180, 58, 60, 58),
		core.NewRect(300, 58, 60, 58),
		core.NewRect(420, 58, 60, 58),
		core.NewRect(60, 174, 60, 58),
	}
	for i, r := range want {
		if got := f.Aliens()[i].Bounds(); got != r {
			t.Errorf("alien %d = %+v, expected %+v", i, got, r)
		}
	}
}

func TestCheckFleetEdges(t *testing.T) {
	s := DefaultSettings()
	f := NewFleet(s)

	left := &Alien{rect: core.NewRect(0, 100, 60, 58), settings: s}
	right := &Alien{rect: core.NewRect(540, 200, 60, 58), x: 540, settings: s}
	f.aliens = []*Alien{left, right}

	if !f.CheckFleetEdges(&s.Fleet) {
		t.Fatal("CheckFleetEdges() = false with aliens on both edges")
	}

	// Both aliens touch an edge but the fleet drops and turns once
	if s.Fleet.Direction != -1 {
		t.Errorf("Direction = %d, expected -1", s.Fleet.Direction)
	}
	if left.Bounds().Y != 110 || right.Bounds().Y != 210 {
		t.Errorf("aliens at y %d, %d, expected one drop to 110, 210", left.Bounds().Y, right.Bounds().Y)
	}
}

func TestCheckFleetEdgesNoEdge(t *testing.T) {
	s := DefaultSettings()
	f := NewFleet(s)
	f.Populate()

	if f.CheckFleetEdges(&s.Fleet) {
		t.Error("CheckFleetEdges() = true for a fleet away from the edges")
	}
	if s.Fleet.Direction != 1 {
		t.Errorf("Direction = %d, expected 1", s.Fleet.Direction)
	}
	if y := f.Aliens()[0].Bounds().Y; y != 58 {
		t.Errorf("alien y = %d, expected 58", y)
	}
}

func TestAlienUpdateFollowsDirection(t *testing.T) {
	s := DefaultSettings()
	s.AlienSpeed = 1.5
	a := newAlien(s, 0, 0)

	a.Update()
	if a.Bounds().X != 61 {
		t.Errorf("X after right move = %d, expected 61", a.Bounds().X)
	}

	s.Fleet.Reverse()
	a.Update()
	a.Update()
	if a.Bounds().X != 58 {
		t.Errorf("X after two left moves = %d, expected 58", a.Bounds().X)
	}
}

func TestFleetLowest(t *testing.T) {
	s := DefaultSettings()
	f := NewFleet(s)

	if _, ok := f.Lowest(); ok {
		t.Error("Lowest() on empty fleet should report false")
	}

	f.aliens = []*Alien{
		{rect: core.NewRect(5, 40, 60, 58)},
		{rect: core.NewRect(50, 40, 60, 58)},
		{rect: core.NewRect(300, 10, 60, 58)},
	}
	r, ok := f.Lowest()
	if !ok || r.X != 50 || r.Y != 40 {
		t.Errorf("Lowest() = %+v, expected the alien at (50, 40)", r)
	}
}
