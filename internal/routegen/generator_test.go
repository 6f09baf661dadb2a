package routegen

import (
	"testing"

	"travelapp/internal/domain/models"
)

func TestGenerateUnknownLocation(t *testing.T) {
	g := NewSeeded(1)
	if got := g.Generate("999", "1"); len(got) != 0 {
		t.Fatalf("unknown origin should yield empty, got %d routes", len(got))
	}
	if got := g.Generate("1", "999"); len(got) != 0 {
		t.Fatalf("unknown destination should yield empty, got %d routes", len(got))
	}
}

func TestGenerateShape(t *testing.T) {
	g := NewSeeded(42)
	routes := g.Generate("1", "2")
	if len(routes) != 12 {
		t.Fatalf("want 12 routes, got %d", len(routes))
	}

	perMode := map[models.TravelMode]int{}
	for _, r := range routes {
		perMode[r.Mode]++

		if r.From.ID != "1" || r.To.ID != "2" {
			t.Fatalf("route %s carries wrong endpoints %s->%s", r.ID, r.From.ID, r.To.ID)
		}
		if r.SeatsAvailable < 10 || r.SeatsAvailable > 59 {
			t.Fatalf("route %s seats %d outside [10,59]", r.ID, r.SeatsAvailable)
		}
		var min, max int64
		switch r.Mode {
		case models.ModeFlight:
			min, max = 3500, 12000
		case models.ModeTrain:
			min, max = 800, 3500
		case models.ModeBus:
			min, max = 500, 2500
		}
		if r.Price < min || r.Price > max {
			t.Fatalf("route %s price %d outside [%d,%d]", r.ID, r.Price, min, max)
		}
	}
	for _, mode := range []models.TravelMode{models.ModeFlight, models.ModeTrain, models.ModeBus} {
		if perMode[mode] != 4 {
			t.Fatalf("want 4 %s routes, got %d", mode, perMode[mode])
		}
	}
}
