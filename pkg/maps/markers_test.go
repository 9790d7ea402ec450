package maps

import (
	"testing"

	"iqaama_backend/internal/model"
)

func TestBuild(t *testing.T) {
	results := []model.Result{
		{
			Property: model.Property{ID: 1, Location: "Dubai Marina",
				Coordinates: model.Coordinates{Lat: 25.0772, Lng: 55.1392}},
			Price: "AED 8,500",
		},
		{
			Property: model.Property{ID: 5, Location: "Downtown Dubai",
				Coordinates: model.Coordinates{Lat: 25.1972, Lng: 55.2744}},
			Price: "AED 5,500",
		},
	}

	got := Build(results)
	if len(got) != 2 {
		t.Fatalf("Build = %d markers; want 2", len(got))
	}
	for i, m := range got {
		if m.PropertyID != results[i].ID {
			t.Fatalf("marker %d order changed: property %d", i, m.PropertyID)
		}
		if m.Cell == "" {
			t.Fatalf("marker %d has no cell", i)
		}
		if m.Label != results[i].Location || m.Price != results[i].Price {
			t.Fatalf("marker %d = %+v; want label and price carried over", i, m)
		}
	}
	if got[0].Cell == got[1].Cell {
		t.Fatal("distant listings share a marker cell")
	}
}

func TestBuildEmpty(t *testing.T) {
	if got := Build(nil); len(got) != 0 {
		t.Fatalf("Build(nil) = %d markers; want 0", len(got))
	}
}
