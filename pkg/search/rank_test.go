package search

import (
	"testing"

	"iqaama_backend/internal/model"
)

func toResults(props []model.Property) []model.Result {
	out := make([]model.Result, 0, len(props))
	for _, p := range props {
		out = append(out, model.Result{Property: p})
	}
	return out
}

func TestRankSortsByDistance(t *testing.T) {
	ref := model.Coordinates{Lat: 25.1972, Lng: 55.2744} // Downtown Dubai
	got := Rank(toResults(testCatalog()), &ref)

	if len(got) != 5 {
		t.Fatalf("Rank dropped results: got %d, want 5", len(got))
	}
	for i, r := range got {
		if r.Distance == nil {
			t.Fatalf("result %d missing distance annotation", i)
		}
		if *r.Distance < 0 {
			t.Fatalf("result %d has negative distance %f", i, *r.Distance)
		}
		if i > 0 && *r.Distance < *got[i-1].Distance {
			t.Fatalf("results out of order at %d: %f after %f", i, *r.Distance, *got[i-1].Distance)
		}
	}

	if got[0].ID != 5 {
		t.Fatalf("nearest to reference = property %d; want 5", got[0].ID)
	}
	if *got[0].Distance != 0 {
		t.Fatalf("distance to own coordinates = %f; want 0", *got[0].Distance)
	}
}

func TestRankStableOnTies(t *testing.T) {
	at := model.Coordinates{Lat: 25.0, Lng: 55.0}
	results := []model.Result{
		{Property: model.Property{ID: 7, Coordinates: at}},
		{Property: model.Property{ID: 8, Coordinates: at}},
		{Property: model.Property{ID: 9, Coordinates: at}},
	}

	got := Rank(results, &model.Coordinates{Lat: 24.0, Lng: 54.0})
	for i, want := range []uint{7, 8, 9} {
		if got[i].ID != want {
			t.Fatalf("tie order broken at %d: got property %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestRankNilReferenceLeavesResultsUntouched(t *testing.T) {
	got := Rank(toResults(testCatalog()), nil)
	for i, r := range got {
		if r.Distance != nil {
			t.Fatalf("result %d annotated with distance despite nil reference", i)
		}
		if r.ID != testCatalog()[i].ID {
			t.Fatalf("result order changed at %d without a reference", i)
		}
	}
}

type stubGeocoder struct {
	coords model.Coordinates
	ok     bool
}

func (s stubGeocoder) Locate(string) (model.Coordinates, bool) {
	return s.coords, s.ok
}

func TestResolveReference(t *testing.T) {
	marina := model.Coordinates{Lat: 25.0772, Lng: 55.1392}

	t.Run("geocoder hit wins", func(t *testing.T) {
		got, ok := ResolveReference(model.Criteria{Location: "dubai marina"}, stubGeocoder{marina, true})
		if !ok || got != marina {
			t.Fatalf("ResolveReference = (%v, %v); want (%v, true)", got, ok, marina)
		}
	})

	t.Run("region center fallback", func(t *testing.T) {
		got, ok := ResolveReference(model.Criteria{Location: "somewhere in muscat"}, stubGeocoder{ok: false})
		if !ok {
			t.Fatal("ResolveReference found no fallback center for a muscat query")
		}
		if got.Lat == 0 || got.Lng == 0 {
			t.Fatalf("fallback center is zero-valued: %v", got)
		}
	})

	t.Run("no location means no reference", func(t *testing.T) {
		if _, ok := ResolveReference(model.Criteria{}, stubGeocoder{marina, true}); ok {
			t.Fatal("ResolveReference produced a reference for an empty location")
		}
	})

	t.Run("unknown query means no reference", func(t *testing.T) {
		if _, ok := ResolveReference(model.Criteria{Location: "antarctica"}, nil); ok {
			t.Fatal("ResolveReference produced a reference for an unknown query")
		}
	})
}
