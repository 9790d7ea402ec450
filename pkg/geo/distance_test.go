package geo

import (
	"math"
	"testing"

	"iqaama_backend/internal/model"
)

var (
	dubaiMarina   = model.Coordinates{Lat: 25.0772, Lng: 55.1392}
	downtownDubai = model.Coordinates{Lat: 25.1972, Lng: 55.2744}
	dubaiCenter   = model.Coordinates{Lat: 25.2048, Lng: 55.2708}
	abuDhabi      = model.Coordinates{Lat: 24.4539, Lng: 54.3773}
)

func TestDistance(t *testing.T) {
	cases := []struct {
		name      string
		from, to  model.Coordinates
		km        float64
		tolerance float64
	}{
		{"same point", dubaiMarina, dubaiMarina, 0, 0.001},
		{"marina to downtown", dubaiMarina, downtownDubai, 19.1, 0.5},
		{"dubai to abu dhabi", dubaiCenter, abuDhabi, 122.9, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.from, tc.to)
			if math.Abs(got-tc.km) > tc.tolerance {
				t.Fatalf("Distance = %.2f km; want %.2f +/- %.2f", got, tc.km, tc.tolerance)
			}
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	there := Distance(dubaiMarina, abuDhabi)
	back := Distance(abuDhabi, dubaiMarina)
	if math.Abs(there-back) > 1e-9 {
		t.Fatalf("Distance not symmetric: %.9f vs %.9f", there, back)
	}
}

func TestDistanceNeverNegative(t *testing.T) {
	points := []model.Coordinates{dubaiMarina, downtownDubai, abuDhabi, {Lat: -33.86, Lng: 151.21}}
	for _, from := range points {
		for _, to := range points {
			if d := Distance(from, to); d < 0 {
				t.Fatalf("Distance(%v, %v) = %f; want >= 0", from, to, d)
			}
		}
	}
}

func TestCell(t *testing.T) {
	cell := Cell(dubaiMarina)
	if len(cell) != cellPrecision {
		t.Fatalf("Cell length = %d; want %d", len(cell), cellPrecision)
	}
	if Cell(dubaiMarina) != cell {
		t.Fatal("Cell is not deterministic for the same coordinate")
	}
	if Cell(abuDhabi) == cell {
		t.Fatal("distant coordinates share a cell at this precision")
	}
}
