package geo

import "testing"

func TestCountryForQuery(t *testing.T) {
	cases := []struct {
		query    string
		expected string
	}{
		{"muscat", "oman"},
		{"Muscat", "oman"},
		{"somewhere in muscat", "oman"},
		{"dubai marina", "uae"},
		{"abu dhabi corniche", "uae"},
		{"doha west bay", "qatar"},
		{"riyadh", "saudi"},
		{"manama", "bahrain"},
		{"antarctica", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			if got := CountryForQuery(tc.query); got != tc.expected {
				t.Fatalf("CountryForQuery(%q) = %q; want %q", tc.query, got, tc.expected)
			}
		})
	}
}

func TestCountryForQueryEarliestTokenWins(t *testing.T) {
	// Both tokens are present; the one appearing first decides.
	if got := CountryForQuery("doha or dubai"); got != "qatar" {
		t.Fatalf("CountryForQuery(\"doha or dubai\") = %q; want qatar", got)
	}
	if got := CountryForQuery("dubai or doha"); got != "uae" {
		t.Fatalf("CountryForQuery(\"dubai or doha\") = %q; want uae", got)
	}
}

func TestCenterForQuery(t *testing.T) {
	center, ok := CenterForQuery("sharjah")
	if !ok {
		t.Fatal("CenterForQuery(sharjah) found nothing")
	}
	if center.Lat == 0 || center.Lng == 0 {
		t.Fatalf("CenterForQuery(sharjah) = %v; want non-zero coordinates", center)
	}

	if _, ok := CenterForQuery("atlantis"); ok {
		t.Fatal("CenterForQuery(atlantis) resolved; want no center")
	}
	if _, ok := CenterForQuery(""); ok {
		t.Fatal("CenterForQuery(\"\") resolved; want no center")
	}
}

func TestMuscatAndOmanShareACenter(t *testing.T) {
	muscat, _ := CenterForQuery("muscat")
	oman, _ := CenterForQuery("oman")
	if muscat != oman {
		t.Fatalf("muscat center %v differs from oman center %v", muscat, oman)
	}
}
