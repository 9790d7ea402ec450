package search

import (
	"strconv"
	"strings"

	"iqaama_backend/internal/model"
)

// Input carries raw, possibly empty user input exactly as it arrived from the
// query string or a saved search. Every field is optional.
type Input struct {
	Location     string `query:"location" json:"location"`
	PropertyType string `query:"type" json:"property_type"`
	Emirate      string `query:"emirate" json:"emirate"`
	Country      string `query:"country" json:"country"`
	PriceRange   string `query:"price" json:"price_range"`
	Bedrooms     string `query:"beds" json:"bedrooms"`
	Tab          string `query:"tab" json:"tab"`
	NearMetro    string `query:"metro" json:"near_metro"`
	NearMall     string `query:"mall" json:"near_mall"`
	NearBeach    string `query:"beach" json:"near_beach"`
}

// Normalize turns raw input into canonical criteria. Missing, sentinel
// ("all", "any") and unparsable values degrade to "unconstrained"; this
// function never fails.
func Normalize(in Input) model.Criteria {
	c := model.Criteria{
		Location: strings.ToLower(strings.TrimSpace(in.Location)),
		Emirate:  normalizeChoice(in.Emirate),
		Country:  normalizeChoice(in.Country),
		Bedrooms: normalizeBedrooms(in.Bedrooms),
		Tab:      normalizeTab(in.Tab),
	}

	if t := model.PropertyType(normalizeChoice(in.PropertyType)); t != "" {
		for _, known := range model.KnownPropertyTypes {
			if t == known {
				c.PropertyType = t
				break
			}
		}
	}

	c.MinPrice, c.MaxPrice, c.HasPrice = parsePriceRange(in.PriceRange)
	c.NearMetro = parseBandMeters(in.NearMetro)
	c.NearMall = parseBandMeters(in.NearMall)
	c.NearBeach = parseBandMeters(in.NearBeach)

	return c
}

// normalizeChoice folds a select-box value, treating the "no constraint"
// sentinels as empty.
func normalizeChoice(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" || s == "any" {
		return ""
	}
	return s
}

// normalizeBedrooms reduces both UI labels ("2 BR", "3+ BR") and catalog
// sentinels to a comparable form: "studio", "shared", "1", "2", "3+", ...
func normalizeBedrooms(s string) string {
	s = normalizeChoice(s)
	if s == "" {
		return ""
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "br"))
	s = strings.TrimSpace(s)
	switch s {
	case "studio", "shared", "office":
		return s
	}
	atLeast := strings.HasSuffix(s, "+")
	n, err := strconv.Atoi(strings.TrimSpace(digitsOnly(s)))
	if err != nil {
		return ""
	}
	if atLeast {
		return strconv.Itoa(n) + "+"
	}
	return strconv.Itoa(n)
}

func normalizeTab(s string) model.ListingTab {
	switch model.ListingTab(strings.ToLower(strings.TrimSpace(s))) {
	case model.TabBuy:
		return model.TabBuy
	case model.TabShared:
		return model.TabShared
	case model.TabDaily:
		return model.TabDaily
	case model.TabCommercial:
		return model.TabCommercial
	default:
		return model.TabRent
	}
}

// parsePriceRange understands both URL values ("2000-5000") and the display
// labels the filter UI emits ("AED 2,000 - 5,000", "Under AED 2,000",
// "Above AED 10,000"). A lone value constrains the minimum only.
func parsePriceRange(s string) (min, max int, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "any" || s == "any price" {
		return 0, 0, false
	}

	switch {
	case strings.Contains(s, "under"), strings.Contains(s, "below"):
		if v := parseAmount(s); v > 0 {
			return 0, v, true
		}
	case strings.Contains(s, "above"), strings.Contains(s, "over"), strings.HasSuffix(s, "+"):
		if v := parseAmount(s); v > 0 {
			return v, 0, true
		}
	}

	if lo, hi, found := strings.Cut(s, "-"); found {
		min, max = parseAmount(lo), parseAmount(hi)
		if min == 0 && max == 0 {
			return 0, 0, false
		}
		return min, max, true
	}

	if v := parseAmount(s); v > 0 {
		return v, 0, true
	}
	return 0, 0, false
}

// parseBandMeters parses proximity bands like "500", "500m" or "1.5km" into
// meters. Unparsable input means no constraint.
func parseBandMeters(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "any" {
		return 0
	}
	if km, found := strings.CutSuffix(s, "km"); found {
		v, err := strconv.ParseFloat(strings.TrimSpace(km), 64)
		if err != nil {
			return 0
		}
		return int(v * 1000)
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "m"))
	v, err := strconv.Atoi(digitsOnly(s))
	if err != nil {
		return 0
	}
	return v
}

// parseAmount strips everything but digits out of a price fragment, the same
// treatment the criteria labels got on the old front end.
func parseAmount(s string) int {
	v, err := strconv.Atoi(digitsOnly(s))
	if err != nil {
		return 0
	}
	return v
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
