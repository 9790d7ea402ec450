package model

// Listing tabs mirror the site sections.
type ListingTab string

const (
	TabRent       ListingTab = "rent"
	TabBuy        ListingTab = "buy"
	TabShared     ListingTab = "shared"
	TabDaily      ListingTab = "daily"
	TabCommercial ListingTab = "commercial"
)

// Criteria is a canonical, fully normalized search. Zero values mean
// "unconstrained": an empty Criteria matches the whole catalog.
//
// Location is trimmed and lower-cased. Bedrooms is "" or a normalized
// count ("studio", "shared", "1", "2", "3+"). Proximity bands are in
// meters, 0 meaning no constraint. MaxPrice 0 means unbounded above.
type Criteria struct {
	Location     string       `json:"location"`
	PropertyType PropertyType `json:"property_type"`
	Emirate      string       `json:"emirate"`
	Country      string       `json:"country"`
	MinPrice     int          `json:"min_price"`
	MaxPrice     int          `json:"max_price"`
	HasPrice     bool         `json:"has_price"`
	Bedrooms     string       `json:"bedrooms"`
	Tab          ListingTab   `json:"tab"`
	NearMetro    int          `json:"near_metro"`
	NearMall     int          `json:"near_mall"`
	NearBeach    int          `json:"near_beach"`
}
