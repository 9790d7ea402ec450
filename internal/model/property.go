package model

// Property Types
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeStudio     PropertyType = "studio"
	PropertyTypeBedspace   PropertyType = "bedspace"
	PropertyTypePartition  PropertyType = "partition"
	PropertyTypeCommercial PropertyType = "commercial"
)

// KnownPropertyTypes is the closed set accepted by the catalog and the filters.
var KnownPropertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeVilla,
	PropertyTypeStudio,
	PropertyTypeBedspace,
	PropertyTypePartition,
	PropertyTypeCommercial,
}

// Bed/bath counts are strings because shared and commercial listings use
// sentinels ("Shared", "Studio", "Office") instead of numbers.
const (
	BedsShared = "Shared"
	BedsStudio = "Studio"
	BedsOffice = "Office"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Landlord struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	WhatsApp string  `json:"whatsapp"`
	Rating   float64 `json:"rating"`
}

// Property is a read-only catalog record. The price is stored once as a
// canonical monthly amount; every per-mode display price is derived from it.
type Property struct {
	ID           uint         `json:"id"`
	Slug         string       `json:"slug"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	Coordinates  Coordinates  `json:"coordinates"`
	MonthlyPrice int          `json:"monthly_price"`
	Currency     string       `json:"currency"`
	Type         PropertyType `json:"type"`
	Beds         string       `json:"beds"`
	Baths        string       `json:"baths"`
	Area         string       `json:"area"`
	Features     []string     `json:"features"`
	Amenities    []string     `json:"amenities"`
	NearbyPlaces []string     `json:"nearby_places"`
	Verified     bool         `json:"verified"`
	Availability string       `json:"availability"`
	Landlord     Landlord     `json:"landlord"`
	Emirate      string       `json:"emirate"`
	Country      string       `json:"country"`
}

// Result is a property as it leaves the search pipeline: annotated with the
// distance from the reference point (when one was resolved) and the price as
// it should be displayed for the active listing mode.
type Result struct {
	Property
	Distance *float64 `json:"distance,omitempty"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
}
