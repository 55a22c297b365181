package domain

// Hostel is a housing option near an institution.
type Hostel struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	PriceRange  string `json:"priceRange"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
}

// Advertisement is a promoted Hostel. Rating goes from 0 to 5.
type Advertisement struct {
	Hostel
	Tagline    string `json:"tagline"`
	Rating     int    `json:"rating"`
	IsPromoted bool   `json:"isPromoted"`
}

// Listings is everything the housing guide shows for one institution.
type Listings struct {
	Ads     []Advertisement `json:"ads"`
	Hostels []Hostel        `json:"hostels"`
}
