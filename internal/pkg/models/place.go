package models

// Place represents a named, radius-bounded geographic area used for
// membership testing (e.g. a golf course or a dog-walking common)
type Place struct {
	Name       string   `json:"name"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	RadiusM    float64  `json:"radius_m"`
	Activities []string `json:"activities"`
}

// HasActivity reports whether the place is tagged for the given activity
func (p Place) HasActivity(tag string) bool {
	for _, a := range p.Activities {
		if a == tag {
			return true
		}
	}
	return false
}

// PlaceConfig is the on-disk representation of a place definition
type PlaceConfig struct {
	Name        string `json:"name"`
	Coordinates struct {
		Latitude  float64 `json:"lat"`
		Longitude float64 `json:"lng"`
	} `json:"coordinates"`
	RadiusM    float64  `json:"radius_m"`
	Activities []string `json:"activities"`
}
