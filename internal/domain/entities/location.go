package entities

// UserLocation is the user's resolved position, supplied at most once per
// request or session.
type UserLocation struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address"`
}
