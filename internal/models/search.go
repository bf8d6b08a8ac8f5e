package models

// SearchParams is the raw search input as received from the caller. Empty
// strings mean the parameter was not supplied.
type SearchParams struct {
	CategoryID string
	Lat        string
	Long       string
}

// Point is a (latitude, longitude) pair in decimal degrees.
type Point struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// SearchQuery is a validated search. Origin is nil when the caller supplied
// no coordinates.
type SearchQuery struct {
	CategoryID int64
	Origin     *Point
}

// Ranked reports whether results should be ordered by distance.
func (q SearchQuery) Ranked() bool {
	return q.Origin != nil
}
