package entity

// NearbyStore bundles a store with its computed distance from the searcher
// and its current open/closed flag. Bundling avoids N+1 lookups when the
// delivery layer renders a ranked result page.
type NearbyStore struct {
	Store      *Store     `json:"store"`
	DistanceKm float64    `json:"distance_km"`
	IsOpen     bool       `json:"is_open"`
	Products   []*Product `json:"products"`
}
