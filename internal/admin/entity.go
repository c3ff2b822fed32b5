// AngelaMos | 2026
// entity.go

package admin

// Stats is the dashboard summary: approximate document counts per
// collection plus the sum of every invoice price.
type Stats struct {
	Users     int64   `json:"users"`
	Biodatas  int64   `json:"biodatas"`
	Premium   int64   `json:"premium"`
	Favourite int64   `json:"favourite"`
	Invoice   int64   `json:"invoice"`
	Profit    float64 `json:"profit"`
}

type Counts struct {
	Users     int64
	Biodatas  int64
	Premium   int64
	Favourite int64
	Invoice   int64
}
