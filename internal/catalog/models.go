package catalog

// Movie is one catalog search result. Nullable catalog columns map to
// pointer fields. Providers stays nil until enrichment has run for the
// item; an empty non-nil slice means enrichment ran and found none.
type Movie struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Year           *int     `json:"year"`
	RuntimeMinutes *int     `json:"runtimeMinutes"`
	Categories     *string  `json:"categories"`
	Rating         *float64 `json:"rating"`
	Popularity     *float64 `json:"popularity"`
	Providers      []string `json:"providers"`
}

// searchEnvelope is the object form of the search response. The endpoint
// historically returned a bare array and later wrapped it; both shapes
// are accepted.
type searchEnvelope struct {
	Movies []Movie `json:"movies"`
}

// errorResponse is the error payload shape of the catalog service.
type errorResponse struct {
	Error string `json:"error"`
}
