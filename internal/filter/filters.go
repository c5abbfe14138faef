package filter

import "time"

// Default bounds and values for the filter panel. Year ranges track the
// current calendar year as their upper bound.
const (
	YearLowerBound    = 1900
	DefaultYearMin    = 1985
	RuntimeLowerBound = 0
	RuntimeUpperBound = 600
	DefaultRuntimeMin = 60
	DefaultRuntimeMax = 240
	RatingLowerBound  = 0
	RatingUpperBound  = 10
	DefaultRatingMin  = 7
	DefaultRatingMax  = 10
	DefaultLimit      = 5
)

// Filters aggregates every filter field the panel exposes. All mutation
// goes through the named setters on the contained ranges or direct field
// writes by the owning controller; Reset restores every field at once.
type Filters struct {
	ID               string
	Title            string
	Genres           []string
	RequireAllGenres bool
	Year             Range
	Runtime          Range
	Rating           Range
	MinVotes         int
	Limit            int
}

// NewFilters returns a Filters with the documented defaults: no id/title/genre
// constraints, year [1985, current year], runtime [60, 240], rating [7, 10],
// no vote floor, limit 5.
func NewFilters() *Filters {
	currentYear := float64(time.Now().Year())
	return &Filters{
		Genres:  []string{},
		Year:    NewRange(YearLowerBound, currentYear, DefaultYearMin, currentYear),
		Runtime: NewRange(RuntimeLowerBound, RuntimeUpperBound, DefaultRuntimeMin, DefaultRuntimeMax),
		Rating:  NewRange(RatingLowerBound, RatingUpperBound, DefaultRatingMin, DefaultRatingMax),
		Limit:   DefaultLimit,
	}
}

// Reset restores all fields to their defaults in one step.
func (f *Filters) Reset() {
	*f = *NewFilters()
}

// ToggleGenre adds the genre if absent and removes it if present. The
// chosen list keeps insertion order and never holds duplicates.
func (f *Filters) ToggleGenre(genre string) {
	for i, g := range f.Genres {
		if g == genre {
			f.Genres = append(f.Genres[:i], f.Genres[i+1:]...)
			return
		}
	}
	f.Genres = append(f.Genres, genre)
}

// ClearGenres empties the chosen genre set.
func (f *Filters) ClearGenres() {
	f.Genres = []string{}
}
