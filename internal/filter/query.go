package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter keys understood by the catalog search endpoint.
const (
	ParamID         = "tconst"
	ParamTitle      = "primary_title"
	ParamGenres     = "genres"
	ParamAllGenres  = "apply_all_genres"
	ParamYearMin    = "start_year"
	ParamYearMax    = "end_year"
	ParamRatingMin  = "average_rating_min"
	ParamRatingMax  = "average_rating_max"
	ParamRuntimeMin = "runtime_minutes_min"
	ParamRuntimeMax = "runtime_minutes_max"
	ParamMinVotes   = "num_votes"
	ParamLimit      = "limit"
)

// Values serializes the filters into query parameters for the search
// endpoint. Keys whose value is the empty string are omitted; zero numbers
// and false booleans are meaningful filter values and are always included.
// The genre set joins into one comma-separated value under a single key,
// and the boolean serializes as literal "1"/"0".
func (f *Filters) Values() url.Values {
	params := url.Values{}

	if f.ID != "" {
		params.Set(ParamID, f.ID)
	}
	if f.Title != "" {
		params.Set(ParamTitle, f.Title)
	}
	if len(f.Genres) > 0 {
		params.Set(ParamGenres, strings.Join(f.Genres, ","))
	}
	params.Set(ParamAllGenres, formatBool(f.RequireAllGenres))
	params.Set(ParamYearMin, FormatNumber(f.Year.Min))
	params.Set(ParamYearMax, FormatNumber(f.Year.Max))
	params.Set(ParamRuntimeMin, FormatNumber(f.Runtime.Min))
	params.Set(ParamRuntimeMax, FormatNumber(f.Runtime.Max))
	params.Set(ParamRatingMin, FormatNumber(f.Rating.Min))
	params.Set(ParamRatingMax, FormatNumber(f.Rating.Max))
	params.Set(ParamMinVotes, strconv.Itoa(f.MinVotes))
	params.Set(ParamLimit, strconv.Itoa(f.Limit))

	return params
}

// Encode returns the URL-encoded query string. url.Values sorts keys, so
// equal filter states always encode to byte-identical strings.
func (f *Filters) Encode() string {
	return f.Values().Encode()
}

// FormatNumber renders integral values without a fractional part so year
// and runtime parameters stay plain integers while ratings keep decimals.
// Frontends editing range values as text use the same rendering.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
