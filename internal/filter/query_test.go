package filter

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestFilters_Encode_Defaults(t *testing.T) {
	// Default state: no id/title/genre constraints, year [1985, current],
	// rating [7, 10], limit 5. Empty fields are omitted; the boolean and
	// the numeric defaults are transmitted.
	f := NewFilters()
	query := f.Encode()

	currentYear := time.Now().Year()
	wantPresent := []string{
		"start_year=1985",
		fmt.Sprintf("end_year=%d", currentYear),
		"average_rating_min=7",
		"average_rating_max=10",
		"runtime_minutes_min=60",
		"runtime_minutes_max=240",
		"apply_all_genres=0",
		"num_votes=0",
		"limit=5",
	}
	for _, fragment := range wantPresent {
		if !strings.Contains(query, fragment) {
			t.Errorf("Encode() = %q, missing %q", query, fragment)
		}
	}

	params := f.Values()
	for _, key := range []string{ParamGenres, ParamID, ParamTitle} {
		if _, ok := params[key]; ok {
			t.Errorf("Values() should omit %q, got %q", key, params.Get(key))
		}
	}
}

func TestFilters_Encode_Idempotent(t *testing.T) {
	f := NewFilters()
	f.ID = "tt0133093"
	f.Title = "matrix"
	f.ToggleGenre("Action")
	f.ToggleGenre("Sci-Fi")
	f.RequireAllGenres = true
	f.MinVotes = 10000

	first := f.Encode()
	second := f.Encode()
	if first != second {
		t.Errorf("Encode() not idempotent:\n first = %q\nsecond = %q", first, second)
	}
}

func TestFilters_Values_GenresCommaJoined(t *testing.T) {
	f := NewFilters()
	f.ToggleGenre("Action")
	f.ToggleGenre("Sci-Fi")

	params := f.Values()
	if got := params.Get(ParamGenres); got != "Action,Sci-Fi" {
		t.Errorf("genres = %q, want %q", got, "Action,Sci-Fi")
	}
	if len(params[ParamGenres]) != 1 {
		t.Errorf("genres serialized as %d keys, want 1", len(params[ParamGenres]))
	}
}

func TestFilters_Values_BooleanAsDigit(t *testing.T) {
	f := NewFilters()

	if got := f.Values().Get(ParamAllGenres); got != "0" {
		t.Errorf("apply_all_genres = %q, want %q", got, "0")
	}

	f.RequireAllGenres = true
	if got := f.Values().Get(ParamAllGenres); got != "1" {
		t.Errorf("apply_all_genres = %q, want %q", got, "1")
	}
}

func TestFilters_Values_ZeroValuesTransmitted(t *testing.T) {
	// Zero is a meaningful filter value and must not be treated as empty.
	f := NewFilters()
	f.MinVotes = 0
	f.Rating.SetMin(0)

	params := f.Values()
	if got := params.Get(ParamMinVotes); got != "0" {
		t.Errorf("num_votes = %q, want %q", got, "0")
	}
	if got := params.Get(ParamRatingMin); got != "0" {
		t.Errorf("average_rating_min = %q, want %q", got, "0")
	}
}

func TestFilters_Values_FractionalRating(t *testing.T) {
	f := NewFilters()
	f.Rating.SetMin(6.5)

	if got := f.Values().Get(ParamRatingMin); got != "6.5" {
		t.Errorf("average_rating_min = %q, want %q", got, "6.5")
	}
}

func TestFilters_Reset_RestoresAllDefaults(t *testing.T) {
	f := NewFilters()
	f.ID = "tt0000001"
	f.Title = "something"
	f.ToggleGenre("Horror")
	f.RequireAllGenres = true
	f.Year.SetMin(2000)
	f.Runtime.SetMax(90)
	f.Rating.SetMin(1)
	f.MinVotes = 500
	f.Limit = 50

	f.Reset()

	want := NewFilters().Encode()
	if got := f.Encode(); got != want {
		t.Errorf("Reset(): Encode() = %q, want %q", got, want)
	}
	if len(f.Genres) != 0 {
		t.Errorf("Reset(): Genres = %v, want empty", f.Genres)
	}
}

func TestFilters_ToggleGenre_NoDuplicates(t *testing.T) {
	f := NewFilters()
	f.ToggleGenre("Drama")
	f.ToggleGenre("Drama")
	if len(f.Genres) != 0 {
		t.Errorf("toggle twice: Genres = %v, want empty", f.Genres)
	}

	f.ToggleGenre("Drama")
	f.ToggleGenre("Comedy")
	f.ToggleGenre("Drama")
	if len(f.Genres) != 1 || f.Genres[0] != "Comedy" {
		t.Errorf("Genres = %v, want [Comedy]", f.Genres)
	}
}
