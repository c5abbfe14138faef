package filter

import "strings"

// Selector is the incremental-search multi-select over the genre
// vocabulary. It owns only display state (open flag, search text); the
// chosen set lives in the Filters it was built around, and the visible
// option list is derived on demand rather than stored.
type Selector struct {
	filters *Filters
	open    bool
	query   string
}

// NewSelector creates a Selector toggling genres on the given filters.
func NewSelector(filters *Filters) *Selector {
	return &Selector{filters: filters}
}

// Open shows the dropdown.
func (s *Selector) Open() { s.open = true }

// IsOpen reports whether the dropdown is showing.
func (s *Selector) IsOpen() bool { return s.open }

// SetQuery replaces the incremental search text.
func (s *Selector) SetQuery(q string) { s.query = q }

// Query returns the current search text.
func (s *Selector) Query() string { return s.query }

// Options filters the vocabulary by case-insensitive substring match
// against the current search text. An empty query matches everything.
func (s *Selector) Options(vocabulary []string) []string {
	if s.query == "" {
		return vocabulary
	}
	needle := strings.ToLower(s.query)
	matched := make([]string, 0, len(vocabulary))
	for _, option := range vocabulary {
		if strings.Contains(strings.ToLower(option), needle) {
			matched = append(matched, option)
		}
	}
	return matched
}

// Toggle flips membership of the genre in the chosen set.
func (s *Selector) Toggle(genre string) {
	s.filters.ToggleGenre(genre)
}

// Chosen returns the currently chosen genres in selection order.
func (s *Selector) Chosen() []string {
	return s.filters.Genres
}

// Clear empties the chosen set. The dropdown stays open.
func (s *Selector) Clear() {
	s.filters.ClearGenres()
}

// Done closes the dropdown. The chosen set and the search text are left
// untouched; reopening resumes where the user left off.
func (s *Selector) Done() {
	s.open = false
}
