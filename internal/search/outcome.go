package search

import "github.com/reelfinder/reelfinder/internal/catalog"

// State is the phase of the current search outcome.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateError
	StateResults
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

// Outcome is the single current result of the search state machine.
// Exactly one state is active: Message is set only for StateError and
// Results only for StateResults.
type Outcome struct {
	State   State
	Message string
	Results []catalog.Movie
}
