package catalog

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultGenres is the static fallback vocabulary, used until the
// catalog service has answered and kept permanently if it never does.
var DefaultGenres = []string{
	"Action", "Adventure", "Animation", "Biography", "Comedy", "Crime",
	"Documentary", "Drama", "Family", "Fantasy", "Film-Noir", "History",
	"Horror", "Music", "Musical", "Mystery", "News", "Romance", "Sci-Fi",
	"Sport", "Thriller", "War", "Western",
}

// GenreSource fetches the authoritative genre vocabulary.
type GenreSource interface {
	Genres(ctx context.Context) ([]string, error)
}

// Vocabulary holds the current genre option list. It starts from the
// static fallback and replaces it only when a refresh succeeds with a
// non-empty payload; any failure silently keeps what is already held.
type Vocabulary struct {
	source GenreSource
	logger zerolog.Logger

	mu      sync.Mutex
	options []string
	closed  bool
}

// NewVocabulary creates a Vocabulary seeded with the fallback list.
func NewVocabulary(source GenreSource, logger zerolog.Logger) *Vocabulary {
	options := make([]string, len(DefaultGenres))
	copy(options, DefaultGenres)
	return &Vocabulary{
		source:  source,
		logger:  logger.With().Str("component", "vocabulary").Logger(),
		options: options,
	}
}

// Options returns a copy of the current option list.
func (v *Vocabulary) Options() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	options := make([]string, len(v.options))
	copy(options, v.options)
	return options
}

// Refresh fetches the vocabulary once. On success with a non-empty list
// the held options are replaced; on any failure the previous list stays.
// A refresh completing after Close never mutates state.
func (v *Vocabulary) Refresh(ctx context.Context) {
	genres, err := v.source.Genres(ctx)
	if err != nil {
		v.logger.Warn().Err(err).Msg("Genre fetch failed, keeping fallback vocabulary")
		return
	}
	if len(genres) == 0 {
		v.logger.Warn().Msg("Genre fetch returned empty payload, keeping fallback vocabulary")
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		// Torn down while the fetch was in flight.
		return
	}
	v.options = genres

	v.logger.Debug().Int("genres", len(genres)).Msg("Genre vocabulary replaced")
}

// Close marks the vocabulary as torn down. Late refresh results are
// discarded from this point on.
func (v *Vocabulary) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
