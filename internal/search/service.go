// Package search orchestrates a filtered catalog query followed by a
// per-result provider enrichment fan-out, publishing a single current
// outcome that newer submissions always win.
package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelfinder/reelfinder/internal/catalog"
	"github.com/reelfinder/reelfinder/internal/filter"
)

// Every submission runs under one bounded timeout, covering the
// catalog query and all enrichment lookups together.
const defaultSubmissionTimeout = 30 * time.Second

// Cataloger runs filtered catalog queries.
type Cataloger interface {
	Search(ctx context.Context, filters *filter.Filters) ([]catalog.Movie, error)
}

// ProviderSource looks up streaming availability for one title.
type ProviderSource interface {
	Lookup(ctx context.Context, title, country string) ([]string, error)
}

// Notifier receives outcome transition events for a frontend.
type Notifier interface {
	Notify(event string, payload interface{})
}

// Service owns the filter state and the current search outcome. All
// mutation happens through its operations; concurrent submissions are
// serialized by a generation counter so that only the newest one may
// write the visible outcome.
type Service struct {
	cataloger Cataloger
	providers ProviderSource
	country   string
	timeout   time.Duration
	notifier  Notifier
	logger    zerolog.Logger

	mu      sync.Mutex
	filters *filter.Filters
	gen     uint64
	outcome Outcome
}

// NewService creates a search service with default filters and an idle
// outcome.
func NewService(cataloger Cataloger, providers ProviderSource, country string, logger zerolog.Logger) *Service {
	return &Service{
		cataloger: cataloger,
		providers: providers,
		country:   country,
		timeout:   defaultSubmissionTimeout,
		logger:    logger.With().Str("component", "search").Logger(),
		filters:   filter.NewFilters(),
		outcome:   Outcome{State: StateIdle},
	}
}

// SetNotifier sets the frontend notifier for outcome transition events.
func (s *Service) SetNotifier(notifier Notifier) {
	s.notifier = notifier
}

// SetTimeout overrides the per-submission deadline.
func (s *Service) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// Filters returns the filter state owned by this service. Frontends
// mutate it through its named operations between submissions.
func (s *Service) Filters() *filter.Filters {
	return s.filters
}

// Outcome returns a snapshot of the current outcome.
func (s *Service) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	outcome := s.outcome
	if outcome.Results != nil {
		outcome.Results = append([]catalog.Movie(nil), outcome.Results...)
	}
	return outcome
}

// Submit starts a new submission and returns immediately. The submission
// captures the next generation token; whichever submission holds the
// newest token when its responses arrive is the only one allowed to
// publish, so a slow earlier search can never overwrite a later one.
func (s *Service) Submit() {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.outcome = Outcome{State: StateLoading}
	snapshot := s.snapshotFiltersLocked()
	s.mu.Unlock()

	query := snapshot.Encode()

	s.logger.Debug().
		Uint64("generation", gen).
		Str("query", query).
		Msg("Submission started")

	s.notify(EventSearchStarted, SearchStartedPayload{Query: query, Generation: gen})

	go s.run(gen, snapshot)
}

// Query runs the full search-and-enrich pipeline once, outside the
// outcome state machine. The HTTP facade uses this directly.
func (s *Service) Query(ctx context.Context, filters *filter.Filters) ([]catalog.Movie, error) {
	movies, err := s.cataloger.Search(ctx, filters)
	if err != nil {
		return nil, err
	}
	s.enrich(ctx, movies)
	return movies, nil
}

// Reset restores the filter defaults and the idle outcome without
// issuing a request. Bumping the generation makes any in-flight
// submission stale so its late responses cannot resurrect old results.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.filters.Reset()
	s.outcome = Outcome{State: StateIdle}
}

// run executes one submission against its captured generation token.
func (s *Service) run(gen uint64, filters *filter.Filters) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	movies, err := s.cataloger.Search(ctx, filters)
	if err != nil {
		message := fmt.Sprintf("search failed: %v", err)
		if s.publish(gen, Outcome{State: StateError, Message: message}) {
			s.notify(EventSearchFailed, SearchFailedPayload{
				Generation: gen,
				Error:      message,
				ElapsedMs:  time.Since(start).Milliseconds(),
			})
		}
		return
	}

	s.enrich(ctx, movies)

	if s.publish(gen, Outcome{State: StateResults, Results: movies}) {
		s.notify(EventSearchCompleted, SearchCompletedPayload{
			Generation:   gen,
			TotalResults: len(movies),
			ElapsedMs:    time.Since(start).Milliseconds(),
		})
	}
}

// enrichResult carries one provider lookup back to the barrier.
type enrichResult struct {
	index    int
	services []string
}

// enrich fans out one provider lookup per movie and waits for all of
// them to settle. A failed lookup degrades that one movie to an empty
// provider list and never fails the others or the submission.
func (s *Service) enrich(ctx context.Context, movies []catalog.Movie) {
	if len(movies) == 0 {
		return
	}

	var wg sync.WaitGroup
	results := make(chan enrichResult, len(movies))

	for i := range movies {
		wg.Add(1)
		go func(index int, title string) {
			defer wg.Done()
			services, err := s.providers.Lookup(ctx, title, s.country)
			if err != nil {
				s.logger.Debug().
					Err(err).
					Str("title", title).
					Msg("Provider lookup failed, using empty list")
				services = []string{}
			}
			results <- enrichResult{index: index, services: services}
		}(i, movies[i].Title)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		movies[result.index].Providers = result.services
	}
}

// publish installs the outcome if the submission still holds the newest
// generation token. Stale submissions are discarded silently.
func (s *Service) publish(gen uint64, outcome Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.logger.Debug().
			Uint64("generation", gen).
			Uint64("latest", s.gen).
			Str("state", outcome.State.String()).
			Msg("Discarding superseded submission")
		return false
	}

	s.outcome = outcome
	return true
}

// snapshotFiltersLocked copies the filter state so a running submission
// is unaffected by edits made while it is in flight.
func (s *Service) snapshotFiltersLocked() *filter.Filters {
	snapshot := *s.filters
	snapshot.Genres = append([]string(nil), s.filters.Genres...)
	return &snapshot
}

func (s *Service) notify(event string, payload interface{}) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(event, payload)
}
