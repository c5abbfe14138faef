package search

// Event types pushed to frontends on outcome transitions.
const (
	EventSearchStarted   = "search:started"
	EventSearchCompleted = "search:completed"
	EventSearchFailed    = "search:failed"
)

// SearchStartedPayload is sent when a submission begins.
type SearchStartedPayload struct {
	Query      string `json:"query"`
	Generation uint64 `json:"generation"`
}

// SearchCompletedPayload is sent when a submission publishes results.
type SearchCompletedPayload struct {
	Generation   uint64 `json:"generation"`
	TotalResults int    `json:"totalResults"`
	ElapsedMs    int64  `json:"elapsedMs"`
}

// SearchFailedPayload is sent when a submission publishes an error.
type SearchFailedPayload struct {
	Generation uint64 `json:"generation"`
	Error      string `json:"error"`
	ElapsedMs  int64  `json:"elapsedMs"`
}
