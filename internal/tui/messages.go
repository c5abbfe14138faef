package tui

import tea "github.com/charmbracelet/bubbletea"

// outcomeMsg signals that the search service published a new outcome.
type outcomeMsg struct {
	event string
}

// vocabMsg signals that the genre vocabulary refresh has settled.
type vocabMsg struct{}

// EventBridge adapts search.Notifier events into bubbletea messages. It
// never blocks the search pipeline: if the frontend is behind, older
// transition signals are dropped and the next one carries the state.
type EventBridge struct {
	ch chan outcomeMsg
}

// NewEventBridge creates an EventBridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{ch: make(chan outcomeMsg, 8)}
}

// Notify implements search.Notifier.
func (b *EventBridge) Notify(event string, payload interface{}) {
	select {
	case b.ch <- outcomeMsg{event: event}:
	default:
	}
}

// listen waits for the next outcome transition.
func (b *EventBridge) listen() tea.Cmd {
	return func() tea.Msg {
		return <-b.ch
	}
}
