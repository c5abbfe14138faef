// Package tui is the terminal frontend: a filter panel over the search
// service with an incremental genre dropdown and a result list.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reelfinder/reelfinder/internal/catalog"
	"github.com/reelfinder/reelfinder/internal/filter"
	"github.com/reelfinder/reelfinder/internal/search"
)

// Filter panel fields in focus order.
const (
	fieldID = iota
	fieldTitle
	fieldGenres
	fieldYearMin
	fieldYearMax
	fieldRuntimeMin
	fieldRuntimeMax
	fieldRatingMin
	fieldRatingMax
	fieldVotes
	fieldLimit
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"IMDb ID", "Title", "Genres", "Year from", "Year to",
	"Runtime from", "Runtime to", "Rating from", "Rating to",
	"Min votes", "Limit",
}

// Model is the bubbletea model for the filter panel.
type Model struct {
	service  *search.Service
	vocab    *catalog.Vocabulary
	selector *filter.Selector
	bridge   *EventBridge

	inputs      [fieldCount]textinput.Model
	genreSearch textinput.Model
	focus       int
	cursor      int // dropdown option cursor
	outcome     search.Outcome
	width       int
	height      int
}

// New creates the filter panel model around an assembled search service.
func New(service *search.Service, vocab *catalog.Vocabulary, bridge *EventBridge) Model {
	m := Model{
		service:  service,
		vocab:    vocab,
		selector: filter.NewSelector(service.Filters()),
		bridge:   bridge,
		outcome:  service.Outcome(),
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		m.inputs[i] = ti
	}
	m.inputs[fieldID].Placeholder = "tt0133093"
	m.inputs[fieldTitle].Placeholder = "title contains..."

	m.seedInputs()

	m.genreSearch = textinput.New()
	m.genreSearch.Prompt = "/ "
	m.genreSearch.Placeholder = "filter genres"

	m.inputs[fieldID].Focus()

	return m
}

// seedInputs fills the numeric inputs from the current filter state.
func (m *Model) seedInputs() {
	f := m.service.Filters()
	m.inputs[fieldID].SetValue(f.ID)
	m.inputs[fieldTitle].SetValue(f.Title)
	m.inputs[fieldYearMin].SetValue(filter.FormatNumber(f.Year.Min))
	m.inputs[fieldYearMax].SetValue(filter.FormatNumber(f.Year.Max))
	m.inputs[fieldRuntimeMin].SetValue(filter.FormatNumber(f.Runtime.Min))
	m.inputs[fieldRuntimeMax].SetValue(filter.FormatNumber(f.Runtime.Max))
	m.inputs[fieldRatingMin].SetValue(filter.FormatNumber(f.Rating.Min))
	m.inputs[fieldRatingMax].SetValue(filter.FormatNumber(f.Rating.Max))
	m.inputs[fieldVotes].SetValue(strconv.Itoa(f.MinVotes))
	m.inputs[fieldLimit].SetValue(strconv.Itoa(f.Limit))
}

// applyInputs pushes the edited input values into the filter state
// through its clamped setters. Serialization happens only on submit,
// never per keystroke.
func (m *Model) applyInputs() {
	f := m.service.Filters()
	f.ID = strings.TrimSpace(m.inputs[fieldID].Value())
	f.Title = strings.TrimSpace(m.inputs[fieldTitle].Value())

	applyRange(&f.Year, m.inputs[fieldYearMin].Value(), m.inputs[fieldYearMax].Value())
	applyRange(&f.Runtime, m.inputs[fieldRuntimeMin].Value(), m.inputs[fieldRuntimeMax].Value())
	applyRange(&f.Rating, m.inputs[fieldRatingMin].Value(), m.inputs[fieldRatingMax].Value())

	if v, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldVotes].Value())); err == nil && v >= 0 {
		f.MinVotes = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldLimit].Value())); err == nil && v > 0 {
		f.Limit = v
	}
}

// applyRange installs an edited min/max pair. A complete pair goes
// through Set so the values it replaces cannot clamp it; an unparseable
// side leaves the other to the single-sided setters.
func applyRange(r *filter.Range, minText, maxText string) {
	min, minErr := strconv.ParseFloat(strings.TrimSpace(minText), 64)
	max, maxErr := strconv.ParseFloat(strings.TrimSpace(maxText), 64)

	switch {
	case minErr == nil && maxErr == nil:
		r.Set(min, max)
	case minErr == nil:
		r.SetMin(min)
	case maxErr == nil:
		r.SetMax(max)
	}
}

// Init starts the event listener and the one-shot vocabulary refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.bridge.listen(), m.refreshVocabulary())
}

func (m Model) refreshVocabulary() tea.Cmd {
	return func() tea.Msg {
		m.vocab.Refresh(context.Background())
		return vocabMsg{}
	}
}

// Update handles key and event messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case outcomeMsg:
		m.outcome = m.service.Outcome()
		return m, m.bridge.listen()

	case vocabMsg:
		// Rendering reads the vocabulary directly; nothing to store.
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.selector.IsOpen() {
			return m.updateDropdown(msg)
		}
		return m.updatePanel(msg)
	}

	return m, nil
}

// updatePanel handles keys while the filter panel has focus.
func (m Model) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "enter":
		if m.focus == fieldGenres {
			m.selector.Open()
			m.cursor = 0
			m.genreSearch.Focus()
			return m, nil
		}
		m.applyInputs()
		m.seedInputs()
		m.service.Submit()
		return m, nil

	case "ctrl+r":
		m.service.Reset()
		m.outcome = m.service.Outcome()
		m.seedInputs()
		return m, nil
	}

	if m.focus != fieldGenres {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateDropdown handles keys while the genre dropdown is open.
func (m Model) updateDropdown(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.selector.Options(m.vocab.Options())

	switch msg.String() {
	case "esc":
		m.selector.Done()
		m.genreSearch.Blur()
		return m, nil

	case "ctrl+l":
		m.selector.Clear()
		return m, nil

	case "down":
		if m.cursor < len(options)-1 {
			m.cursor++
		}
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "enter":
		if m.cursor < len(options) {
			m.selector.Toggle(options[m.cursor])
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.genreSearch, cmd = m.genreSearch.Update(msg)
	m.selector.SetQuery(m.genreSearch.Value())
	if m.cursor >= len(m.selector.Options(m.vocab.Options())) {
		m.cursor = 0
	}
	return m, cmd
}

func (m *Model) setFocus(focus int) {
	if m.focus != fieldGenres {
		m.inputs[m.focus].Blur()
	}
	m.focus = focus
	if focus != fieldGenres {
		m.inputs[focus].Focus()
	}
}

// View renders the filter panel, the dropdown when open, and the current
// outcome.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ReelFinder"))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		if i == fieldGenres {
			b.WriteString(m.genreLine())
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n")
	}

	if m.selector.IsOpen() {
		b.WriteString("\n")
		b.WriteString(m.dropdownView())
	}

	b.WriteString("\n")
	b.WriteString(m.outcomeView())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab: next field • enter: search • ctrl+r: reset • ctrl+c: quit"))

	return b.String()
}

func (m Model) genreLine() string {
	chosen := m.selector.Chosen()
	if len(chosen) == 0 {
		return dimStyle.Render("any (enter to pick)")
	}
	return chosenStyle.Render(strings.Join(chosen, ", "))
}

func (m Model) dropdownView() string {
	var b strings.Builder
	b.WriteString(m.genreSearch.View())
	b.WriteString("\n")

	chosen := map[string]bool{}
	for _, g := range m.selector.Chosen() {
		chosen[g] = true
	}

	options := m.selector.Options(m.vocab.Options())
	for i, option := range options {
		mark := "[ ]"
		if chosen[option] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, option)
		if i == m.cursor {
			line = cursorLineStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("enter: toggle • ctrl+l: clear • esc: done"))

	return panelStyle.Render(b.String())
}

func (m Model) outcomeView() string {
	switch m.outcome.State {
	case search.StateLoading:
		return dimStyle.Render("searching...")

	case search.StateError:
		return errorStyle.Render(m.outcome.Message)

	case search.StateResults:
		if len(m.outcome.Results) == 0 {
			return dimStyle.Render("no matches")
		}
		var b strings.Builder
		for _, movie := range m.outcome.Results {
			b.WriteString(renderMovie(movie))
			b.WriteString("\n")
		}
		return b.String()

	default:
		return dimStyle.Render("set filters and press enter")
	}
}

func renderMovie(movie catalog.Movie) string {
	parts := []string{movie.Title}
	if movie.Year != nil {
		parts = append(parts, fmt.Sprintf("(%d)", *movie.Year))
	}
	if movie.Rating != nil {
		parts = append(parts, fmt.Sprintf("★ %.1f", *movie.Rating))
	}
	if movie.RuntimeMinutes != nil {
		parts = append(parts, fmt.Sprintf("%d min", *movie.RuntimeMinutes))
	}
	line := strings.Join(parts, " ")

	providers := dimStyle.Render("not on streaming")
	if len(movie.Providers) > 0 {
		providers = providerStyle.Render(strings.Join(movie.Providers, ", "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, line, "  "+providers)
}
