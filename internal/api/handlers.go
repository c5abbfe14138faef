// Package api exposes the search pipeline over HTTP for frontends that
// talk to this process instead of the remote services directly.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/reelfinder/reelfinder/internal/catalog"
	"github.com/reelfinder/reelfinder/internal/filter"
	"github.com/reelfinder/reelfinder/internal/search"
)

// Handlers provides HTTP handlers for search operations.
type Handlers struct {
	service    *search.Service
	vocabulary *catalog.Vocabulary
}

// NewHandlers creates new search handlers.
func NewHandlers(service *search.Service, vocabulary *catalog.Vocabulary) *Handlers {
	return &Handlers{
		service:    service,
		vocabulary: vocabulary,
	}
}

// RegisterRoutes registers the search routes.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
	g.GET("/genres", h.Genres)
}

// Search runs the full search-and-enrich pipeline and returns the merged
// result list.
// GET /api/v1/search?primary_title=...&genres=...&start_year=...
func (h *Handlers) Search(c echo.Context) error {
	filters := parseFilters(c)

	movies, err := h.service.Query(c.Request().Context(), filters)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return c.JSON(http.StatusOK, movies)
}

// Genres returns the current genre vocabulary.
// GET /api/v1/genres
func (h *Handlers) Genres(c echo.Context) error {
	return c.JSON(http.StatusOK, h.vocabulary.Options())
}

// parseFilters builds filter state from the request's query parameters,
// starting from the documented defaults for anything not supplied.
func parseFilters(c echo.Context) *filter.Filters {
	f := filter.NewFilters()

	f.ID = c.QueryParam(filter.ParamID)
	f.Title = c.QueryParam(filter.ParamTitle)
	if genres := c.QueryParam(filter.ParamGenres); genres != "" {
		f.Genres = strings.Split(genres, ",")
	}
	f.RequireAllGenres = c.QueryParam(filter.ParamAllGenres) == "1"

	setRange(c, &f.Year, filter.ParamYearMin, filter.ParamYearMax)
	setRange(c, &f.Runtime, filter.ParamRuntimeMin, filter.ParamRuntimeMax)
	setRange(c, &f.Rating, filter.ParamRatingMin, filter.ParamRatingMax)

	if v, err := strconv.Atoi(c.QueryParam(filter.ParamMinVotes)); err == nil {
		f.MinVotes = v
	}
	if v, err := strconv.Atoi(c.QueryParam(filter.ParamLimit)); err == nil && v > 0 {
		f.Limit = v
	}

	return f
}

// setRange applies min/max query parameters to a range. A complete pair
// goes through Set so the defaults it replaces cannot clamp it; a lone
// min or max goes through the single-sided setters.
func setRange(c echo.Context, r *filter.Range, minKey, maxKey string) {
	min, minErr := strconv.ParseFloat(c.QueryParam(minKey), 64)
	max, maxErr := strconv.ParseFloat(c.QueryParam(maxKey), 64)

	switch {
	case minErr == nil && maxErr == nil:
		r.Set(min, max)
	case minErr == nil:
		r.SetMin(min)
	case maxErr == nil:
		r.SetMax(max)
	}
}
