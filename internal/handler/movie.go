// This file implements the movie-ranking site.  Unlike the cafe API these
// handlers render HTML pages; failures are surfaced through echo.HTTPError
// and the framework's default error page.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-cafe-services/internal/model"
	"github.com/iliyamo/movie-cafe-services/internal/repository"
	"github.com/iliyamo/movie-cafe-services/internal/tmdb"
)

// MovieHandler bundles the dependencies of the movie site endpoints: the
// movies table and the external metadata source.
type MovieHandler struct {
	MovieRepo *repository.MovieRepo
	Source    tmdb.MovieSource
}

// NewMovieHandler constructs a MovieHandler and panics if a dependency is nil.
func NewMovieHandler(repo *repository.MovieRepo, source tmdb.MovieSource) *MovieHandler {
	if repo == nil || source == nil {
		panic("nil dependency passed to NewMovieHandler")
	}
	return &MovieHandler{MovieRepo: repo, Source: source}
}

// Home handles GET / and renders the ranked listing.
func (h *MovieHandler) Home(c echo.Context) error {
	movies, err := h.MovieRepo.ListByRanking(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load movies")
	}
	return c.Render(http.StatusOK, "index.html", map[string]any{"Movies": movies})
}

// EditForm handles GET /edit/:id and renders the edit form pre-filled from
// the stored record.
func (h *MovieHandler) EditForm(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}
	movie, err := h.MovieRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "movie not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load movie")
	}
	return c.Render(http.StatusOK, "edit.html", map[string]any{"Movie": movie})
}

// EditSubmit handles POST /edit/:id.  An empty form field keeps the stored
// value; only non-empty fields overwrite.  On success the browser is sent
// back to the listing.
func (h *MovieHandler) EditSubmit(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}
	err = h.MovieRepo.UpdateReview(c.Request().Context(), id,
		c.FormValue("rating"), c.FormValue("ranking"), c.FormValue("review"))
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "movie not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not update movie")
	}
	return c.Redirect(http.StatusFound, "/")
}

// Delete handles GET /delete/:id.  Deletion is unconditional: no
// confirmation step and no authentication, matching the site's single-user
// design.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}
	if err := h.MovieRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "movie not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete movie")
	}
	return c.Redirect(http.StatusFound, "/")
}

// AddForm handles GET /add and renders the title search form.
func (h *MovieHandler) AddForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add.html", nil)
}

// AddSearch handles POST /add: it sends the entered title to the metadata
// source and renders the disambiguation list of candidates.
func (h *MovieHandler) AddSearch(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	results, err := h.Source.SearchByTitle(c.Request().Context(), title)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "movie search failed")
	}
	return c.Render(http.StatusOK, "select.html", map[string]any{"Results": results})
}

// Import handles GET /addmovie/:id: it fetches the full metadata for the
// chosen provider id, maps it into a new movie and redirects to the listing.
// Rating, ranking and review start empty and are filled in via the edit form.
func (h *MovieHandler) Import(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}
	meta, err := h.Source.FetchByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch movie details")
	}
	year, err := meta.Year()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch movie details")
	}
	movie := &model.Movie{
		Title:       meta.OriginalTitle,
		Year:        year,
		Description: meta.Overview,
		ImgURL:      meta.PosterURL(),
	}
	if err := h.MovieRepo.Create(c.Request().Context(), movie); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return echo.NewHTTPError(http.StatusConflict, "movie is already in the list")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save movie")
	}
	return c.Redirect(http.StatusFound, "/")
}

// movieID parses the :id path parameter.
func movieID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
