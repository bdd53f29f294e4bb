package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/movie-ticket-booking/internal/catalog"
    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// BrowseHandler exposes the read-only catalog: movies, a movie's
// showtimes and a showtime's seat layout.  These routes need no
// authentication so guests can browse before logging in to book.
type BrowseHandler struct {
    Store catalog.Store
}

// NewBrowseHandler constructs a BrowseHandler.  The store must be
// non-nil.
func NewBrowseHandler(store catalog.Store) *BrowseHandler {
    if store == nil {
        panic("nil store passed to NewBrowseHandler")
    }
    return &BrowseHandler{Store: store}
}

// GetMovies handles GET /v1/movies.  The catalog is split into the
// currently running titles and the upcoming ones.
func (h *BrowseHandler) GetMovies(c echo.Context) error {
    movies, err := h.Store.ListMovies(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movies"})
    }
    current := make([]model.Movie, 0, len(movies))
    upcoming := make([]model.Movie, 0)
    for _, m := range movies {
        if m.IsUpcoming {
            upcoming = append(upcoming, m)
        } else {
            current = append(current, m)
        }
    }
    return c.JSON(http.StatusOK, echo.Map{
        "current_movies":  current,
        "upcoming_movies": upcoming,
    })
}

// GetMovie handles GET /v1/movies/:id.
func (h *BrowseHandler) GetMovie(c echo.Context) error {
    id := c.Param("id")
    if id == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    movie, err := h.Store.GetMovie(c.Request().Context(), id)
    if errors.Is(err, catalog.ErrMovieNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie"})
    }
    return c.JSON(http.StatusOK, echo.Map{"movie": movie})
}

// GetShowTimes handles GET /v1/movies/:id/showtimes.  Upcoming movies
// return an empty list.
func (h *BrowseHandler) GetShowTimes(c echo.Context) error {
    id := c.Param("id")
    if id == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    ctx := c.Request().Context()
    if _, err := h.Store.GetMovie(ctx, id); err != nil {
        if errors.Is(err, catalog.ErrMovieNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie"})
    }
    showtimes, err := h.Store.ListShowTimes(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load showtimes"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "movie_id":  id,
        "showtimes": showtimes,
    })
}

// GetSeatLayout handles GET /v1/showtimes/:id/seats.  The layout is an
// independent snapshot: it reflects occupancy as of this fetch and is
// regenerated on every call.
func (h *BrowseHandler) GetSeatLayout(c echo.Context) error {
    id := c.Param("id")
    if id == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
    }
    screen, err := h.Store.LoadSeatLayout(c.Request().Context(), id)
    if errors.Is(err, catalog.ErrShowTimeNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seat layout"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "showtime_id": id,
        "screen":      screen,
    })
}
