package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/movie-ticket-booking/internal/catalog"
    "github.com/iliyamo/movie-ticket-booking/internal/rating"
)

// RatingHandler accepts user ratings and returns the updated average.
type RatingHandler struct {
    Ratings *rating.Service
}

// NewRatingHandler constructs a RatingHandler.  The service must be
// non-nil.
func NewRatingHandler(svc *rating.Service) *RatingHandler {
    if svc == nil {
        panic("nil rating service passed to NewRatingHandler")
    }
    return &RatingHandler{Ratings: svc}
}

// SubmitRating handles POST /v1/movies/:id/rating with body
// {"rating": 1..5}.  The response carries the movie with its updated
// average so the caller can render it immediately.
func (h *RatingHandler) SubmitRating(c echo.Context) error {
    id := c.Param("id")
    if id == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    var body struct {
        Rating uint32 `json:"rating"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    movie, err := h.Ratings.Submit(c.Request().Context(), id, body.Rating)
    if errors.Is(err, rating.ErrInvalidRating) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
    }
    if errors.Is(err, catalog.ErrMovieNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to submit rating"})
    }
    return c.JSON(http.StatusOK, echo.Map{"movie": movie})
}
