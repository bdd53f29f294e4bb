// Package rating maintains each movie's running average rating.  The
// catalog store is an injected dependency; there is no ambient shared
// state to mutate.
package rating

import (
    "context"
    "errors"
    "math"

    "github.com/iliyamo/movie-ticket-booking/internal/catalog"
    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// ErrInvalidRating is returned for values outside 1..5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Service aggregates user ratings into a movie's average.
type Service struct {
    store catalog.Store
}

// NewService constructs a Service.  The store must be non-nil.
func NewService(store catalog.Store) *Service {
    if store == nil {
        panic("nil store passed to rating.NewService")
    }
    return &Service{store: store}
}

// Submit folds one rating into the movie's running weighted average:
// round1((old*oldTotal + value) / (oldTotal+1)), then increments the
// total.  Rounding is to one decimal place.  It returns the updated
// movie so callers can display the new average immediately.
func (s *Service) Submit(ctx context.Context, movieID string, value uint32) (model.Movie, error) {
    if value < 1 || value > 5 {
        return model.Movie{}, ErrInvalidRating
    }
    m, err := s.store.GetMovie(ctx, movieID)
    if err != nil {
        return model.Movie{}, err
    }
    total := m.TotalRatings + 1
    avg := (m.Rating*float64(m.TotalRatings) + float64(value)) / float64(total)
    avg = math.Round(avg*10) / 10
    if err := s.store.UpdateMovieRating(ctx, movieID, avg, total); err != nil {
        return model.Movie{}, err
    }
    m.Rating = avg
    m.TotalRatings = total
    return m, nil
}
