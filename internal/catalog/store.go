// Package catalog is the data source the booking workflow reads from:
// movies, showtimes and seat layouts.  Two implementations exist, an
// in-memory store seeded with fixture data and a MySQL-backed store.
// The workflow core only ever sees the Store interface.
package catalog

import (
    "context"
    "errors"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// Sentinel errors returned by store lookups.
var (
    ErrMovieNotFound    = errors.New("movie not found")
    ErrShowTimeNotFound = errors.New("showtime not found")
)

// Store is the catalog contract consumed by handlers, the rating
// aggregator and the payment gateway.  All calls take a context and
// honor cancellation; a failed call is surfaced once with no retry.
type Store interface {
    // ListMovies returns the full catalog, current and upcoming.
    ListMovies(ctx context.Context) ([]model.Movie, error)
    // GetMovie returns one movie or ErrMovieNotFound.
    GetMovie(ctx context.Context, id string) (model.Movie, error)
    // ListShowTimes returns the showtimes of a movie.  Upcoming movies
    // have none.
    ListShowTimes(ctx context.Context, movieID string) ([]model.ShowTime, error)
    // GetShowTime returns one showtime or ErrShowTimeNotFound.
    GetShowTime(ctx context.Context, id string) (model.ShowTime, error)
    // LoadSeatLayout produces the seat matrix snapshot for a showtime,
    // priced from that showtime's pricing table.
    LoadSeatLayout(ctx context.Context, showTimeID string) (model.Screen, error)
    // UpdateMovieRating persists a recomputed rating average.
    UpdateMovieRating(ctx context.Context, movieID string, rating float64, totalRatings uint32) error
    // OccupiedSeats returns the set of seat IDs known to be booked for
    // a showtime.
    OccupiedSeats(ctx context.Context, showTimeID string) (map[string]bool, error)
    // MarkBooked records seats as booked for a showtime and decrements
    // its available-seat counter, never below zero.
    MarkBooked(ctx context.Context, showTimeID string, seatIDs []string) error
}
