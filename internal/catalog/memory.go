package catalog

import (
    "context"
    "math/rand"
    "sync"
    "time"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// MemoryStore is the in-memory catalog seeded with fixture data.  It
// stands in for a real backend: an optional per-call latency simulates
// network delay, and occupancy is either rolled fresh on every layout
// fetch (the simulation default) or rolled once per showtime and kept,
// which makes booked seats survive reloads.
type MemoryStore struct {
    mu        sync.RWMutex
    movies    []model.Movie
    showtimes []model.ShowTime
    occupied  map[string]map[string]bool // showtime id -> booked seat ids

    latency       time.Duration
    deterministic bool
    rows          int
    seatsPerRow   int
    rng           *rand.Rand
}

// MemoryConfig tunes the memory store.  The zero value means no
// simulated latency, fresh random occupancy per fetch and a 10x10
// screen.
type MemoryConfig struct {
    // Latency is slept (context-aware) before every call returns.
    Latency time.Duration
    // Deterministic keeps one occupancy roll per showtime instead of
    // re-rolling on every layout fetch.
    Deterministic bool
    // Rows and SeatsPerRow size generated layouts.
    Rows        int
    SeatsPerRow int
    // Seed fixes the random source; zero uses the current time.
    Seed int64
}

// NewMemoryStore builds a seeded in-memory catalog.
func NewMemoryStore(cfg MemoryConfig) *MemoryStore {
    if cfg.Rows <= 0 {
        cfg.Rows = 10
    }
    if cfg.SeatsPerRow <= 0 {
        cfg.SeatsPerRow = 10
    }
    seed := cfg.Seed
    if seed == 0 {
        seed = time.Now().UnixNano()
    }
    return &MemoryStore{
        movies:        seedMovies(),
        showtimes:     seedShowTimes(),
        occupied:      make(map[string]map[string]bool),
        latency:       cfg.Latency,
        deterministic: cfg.Deterministic,
        rows:          cfg.Rows,
        seatsPerRow:   cfg.SeatsPerRow,
        rng:           rand.New(rand.NewSource(seed)),
    }
}

// wait simulates backend latency.  It returns early with the context
// error when the caller goes away, so an abandoned fetch never writes
// stale data later.
func (s *MemoryStore) wait(ctx context.Context) error {
    if s.latency <= 0 {
        return ctx.Err()
    }
    t := time.NewTimer(s.latency)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return ctx.Err()
    case <-t.C:
        return nil
    }
}

// ListMovies returns a copy of the catalog.
func (s *MemoryStore) ListMovies(ctx context.Context) ([]model.Movie, error) {
    if err := s.wait(ctx); err != nil {
        return nil, err
    }
    s.mu.RLock()
    defer s.mu.RUnlock()
    return append([]model.Movie(nil), s.movies...), nil
}

// GetMovie returns one movie or ErrMovieNotFound.
func (s *MemoryStore) GetMovie(ctx context.Context, id string) (model.Movie, error) {
    if err := s.wait(ctx); err != nil {
        return model.Movie{}, err
    }
    s.mu.RLock()
    defer s.mu.RUnlock()
    for _, m := range s.movies {
        if m.ID == id {
            return m, nil
        }
    }
    return model.Movie{}, ErrMovieNotFound
}

// ListShowTimes returns the showtimes belonging to a movie.  Upcoming
// movies simply have none seeded.
func (s *MemoryStore) ListShowTimes(ctx context.Context, movieID string) ([]model.ShowTime, error) {
    if err := s.wait(ctx); err != nil {
        return nil, err
    }
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.ShowTime, 0)
    for _, st := range s.showtimes {
        if st.MovieID == movieID {
            out = append(out, st)
        }
    }
    return out, nil
}

// GetShowTime returns one showtime or ErrShowTimeNotFound.
func (s *MemoryStore) GetShowTime(ctx context.Context, id string) (model.ShowTime, error) {
    if err := s.wait(ctx); err != nil {
        return model.ShowTime{}, err
    }
    s.mu.RLock()
    defer s.mu.RUnlock()
    for _, st := range s.showtimes {
        if st.ID == id {
            return st, nil
        }
    }
    return model.ShowTime{}, ErrShowTimeNotFound
}

// LoadSeatLayout generates the seat matrix for a showtime, priced from
// that showtime's pricing table.  In deterministic mode the occupancy
// is rolled once, stored, and merged with seats booked since; otherwise
// every fetch is an independent random snapshot.
func (s *MemoryStore) LoadSeatLayout(ctx context.Context, showTimeID string) (model.Screen, error) {
    if err := s.wait(ctx); err != nil {
        return model.Screen{}, err
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    var show *model.ShowTime
    for i := range s.showtimes {
        if s.showtimes[i].ID == showTimeID {
            show = &s.showtimes[i]
            break
        }
    }
    if show == nil {
        return model.Screen{}, ErrShowTimeNotFound
    }

    var occ Occupancy
    if s.deterministic {
        booked, ok := s.occupied[showTimeID]
        if !ok {
            booked = s.rollOccupancy()
            s.occupied[showTimeID] = booked
        }
        occ = FixedOccupancy(booked)
    } else {
        occ = RandomOccupancy{Rate: DefaultBookedRate, Rand: s.rng}
    }
    return GenerateLayout(show.ScreenID, show.ScreenName, s.rows, s.seatsPerRow, show.Pricing, occ), nil
}

// rollOccupancy rolls the initial booked set once.  Caller holds mu.
func (s *MemoryStore) rollOccupancy() map[string]bool {
    booked := make(map[string]bool)
    template := GenerateLayout("", "", s.rows, s.seatsPerRow, model.Pricing{}, nil)
    for _, row := range template.Seats {
        for _, seat := range row {
            if s.rng.Float64() < DefaultBookedRate {
                booked[seat.ID] = true
            }
        }
    }
    return booked
}

// UpdateMovieRating persists a recomputed rating average.
func (s *MemoryStore) UpdateMovieRating(ctx context.Context, movieID string, rating float64, totalRatings uint32) error {
    if err := s.wait(ctx); err != nil {
        return err
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    for i := range s.movies {
        if s.movies[i].ID == movieID {
            s.movies[i].Rating = rating
            s.movies[i].TotalRatings = totalRatings
            return nil
        }
    }
    return ErrMovieNotFound
}

// OccupiedSeats returns a copy of the booked-seat set for a showtime.
func (s *MemoryStore) OccupiedSeats(ctx context.Context, showTimeID string) (map[string]bool, error) {
    if err := s.wait(ctx); err != nil {
        return nil, err
    }
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make(map[string]bool, len(s.occupied[showTimeID]))
    for id := range s.occupied[showTimeID] {
        out[id] = true
    }
    return out, nil
}

// MarkBooked records seats as booked and decrements the showtime's
// available counter for each newly booked seat, never below zero.
func (s *MemoryStore) MarkBooked(ctx context.Context, showTimeID string, seatIDs []string) error {
    if err := s.wait(ctx); err != nil {
        return err
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    var show *model.ShowTime
    for i := range s.showtimes {
        if s.showtimes[i].ID == showTimeID {
            show = &s.showtimes[i]
            break
        }
    }
    if show == nil {
        return ErrShowTimeNotFound
    }
    booked := s.occupied[showTimeID]
    if booked == nil {
        booked = make(map[string]bool)
        s.occupied[showTimeID] = booked
    }
    for _, id := range seatIDs {
        if booked[id] {
            continue
        }
        booked[id] = true
        if show.AvailableSeats > 0 {
            show.AvailableSeats--
        }
    }
    return nil
}
