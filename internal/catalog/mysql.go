package catalog

import (
    "context"
    "database/sql"
    "errors"
    "fmt"
    "time"

    _ "github.com/go-sql-driver/mysql"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// OpenMySQL connects to MySQL and verifies the connection.
func OpenMySQL(user, pass, host, port, name string) (*sql.DB, error) {
    auth := user
    if pass != "" {
        auth = fmt.Sprintf("%s:%s", user, pass)
    }
    // parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
    dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
        auth, host, port, name)

    db, err := sql.Open("mysql", dsn)
    if err != nil {
        return nil, err
    }

    // Pool settings
    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(25)
    db.SetConnMaxLifetime(30 * time.Minute)

    // Ping with timeout
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        return nil, err
    }
    return db, nil
}

// MySQLStore is the persistent catalog.  It reads movies, screens and
// showtimes from SQL and keeps seat occupancy in an occupied_seats
// table, so layouts are deterministic across fetches: a booked seat
// stays booked.
type MySQLStore struct {
    db *sql.DB
}

// NewMySQLStore constructs a MySQLStore given a DB handle.
func NewMySQLStore(db *sql.DB) *MySQLStore {
    if db == nil {
        panic("nil db passed to NewMySQLStore")
    }
    return &MySQLStore{db: db}
}

// ListMovies returns the full catalog ordered by release date.
func (s *MySQLStore) ListMovies(ctx context.Context) ([]model.Movie, error) {
    const q = `SELECT id, title, genre, duration_min, rating, total_ratings,
                      language, description, is_upcoming, release_date
               FROM movies ORDER BY release_date`
    rows, err := s.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Movie, 0)
    for rows.Next() {
        var m model.Movie
        if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.DurationMin, &m.Rating,
            &m.TotalRatings, &m.Language, &m.Description, &m.IsUpcoming, &m.ReleaseDate); err != nil {
            return nil, err
        }
        out = append(out, m)
    }
    return out, rows.Err()
}

// GetMovie returns one movie or ErrMovieNotFound.
func (s *MySQLStore) GetMovie(ctx context.Context, id string) (model.Movie, error) {
    const q = `SELECT id, title, genre, duration_min, rating, total_ratings,
                      language, description, is_upcoming, release_date
               FROM movies WHERE id = ?`
    var m model.Movie
    err := s.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Title, &m.Genre,
        &m.DurationMin, &m.Rating, &m.TotalRatings, &m.Language, &m.Description,
        &m.IsUpcoming, &m.ReleaseDate)
    if errors.Is(err, sql.ErrNoRows) {
        return model.Movie{}, ErrMovieNotFound
    }
    if err != nil {
        return model.Movie{}, err
    }
    return m, nil
}

// ListShowTimes returns the showtimes of a movie ordered by date and time.
func (s *MySQLStore) ListShowTimes(ctx context.Context, movieID string) ([]model.ShowTime, error) {
    const q = `SELECT st.id, st.movie_id, st.show_date, st.show_time,
                      st.screen_id, sc.name, st.available_seats, st.total_seats,
                      st.price_regular, st.price_premium
               FROM showtimes st
               JOIN screens sc ON sc.id = st.screen_id
               WHERE st.movie_id = ?
               ORDER BY st.show_date, st.show_time`
    rows, err := s.db.QueryContext(ctx, q, movieID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.ShowTime, 0)
    for rows.Next() {
        var st model.ShowTime
        if err := rows.Scan(&st.ID, &st.MovieID, &st.Date, &st.Time, &st.ScreenID,
            &st.ScreenName, &st.AvailableSeats, &st.TotalSeats,
            &st.Pricing.Regular, &st.Pricing.Premium); err != nil {
            return nil, err
        }
        out = append(out, st)
    }
    return out, rows.Err()
}

// GetShowTime returns one showtime or ErrShowTimeNotFound.
func (s *MySQLStore) GetShowTime(ctx context.Context, id string) (model.ShowTime, error) {
    const q = `SELECT st.id, st.movie_id, st.show_date, st.show_time,
                      st.screen_id, sc.name, st.available_seats, st.total_seats,
                      st.price_regular, st.price_premium
               FROM showtimes st
               JOIN screens sc ON sc.id = st.screen_id
               WHERE st.id = ?`
    var st model.ShowTime
    err := s.db.QueryRowContext(ctx, q, id).Scan(&st.ID, &st.MovieID, &st.Date,
        &st.Time, &st.ScreenID, &st.ScreenName, &st.AvailableSeats, &st.TotalSeats,
        &st.Pricing.Regular, &st.Pricing.Premium)
    if errors.Is(err, sql.ErrNoRows) {
        return model.ShowTime{}, ErrShowTimeNotFound
    }
    if err != nil {
        return model.ShowTime{}, err
    }
    return st, nil
}

// LoadSeatLayout generates the seat matrix for a showtime using the
// screen dimensions and the stored occupancy set.  Prices come from
// the showtime's own price table.
func (s *MySQLStore) LoadSeatLayout(ctx context.Context, showTimeID string) (model.Screen, error) {
    show, err := s.GetShowTime(ctx, showTimeID)
    if err != nil {
        return model.Screen{}, err
    }
    const q = `SELECT row_count, seats_per_row FROM screens WHERE id = ?`
    var rowsN, perRow int
    if err := s.db.QueryRowContext(ctx, q, show.ScreenID).Scan(&rowsN, &perRow); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return model.Screen{}, ErrShowTimeNotFound
        }
        return model.Screen{}, err
    }
    booked, err := s.OccupiedSeats(ctx, showTimeID)
    if err != nil {
        return model.Screen{}, err
    }
    return GenerateLayout(show.ScreenID, show.ScreenName, rowsN, perRow,
        show.Pricing, FixedOccupancy(booked)), nil
}

// UpdateMovieRating persists a recomputed rating average.
func (s *MySQLStore) UpdateMovieRating(ctx context.Context, movieID string, rating float64, totalRatings uint32) error {
    const q = `UPDATE movies SET rating = ?, total_ratings = ? WHERE id = ?`
    res, err := s.db.ExecContext(ctx, q, rating, totalRatings, movieID)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        return ErrMovieNotFound
    }
    return nil
}

// OccupiedSeats returns the booked seat IDs for a showtime.
func (s *MySQLStore) OccupiedSeats(ctx context.Context, showTimeID string) (map[string]bool, error) {
    const q = `SELECT seat_id FROM occupied_seats WHERE showtime_id = ?`
    rows, err := s.db.QueryContext(ctx, q, showTimeID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make(map[string]bool)
    for rows.Next() {
        var id string
        if err := rows.Scan(&id); err != nil {
            return nil, err
        }
        out[id] = true
    }
    return out, rows.Err()
}

// MarkBooked inserts occupancy rows (ignoring seats already booked) and
// decrements the available counter, never below zero.
func (s *MySQLStore) MarkBooked(ctx context.Context, showTimeID string, seatIDs []string) error {
    if len(seatIDs) == 0 {
        return nil
    }
    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    query := `INSERT IGNORE INTO occupied_seats (showtime_id, seat_id) VALUES `
    args := make([]interface{}, 0, len(seatIDs)*2)
    for i, id := range seatIDs {
        if i > 0 {
            query += ","
        }
        query += "(?, ?)"
        args = append(args, showTimeID, id)
    }
    res, err := tx.ExecContext(ctx, query, args...)
    if err != nil {
        return err
    }
    inserted, err := res.RowsAffected()
    if err != nil {
        return err
    }
    const upd = `UPDATE showtimes
                 SET available_seats = GREATEST(CAST(available_seats AS SIGNED) - ?, 0)
                 WHERE id = ?`
    if _, err := tx.ExecContext(ctx, upd, inserted, showTimeID); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}
