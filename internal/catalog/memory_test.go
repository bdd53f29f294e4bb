package catalog

import (
    "context"
    "fmt"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

func TestMemoryStoreShowTimeFiltering(t *testing.T) {
    store := NewMemoryStore(MemoryConfig{})
    ctx := context.Background()

    shows, err := store.ListShowTimes(ctx, "1")
    require.NoError(t, err)
    require.Len(t, shows, 2)
    for _, st := range shows {
        assert.Equal(t, "1", st.MovieID)
    }

    // Upcoming movies have no bookable showtimes.
    movie, err := store.GetMovie(ctx, "7")
    require.NoError(t, err)
    require.True(t, movie.IsUpcoming)
    shows, err = store.ListShowTimes(ctx, "7")
    require.NoError(t, err)
    assert.Empty(t, shows)
}

func TestMemoryStoreNotFound(t *testing.T) {
    store := NewMemoryStore(MemoryConfig{})
    ctx := context.Background()

    _, err := store.GetMovie(ctx, "nope")
    assert.ErrorIs(t, err, ErrMovieNotFound)
    _, err = store.GetShowTime(ctx, "nope")
    assert.ErrorIs(t, err, ErrShowTimeNotFound)
    _, err = store.LoadSeatLayout(ctx, "nope")
    assert.ErrorIs(t, err, ErrShowTimeNotFound)
}

func bookedSet(screen model.Screen) map[string]bool {
    out := make(map[string]bool)
    for _, row := range screen.Seats {
        for _, seat := range row {
            if seat.Status == model.SeatBooked {
                out[seat.ID] = true
            }
        }
    }
    return out
}

func TestMemoryStoreDeterministicOccupancy(t *testing.T) {
    store := NewMemoryStore(MemoryConfig{Deterministic: true, Seed: 42})
    ctx := context.Background()

    first, err := store.LoadSeatLayout(ctx, "st1")
    require.NoError(t, err)
    second, err := store.LoadSeatLayout(ctx, "st1")
    require.NoError(t, err)

    assert.Equal(t, bookedSet(first), bookedSet(second))

    // A seat booked through the store stays booked on the next load.
    require.NoError(t, store.MarkBooked(ctx, "st1", []string{"J10"}))
    third, err := store.LoadSeatLayout(ctx, "st1")
    require.NoError(t, err)
    assert.True(t, bookedSet(third)["J10"])
}

func TestMemoryStoreLayoutPricing(t *testing.T) {
    store := NewMemoryStore(MemoryConfig{Seed: 7})
    ctx := context.Background()

    show, err := store.GetShowTime(ctx, "st1")
    require.NoError(t, err)
    screen, err := store.LoadSeatLayout(ctx, "st1")
    require.NoError(t, err)

    // Every seat is priced from the showtime's own table.
    for i, row := range screen.Seats {
        for _, seat := range row {
            if i < PremiumRows {
                assert.Equal(t, show.Pricing.Premium, seat.Price)
            } else {
                assert.Equal(t, show.Pricing.Regular, seat.Price)
            }
        }
    }
}

func TestMemoryStoreMarkBooked(t *testing.T) {
    store := NewMemoryStore(MemoryConfig{})
    ctx := context.Background()

    before, err := store.GetShowTime(ctx, "st1")
    require.NoError(t, err)

    require.NoError(t, store.MarkBooked(ctx, "st1", []string{"A1", "B2"}))
    after, err := store.GetShowTime(ctx, "st1")
    require.NoError(t, err)
    assert.Equal(t, before.AvailableSeats-2, after.AvailableSeats)

    // Marking the same seat again does not double-decrement.
    require.NoError(t, store.MarkBooked(ctx, "st1", []string{"A1"}))
    again, err := store.GetShowTime(ctx, "st1")
    require.NoError(t, err)
    assert.Equal(t, after.AvailableSeats, again.AvailableSeats)

    occupied, err := store.OccupiedSeats(ctx, "st1")
    require.NoError(t, err)
    assert.True(t, occupied["A1"])
    assert.True(t, occupied["B2"])

    assert.ErrorIs(t, store.MarkBooked(ctx, "nope", []string{"A1"}), ErrShowTimeNotFound)
}

func TestMemoryStoreAvailableSeatsNeverNegative(t *testing.T) {
    store := NewMemoryStore(MemoryConfig{})
    ctx := context.Background()

    ids := make([]string, 0, 120)
    for _, row := range "ABCDEFGHIJKL" {
        for n := 1; n <= 10; n++ {
            ids = append(ids, fmt.Sprintf("%c%d", row, n))
        }
    }
    require.NoError(t, store.MarkBooked(ctx, "st4", ids))

    show, err := store.GetShowTime(ctx, "st4")
    require.NoError(t, err)
    assert.Equal(t, uint32(0), show.AvailableSeats)
    assert.LessOrEqual(t, show.AvailableSeats, show.TotalSeats)
    assert.False(t, show.Bookable())
}

func TestMemoryStoreLatencyHonorsCancellation(t *testing.T) {
    store := NewMemoryStore(MemoryConfig{Latency: 200 * time.Millisecond})
    ctx, cancel := context.WithCancel(context.Background())
    cancel()

    start := time.Now()
    _, err := store.ListMovies(ctx)
    assert.ErrorIs(t, err, context.Canceled)
    assert.Less(t, time.Since(start), 100*time.Millisecond)
}
