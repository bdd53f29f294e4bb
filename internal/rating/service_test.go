package rating

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/movie-ticket-booking/internal/catalog"
    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// fakeStore records the rating update; the embedded interface covers
// the methods this service never calls.
type fakeStore struct {
    catalog.Store
    movie        model.Movie
    savedRating  float64
    savedTotal   uint32
    updateCalled bool
}

func (f *fakeStore) GetMovie(_ context.Context, id string) (model.Movie, error) {
    if id != f.movie.ID {
        return model.Movie{}, catalog.ErrMovieNotFound
    }
    return f.movie, nil
}

func (f *fakeStore) UpdateMovieRating(_ context.Context, _ string, rating float64, total uint32) error {
    f.updateCalled = true
    f.savedRating = rating
    f.savedTotal = total
    return nil
}

func TestSubmitWeightedAverage(t *testing.T) {
    // (4.0*10 + 5) / 11 = 4.09... -> 4.1 after one-decimal rounding.
    store := &fakeStore{movie: model.Movie{ID: "m1", Rating: 4.0, TotalRatings: 10}}
    svc := NewService(store)

    movie, err := svc.Submit(context.Background(), "m1", 5)
    require.NoError(t, err)
    assert.Equal(t, 4.1, movie.Rating)
    assert.Equal(t, uint32(11), movie.TotalRatings)
    assert.True(t, store.updateCalled)
    assert.Equal(t, 4.1, store.savedRating)
    assert.Equal(t, uint32(11), store.savedTotal)
}

func TestSubmitFirstRating(t *testing.T) {
    store := &fakeStore{movie: model.Movie{ID: "m1"}}
    svc := NewService(store)

    movie, err := svc.Submit(context.Background(), "m1", 5)
    require.NoError(t, err)
    assert.Equal(t, 5.0, movie.Rating)
    assert.Equal(t, uint32(1), movie.TotalRatings)
}

func TestSubmitRejectsOutOfRange(t *testing.T) {
    store := &fakeStore{movie: model.Movie{ID: "m1", Rating: 4.0, TotalRatings: 10}}
    svc := NewService(store)

    for _, v := range []uint32{0, 6, 100} {
        _, err := svc.Submit(context.Background(), "m1", v)
        assert.ErrorIs(t, err, ErrInvalidRating)
    }
    assert.False(t, store.updateCalled)
}

func TestSubmitUnknownMovie(t *testing.T) {
    store := &fakeStore{movie: model.Movie{ID: "m1"}}
    svc := NewService(store)

    _, err := svc.Submit(context.Background(), "other", 3)
    assert.ErrorIs(t, err, catalog.ErrMovieNotFound)
}
